package usecase

import (
	"context"
	"fmt"
	"io"

	"safehaven/internal/domain/entity"
	"safehaven/internal/domain/service"
	"safehaven/pkg/errors"
)

type fakeUserRepo struct {
	users      map[string]*entity.User
	balanceErr map[string]error
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: map[string]*entity.User{}}
	for _, u := range users {
		repo.users[u.Username] = u
	}
	return repo
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.users[user.Username] = user
	return nil
}

func (r *fakeUserRepo) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	user, ok := r.users[username]
	if !ok {
		return nil, errors.NotFound("User", nil)
	}
	return user, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, errors.NotFound("User", nil)
}

func (r *fakeUserRepo) Exists(ctx context.Context, username string) (bool, error) {
	_, ok := r.users[username]
	return ok, nil
}

func (r *fakeUserRepo) IncrementKarma(ctx context.Context, username string, delta int64) error {
	user, ok := r.users[username]
	if !ok {
		return errors.NotFound("User", nil)
	}
	user.Karma += delta
	return nil
}

func (r *fakeUserRepo) IncrementBalance(ctx context.Context, username string, amount float64) error {
	if err := r.balanceErr[username]; err != nil {
		return err
	}
	user, ok := r.users[username]
	if !ok {
		return errors.NotFound("User", nil)
	}
	user.Balance += amount
	return nil
}

type fakeAuthClient struct {
	emails map[string]bool
}

func newFakeAuthClient(existingEmails ...string) *fakeAuthClient {
	c := &fakeAuthClient{emails: map[string]bool{}}
	for _, email := range existingEmails {
		c.emails[email] = true
	}
	return c
}

func (c *fakeAuthClient) CreateUser(ctx context.Context, email, password, displayName string) (string, error) {
	if c.emails[email] {
		return "", errors.EmailTaken(email, nil)
	}
	c.emails[email] = true
	return "uid-" + email, nil
}

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	repo := &fakeProductRepo{products: map[string]*entity.Product{}}
	for _, p := range products {
		repo.products[p.ID] = p
	}
	return repo
}

func (r *fakeProductRepo) Create(ctx context.Context, product *entity.Product) error {
	r.products[product.ID] = product
	return nil
}

func (r *fakeProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	product, ok := r.products[id]
	if !ok {
		return nil, errors.NotFound("Product", nil)
	}
	return product, nil
}

func (r *fakeProductRepo) Delete(ctx context.Context, id string) error {
	delete(r.products, id)
	return nil
}

func (r *fakeProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	var products []*entity.Product
	for _, p := range r.products {
		products = append(products, p)
	}
	return products, nil
}

func (r *fakeProductRepo) ListByUploader(ctx context.Context, username string) ([]*entity.Product, error) {
	var products []*entity.Product
	for _, p := range r.products {
		if p.UploadedBy == username {
			products = append(products, p)
		}
	}
	return products, nil
}

func (r *fakeProductRepo) Purchase(ctx context.Context, id string, quantity int) (*entity.Product, bool, error) {
	product, ok := r.products[id]
	if !ok {
		return nil, false, errors.NotFound("Product", nil)
	}

	snapshot := *product
	remaining := product.Quantity - quantity
	if remaining <= 0 {
		delete(r.products, id)
		return &snapshot, true, nil
	}

	product.Quantity = remaining
	return &snapshot, false, nil
}

func (r *fakeProductRepo) AddLike(ctx context.Context, id, username string) error {
	product, ok := r.products[id]
	if !ok {
		return errors.NotFound("Product", nil)
	}
	product.LikedBy = append(product.LikedBy, username)
	product.DislikedBy = removeString(product.DislikedBy, username)
	return nil
}

func (r *fakeProductRepo) AddDislike(ctx context.Context, id, username string) error {
	product, ok := r.products[id]
	if !ok {
		return errors.NotFound("Product", nil)
	}
	product.DislikedBy = append(product.DislikedBy, username)
	product.LikedBy = removeString(product.LikedBy, username)
	return nil
}

func removeString(slice []string, item string) []string {
	var out []string
	for _, s := range slice {
		if s != item {
			out = append(out, s)
		}
	}
	return out
}

type fakeStorage struct {
	uploads []string
	deletes []string
}

func (s *fakeStorage) UploadFile(ctx context.Context, file io.Reader, contentType, objectPath string) (string, error) {
	s.uploads = append(s.uploads, objectPath)
	return "https://storage.googleapis.com/test-bucket/" + objectPath, nil
}

func (s *fakeStorage) DeleteFile(ctx context.Context, fileURL string) error {
	s.deletes = append(s.deletes, fileURL)
	return nil
}

type fakeChatRepo struct {
	threads map[string]*entity.Thread
	nextID  int
}

func newFakeChatRepo() *fakeChatRepo {
	return &fakeChatRepo{threads: map[string]*entity.Thread{}}
}

func (r *fakeChatRepo) ThreadExists(ctx context.Context, threadID string) (bool, error) {
	_, ok := r.threads[threadID]
	return ok, nil
}

func (r *fakeChatRepo) CreateThread(ctx context.Context, threadID string, metadata entity.ThreadMetadata) error {
	r.threads[threadID] = &entity.Thread{
		Metadata: metadata,
		Messages: map[string]entity.Message{},
	}
	return nil
}

func (r *fakeChatRepo) AppendMessage(ctx context.Context, threadID string, message entity.Message) error {
	thread, ok := r.threads[threadID]
	if !ok {
		return errors.NotFound("Thread", nil)
	}
	r.nextID++
	thread.Messages[fmt.Sprintf("m%d", r.nextID)] = message
	return nil
}

func (r *fakeChatRepo) GetMessages(ctx context.Context, threadID string) (map[string]entity.Message, error) {
	thread, ok := r.threads[threadID]
	if !ok {
		return map[string]entity.Message{}, nil
	}
	return thread.Messages, nil
}

func (r *fakeChatRepo) ListThreads(ctx context.Context) (map[string]entity.Thread, error) {
	threads := make(map[string]entity.Thread, len(r.threads))
	for id, thread := range r.threads {
		threads[id] = *thread
	}
	return threads, nil
}

type fakeCheckoutRepo struct {
	sessions  map[string]*entity.CheckoutSession
	createErr error
}

func newFakeCheckoutRepo() *fakeCheckoutRepo {
	return &fakeCheckoutRepo{sessions: map[string]*entity.CheckoutSession{}}
}

func (r *fakeCheckoutRepo) Create(ctx context.Context, session *entity.CheckoutSession) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.sessions[session.ID] = session
	return nil
}

func (r *fakeCheckoutRepo) GetByID(ctx context.Context, id string) (*entity.CheckoutSession, error) {
	session, ok := r.sessions[id]
	if !ok {
		return nil, errors.NotFound("Checkout session", nil)
	}
	return session, nil
}

func (r *fakeCheckoutRepo) Delete(ctx context.Context, id string) error {
	delete(r.sessions, id)
	return nil
}

type fakePaymentService struct {
	lastRequest service.CheckoutRequest
}

func (s *fakePaymentService) CreateCheckoutSession(ctx context.Context, req service.CheckoutRequest) (*service.CheckoutResponse, error) {
	s.lastRequest = req
	return &service.CheckoutResponse{SessionID: "cs_test_123"}, nil
}
