package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"safehaven/internal/domain/entity"
	"safehaven/internal/domain/repository"
	"safehaven/pkg/errors"
)

type firestoreCheckoutRepository struct {
	client *firestore.Client
}

func NewFirestoreCheckoutRepository(client *firestore.Client) repository.CheckoutSessionRepository {
	return &firestoreCheckoutRepository{
		client: client,
	}
}

func (r *firestoreCheckoutRepository) Create(ctx context.Context, session *entity.CheckoutSession) error {
	if session.ID == "" {
		session.ID = uuid.New().String()
	}
	session.CreatedAt = time.Now()

	_, err := r.client.Collection("checkout_sessions").Doc(session.ID).Set(ctx, session)
	if err != nil {
		return errors.Internal("Failed to create checkout session", err)
	}

	return nil
}

func (r *firestoreCheckoutRepository) GetByID(ctx context.Context, id string) (*entity.CheckoutSession, error) {
	doc, err := r.client.Collection("checkout_sessions").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Checkout session", err)
		}
		return nil, errors.Internal("Failed to get checkout session", err)
	}

	var session entity.CheckoutSession
	if err := doc.DataTo(&session); err != nil {
		return nil, errors.Internal("Failed to parse checkout session data", err)
	}

	return &session, nil
}

func (r *firestoreCheckoutRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("checkout_sessions").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete checkout session", err)
	}

	return nil
}
