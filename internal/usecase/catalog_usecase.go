package usecase

import (
	"context"
	"fmt"
	"io"

	"golang.org/x/sync/errgroup"

	"safehaven/internal/domain/entity"
	"safehaven/internal/domain/repository"
	"safehaven/pkg/errors"
	"safehaven/pkg/logger"
)

type CatalogUseCase struct {
	productRepo repository.ProductRepository
	storage     FileStorage
	identity    *IdentityUseCase
}

func NewCatalogUseCase(productRepo repository.ProductRepository, storage FileStorage, identity *IdentityUseCase) *CatalogUseCase {
	return &CatalogUseCase{
		productRepo: productRepo,
		storage:     storage,
		identity:    identity,
	}
}

type PhotoInput struct {
	Filename    string
	ContentType string
	Content     io.Reader
}

type UploadProductInput struct {
	Uploader    string
	ProductName string
	Description string
	Price       float64
	Quantity    int
	Photos      []PhotoInput
}

// Upload stores the photo blobs first and the product document second. If the
// document write fails the blobs stay behind; there is no compensating cleanup.
func (uc *CatalogUseCase) Upload(ctx context.Context, input UploadProductInput) (*entity.Product, error) {
	id := entity.ProductID(input.Uploader, input.ProductName)

	photoURLs := make([]string, len(input.Photos))
	g, gctx := errgroup.WithContext(ctx)
	for i, photo := range input.Photos {
		i, photo := i, photo
		g.Go(func() error {
			objectPath := fmt.Sprintf("products/%s/%d_%s", id, i, photo.Filename)
			url, err := uc.storage.UploadFile(gctx, photo.Content, photo.ContentType, objectPath)
			if err != nil {
				return err
			}
			photoURLs[i] = url
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, errors.Internal("Failed to upload product photos", err)
	}

	product := &entity.Product{
		ID:          id,
		ProductName: input.ProductName,
		Description: input.Description,
		Price:       input.Price,
		Quantity:    input.Quantity,
		Photos:      photoURLs,
		UploadedBy:  input.Uploader,
		LikedBy:     []string{},
		DislikedBy:  []string{},
	}

	if err := uc.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	logger.Info("Product %s uploaded successfully", id)
	return product, nil
}

// Delete removes the photo blobs first, then the document. A failed blob
// delete propagates and leaves the document in place.
func (uc *CatalogUseCase) Delete(ctx context.Context, uploader, productName string) error {
	id := entity.ProductID(uploader, productName)

	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := uc.deletePhotos(ctx, product.Photos); err != nil {
		return errors.Internal("Failed to delete product photos", err)
	}

	if err := uc.productRepo.Delete(ctx, id); err != nil {
		return err
	}

	logger.Info("Product %s deleted successfully", id)
	return nil
}

// Purchase decrements the quantity atomically; the product is removed
// entirely when the remaining quantity reaches zero or below. Photo cleanup
// after a delete is best-effort.
func (uc *CatalogUseCase) Purchase(ctx context.Context, uploader, productName string, quantity int) (*entity.Product, bool, error) {
	id := entity.ProductID(uploader, productName)

	product, deleted, err := uc.productRepo.Purchase(ctx, id, quantity)
	if err != nil {
		return nil, false, err
	}

	if deleted {
		if err := uc.deletePhotos(ctx, product.Photos); err != nil {
			logger.Warn("Failed to delete photos for sold-out product %s: %v", id, err)
		}
		logger.Info("Product %s sold out and deleted", id)
	} else {
		logger.Info("Product %s quantity reduced to %d", id, product.Quantity-quantity)
	}

	return product, deleted, nil
}

// Like records the opinion and applies the karma delta to the counterpart.
// A repeat like is a no-op; a switch from dislike nets +2. The karma write is
// fire-and-forget: a failure is logged but does not undo the opinion change.
func (uc *CatalogUseCase) Like(ctx context.Context, username, productID, counterpart string) error {
	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return err
	}

	liked, disliked := product.HasOpinion(username)
	if liked {
		logger.Info("User %s has already liked product %s", username, productID)
		return nil
	}

	if err := uc.productRepo.AddLike(ctx, productID, username); err != nil {
		return err
	}

	delta := int64(1)
	if disliked {
		delta = 2
	}
	if err := uc.identity.AdjustKarma(ctx, counterpart, delta); err != nil {
		logger.Warn("Failed to adjust karma for %s after like: %v", counterpart, err)
	}

	return nil
}

func (uc *CatalogUseCase) Dislike(ctx context.Context, username, productID, counterpart string) error {
	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return err
	}

	liked, disliked := product.HasOpinion(username)
	if disliked {
		logger.Info("User %s has already disliked product %s", username, productID)
		return nil
	}

	if err := uc.productRepo.AddDislike(ctx, productID, username); err != nil {
		return err
	}

	delta := int64(-1)
	if liked {
		delta = -2
	}
	if err := uc.identity.AdjustKarma(ctx, counterpart, delta); err != nil {
		logger.Warn("Failed to adjust karma for %s after dislike: %v", counterpart, err)
	}

	return nil
}

func (uc *CatalogUseCase) ListAll(ctx context.Context) ([]*entity.Product, error) {
	return uc.productRepo.List(ctx)
}

func (uc *CatalogUseCase) ListByUser(ctx context.Context, username string) ([]*entity.Product, error) {
	return uc.productRepo.ListByUploader(ctx, username)
}

func (uc *CatalogUseCase) deletePhotos(ctx context.Context, photoURLs []string) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, url := range photoURLs {
		url := url
		g.Go(func() error {
			return uc.storage.DeleteFile(gctx, url)
		})
	}
	return g.Wait()
}
