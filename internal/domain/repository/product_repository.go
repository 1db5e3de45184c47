package repository

import (
	"context"

	"safehaven/internal/domain/entity"
)

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*entity.Product, error)
	ListByUploader(ctx context.Context, username string) ([]*entity.Product, error)

	// Purchase atomically decrements the stored quantity inside a store
	// transaction. When the remaining quantity would be <= 0 the document is
	// deleted and deleted=true is returned; the returned product snapshot
	// carries the photo URLs so the caller can clean up blobs.
	Purchase(ctx context.Context, id string, quantity int) (product *entity.Product, deleted bool, err error)

	// AddLike / AddDislike atomically move the username into one opinion set
	// and out of the other.
	AddLike(ctx context.Context, id, username string) error
	AddDislike(ctx context.Context, id, username string) error
}
