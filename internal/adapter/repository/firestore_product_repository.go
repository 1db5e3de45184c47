package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"safehaven/internal/domain/entity"
	"safehaven/internal/domain/repository"
	"safehaven/pkg/errors"
)

type firestoreProductRepository struct {
	client *firestore.Client
}

func NewFirestoreProductRepository(client *firestore.Client) repository.ProductRepository {
	return &firestoreProductRepository{
		client: client,
	}
}

func (r *firestoreProductRepository) Create(ctx context.Context, product *entity.Product) error {
	_, err := r.client.Collection("products").Doc(product.ID).Set(ctx, product)
	if err != nil {
		return errors.Internal("Failed to create product", err)
	}

	return nil
}

func (r *firestoreProductRepository) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	doc, err := r.client.Collection("products").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Product", err)
		}
		return nil, errors.Internal("Failed to get product", err)
	}

	var product entity.Product
	if err := doc.DataTo(&product); err != nil {
		return nil, errors.Internal("Failed to parse product data", err)
	}
	product.ID = doc.Ref.ID

	return &product, nil
}

func (r *firestoreProductRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("products").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete product", err)
	}

	return nil
}

func (r *firestoreProductRepository) List(ctx context.Context) ([]*entity.Product, error) {
	iter := r.client.Collection("products").Documents(ctx)

	var products []*entity.Product
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate products", err)
		}

		var product entity.Product
		if err := doc.DataTo(&product); err != nil {
			return nil, errors.Internal("Failed to parse product data", err)
		}
		product.ID = doc.Ref.ID
		products = append(products, &product)
	}

	return products, nil
}

func (r *firestoreProductRepository) ListByUploader(ctx context.Context, username string) ([]*entity.Product, error) {
	iter := r.client.Collection("products").Where("uploadedBy", "==", username).Documents(ctx)

	var products []*entity.Product
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate products", err)
		}

		var product entity.Product
		if err := doc.DataTo(&product); err != nil {
			return nil, errors.Internal("Failed to parse product data", err)
		}
		product.ID = doc.Ref.ID
		products = append(products, &product)
	}

	return products, nil
}

// Purchase runs the read-decrement-write inside a Firestore transaction so
// concurrent purchases of the same product cannot both read the same starting
// quantity. The document is removed when the remaining quantity drops to or
// below zero, so the stored quantity can never go negative.
func (r *firestoreProductRepository) Purchase(ctx context.Context, id string, quantity int) (*entity.Product, bool, error) {
	ref := r.client.Collection("products").Doc(id)

	var product entity.Product
	var deleted bool

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(ref)
		if err != nil {
			return err
		}

		product = entity.Product{}
		if err := doc.DataTo(&product); err != nil {
			return err
		}
		product.ID = doc.Ref.ID

		remaining := product.Quantity - quantity
		if remaining <= 0 {
			deleted = true
			return tx.Delete(ref)
		}

		deleted = false
		return tx.Update(ref, []firestore.Update{
			{Path: "quantity", Value: remaining},
		})
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, false, errors.NotFound("Product", err)
		}
		return nil, false, errors.Internal("Failed to purchase product", err)
	}

	return &product, deleted, nil
}

func (r *firestoreProductRepository) AddLike(ctx context.Context, id, username string) error {
	_, err := r.client.Collection("products").Doc(id).Update(ctx, []firestore.Update{
		{Path: "likedBy", Value: firestore.ArrayUnion(username)},
		{Path: "dislikedBy", Value: firestore.ArrayRemove(username)},
	})
	if err != nil {
		return errors.Internal("Failed to like product", err)
	}

	return nil
}

func (r *firestoreProductRepository) AddDislike(ctx context.Context, id, username string) error {
	_, err := r.client.Collection("products").Doc(id).Update(ctx, []firestore.Update{
		{Path: "dislikedBy", Value: firestore.ArrayUnion(username)},
		{Path: "likedBy", Value: firestore.ArrayRemove(username)},
	})
	if err != nil {
		return errors.Internal("Failed to dislike product", err)
	}

	return nil
}
