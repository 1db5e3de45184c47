package usecase

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"safehaven/internal/domain/entity"
	"safehaven/pkg/errors"
)

func newCatalogFixture(products ...*entity.Product) (*CatalogUseCase, *fakeProductRepo, *fakeStorage, *fakeUserRepo) {
	productRepo := newFakeProductRepo(products...)
	storage := &fakeStorage{}
	userRepo := newFakeUserRepo(&entity.User{Username: "seller", Karma: 1})
	identity := NewIdentityUseCase(userRepo, newFakeAuthClient())
	return NewCatalogUseCase(productRepo, storage, identity), productRepo, storage, userRepo
}

func TestUpload(t *testing.T) {
	ctx := context.Background()
	uc, repo, storage, _ := newCatalogFixture()

	product, err := uc.Upload(ctx, UploadProductInput{
		Uploader:    "seller",
		ProductName: "lamp",
		Description: "a nice lamp",
		Price:       25.5,
		Quantity:    3,
		Photos: []PhotoInput{
			{Filename: "front.jpg", ContentType: "image/jpeg", Content: strings.NewReader("jpeg")},
			{Filename: "back.jpg", ContentType: "image/jpeg", Content: strings.NewReader("jpeg")},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "seller_lamp", product.ID)
	assert.Equal(t, "seller", product.UploadedBy)
	require.Len(t, product.Photos, 2)
	assert.Equal(t, "https://storage.googleapis.com/test-bucket/products/seller_lamp/0_front.jpg", product.Photos[0])
	assert.Equal(t, []string{"products/seller_lamp/0_front.jpg", "products/seller_lamp/1_back.jpg"}, sorted(storage.uploads))

	stored, err := repo.GetByID(ctx, "seller_lamp")
	require.NoError(t, err)
	assert.Equal(t, 3, stored.Quantity)
	assert.Empty(t, stored.LikedBy)
	assert.Empty(t, stored.DislikedBy)
}

func sorted(in []string) []string {
	out := append([]string(nil), in...)
	for i := range out {
		for j := i + 1; j < len(out); j++ {
			if out[j] < out[i] {
				out[i], out[j] = out[j], out[i]
			}
		}
	}
	return out
}

func TestPurchase(t *testing.T) {
	ctx := context.Background()

	t.Run("partial purchase reduces the quantity", func(t *testing.T) {
		uc, repo, _, _ := newCatalogFixture(&entity.Product{
			ID: "seller_lamp", ProductName: "lamp", UploadedBy: "seller", Quantity: 5,
		})

		_, deleted, err := uc.Purchase(ctx, "seller", "lamp", 3)
		require.NoError(t, err)
		assert.False(t, deleted)

		stored, err := repo.GetByID(ctx, "seller_lamp")
		require.NoError(t, err)
		assert.Equal(t, 2, stored.Quantity)
	})

	t.Run("buying out the stock removes the product and its photos", func(t *testing.T) {
		uc, repo, storage, _ := newCatalogFixture(&entity.Product{
			ID: "seller_lamp", ProductName: "lamp", UploadedBy: "seller", Quantity: 2,
			Photos: []string{"https://storage.googleapis.com/test-bucket/products/seller_lamp/0_front.jpg"},
		})

		_, deleted, err := uc.Purchase(ctx, "seller", "lamp", 5)
		require.NoError(t, err)
		assert.True(t, deleted)

		_, err = repo.GetByID(ctx, "seller_lamp")
		assert.True(t, errors.Is(err, "NOT_FOUND"))
		assert.Equal(t, []string{"https://storage.googleapis.com/test-bucket/products/seller_lamp/0_front.jpg"}, storage.deletes)
	})

	t.Run("unknown product", func(t *testing.T) {
		uc, _, _, _ := newCatalogFixture()

		_, _, err := uc.Purchase(ctx, "seller", "ghost", 1)
		assert.True(t, errors.Is(err, "NOT_FOUND"))
	})
}

func TestLikeDislike(t *testing.T) {
	ctx := context.Background()

	t.Run("like credits the uploader once", func(t *testing.T) {
		uc, repo, _, userRepo := newCatalogFixture(&entity.Product{
			ID: "seller_lamp", UploadedBy: "seller", Quantity: 1,
		})

		require.NoError(t, uc.Like(ctx, "alice", "seller_lamp", "seller"))
		require.NoError(t, uc.Like(ctx, "alice", "seller_lamp", "seller")) // no-op

		product, err := repo.GetByID(ctx, "seller_lamp")
		require.NoError(t, err)
		assert.Equal(t, []string{"alice"}, product.LikedBy)

		seller, err := userRepo.GetByUsername(ctx, "seller")
		require.NoError(t, err)
		assert.Equal(t, int64(2), seller.Karma) // started at 1, one +1
	})

	t.Run("switching from like to dislike nets -2", func(t *testing.T) {
		uc, repo, _, userRepo := newCatalogFixture(&entity.Product{
			ID: "seller_lamp", UploadedBy: "seller", Quantity: 1,
		})

		require.NoError(t, uc.Like(ctx, "alice", "seller_lamp", "seller"))
		seller, err := userRepo.GetByUsername(ctx, "seller")
		require.NoError(t, err)
		onlyLiked := seller.Karma

		require.NoError(t, uc.Dislike(ctx, "alice", "seller_lamp", "seller"))

		product, err := repo.GetByID(ctx, "seller_lamp")
		require.NoError(t, err)
		assert.Empty(t, product.LikedBy)
		assert.Equal(t, []string{"alice"}, product.DislikedBy)

		seller, err = userRepo.GetByUsername(ctx, "seller")
		require.NoError(t, err)
		assert.Equal(t, onlyLiked-2, seller.Karma)
	})

	t.Run("repeat dislike is a no-op", func(t *testing.T) {
		uc, _, _, userRepo := newCatalogFixture(&entity.Product{
			ID: "seller_lamp", UploadedBy: "seller", Quantity: 1,
		})

		require.NoError(t, uc.Dislike(ctx, "alice", "seller_lamp", "seller"))
		require.NoError(t, uc.Dislike(ctx, "alice", "seller_lamp", "seller"))

		seller, err := userRepo.GetByUsername(ctx, "seller")
		require.NoError(t, err)
		assert.Equal(t, int64(0), seller.Karma) // started at 1, one -1
	})
}

func TestListByUser(t *testing.T) {
	ctx := context.Background()
	uc, _, _, _ := newCatalogFixture(
		&entity.Product{ID: "seller_lamp", UploadedBy: "seller"},
		&entity.Product{ID: "other_rug", UploadedBy: "other"},
	)

	products, err := uc.ListByUser(ctx, "seller")
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "seller_lamp", products[0].ID)
}
