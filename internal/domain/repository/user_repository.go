package repository

import (
	"context"

	"safehaven/internal/domain/entity"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Exists(ctx context.Context, username string) (bool, error)
	IncrementKarma(ctx context.Context, username string, delta int64) error
	IncrementBalance(ctx context.Context, username string, amount float64) error
}
