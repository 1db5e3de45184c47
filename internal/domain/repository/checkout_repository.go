package repository

import (
	"context"

	"safehaven/internal/domain/entity"
)

type CheckoutSessionRepository interface {
	Create(ctx context.Context, session *entity.CheckoutSession) error
	GetByID(ctx context.Context, id string) (*entity.CheckoutSession, error)
	Delete(ctx context.Context, id string) error
}
