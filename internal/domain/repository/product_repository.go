package repository

import (
	"context"
	"time"

	"feriadeofertas/internal/domain/entity"
)

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	ListByShop(ctx context.Context, shopID string) ([]*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	// UpdateStatus performs the sold/available transition as a partial
	// write; soldAt is nil when reverting to available.
	UpdateStatus(ctx context.Context, id, status, buyerInfo string, soldAt *time.Time) error
	Delete(ctx context.Context, id string) error
}
