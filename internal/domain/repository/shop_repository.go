package repository

import (
	"context"

	"feriadeofertas/internal/domain/entity"
)

type ShopRepository interface {
	// CreateWithOwnerLink writes the shop and sets shopId on the owner's
	// user document in a single transaction.
	CreateWithOwnerLink(ctx context.Context, shop *entity.Shop) error
	GetByID(ctx context.Context, id string) (*entity.Shop, error)
	GetByOwner(ctx context.Context, ownerID string) (*entity.Shop, error)
	UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error
}
