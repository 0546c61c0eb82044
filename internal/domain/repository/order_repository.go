package repository

import (
	"context"

	"feriadeofertas/internal/domain/entity"
)

// OrderRepository is intentionally write-only: orders are intent records and
// no flow reads them back yet. Widen this interface when that changes.
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
}
