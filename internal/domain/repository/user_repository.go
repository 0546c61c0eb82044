package repository

import (
	"context"

	"feriadeofertas/internal/domain/entity"
)

// UserRepository persists user profiles. The shopId link is written by the
// shop repository's transaction, so no setter lives here.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
}
