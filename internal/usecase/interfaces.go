package usecase

import (
	"context"

	"feriadeofertas/internal/domain/entity"
)

// AuthProvider abstracts the federated identity platform.
type AuthProvider interface {
	VerifyToken(ctx context.Context, token string) (string, error)
	GetIdentity(ctx context.Context, uid string) (*entity.User, error)
}
