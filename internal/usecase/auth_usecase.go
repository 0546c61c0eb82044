package usecase

import (
	"context"

	"feriadeofertas/internal/domain/entity"
	"feriadeofertas/internal/domain/repository"
	"feriadeofertas/pkg/errors"
	"feriadeofertas/pkg/logger"
)

type AuthUseCase struct {
	userRepo     repository.UserRepository
	authProvider AuthProvider
	log          *logger.Logger
}

func NewAuthUseCase(userRepo repository.UserRepository, authProvider AuthProvider, log *logger.Logger) *AuthUseCase {
	return &AuthUseCase{
		userRepo:     userRepo,
		authProvider: authProvider,
		log:          log,
	}
}

// EnsureProfile returns the profile for uid, creating it from the identity
// record on first login. An existing profile is never overwritten, so fields
// like shopId survive re-logins.
func (uc *AuthUseCase) EnsureProfile(ctx context.Context, uid string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, uid)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, "NOT_FOUND") {
		return nil, err
	}

	identity, err := uc.authProvider.GetIdentity(ctx, uid)
	if err != nil {
		return nil, errors.Internal("Failed to load identity record", err)
	}

	if err := uc.userRepo.Create(ctx, identity); err != nil {
		return nil, err
	}
	uc.log.Info("created profile for %s", identity.Email)

	return uc.userRepo.GetByID(ctx, uid)
}
