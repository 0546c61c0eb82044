package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"feriadeofertas/internal/domain/entity"
)

func TestEnsureProfileCreatesOnFirstLogin(t *testing.T) {
	users := newFakeUserRepo()
	provider := &fakeAuthProvider{identities: map[string]*entity.User{
		"uid-1": {ID: "uid-1", Email: "ana@example.com", DisplayName: "Ana", PhotoURL: "https://p/a.jpg"},
	}}
	uc := NewAuthUseCase(users, provider, testLogger())

	profile, err := uc.EnsureProfile(context.Background(), "uid-1")
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", profile.Email)
	assert.Empty(t, profile.ShopID)
}

func TestEnsureProfileNeverOverwrites(t *testing.T) {
	users := newFakeUserRepo()
	users.Create(context.Background(), &entity.User{
		ID:     "uid-1",
		Email:  "ana@example.com",
		ShopID: "modas-ana-ab12",
	})
	provider := &fakeAuthProvider{identities: map[string]*entity.User{
		"uid-1": {ID: "uid-1", Email: "ana@example.com", DisplayName: "Renamed"},
	}}
	uc := NewAuthUseCase(users, provider, testLogger())

	profile, err := uc.EnsureProfile(context.Background(), "uid-1")
	require.NoError(t, err)
	// The stored profile wins; the identity record is only a seed.
	assert.Equal(t, "modas-ana-ab12", profile.ShopID)
	assert.Empty(t, profile.DisplayName)
}

func TestEnsureProfileUnknownIdentity(t *testing.T) {
	users := newFakeUserRepo()
	provider := &fakeAuthProvider{identities: map[string]*entity.User{}}
	uc := NewAuthUseCase(users, provider, testLogger())

	_, err := uc.EnsureProfile(context.Background(), "ghost")
	require.Error(t, err)
}
