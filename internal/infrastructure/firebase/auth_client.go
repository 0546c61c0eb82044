package firebase

import (
	"context"

	"firebase.google.com/go/v4/auth"

	"feriadeofertas/internal/domain/entity"
)

type FirebaseAuthClient struct {
	client *auth.Client
}

func NewFirebaseAuthClient(client *auth.Client) *FirebaseAuthClient {
	return &FirebaseAuthClient{
		client: client,
	}
}

func (f *FirebaseAuthClient) VerifyToken(ctx context.Context, token string) (string, error) {
	result, err := f.client.VerifyIDToken(ctx, token)
	if err != nil {
		return "", err
	}

	return result.UID, nil
}

// GetIdentity fetches the Firebase user record and returns it as a profile
// seed; the caller persists it on first login.
func (f *FirebaseAuthClient) GetIdentity(ctx context.Context, uid string) (*entity.User, error) {
	record, err := f.client.GetUser(ctx, uid)
	if err != nil {
		return nil, err
	}

	return &entity.User{
		ID:          record.UID,
		Email:       record.Email,
		DisplayName: record.DisplayName,
		PhotoURL:    record.PhotoURL,
	}, nil
}
