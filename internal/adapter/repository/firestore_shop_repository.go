package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"feriadeofertas/internal/domain/entity"
	"feriadeofertas/internal/domain/repository"
	"feriadeofertas/pkg/errors"
)

type firestoreShopRepository struct {
	client *firestore.Client
}

func NewFirestoreShopRepository(client *firestore.Client) repository.ShopRepository {
	return &firestoreShopRepository{
		client: client,
	}
}

func (r *firestoreShopRepository) CreateWithOwnerLink(ctx context.Context, shop *entity.Shop) error {
	now := time.Now()
	if shop.CreatedAt.IsZero() {
		shop.CreatedAt = now
	}
	shop.UpdatedAt = now

	shopRef := r.client.Collection("shops").Doc(shop.ID)
	userRef := r.client.Collection("users").Doc(shop.OwnerID)

	// Both writes land or neither does; a failure cannot leave an orphaned
	// shop or an unlinked owner.
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		if _, err := tx.Get(userRef); err != nil {
			return err
		}
		if err := tx.Set(shopRef, shop); err != nil {
			return err
		}
		return tx.Update(userRef, []firestore.Update{
			{Path: "shopId", Value: shop.ID},
			{Path: "updatedAt", Value: now},
		})
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound("User", err)
		}
		return errors.Internal("Failed to create shop", err)
	}

	return nil
}

func (r *firestoreShopRepository) GetByID(ctx context.Context, id string) (*entity.Shop, error) {
	doc, err := r.client.Collection("shops").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Shop", err)
		}
		return nil, errors.Internal("Failed to get shop", err)
	}

	var shop entity.Shop
	if err := doc.DataTo(&shop); err != nil {
		return nil, errors.Internal("Failed to parse shop data", err)
	}
	shop.ID = doc.Ref.ID

	return &shop, nil
}

func (r *firestoreShopRepository) GetByOwner(ctx context.Context, ownerID string) (*entity.Shop, error) {
	iter := r.client.Collection("shops").Where("ownerId", "==", ownerID).Limit(1).Documents(ctx)
	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, errors.NotFound("Shop", err)
	}
	if err != nil {
		return nil, errors.Internal("Failed to query shop by owner", err)
	}

	var shop entity.Shop
	if err := doc.DataTo(&shop); err != nil {
		return nil, errors.Internal("Failed to parse shop data", err)
	}
	shop.ID = doc.Ref.ID

	return &shop, nil
}

func (r *firestoreShopRepository) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error {
	updates := make([]firestore.Update, 0, len(fields)+1)
	for path, value := range fields {
		updates = append(updates, firestore.Update{Path: path, Value: value})
	}
	updates = append(updates, firestore.Update{Path: "updatedAt", Value: time.Now()})

	_, err := r.client.Collection("shops").Doc(id).Update(ctx, updates)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound("Shop", err)
		}
		return errors.Internal("Failed to update shop", err)
	}

	return nil
}
