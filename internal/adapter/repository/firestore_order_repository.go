package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"

	"feriadeofertas/internal/domain/entity"
	"feriadeofertas/internal/domain/repository"
	"feriadeofertas/pkg/errors"
)

type firestoreOrderRepository struct {
	client *firestore.Client
}

func NewFirestoreOrderRepository(client *firestore.Client) repository.OrderRepository {
	return &firestoreOrderRepository{
		client: client,
	}
}

func (r *firestoreOrderRepository) Create(ctx context.Context, order *entity.Order) error {
	if order.ID == "" {
		doc := r.client.Collection("orders").NewDoc()
		order.ID = doc.ID
	}
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now()
	}

	_, err := r.client.Collection("orders").Doc(order.ID).Set(ctx, order)
	if err != nil {
		return errors.Internal("Failed to create order", err)
	}

	return nil
}
