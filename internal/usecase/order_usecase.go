package usecase

import (
	"context"

	"feriadeofertas/internal/domain/entity"
	"feriadeofertas/internal/domain/repository"
	"feriadeofertas/pkg/logger"
)

type OrderUseCase struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	log         *logger.Logger
}

func NewOrderUseCase(orderRepo repository.OrderRepository, productRepo repository.ProductRepository, log *logger.Logger) *OrderUseCase {
	return &OrderUseCase{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		log:         log,
	}
}

// CreateOrder logs a buyer's purchase intent right before they jump to the
// payment flow. Nothing reserves the product; the seller confirms over chat.
func (uc *OrderUseCase) CreateOrder(ctx context.Context, buyerID, productID string) (*entity.Order, error) {
	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	order := &entity.Order{
		BuyerID:      buyerID,
		ShopID:       product.ShopID,
		ProductID:    product.ID,
		ProductTitle: product.Title,
		Price:        product.Price,
		Status:       entity.OrderStatusPendingPayment,
	}

	if err := uc.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}
	uc.log.Info("order intent %s recorded for product %s", order.ID, product.ID)

	return order, nil
}
