package handler

import (
	"github.com/labstack/echo/v4"

	"feriadeofertas/internal/usecase"
	"feriadeofertas/pkg/response"
)

type OrderHandler struct {
	orderUseCase *usecase.OrderUseCase
}

func NewOrderHandler(orderUseCase *usecase.OrderUseCase) *OrderHandler {
	return &OrderHandler{
		orderUseCase: orderUseCase,
	}
}

type createOrderRequest struct {
	ProductID string `json:"product_id" validate:"required"`
}

func (h *OrderHandler) CreateOrder(c echo.Context) error {
	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	buyerID := c.Get("uid").(string)

	order, err := h.orderUseCase.CreateOrder(c.Request().Context(), buyerID, req.ProductID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, order)
}
