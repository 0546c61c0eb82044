package handler

import (
	"github.com/labstack/echo/v4"

	"feriadeofertas/internal/domain/entity"
	"feriadeofertas/internal/usecase"
	"feriadeofertas/pkg/response"
)

type ShopHandler struct {
	shopUseCase *usecase.ShopUseCase
}

func NewShopHandler(shopUseCase *usecase.ShopUseCase) *ShopHandler {
	return &ShopHandler{
		shopUseCase: shopUseCase,
	}
}

type createShopRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Whatsapp    string `json:"whatsapp" validate:"required"`
	Location    string `json:"location" validate:"required"`
	Alias       string `json:"alias"`
	CBU         string `json:"cbu"`
}

type updateThemeRequest struct {
	Theme string `json:"theme" validate:"required"`
}

func (h *ShopHandler) CreateShop(c echo.Context) error {
	var req createShopRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	ownerID := c.Get("uid").(string)

	shop, err := h.shopUseCase.CreateShop(c.Request().Context(), ownerID, usecase.CreateShopInput{
		Name:        req.Name,
		Description: req.Description,
		Whatsapp:    req.Whatsapp,
		Location:    req.Location,
		Alias:       req.Alias,
		CBU:         req.CBU,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, shop)
}

type shopResponse struct {
	*entity.Shop
	ThemePreset entity.Theme `json:"theme_preset"`
}

func (h *ShopHandler) GetShop(c echo.Context) error {
	shop, err := h.shopUseCase.GetShopByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, shopResponse{
		Shop:        shop,
		ThemePreset: entity.ResolveTheme(shop.Theme),
	})
}

func (h *ShopHandler) GetMyShop(c echo.Context) error {
	ownerID := c.Get("uid").(string)

	shop, err := h.shopUseCase.GetShopByOwner(c.Request().Context(), ownerID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, shopResponse{
		Shop:        shop,
		ThemePreset: entity.ResolveTheme(shop.Theme),
	})
}

func (h *ShopHandler) UpdateTheme(c echo.Context) error {
	var req updateThemeRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	ownerID := c.Get("uid").(string)

	shop, err := h.shopUseCase.UpdateTheme(c.Request().Context(), ownerID, req.Theme)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, shop)
}
