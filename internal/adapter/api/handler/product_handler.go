package handler

import (
	"github.com/labstack/echo/v4"

	"feriadeofertas/internal/usecase"
	"feriadeofertas/pkg/errors"
	"feriadeofertas/pkg/response"
	"feriadeofertas/pkg/utils"
)

type ProductHandler struct {
	productUseCase *usecase.ProductUseCase
	shopUseCase    *usecase.ShopUseCase
}

func NewProductHandler(productUseCase *usecase.ProductUseCase, shopUseCase *usecase.ShopUseCase) *ProductHandler {
	return &ProductHandler{
		productUseCase: productUseCase,
		shopUseCase:    shopUseCase,
	}
}

type productRequest struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description"`
	Price       float64  `json:"price" validate:"gte=0"`
	Condition   string   `json:"condition" validate:"omitempty,oneof=new used"`
	Images      []string `json:"images"`
}

type markSoldRequest struct {
	BuyerInfo string `json:"buyer_info"`
}

func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	ownerID := c.Get("uid").(string)

	product, err := h.productUseCase.CreateProduct(c.Request().Context(), ownerID, usecase.ProductInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Condition:   req.Condition,
		Images:      req.Images,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, product)
}

func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	ownerID := c.Get("uid").(string)

	product, err := h.productUseCase.UpdateProduct(c.Request().Context(), ownerID, c.Param("id"), usecase.ProductInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Condition:   req.Condition,
		Images:      req.Images,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, product)
}

func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	ownerID := c.Get("uid").(string)

	if err := h.productUseCase.DeleteProduct(c.Request().Context(), ownerID, c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"message": "Product deleted"})
}

func (h *ProductHandler) MarkSold(c echo.Context) error {
	var req markSoldRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	ownerID := c.Get("uid").(string)

	product, err := h.productUseCase.MarkSold(c.Request().Context(), ownerID, c.Param("id"), req.BuyerInfo)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, product)
}

func (h *ProductHandler) MarkAvailable(c echo.Context) error {
	ownerID := c.Get("uid").(string)

	product, err := h.productUseCase.MarkAvailable(c.Request().Context(), ownerID, c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, product)
}

// ListShopProducts serves the public catalog. The uid is optional: owners see
// their full inventory, everyone else only what is for sale.
func (h *ProductHandler) ListShopProducts(c echo.Context) error {
	viewerID, _ := c.Get("uid").(string)

	products, err := h.productUseCase.ListShopProducts(c.Request().Context(), c.Param("id"), viewerID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, products)
}

type contactLinkResponse struct {
	WhatsappURL   string `json:"whatsapp_url"`
	Message       string `json:"message"`
	WalletURL     string `json:"wallet_url"`
	TransferAlias string `json:"transfer_alias,omitempty"`
	TransferCBU   string `json:"transfer_cbu,omitempty"`
}

// ContactLink builds the buyer-to-seller deep links for a product. The intent
// query selects the message template; mobile=true swaps the wallet URL for the
// app scheme. The shop's alias and CBU ride along so the payment-sent flow can
// show transfer details.
func (h *ProductHandler) ContactLink(c echo.Context) error {
	ctx := c.Request().Context()

	product, err := h.productUseCase.GetProduct(ctx, c.Param("productId"))
	if err != nil {
		return response.Error(c, err)
	}
	if product.ShopID != c.Param("id") {
		return response.Error(c, errors.NotFound("Product", nil))
	}
	shop, err := h.shopUseCase.GetShopByID(ctx, product.ShopID)
	if err != nil {
		return response.Error(c, err)
	}
	if shop.Whatsapp == "" {
		return response.Error(c, errors.BadRequest("La tienda no tiene WhatsApp configurado", nil))
	}

	intent := utils.ContactIntent(c.QueryParam("intent"))
	switch intent {
	case utils.IntentInquiry, utils.IntentBuy, utils.IntentPaymentSent:
	case "":
		intent = utils.IntentInquiry
	default:
		return response.Error(c, errors.BadRequest("Invalid intent", nil))
	}

	message := utils.ContactMessage(intent, shop.Name, product.Title, product.Price)

	return response.Success(c, contactLinkResponse{
		WhatsappURL:   utils.WhatsAppLink(shop.Whatsapp, message),
		Message:       message,
		WalletURL:     utils.WalletLink(c.QueryParam("mobile") == "true"),
		TransferAlias: shop.Alias,
		TransferCBU:   shop.CBU,
	})
}
