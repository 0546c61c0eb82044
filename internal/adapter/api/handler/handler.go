package handler

import (
	"feriadeofertas/internal/domain/service"
	"feriadeofertas/internal/usecase"
	"feriadeofertas/pkg/logger"
)

var (
	authHandler    *AuthHandler
	shopHandler    *ShopHandler
	productHandler *ProductHandler
	orderHandler   *OrderHandler
	uploadHandler  *UploadHandler
	analyzeHandler *AnalyzeHandler
	healthHandler  *HealthHandler
	devHandler     *DevHandler
)

func Setup(
	authUseCase *usecase.AuthUseCase,
	shopUseCase *usecase.ShopUseCase,
	productUseCase *usecase.ProductUseCase,
	orderUseCase *usecase.OrderUseCase,
	storage service.ObjectStorage,
	captionService service.CaptionService,
	log *logger.Logger,
	version string,
) {
	authHandler = NewAuthHandler(authUseCase)
	shopHandler = NewShopHandler(shopUseCase)
	productHandler = NewProductHandler(productUseCase, shopUseCase)
	orderHandler = NewOrderHandler(orderUseCase)
	uploadHandler = NewUploadHandler(storage)
	analyzeHandler = NewAnalyzeHandler(captionService, log)
	healthHandler = NewHealthHandler(version)
	devHandler = NewDevHandler(log)
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

func GetShopHandler() *ShopHandler {
	return shopHandler
}

func GetProductHandler() *ProductHandler {
	return productHandler
}

func GetOrderHandler() *OrderHandler {
	return orderHandler
}

func GetUploadHandler() *UploadHandler {
	return uploadHandler
}

func GetAnalyzeHandler() *AnalyzeHandler {
	return analyzeHandler
}

func GetHealthHandler() *HealthHandler {
	return healthHandler
}

func GetDevHandler() *DevHandler {
	return devHandler
}
