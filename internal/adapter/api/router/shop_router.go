package router

import (
	"feriadeofertas/internal/adapter/api/handler"
	"feriadeofertas/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupShopRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	shopHandler := handler.GetShopHandler()
	productHandler := handler.GetProductHandler()

	e.POST("/v1/shops", shopHandler.CreateShop, authMiddleware.Authenticate)

	// Public catalog pages. Auth is optional so owners browsing their own
	// shop see the owner view.
	shops := e.Group("/v1/shops")
	shops.Use(authMiddleware.OptionalAuthenticate)
	shops.GET("/:id", shopHandler.GetShop)
	shops.GET("/:id/products", productHandler.ListShopProducts)

	// Buyers hit the contact link anonymously from the catalog.
	e.GET("/v1/shops/:id/products/:productId/contact-link", productHandler.ContactLink)

	myShop := e.Group("/v1/my-shop")
	myShop.Use(authMiddleware.Authenticate)
	myShop.GET("", shopHandler.GetMyShop)
	myShop.PATCH("/theme", shopHandler.UpdateTheme)
}
