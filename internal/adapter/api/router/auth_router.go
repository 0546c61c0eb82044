package router

import (
	"feriadeofertas/internal/adapter/api/handler"
	"feriadeofertas/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupAuthRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	authHandler := handler.GetAuthHandler()

	auth := e.Group("/v1/auth")
	auth.Use(authMiddleware.Authenticate)
	auth.GET("/me", authHandler.Me)
}
