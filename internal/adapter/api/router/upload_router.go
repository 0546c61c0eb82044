package router

import (
	"feriadeofertas/internal/adapter/api/handler"
	"feriadeofertas/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupUploadRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	uploadHandler := handler.GetUploadHandler()

	uploads := e.Group("/v1/uploads")
	uploads.Use(authMiddleware.Authenticate)
	uploads.POST("", uploadHandler.PresignUpload)
}
