package router

import (
	"feriadeofertas/internal/adapter/api/handler"
	"feriadeofertas/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupAnalyzeRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	analyzeHandler := handler.GetAnalyzeHandler()

	e.POST("/v1/analyze-image", analyzeHandler.AnalyzeImage, authMiddleware.Authenticate)
}
