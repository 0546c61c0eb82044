package router

import (
	"feriadeofertas/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, environment string) {
	SetupAuthRouter(e, authMiddleware)
	SetupShopRouter(e, authMiddleware)
	SetupProductRouter(e, authMiddleware)
	SetupOrderRouter(e, authMiddleware)
	SetupUploadRouter(e, authMiddleware)
	SetupAnalyzeRouter(e, authMiddleware)
	SetupHealthRouter(e)
	SetupDevRouter(e, environment)
}
