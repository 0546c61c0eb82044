package router

import (
	"feriadeofertas/internal/adapter/api/handler"

	"github.com/labstack/echo/v4"
)

func SetupDevRouter(e *echo.Echo, environment string) {
	if environment != "development" {
		return
	}
	devHandler := handler.GetDevHandler()

	e.GET("/v1/dev/logs", devHandler.RecentLogs)
	e.DELETE("/v1/dev/logs", devHandler.ClearLogs)
}
