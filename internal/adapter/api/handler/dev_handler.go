package handler

import (
	"github.com/labstack/echo/v4"

	"feriadeofertas/pkg/logger"
	"feriadeofertas/pkg/response"
)

// DevHandler exposes the in-memory log buffer. Only mounted in development.
type DevHandler struct {
	log *logger.Logger
}

func NewDevHandler(log *logger.Logger) *DevHandler {
	return &DevHandler{
		log: log,
	}
}

func (h *DevHandler) RecentLogs(c echo.Context) error {
	return response.Success(c, h.log.Recent())
}

func (h *DevHandler) ClearLogs(c echo.Context) error {
	h.log.Clear()
	return response.Success(c, map[string]string{"message": "Log buffer cleared"})
}
