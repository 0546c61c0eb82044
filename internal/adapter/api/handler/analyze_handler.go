package handler

import (
	"github.com/labstack/echo/v4"

	"feriadeofertas/internal/domain/service"
	"feriadeofertas/pkg/errors"
	"feriadeofertas/pkg/logger"
	"feriadeofertas/pkg/response"
)

type AnalyzeHandler struct {
	captionService service.CaptionService
	log            *logger.Logger
}

func NewAnalyzeHandler(captionService service.CaptionService, log *logger.Logger) *AnalyzeHandler {
	return &AnalyzeHandler{
		captionService: captionService,
		log:            log,
	}
}

type analyzeImageRequest struct {
	ImageBase64 string `json:"imageBase64" validate:"required"`
}

// AnalyzeImage runs magic fill: the photo goes to the vision model and a
// suggested title and description come back. Upstream failures keep their
// status code so clients can tell a rate limit from a server bug.
func (h *AnalyzeHandler) AnalyzeImage(c echo.Context) error {
	var req analyzeImageRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Request body must be valid JSON", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, errors.BadRequest("imageBase64 is required", err))
	}

	caption, err := h.captionService.AnalyzeImage(c.Request().Context(), req.ImageBase64)
	if err != nil {
		h.log.Error("image analysis failed: %v", err)
		return response.Error(c, err)
	}
	h.log.Info("image analyzed, suggested title %q", caption.Title)

	return response.Success(c, caption)
}
