package handler

import (
	"time"

	"github.com/labstack/echo/v4"

	"feriadeofertas/internal/domain/service"
	"feriadeofertas/pkg/response"
)

type UploadHandler struct {
	storage service.ObjectStorage
}

func NewUploadHandler(storage service.ObjectStorage) *UploadHandler {
	return &UploadHandler{
		storage: storage,
	}
}

type presignUploadRequest struct {
	FileName    string `json:"file_name" validate:"required"`
	ContentType string `json:"content_type" validate:"required"`
}

type presignUploadResponse struct {
	Key       string    `json:"key"`
	UploadURL string    `json:"upload_url"`
	ExpiresAt time.Time `json:"expires_at"`
}

// PresignUpload mints an object key and returns a signed PUT URL so the client
// uploads the file bytes straight to storage. The returned key is what gets
// stored on the product.
func (h *UploadHandler) PresignUpload(c echo.Context) error {
	var req presignUploadRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	key := h.storage.MintKey(req.FileName)

	url, expiresAt, err := h.storage.PresignUpload(c.Request().Context(), key, req.ContentType)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, presignUploadResponse{
		Key:       key,
		UploadURL: url,
		ExpiresAt: expiresAt,
	})
}
