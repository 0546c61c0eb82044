package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"feriadeofertas/internal/adapter/api"
	"feriadeofertas/internal/domain/service"
	"feriadeofertas/pkg/errors"
	"feriadeofertas/pkg/logger"
)

type fakeCaptionService struct {
	caption *service.Caption
	err     error

	gotImage string
}

func (f *fakeCaptionService) AnalyzeImage(ctx context.Context, imageBase64 string) (*service.Caption, error) {
	f.gotImage = imageBase64
	if f.err != nil {
		return nil, f.err
	}
	return f.caption, nil
}

func newTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = api.NewValidator()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAnalyzeImage(t *testing.T) {
	captions := &fakeCaptionService{caption: &service.Caption{
		Title:       "Campera de cuero",
		Description: "Impecable, casi sin uso",
	}}
	h := NewAnalyzeHandler(captions, logger.New("test"))

	c, rec := newTestContext(t, http.MethodPost, "/v1/ai/analyze-image", `{"imageBase64":"aGVsbG8="}`)

	require.NoError(t, h.AnalyzeImage(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "aGVsbG8=", captions.gotImage)
	assert.Contains(t, rec.Body.String(), "Campera de cuero")
}

func TestAnalyzeImageMissingField(t *testing.T) {
	captions := &fakeCaptionService{}
	h := NewAnalyzeHandler(captions, logger.New("test"))

	c, rec := newTestContext(t, http.MethodPost, "/v1/ai/analyze-image", `{}`)

	require.NoError(t, h.AnalyzeImage(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, captions.gotImage, "upstream must not be called without an image")
}

func TestAnalyzeImageMalformedBody(t *testing.T) {
	h := NewAnalyzeHandler(&fakeCaptionService{}, logger.New("test"))

	c, rec := newTestContext(t, http.MethodPost, "/v1/ai/analyze-image", `{"imageBase64":`)

	require.NoError(t, h.AnalyzeImage(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAnalyzeImageRelaysUpstreamStatus(t *testing.T) {
	captions := &fakeCaptionService{
		err: errors.Upstream("AI platform rejected the request: rate limited", http.StatusTooManyRequests, nil),
	}
	h := NewAnalyzeHandler(captions, logger.New("test"))

	c, rec := newTestContext(t, http.MethodPost, "/v1/ai/analyze-image", `{"imageBase64":"aGVsbG8="}`)

	require.NoError(t, h.AnalyzeImage(c))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), "UPSTREAM_ERROR")
}
