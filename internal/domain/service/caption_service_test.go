package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"feriadeofertas/pkg/errors"
)

func newTestService(t *testing.T, handler http.HandlerFunc) (*AzureCaptionService, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	svc := NewAzureCaptionService("test-key", "test-resource", "gpt-4o-mini")
	svc.endpoint = server.URL
	return svc, server
}

func TestAnalyzeImageSuccess(t *testing.T) {
	svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "test-key", r.Header.Get("api-key"))

		var req chatCompletionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Messages, 2)
		assert.Equal(t, "system", req.Messages[0].Role)
		assert.Equal(t, "json_object", req.ResponseFormat.Type)

		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{
					"content": `{"title":"Campera de cuero","description":"✨ Impecable"}`,
				}},
			},
		})
	})

	caption, err := svc.AnalyzeImage(context.Background(), "aGVsbG8=")
	require.NoError(t, err)
	assert.Equal(t, "Campera de cuero", caption.Title)
	assert.Equal(t, "✨ Impecable", caption.Description)
}

func TestAnalyzeImageMissingCredentials(t *testing.T) {
	svc := NewAzureCaptionService("", "res", "dep")

	_, err := svc.AnalyzeImage(context.Background(), "aGVsbG8=")
	require.Error(t, err)

	var appErr *errors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusInternalServerError, appErr.Status)
}

func TestAnalyzeImageRelaysUpstreamStatus(t *testing.T) {
	svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "deployment not found", http.StatusTooManyRequests)
	})

	_, err := svc.AnalyzeImage(context.Background(), "aGVsbG8=")
	require.Error(t, err)

	var appErr *errors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusTooManyRequests, appErr.Status)
	assert.Equal(t, "UPSTREAM_ERROR", appErr.Code)
	assert.Contains(t, appErr.Message, "deployment not found")
}

func TestAnalyzeImageMalformedUpstreamContent(t *testing.T) {
	svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": "not json at all"}},
			},
		})
	})

	_, err := svc.AnalyzeImage(context.Background(), "aGVsbG8=")
	require.Error(t, err)

	var appErr *errors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusInternalServerError, appErr.Status)
}
