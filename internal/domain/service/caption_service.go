package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"feriadeofertas/pkg/errors"
)

// Caption is the normalized magic-fill result.
type Caption struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type CaptionService interface {
	AnalyzeImage(ctx context.Context, imageBase64 string) (*Caption, error)
}

const (
	captionAPIVersion   = "2024-04-01-preview"
	captionSystemPrompt = "Eres un experto en marketing digital y copywriting para e-commerce. " +
		"Tu tarea es analizar la imagen de un producto y generar un título atractivo y una descripción de venta persuasiva. " +
		"Responde EXCLUSIVAMENTE en formato JSON con las claves 'title' y 'description'."
	captionUserPrompt = "Analiza esta imagen y crea un título corto (max 50 chars) y una descripción vendedora con emojis y bullets."

	maxUpstreamErrorBytes = 512
)

// AzureCaptionService asks a vision-capable chat model for a product title and
// description. The model is prompted to self-constrain its output; nothing is
// validated server-side beyond JSON shape.
type AzureCaptionService struct {
	apiKey     string
	deployment string
	endpoint   string
	httpClient *http.Client
}

var _ CaptionService = (*AzureCaptionService)(nil)

func NewAzureCaptionService(apiKey, resource, deployment string) *AzureCaptionService {
	endpoint := fmt.Sprintf(
		"https://%s.cognitiveservices.azure.com/openai/deployments/%s/chat/completions?api-version=%s",
		resource, deployment, captionAPIVersion,
	)

	return &AzureCaptionService{
		apiKey:     apiKey,
		deployment: deployment,
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

type chatCompletionRequest struct {
	Messages       []chatMessage       `json:"messages"`
	MaxTokens      int                 `json:"max_tokens"`
	Temperature    float64             `json:"temperature"`
	ResponseFormat *chatResponseFormat `json:"response_format,omitempty"`
}

type chatMessage struct {
	Role    string      `json:"role"`
	Content interface{} `json:"content"`
}

type chatContentPart struct {
	Type     string        `json:"type"`
	Text     string        `json:"text,omitempty"`
	ImageURL *chatImageURL `json:"image_url,omitempty"`
}

type chatImageURL struct {
	URL string `json:"url"`
}

type chatResponseFormat struct {
	Type string `json:"type"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (s *AzureCaptionService) AnalyzeImage(ctx context.Context, imageBase64 string) (*Caption, error) {
	if s.apiKey == "" {
		return nil, errors.Internal("AI credentials are not configured", nil)
	}

	payload := chatCompletionRequest{
		Messages: []chatMessage{
			{
				Role:    "system",
				Content: captionSystemPrompt,
			},
			{
				Role: "user",
				Content: []chatContentPart{
					{Type: "text", Text: captionUserPrompt},
					{Type: "image_url", ImageURL: &chatImageURL{
						URL: "data:image/jpeg;base64," + imageBase64,
					}},
				},
			},
		},
		MaxTokens:      300,
		Temperature:    0.7,
		ResponseFormat: &chatResponseFormat{Type: "json_object"},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Internal("Failed to encode AI request", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, errors.Internal("Failed to build AI request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("api-key", s.apiKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, errors.Internal("AI request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, maxUpstreamErrorBytes))
		return nil, errors.Upstream(
			fmt.Sprintf("AI platform rejected the request: %s", string(detail)),
			resp.StatusCode,
			nil,
		)
	}

	var completion chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return nil, errors.Internal("Failed to decode AI response", err)
	}
	if len(completion.Choices) == 0 {
		return nil, errors.Internal("AI response contained no choices", nil)
	}

	var caption Caption
	if err := json.Unmarshal([]byte(completion.Choices[0].Message.Content), &caption); err != nil {
		return nil, errors.Internal("AI response was not the expected JSON", err)
	}

	return &caption, nil
}
