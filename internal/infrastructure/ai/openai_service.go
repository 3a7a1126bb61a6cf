package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"golang.org/x/text/language"

	"github.com/jhoicas/Inventario-ai/internal/application/ports"
	"github.com/jhoicas/Inventario-ai/internal/domain"
	"github.com/jhoicas/Inventario-ai/internal/domain/query"
)

var _ ports.LLMService = (*OpenAIService)(nil)

// OpenAIService adaptador de LLMService sobre la API Chat Completions de OpenAI
// (o cualquier servidor compatible vía baseURL).
type OpenAIService struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// NewOpenAIService construye el adaptador. model suele ser "gpt-3.5-turbo".
// baseURL vacío usa https://api.openai.com/v1.
func NewOpenAIService(apiKey, model, baseURL string) *OpenAIService {
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}
	return &OpenAIService{
		apiKey:     apiKey,
		model:      model,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: httpTimeout},
	}
}

// Name identifica al proveedor.
func (s *OpenAIService) Name() string { return "openai" }

type openAIRequest struct {
	Model       string          `json:"model"`
	Messages    []openAIMessage `json:"messages"`
	Temperature float64         `json:"temperature"`
	MaxTokens   int             `json:"max_tokens"`
}

type openAIMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openAIResponse struct {
	Choices []struct {
		Message openAIMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// Answer envía mensajes de sistema y usuario y devuelve el contenido de la primera opción.
func (s *OpenAIService) Answer(ctx context.Context, question, contextText string, lang language.Tag) (string, error) {
	if s.apiKey == "" {
		return "", fmt.Errorf("AI: OPENAI_API_KEY no configurado: %w", domain.ErrLLMUnavailable)
	}

	payload := openAIRequest{
		Model: s.model,
		Messages: []openAIMessage{
			{Role: "system", Content: query.SystemPrompt(lang)},
			{Role: "user", Content: query.UserPrompt(question, contextText)},
		},
		Temperature: temperature,
		MaxTokens:   maxTokens,
	}
	headers := map[string]string{"Authorization": "Bearer " + s.apiKey}

	var out openAIResponse
	if err := postJSON(ctx, s.httpClient, s.baseURL+"/chat/completions", headers, payload, &out, openAIError); err != nil {
		return "", err
	}
	if len(out.Choices) == 0 {
		return "", fmt.Errorf("AI: OpenAI devolvió respuesta vacía")
	}
	text := strings.TrimSpace(out.Choices[0].Message.Content)
	if text == "" {
		return "", fmt.Errorf("AI: OpenAI devolvió respuesta vacía")
	}
	return text, nil
}

func openAIError(status int, body []byte) error {
	var errResp openAIResponse
	if jsonErr := json.Unmarshal(body, &errResp); jsonErr == nil && errResp.Error != nil {
		return fmt.Errorf("AI: OpenAI error (%s): %s", errResp.Error.Type, errResp.Error.Message)
	}
	return fmt.Errorf("AI: OpenAI HTTP %d", status)
}
