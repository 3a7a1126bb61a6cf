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

// Verificar en tiempo de compilación que AnthropicService implementa LLMService.
var _ ports.LLMService = (*AnthropicService)(nil)

const (
	anthropicBaseURL = "https://api.anthropic.com/v1"
	anthropicVersion = "2023-06-01"
)

// AnthropicService adaptador que implementa LLMService usando la API REST de Anthropic (Claude).
// Usa net/http de la librería estándar de Go; no requiere el SDK oficial.
type AnthropicService struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// NewAnthropicService construye el adaptador.
// Si apiKey está vacío las llamadas devuelven domain.ErrLLMUnavailable en lugar de panic.
func NewAnthropicService(apiKey, model string) *AnthropicService {
	return &AnthropicService{
		apiKey:     apiKey,
		model:      model,
		baseURL:    anthropicBaseURL,
		httpClient: &http.Client{Timeout: httpTimeout},
	}
}

// WithBaseURL cambia el endpoint (proxies o tests).
func (s *AnthropicService) WithBaseURL(u string) *AnthropicService {
	s.baseURL = strings.TrimRight(u, "/")
	return s
}

// Name identifica al proveedor.
func (s *AnthropicService) Name() string { return "anthropic" }

// ── Estructuras internas del protocolo Anthropic Messages API ─────────────────

type anthropicRequest struct {
	Model       string             `json:"model"`
	MaxTokens   int                `json:"max_tokens"`
	Temperature float64            `json:"temperature"`
	System      string             `json:"system"`
	Messages    []anthropicMessage `json:"messages"`
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// ── Implementación del puerto ─────────────────────────────────────────────────

// Answer envía el contexto de inventario y la pregunta a Claude y devuelve el texto.
func (s *AnthropicService) Answer(ctx context.Context, question, contextText string, lang language.Tag) (string, error) {
	if s.apiKey == "" {
		return "", fmt.Errorf("AI: ANTHROPIC_API_KEY no configurado: %w", domain.ErrLLMUnavailable)
	}

	payload := anthropicRequest{
		Model:       s.model,
		MaxTokens:   maxTokens,
		Temperature: temperature,
		System:      query.SystemPrompt(lang),
		Messages: []anthropicMessage{
			{Role: "user", Content: query.UserPrompt(question, contextText)},
		},
	}
	headers := map[string]string{
		"x-api-key":         s.apiKey,
		"anthropic-version": anthropicVersion,
	}

	var out anthropicResponse
	if err := postJSON(ctx, s.httpClient, s.baseURL+"/messages", headers, payload, &out, anthropicError); err != nil {
		return "", err
	}

	var sb strings.Builder
	for _, block := range out.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", fmt.Errorf("AI: Claude devolvió respuesta vacía")
	}
	return text, nil
}

// anthropicError manejar errores HTTP de la API de Anthropic.
func anthropicError(status int, body []byte) error {
	var errResp anthropicResponse
	if jsonErr := json.Unmarshal(body, &errResp); jsonErr == nil && errResp.Error != nil {
		return fmt.Errorf("AI: Anthropic error (%s): %s", errResp.Error.Type, errResp.Error.Message)
	}
	return fmt.Errorf("AI: Anthropic HTTP %d", status)
}
