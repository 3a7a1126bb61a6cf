package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/text/language"

	"github.com/jhoicas/Inventario-ai/internal/application/ports"
	"github.com/jhoicas/Inventario-ai/internal/domain"
	"github.com/jhoicas/Inventario-ai/internal/domain/query"
)

// Verificar en tiempo de compilación que GeminiService implementa LLMService.
var _ ports.LLMService = (*GeminiService)(nil)

const geminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// GeminiService adaptador que implementa LLMService llamando a la API REST de Google Gemini.
type GeminiService struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// NewGeminiService construye el adaptador. model suele ser "gemini-1.5-flash".
func NewGeminiService(apiKey, model string) *GeminiService {
	return &GeminiService{
		apiKey:     apiKey,
		model:      model,
		baseURL:    geminiBaseURL,
		httpClient: &http.Client{Timeout: httpTimeout},
	}
}

// WithBaseURL cambia el endpoint (proxies o tests).
func (s *GeminiService) WithBaseURL(u string) *GeminiService {
	s.baseURL = strings.TrimRight(u, "/")
	return s
}

// Name identifica al proveedor.
func (s *GeminiService) Name() string { return "gemini" }

// ── Estructuras internas para la API de Gemini ────────────────────────────────

type geminiRequest struct {
	SystemInstruction *geminiContent  `json:"system_instruction,omitempty"`
	Contents          []geminiContent `json:"contents"`
	GenerationConfig  genConfig       `json:"generationConfig"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
	Role  string       `json:"role,omitempty"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type genConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// ── Implementación del puerto ─────────────────────────────────────────────────

// Answer llama a generateContent y concatena las partes de texto del primer candidato.
func (s *GeminiService) Answer(ctx context.Context, question, contextText string, lang language.Tag) (string, error) {
	if s.apiKey == "" {
		return "", fmt.Errorf("AI: GEMINI_API_KEY no configurado: %w", domain.ErrLLMUnavailable)
	}

	payload := geminiRequest{
		SystemInstruction: &geminiContent{
			Parts: []geminiPart{{Text: query.SystemPrompt(lang)}},
		},
		Contents: []geminiContent{
			{Role: "user", Parts: []geminiPart{{Text: query.UserPrompt(question, contextText)}}},
		},
		GenerationConfig: genConfig{Temperature: temperature, MaxOutputTokens: maxTokens},
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent?key=%s",
		s.baseURL, url.PathEscape(s.model), url.QueryEscape(s.apiKey))

	var out geminiResponse
	if err := postJSON(ctx, s.httpClient, endpoint, nil, payload, &out, geminiError); err != nil {
		return "", err
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("AI: Gemini devolvió respuesta vacía")
	}

	var sb strings.Builder
	for _, p := range out.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	return strings.TrimSpace(sb.String()), nil
}

// geminiError intentar extraer el mensaje de error de Gemini.
func geminiError(status int, body []byte) error {
	var errResp geminiResponse
	if jsonErr := json.Unmarshal(body, &errResp); jsonErr == nil && errResp.Error != nil {
		return fmt.Errorf("AI: Gemini error %d: %s", errResp.Error.Code, errResp.Error.Message)
	}
	return fmt.Errorf("AI: Gemini HTTP %d", status)
}
