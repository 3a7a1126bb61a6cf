package ai

import (
	"github.com/jhoicas/Inventario-ai/internal/application/ports"
	"github.com/jhoicas/Inventario-ai/pkg/config"
)

// NewFromConfig elige el adaptador según AI_PROVIDER. Devuelve nil (modo solo reglas)
// si el proveedor no tiene API key o no es conocido.
func NewFromConfig(cfg config.AIConfig) ports.LLMService {
	switch cfg.Provider {
	case "anthropic":
		if cfg.AnthropicAPIKey == "" {
			return nil
		}
		return NewAnthropicService(cfg.AnthropicAPIKey, cfg.AnthropicModel)
	case "gemini":
		if cfg.GeminiAPIKey == "" {
			return nil
		}
		return NewGeminiService(cfg.GeminiAPIKey, cfg.GeminiModel)
	case "openai", "":
		if cfg.OpenAIAPIKey == "" {
			return nil
		}
		return NewOpenAIService(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.OpenAIBaseURL)
	default:
		return nil
	}
}
