package ports

import (
	"context"

	"golang.org/x/text/language"
)

// LLMService define el puerto de salida hacia un modelo de lenguaje.
// Cualquier adaptador (OpenAI, Anthropic, Gemini, mock) debe implementar esta interfaz;
// la capa de aplicación solo conoce este contrato, no la implementación concreta.
type LLMService interface {
	// Answer responde la pregunta en el idioma lang usando el contexto de inventario
	// ya serializado. El contexto debe llevar un timeout para evitar bloqueos.
	Answer(ctx context.Context, question, contextText string, lang language.Tag) (string, error)

	// Name identifica al proveedor en las fuentes de la respuesta ("openai", "anthropic"...).
	Name() string
}
