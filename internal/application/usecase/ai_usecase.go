package usecase

import (
	"context"
	"strings"
	"time"

	"golang.org/x/text/language"

	"github.com/jhoicas/Inventario-ai/internal/application/dto"
	"github.com/jhoicas/Inventario-ai/internal/application/ports"
	"github.com/jhoicas/Inventario-ai/internal/domain/i18n"
	"github.com/jhoicas/Inventario-ai/internal/domain/query"
	"github.com/jhoicas/Inventario-ai/pkg/logger"
)

// DefaultLLMTimeout tiempo máximo de una llamada al modelo de lenguaje.
const DefaultLLMTimeout = 10 * time.Second

// QueryUseCase responde preguntas sobre el inventario. Si hay un LLM configurado lo
// consulta con timeout; ante cualquier error responde con reglas por palabras clave.
type QueryUseCase struct {
	llm     ports.LLMService
	timeout time.Duration
	lang    language.Tag
	log     *logger.Logger
	metrics ports.AnalyticsMetrics
}

// NewQueryUseCase construye el caso de uso. llm nil activa el modo solo reglas.
func NewQueryUseCase(llm ports.LLMService, timeout time.Duration, deps Deps) *QueryUseCase {
	if timeout <= 0 {
		timeout = DefaultLLMTimeout
	}
	return &QueryUseCase{llm: llm, timeout: timeout, lang: deps.language(), log: deps.logger(), metrics: deps.metrics()}
}

// Answer valida la pregunta y responde vía LLM o reglas.
func (uc *QueryUseCase) Answer(ctx context.Context, req dto.QueryRequest) (*dto.QueryResponse, error) {
	question := strings.TrimSpace(req.Question)
	if question == "" {
		return nil, invalid("question es obligatorio")
	}
	lang := i18n.Resolve(req.Language, uc.lang)

	uc.log.Info().
		Str("question", truncate(question, 80)).
		Str("lang", langCode(lang)).
		Bool("with_context", req.InventoryContext != nil).
		Msg("consulta de inventario")

	if uc.llm != nil {
		if resp, ok := uc.answerWithLLM(ctx, question, req.InventoryContext, lang); ok {
			return resp, nil
		}
	}

	ans := query.AnswerWithRules(question, req.InventoryContext, lang)
	uc.metrics.ObserveQuery(query.SourceRuleBased)
	return &dto.QueryResponse{
		Question:   question,
		Answer:     ans.Text,
		Confidence: ans.Confidence,
		Sources:    ans.Sources,
		Language:   langCode(lang),
	}, nil
}

func (uc *QueryUseCase) answerWithLLM(
	ctx context.Context,
	question string,
	inv *query.Context,
	lang language.Tag,
) (*dto.QueryResponse, bool) {
	// Timeout: las llamadas a LLMs pueden demorar varios segundos.
	llmCtx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	text, err := uc.llm.Answer(llmCtx, question, query.BuildContextText(inv), lang)
	text = strings.TrimSpace(text)
	if err != nil || text == "" {
		ev := uc.log.Warn().Str("provider", uc.llm.Name())
		if err != nil {
			ev = ev.Err(err)
		}
		ev.Msg("consulta LLM fallida, se responde con reglas")
		uc.metrics.IncLLMFallback(uc.llm.Name())
		return nil, false
	}

	uc.metrics.ObserveQuery(uc.llm.Name())
	return &dto.QueryResponse{
		Question:   question,
		Answer:     text,
		Confidence: query.ConfidenceLLM,
		Sources:    []string{uc.llm.Name(), query.SourceInventoryContext},
		Language:   langCode(lang),
	}, true
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
