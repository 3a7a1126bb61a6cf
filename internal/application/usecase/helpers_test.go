package usecase_test

import (
	"context"
	"sync"
	"time"

	"golang.org/x/text/language"

	"github.com/jhoicas/Inventario-ai/internal/application/dto"
)

// recordingMetrics guarda las observaciones para verificarlas en los tests.
type recordingMetrics struct {
	mu        sync.Mutex
	forecasts []string
	urgencies []string
	anomalies [][2]int
	queries   []string
	fallbacks []string
}

func (m *recordingMetrics) ObserveForecast(method string, _ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.forecasts = append(m.forecasts, method)
}

func (m *recordingMetrics) ObserveReorder(urgency string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.urgencies = append(m.urgencies, urgency)
}

func (m *recordingMetrics) ObserveAnomalies(checked, found int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.anomalies = append(m.anomalies, [2]int{checked, found})
}

func (m *recordingMetrics) ObserveQuery(source string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queries = append(m.queries, source)
}

func (m *recordingMetrics) IncLLMFallback(provider string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fallbacks = append(m.fallbacks, provider)
}

// fakeLLM responde con text/err fijos y registra la última llamada.
type fakeLLM struct {
	text        string
	err         error
	block       bool
	gotQuestion string
	gotContext  string
	gotLang     language.Tag
}

func (f *fakeLLM) Answer(ctx context.Context, question, contextText string, lang language.Tag) (string, error) {
	f.gotQuestion, f.gotContext, f.gotLang = question, contextText, lang
	if f.block {
		<-ctx.Done()
		return "", ctx.Err()
	}
	return f.text, f.err
}

func (f *fakeLLM) Name() string { return "fake" }

// fakeReport devuelve un PDF mínimo y guarda el pronóstico recibido.
type fakeReport struct {
	got *dto.ForecastResponse
}

func (f *fakeReport) GenerateForecastPDF(_ context.Context, fc *dto.ForecastResponse, _ language.Tag) ([]byte, error) {
	f.got = fc
	return []byte("%PDF-1.3 fake"), nil
}

func ptr(v float64) *float64 { return &v }
