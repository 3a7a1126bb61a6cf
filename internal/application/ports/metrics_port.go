package ports

import "time"

// AnalyticsMetrics registra métricas de los casos de uso analíticos.
// Una implementación nil-safe es NopMetrics.
type AnalyticsMetrics interface {
	ObserveForecast(method string, elapsed time.Duration)
	ObserveReorder(urgency string)
	ObserveAnomalies(checked, found int)
	ObserveQuery(source string)
	IncLLMFallback(provider string)
}

// NopMetrics descarta todas las observaciones.
type NopMetrics struct{}

// ObserveForecast no hace nada.
func (NopMetrics) ObserveForecast(string, time.Duration) {}

// ObserveReorder no hace nada.
func (NopMetrics) ObserveReorder(string) {}

// ObserveAnomalies no hace nada.
func (NopMetrics) ObserveAnomalies(int, int) {}

// ObserveQuery no hace nada.
func (NopMetrics) ObserveQuery(string) {}

// IncLLMFallback no hace nada.
func (NopMetrics) IncLLMFallback(string) {}
