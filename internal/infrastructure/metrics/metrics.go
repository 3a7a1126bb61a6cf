// Package metrics expone las métricas Prometheus del servicio en un registro propio.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/Inventario-ai/internal/application/ports"
)

var _ ports.AnalyticsMetrics = (*Registry)(nil)

const namespace = "inventario_ai"

// Registry métricas HTTP y de los casos de uso analíticos.
type Registry struct {
	reg *prometheus.Registry

	HTTPRequests      *prometheus.CounterVec
	HTTPLatencySec    *prometheus.HistogramVec
	Forecasts         *prometheus.CounterVec
	ForecastLatency   prometheus.Histogram
	ReorderUrgency    *prometheus.CounterVec
	AnomalyDaysTotal  prometheus.Counter
	AnomaliesDetected prometheus.Counter
	Queries           *prometheus.CounterVec
	LLMFallbacks      *prometheus.CounterVec
}

// NewRegistry crea un registro aislado (no usa el DefaultRegisterer global).
func NewRegistry() *Registry {
	r := prometheus.NewRegistry()

	httpRequests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace, Name: "http_requests_total",
		Help: "Peticiones HTTP por ruta, método y código.",
	}, []string{"route", "method", "status"})
	httpLatency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace, Name: "http_request_duration_seconds",
		Help:    "Latencia de las peticiones HTTP.",
		Buckets: prometheus.DefBuckets,
	}, []string{"route", "method"})
	forecasts := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace, Name: "forecasts_total",
		Help: "Pronósticos por método (linear_regression, simple_average, insufficient_data).",
	}, []string{"method"})
	forecastLatency := prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace, Name: "forecast_duration_seconds",
		Help:    "Tiempo de cómputo de un pronóstico.",
		Buckets: []float64{.0005, .001, .0025, .005, .01, .025, .05, .1},
	})
	reorderUrgency := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace, Name: "reorder_calculations_total",
		Help: "Cálculos de reorden por urgencia.",
	}, []string{"urgency"})
	anomalyDays := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace, Name: "anomaly_days_checked_total",
		Help: "Días densos revisados por el detector.",
	})
	anomalies := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace, Name: "anomalies_detected_total",
		Help: "Anomalías detectadas.",
	})
	queries := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace, Name: "queries_total",
		Help: "Consultas respondidas por fuente (proveedor LLM o rule_based).",
	}, []string{"source"})
	fallbacks := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace, Name: "llm_fallbacks_total",
		Help: "Consultas LLM fallidas que se respondieron con reglas.",
	}, []string{"provider"})

	r.MustRegister(httpRequests, httpLatency, forecasts, forecastLatency, reorderUrgency,
		anomalyDays, anomalies, queries, fallbacks)
	return &Registry{
		reg:               r,
		HTTPRequests:      httpRequests,
		HTTPLatencySec:    httpLatency,
		Forecasts:         forecasts,
		ForecastLatency:   forecastLatency,
		ReorderUrgency:    reorderUrgency,
		AnomalyDaysTotal:  anomalyDays,
		AnomaliesDetected: anomalies,
		Queries:           queries,
		LLMFallbacks:      fallbacks,
	}
}

// Handler sirve el formato de exposición de Prometheus.
func (r *Registry) Handler() http.Handler { return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{}) }

// Gatherer acceso al registro para tests.
func (r *Registry) Gatherer() prometheus.Gatherer { return r.reg }

// ObserveHTTP registra una petición terminada.
func (r *Registry) ObserveHTTP(route, method string, status int, elapsed time.Duration) {
	r.HTTPRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	r.HTTPLatencySec.WithLabelValues(route, method).Observe(elapsed.Seconds())
}

// ObserveForecast cuenta un pronóstico por método y registra su duración.
func (r *Registry) ObserveForecast(method string, elapsed time.Duration) {
	r.Forecasts.WithLabelValues(method).Inc()
	r.ForecastLatency.Observe(elapsed.Seconds())
}

// ObserveReorder cuenta un cálculo de reorden por urgencia.
func (r *Registry) ObserveReorder(urgency string) {
	r.ReorderUrgency.WithLabelValues(urgency).Inc()
}

// ObserveAnomalies acumula días revisados y anomalías encontradas.
func (r *Registry) ObserveAnomalies(checked, found int) {
	r.AnomalyDaysTotal.Add(float64(checked))
	r.AnomaliesDetected.Add(float64(found))
}

// ObserveQuery cuenta una consulta según la fuente de la respuesta (llm o reglas).
func (r *Registry) ObserveQuery(source string) {
	r.Queries.WithLabelValues(source).Inc()
}

// IncLLMFallback cuenta una caída a reglas tras un fallo del proveedor LLM.
func (r *Registry) IncLLMFallback(provider string) {
	r.LLMFallbacks.WithLabelValues(provider).Inc()
}
