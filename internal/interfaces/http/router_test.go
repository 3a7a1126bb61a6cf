package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-ai/internal/application/dto"
	"github.com/jhoicas/Inventario-ai/internal/application/usecase"
	"github.com/jhoicas/Inventario-ai/internal/domain/anomaly"
	"github.com/jhoicas/Inventario-ai/internal/domain/forecast"
	"github.com/jhoicas/Inventario-ai/internal/infrastructure/metrics"
	"github.com/jhoicas/Inventario-ai/internal/infrastructure/pdf"
	apphttp "github.com/jhoicas/Inventario-ai/internal/interfaces/http"
	"github.com/jhoicas/Inventario-ai/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// buildTestApp arma la misma cadena que cmd/api sin LLM configurado.
func buildTestApp(t *testing.T) (*fiber.App, *metrics.Registry) {
	t.Helper()
	log := logger.Nop()
	reg := metrics.NewRegistry()
	deps := usecase.Deps{Logger: log, Metrics: reg, DefaultLanguage: "en"}
	now := func() time.Time { return time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC) }

	app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler(log)})
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	apphttp.Router(app, apphttp.RouterDeps{
		ForecastUC: usecase.NewForecastUseCase(forecast.New(now), pdf.NewMarotoPDFGenerator("test"), 30, deps),
		ReorderUC:  usecase.NewReorderUseCase(deps),
		AnomalyUC:  usecase.NewAnomalyUseCase(anomaly.NewDetector(anomaly.DefaultZScoreThreshold), deps),
		QueryUC:    usecase.NewQueryUseCase(nil, 0, deps),
		Logger:     log,
		Metrics:    reg,
		AppName:    "inventario-ai",
		Version:    "1.0.0",
	})
	return app, reg
}

// doJSON lanza una petición con cuerpo JSON y devuelve la respuesta.
func doJSON(t *testing.T, app *fiber.App, method, path, body string) *http.Response {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeError(t *testing.T, resp *http.Response) dto.ErrorResponse {
	t.Helper()
	var e dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&e))
	return e
}

// ──────────────────────────────────────────────────────────────────────────────
// Health y middlewares
// ──────────────────────────────────────────────────────────────────────────────

func TestHealth(t *testing.T) {
	app, reg := buildTestApp(t)
	resp := doJSON(t, app, http.MethodGet, "/health", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(fiber.HeaderXRequestID), "debe asignarse un request id")

	var body dto.HealthResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, dto.HealthResponse{Status: "ok", Service: "inventario-ai", Version: "1.0.0"}, body)

	assert.Equal(t, 1.0, testutil.ToFloat64(reg.HTTPRequests.WithLabelValues("/health", "GET", "200")))
}

func TestRutaInexistente_Retorna404(t *testing.T) {
	app, _ := buildTestApp(t)
	resp := doJSON(t, app, http.MethodGet, "/api/ai/nada", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", decodeError(t, resp).Code)
}

// ──────────────────────────────────────────────────────────────────────────────
// Pronóstico
// ──────────────────────────────────────────────────────────────────────────────

func TestForecast_OK(t *testing.T) {
	app, reg := buildTestApp(t)
	body := `{"product_id":7,"product_name":"Tornillo","forecast_days":3,
		"historical_data":[{"date":"2024-01-01","quantity_out":10},{"date":"2024-01-02","quantity_out":20},{"date":"2024-01-03","quantity_out":30}]}`

	resp := doJSON(t, app, http.MethodPost, "/api/ai/forecast", body)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var fc dto.ForecastResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&fc))
	require.Len(t, fc.Predictions, 3)
	assert.Equal(t, "2024-01-04", fc.Predictions[0].Date)
	assert.Equal(t, 20.0, fc.Predictions[0].PredictedDemand)
	assert.Equal(t, int64(7), fc.ProductID)
	assert.Equal(t, "simple_average", fc.Method)

	assert.Equal(t, 1.0, testutil.ToFloat64(reg.Forecasts.WithLabelValues("simple_average")))
}

func TestForecast_CuerpoInvalido(t *testing.T) {
	app, _ := buildTestApp(t)
	resp := doJSON(t, app, http.MethodPost, "/api/ai/forecast", `{"product_id":`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_BODY", decodeError(t, resp).Code)
}

func TestForecast_HorizonteFueraDeRango(t *testing.T) {
	app, _ := buildTestApp(t)
	resp := doJSON(t, app, http.MethodPost, "/api/ai/forecast", `{"forecast_days":400}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", decodeError(t, resp).Code)
}

func TestForecast_FechaInvalida(t *testing.T) {
	app, _ := buildTestApp(t)
	resp := doJSON(t, app, http.MethodPost, "/api/ai/forecast",
		`{"historical_data":[{"date":"15/01/2024","quantity_out":3}]}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_DATE", decodeError(t, resp).Code)
}

func TestForecastReport_DevuelvePDF(t *testing.T) {
	app, _ := buildTestApp(t)
	resp := doJSON(t, app, http.MethodPost, "/api/ai/forecast/report", `{"product_id":7,"forecast_days":5}`)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get(fiber.HeaderContentType))
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "forecast-7.pdf")

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(raw, []byte("%PDF")))
}

// ──────────────────────────────────────────────────────────────────────────────
// Reorden, anomalías y consultas
// ──────────────────────────────────────────────────────────────────────────────

func TestReorder_EjemploDeReferencia(t *testing.T) {
	app, _ := buildTestApp(t)
	body := `{"product_id":1,"product_name":"Widget","current_stock":100,"avg_daily_usage":10,
		"lead_time_days":5,"unit_cost":10}`

	resp := doJSON(t, app, http.MethodPost, "/api/ai/reorder", body)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var r dto.ReorderResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&r))
	assert.Equal(t, 10, r.SafetyStock)
	assert.Equal(t, 60, r.ReorderPoint)
	assert.Equal(t, 10, r.DaysUntilStockout)
	assert.Equal(t, "low", r.Urgency)
}

func TestReorder_LeadTimeInvalido(t *testing.T) {
	app, _ := buildTestApp(t)
	resp := doJSON(t, app, http.MethodPost, "/api/ai/reorder",
		`{"current_stock":1,"avg_daily_usage":1,"lead_time_days":0,"unit_cost":1}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", decodeError(t, resp).Code)
}

func TestAnomaly_SinMovimientos(t *testing.T) {
	app, _ := buildTestApp(t)
	resp := doJSON(t, app, http.MethodPost, "/api/ai/anomaly", `{"movements":[]}`)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, []interface{}{}, body["anomalies"], "anomalies debe serializarse como []")
	assert.Equal(t, 0.0, body["total_checked"])
}

func TestQuery_ReglasSinLLM(t *testing.T) {
	app, reg := buildTestApp(t)
	resp := doJSON(t, app, http.MethodPost, "/api/ai/query", `{"question":"hello","language":"en"}`)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var q dto.QueryResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&q))
	assert.Equal(t, "hello", q.Question)
	assert.Equal(t, "en", q.Language)
	assert.Equal(t, []string{"rule_based"}, q.Sources)
	assert.Equal(t, 1.0, testutil.ToFloat64(reg.Queries.WithLabelValues("rule_based")))
}

func TestQuery_PreguntaVacia(t *testing.T) {
	app, _ := buildTestApp(t)
	resp := doJSON(t, app, http.MethodPost, "/api/ai/query", `{"question":"   "}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", decodeError(t, resp).Code)
}
