package dto

import "github.com/jhoicas/Inventario-ai/internal/domain/query"

// ── Pronóstico de demanda ─────────────────────────────────────────────────────

// DailyMovementDTO entradas y salidas de un día del historial.
type DailyMovementDTO struct {
	Date        string `json:"date" example:"2024-01-15"`
	QuantityIn  int64  `json:"quantity_in"`
	QuantityOut int64  `json:"quantity_out"`
}

// ForecastRequest cuerpo de POST /api/ai/forecast.
type ForecastRequest struct {
	ProductID      int64              `json:"product_id"`
	ProductName    string             `json:"product_name"`
	HistoricalData []DailyMovementDTO `json:"historical_data"`
	ForecastDays   int                `json:"forecast_days"` // 0 = valor por defecto de configuración
	Language       string             `json:"language,omitempty"`
}

// DayPredictionDTO un día pronosticado.
type DayPredictionDTO struct {
	Date            string  `json:"date"`
	PredictedDemand float64 `json:"predicted_demand"`
	LowerBound      float64 `json:"lower_bound"`
	UpperBound      float64 `json:"upper_bound"`
}

// ForecastResponse respuesta del pronóstico.
type ForecastResponse struct {
	ProductID      int64              `json:"product_id"`
	ProductName    string             `json:"product_name"`
	Predictions    []DayPredictionDTO `json:"predictions"`
	Confidence     float64            `json:"confidence"`
	Trend          string             `json:"trend"`
	Recommendation string             `json:"recommendation"`
	Method         string             `json:"method"`
}

// ── Punto de reorden / EOQ ────────────────────────────────────────────────────

// ReorderRequest cuerpo de POST /api/ai/reorder. Los campos opcionales en nil toman
// su valor por defecto (50, 0.2 y 0.95).
type ReorderRequest struct {
	ProductID       int64    `json:"product_id"`
	ProductName     string   `json:"product_name"`
	CurrentStock    int      `json:"current_stock"`
	AvgDailyUsage   float64  `json:"avg_daily_usage"`
	LeadTimeDays    int      `json:"lead_time_days"`
	UnitCost        float64  `json:"unit_cost"`
	OrderingCost    *float64 `json:"ordering_cost,omitempty"`
	HoldingCostRate *float64 `json:"holding_cost_rate,omitempty"`
	ServiceLevel    *float64 `json:"service_level,omitempty"`
	Language        string   `json:"language,omitempty"`
}

// ReorderResponse resultado del cálculo de reorden.
type ReorderResponse struct {
	ProductID         int64   `json:"product_id"`
	ProductName       string  `json:"product_name"`
	ReorderPoint      int     `json:"reorder_point"`
	ReorderQuantity   int     `json:"reorder_quantity"`
	SafetyStock       int     `json:"safety_stock"`
	EstimatedCost     float64 `json:"estimated_cost"`
	DaysUntilStockout int     `json:"days_until_stockout"`
	Urgency           string  `json:"urgency"`
	Recommendation    string  `json:"recommendation"`
}

// ── Detección de anomalías ────────────────────────────────────────────────────

// MovementDTO un movimiento de inventario.
type MovementDTO struct {
	ProductID    int64  `json:"product_id"`
	ProductName  string `json:"product_name"`
	Date         string `json:"date" example:"2024-01-15"`
	Quantity     int64  `json:"quantity"`
	MovementType string `json:"movement_type" example:"OUT"`
}

// AnomalyRequest cuerpo de POST /api/ai/anomaly.
type AnomalyRequest struct {
	Movements []MovementDTO `json:"movements"`
	Language  string        `json:"language,omitempty"`
}

// AnomalyDetailDTO una anomalía detectada.
type AnomalyDetailDTO struct {
	ProductID     int64   `json:"product_id"`
	ProductName   string  `json:"product_name"`
	AnomalyType   string  `json:"anomaly_type"`
	Description   string  `json:"description"`
	Score         float64 `json:"score"`
	Severity      string  `json:"severity"`
	DetectedAt    string  `json:"detected_at"`
	ExpectedValue float64 `json:"expected_value"`
	ActualValue   float64 `json:"actual_value"`
}

// AnomalyResponse lista ordenada por score descendente.
type AnomalyResponse struct {
	Anomalies    []AnomalyDetailDTO `json:"anomalies"`
	TotalChecked int                `json:"total_checked"`
	AnomalyCount int                `json:"anomaly_count"`
}

// ── Consultas en lenguaje natural ─────────────────────────────────────────────

// QueryRequest cuerpo de POST /api/ai/query.
type QueryRequest struct {
	Question         string         `json:"question"`
	Language         string         `json:"language,omitempty"`
	InventoryContext *query.Context `json:"inventory_context,omitempty"`
}

// QueryResponse respuesta del asistente.
type QueryResponse struct {
	Question   string   `json:"question"`
	Answer     string   `json:"answer"`
	Confidence float64  `json:"confidence"`
	Sources    []string `json:"sources"`
	Language   string   `json:"language"`
}

// HealthResponse respuesta de GET /health.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
}
