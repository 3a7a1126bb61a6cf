// Package forecast pronostica la demanda diaria de un producto con una regresión
// lineal sobre features de calendario, medias móviles e índice de tendencia.
package forecast

import (
	"math"
	"time"

	"golang.org/x/text/language"

	"github.com/jhoicas/Inventario-ai/internal/domain/i18n"
	"github.com/jhoicas/Inventario-ai/internal/domain/timeseries"
)

const (
	DefaultDays = 30
	MaxDays     = 365

	// Días densos mínimos para ajustar la regresión.
	MinRegressionDays = 7

	zInterval           = 1.96
	simpleConfidence    = 0.3
	singlePointStdRatio = 0.25
	trendThreshold      = 0.05
	trendFeature        = 5

	blend7  = 0.85
	blend14 = 0.93
)

// Trend etiqueta de tendencia.
type Trend string

const (
	TrendIncreasing Trend = "increasing"
	TrendDecreasing Trend = "decreasing"
	TrendStable     Trend = "stable"
)

// Method estrategia usada para producir el pronóstico.
type Method string

const (
	MethodRegression    Method = "linear_regression"
	MethodSimpleAverage Method = "simple_average"
	MethodInsufficient  Method = "insufficient_data"
)

// DailyMovement entradas y salidas de un día.
type DailyMovement struct {
	Date        time.Time
	QuantityIn  float64
	QuantityOut float64
}

// Input historial y horizonte del pronóstico.
type Input struct {
	ProductID   int64
	ProductName string
	History     []DailyMovement
	Days        int // 0 usa DefaultDays
}

// Prediction un día pronosticado; LowerBound ≤ PredictedDemand ≤ UpperBound, todos ≥ 0.
type Prediction struct {
	Date            time.Time
	PredictedDemand float64
	LowerBound      float64
	UpperBound      float64
}

// Result pronóstico completo.
type Result struct {
	ProductID      int64
	ProductName    string
	Predictions    []Prediction
	Confidence     float64
	Trend          Trend
	Recommendation string
	Method         Method
}

// Forecaster pronosticador con reloj inyectable (solo se usa cuando no hay historial).
type Forecaster struct {
	now func() time.Time
}

// New construye el pronosticador. now nil usa time.Now.
func New(now func() time.Time) *Forecaster {
	if now == nil {
		now = time.Now
	}
	return &Forecaster{now: now}
}

// Forecast produce exactamente Days predicciones en días consecutivos.
func (f *Forecaster) Forecast(in Input, lang language.Tag) Result {
	days := in.Days
	if days <= 0 {
		days = DefaultDays
	}
	res := Result{ProductID: in.ProductID, ProductName: in.ProductName}

	points := make([]timeseries.Point, 0, len(in.History))
	for _, h := range in.History {
		points = append(points, timeseries.Point{Date: h.Date, Value: h.QuantityOut})
	}
	daily := timeseries.FillDaily(points, 0)

	demand := make([]float64, len(daily))
	total := 0.0
	for i, p := range daily {
		demand[i] = math.Max(p.Value, 0)
		total += demand[i]
	}

	if len(daily) == 0 || total == 0 {
		res.Predictions = zeroForecast(timeseries.Day(f.now().UTC()), days)
		res.Trend = TrendStable
		res.Method = MethodInsufficient
		res.Recommendation = i18n.Text(lang, i18n.ForecastInsufficient)
		return res
	}

	last := daily[len(daily)-1].Date
	if len(daily) < MinRegressionDays {
		res.Predictions = simpleAverage(last, demand, days)
		res.Confidence = simpleConfidence
		res.Trend = TrendStable
		res.Method = MethodSimpleAverage
		res.Recommendation = i18n.Text(lang, i18n.ForecastLimited)
		return res
	}

	x := buildFeatures(daily, demand)
	model := FitOLS(x, demand)

	r2 := math.Min(math.Max(model.RSquared(x, demand), 0), 1)
	sigma := 0.0
	if len(demand) >= 2 {
		sigma = timeseries.PopStdDev(model.Residuals(x, demand))
	}

	r7 := x[len(x)-1][3]
	r14 := x[len(x)-1][4]
	n := len(daily)
	res.Predictions = make([]Prediction, 0, days)
	for i := 1; i <= days; i++ {
		date := last.AddDate(0, 0, i)
		row := features(date, r7, r14, float64(n-1+i))
		pred := math.Max(model.Predict(row), 0)
		res.Predictions = append(res.Predictions, interval(date, pred, sigma))

		// Aproximación: mezcla exponencial en lugar de re-ventanear la serie.
		r7 = blend7*r7 + (1-blend7)*pred
		r14 = blend14*r14 + (1-blend14)*pred
	}

	res.Confidence = timeseries.Round(r2, 3)
	res.Trend = TrendFromSlope(model.Coef[trendFeature])
	res.Method = MethodRegression
	res.Recommendation = recommendation(lang, res.Trend)
	return res
}

// TrendFromSlope increasing si la pendiente > 0.05, decreasing si < −0.05.
func TrendFromSlope(slope float64) Trend {
	switch {
	case slope > trendThreshold:
		return TrendIncreasing
	case slope < -trendThreshold:
		return TrendDecreasing
	default:
		return TrendStable
	}
}

// ── Features ──────────────────────────────────────────────────────────────────

// buildFeatures una fila por día: [día de semana (lun=0), día del mes, fin de semana,
// media móvil 7, media móvil 14, índice de tendencia].
func buildFeatures(daily []timeseries.Point, demand []float64) [][]float64 {
	r7 := timeseries.RollingMean(demand, 7)
	r14 := timeseries.RollingMean(demand, 14)
	x := make([][]float64, len(daily))
	for i, p := range daily {
		x[i] = features(p.Date, r7[i], r14[i], float64(i))
	}
	return x
}

func features(date time.Time, r7, r14, trend float64) []float64 {
	dow := (int(date.Weekday()) + 6) % 7
	weekend := 0.0
	if dow >= 5 {
		weekend = 1
	}
	return []float64{float64(dow), float64(date.Day()), weekend, r7, r14, trend}
}

// ── Fallbacks ─────────────────────────────────────────────────────────────────

func zeroForecast(today time.Time, days int) []Prediction {
	out := make([]Prediction, days)
	for i := range out {
		out[i] = Prediction{Date: today.AddDate(0, 0, i+1)}
	}
	return out
}

func simpleAverage(last time.Time, demand []float64, days int) []Prediction {
	mean := timeseries.Mean(demand)
	std := timeseries.SampleStdDev(demand)
	if len(demand) == 1 {
		std = singlePointStdRatio * mean
	}
	out := make([]Prediction, days)
	for i := range out {
		out[i] = interval(last.AddDate(0, 0, i+1), mean, std)
	}
	return out
}

func interval(date time.Time, pred, std float64) Prediction {
	return Prediction{
		Date:            date,
		PredictedDemand: timeseries.Round(pred, 2),
		LowerBound:      timeseries.Round(math.Max(pred-zInterval*std, 0), 2),
		UpperBound:      timeseries.Round(pred+zInterval*std, 2),
	}
}

func recommendation(lang language.Tag, t Trend) string {
	switch t {
	case TrendIncreasing:
		return i18n.Text(lang, i18n.ForecastIncreasing)
	case TrendDecreasing:
		return i18n.Text(lang, i18n.ForecastDecreasing)
	default:
		return i18n.Text(lang, i18n.ForecastStable)
	}
}
