// Package anomaly detecta movimientos de inventario atípicos por producto combinando
// z-score e IQR sobre la serie diaria densa de cada producto.
package anomaly

import (
	"math"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"

	"github.com/jhoicas/Inventario-ai/internal/domain/i18n"
	"github.com/jhoicas/Inventario-ai/internal/domain/timeseries"
)

const (
	DefaultZScoreThreshold = 2.5
	IQRMultiplier          = 1.5

	highSeverityZ    = 3.5
	scoreSaturationZ = 5.0
	minDenseDays     = 3
)

// Type clasificación de la anomalía.
type Type string

const (
	TypeSpike        Type = "spike"
	TypeDrop         Type = "drop"
	TypePatternBreak Type = "pattern_break"
)

// Severity severidad según |z|.
type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

// Movement un movimiento de inventario de entrada al detector.
// Quantity es con signo; el tipo de movimiento no altera la suma diaria.
type Movement struct {
	ProductID    int64
	ProductName  string
	Date         time.Time
	Quantity     float64
	MovementType string
}

// Anomaly un día marcado como atípico para un producto.
type Anomaly struct {
	ProductID     int64
	ProductName   string
	Type          Type
	Description   string
	Score         float64 // min(|z|/5, 1) con 3 decimales; no es una probabilidad
	Severity      Severity
	DetectedAt    time.Time
	ExpectedValue float64 // media de la serie, 2 decimales
	ActualValue   float64
}

// Result anomalías ordenadas por score descendente más los contadores.
type Result struct {
	Anomalies    []Anomaly
	TotalChecked int // días densos revisados, incluidos los productos omitidos
	AnomalyCount int
}

// Detector aplica las pruebas estadísticas con un umbral de z-score configurable.
type Detector struct {
	threshold float64
}

// NewDetector construye el detector. Un umbral no positivo usa DefaultZScoreThreshold.
func NewDetector(threshold float64) *Detector {
	if threshold <= 0 {
		threshold = DefaultZScoreThreshold
	}
	return &Detector{threshold: threshold}
}

// Threshold devuelve el umbral de z-score en uso.
func (d *Detector) Threshold() float64 { return d.threshold }

// Detect agrupa los movimientos por producto (en orden de primera aparición), rellena
// cada serie diaria y marca los días fuera de umbral. Los productos con menos de 3
// días densos se cuentan en TotalChecked pero no se evalúan.
func (d *Detector) Detect(movements []Movement, lang language.Tag) Result {
	res := Result{Anomalies: []Anomaly{}}
	if len(movements) == 0 {
		return res
	}

	order := make([]int64, 0)
	series := make(map[int64][]timeseries.Point)
	names := make(map[int64]string)
	for _, m := range movements {
		if _, ok := series[m.ProductID]; !ok {
			order = append(order, m.ProductID)
		}
		series[m.ProductID] = append(series[m.ProductID], timeseries.Point{Date: m.Date, Value: m.Quantity})
		names[m.ProductID] = m.ProductName
	}

	for _, id := range order {
		daily := timeseries.FillDaily(series[id], 0)
		res.TotalChecked += len(daily)
		if len(daily) < minDenseDays {
			continue
		}
		res.Anomalies = append(res.Anomalies, d.scan(id, names[id], daily, lang)...)
	}

	// Estable: a igual score se conserva el orden de aparición (producto, día).
	sort.SliceStable(res.Anomalies, func(i, j int) bool {
		return res.Anomalies[i].Score > res.Anomalies[j].Score
	})
	res.AnomalyCount = len(res.Anomalies)
	return res
}

// scan evalúa una serie densa de un producto.
func (d *Detector) scan(productID int64, productName string, daily []timeseries.Point, lang language.Tag) []Anomaly {
	values := timeseries.Values(daily)

	mean := timeseries.Mean(values)
	std := timeseries.SampleStdDev(values)
	if std == 0 {
		std = 1
	}

	q1 := timeseries.Percentile(values, 25)
	q3 := timeseries.Percentile(values, 75)
	iqr := q3 - q1
	lower := q1 - IQRMultiplier*iqr
	upper := q3 + IQRMultiplier*iqr

	var found []Anomaly
	for i, v := range values {
		z := (v - mean) / std
		zOutlier := math.Abs(z) > d.threshold
		iqrOutlier := v < lower || v > upper
		if !zOutlier && !iqrOutlier {
			continue
		}

		typ := Classify(z, zOutlier)
		found = append(found, Anomaly{
			ProductID:     productID,
			ProductName:   productName,
			Type:          typ,
			Description:   describe(lang, typ, productName, v, mean),
			Score:         Score(z),
			Severity:      d.Severity(z),
			DetectedAt:    daily[i].Date,
			ExpectedValue: timeseries.Round(mean, 2),
			ActualValue:   v,
		})
	}
	return found
}

// Classify spike/drop si lo marcó el z-score, pattern_break si solo lo marcó el IQR.
func Classify(z float64, zOutlier bool) Type {
	switch {
	case zOutlier && z > 0:
		return TypeSpike
	case zOutlier && z < 0:
		return TypeDrop
	default:
		return TypePatternBreak
	}
}

// Severity high si |z| ≥ 3.5, medium si |z| ≥ umbral, low en otro caso.
func (d *Detector) Severity(z float64) Severity {
	absZ := math.Abs(z)
	switch {
	case absZ >= highSeverityZ:
		return SeverityHigh
	case absZ >= d.threshold:
		return SeverityMedium
	default:
		return SeverityLow
	}
}

// Score normalización saturada de |z| a [0, 1], redondeada a 3 decimales.
func Score(z float64) float64 {
	return timeseries.Round(math.Min(math.Abs(z)/scoreSaturationZ, 1), 3)
}

func describe(lang language.Tag, typ Type, productName string, value, mean float64) string {
	key := i18n.AnomalyPatternBreak
	switch typ {
	case TypeSpike:
		key = i18n.AnomalySpike
	case TypeDrop:
		key = i18n.AnomalyDrop
	}
	return i18n.Text(lang, key,
		productName,
		decimal.NewFromFloat(value).StringFixed(0),
		decimal.NewFromFloat(mean).StringFixed(1),
	)
}
