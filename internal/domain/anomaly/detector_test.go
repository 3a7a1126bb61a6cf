package anomaly_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/jhoicas/Inventario-ai/internal/domain/anomaly"
)

var start = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// makeMovements genera numDays movimientos diarios con una variación leve y permite
// sobrescribir días concretos para inyectar anomalías.
func makeMovements(numDays int, productID int64, name string, base float64, overrides map[int]float64) []anomaly.Movement {
	out := make([]anomaly.Movement, 0, numDays)
	for i := 0; i < numDays; i++ {
		qty, ok := overrides[i]
		if !ok {
			qty = base + float64(i%5) - 2
		}
		out = append(out, anomaly.Movement{
			ProductID:    productID,
			ProductName:  name,
			Date:         start.AddDate(0, 0, i),
			Quantity:     qty,
			MovementType: "OUT",
		})
	}
	return out
}

func TestDetect_EntradaVacia(t *testing.T) {
	res := anomaly.NewDetector(0).Detect(nil, language.Vietnamese)

	assert.Equal(t, 0, res.AnomalyCount)
	assert.Equal(t, 0, res.TotalChecked)
	assert.NotNil(t, res.Anomalies)
	assert.Empty(t, res.Anomalies)
}

func TestDetect_PicoEsDetectado(t *testing.T) {
	movs := makeMovements(30, 1, "Widget A", 50, map[int]float64{15: 500})

	res := anomaly.NewDetector(2.5).Detect(movs, language.Vietnamese)

	require.GreaterOrEqual(t, res.AnomalyCount, 1)
	assert.Equal(t, 30, res.TotalChecked)
	first := res.Anomalies[0]
	assert.Equal(t, anomaly.TypeSpike, first.Type)
	assert.Equal(t, int64(1), first.ProductID)
	assert.Equal(t, "Widget A", first.ProductName)
	assert.Equal(t, "2024-01-16", first.DetectedAt.Format("2006-01-02"))
	assert.Equal(t, 500.0, first.ActualValue)
	assert.Contains(t, first.Description, "Widget A")
}

func TestDetect_PicoVeinteVecesEsSeveroYConScoreAlto(t *testing.T) {
	movs := makeMovements(30, 1, "Widget A", 50, map[int]float64{10: 1000})

	res := anomaly.NewDetector(2.5).Detect(movs, language.English)

	var spikes []anomaly.Anomaly
	for _, a := range res.Anomalies {
		if a.Type == anomaly.TypeSpike {
			spikes = append(spikes, a)
		}
	}
	require.NotEmpty(t, spikes)
	assert.Contains(t, []anomaly.Severity{anomaly.SeverityHigh, anomaly.SeverityMedium}, spikes[0].Severity)
	assert.Greater(t, spikes[0].Score, 0.5)
	assert.Contains(t, spikes[0].Description, "Demand spike")
}

func TestDetect_CaidaEsDetectada(t *testing.T) {
	movs := makeMovements(30, 7, "Widget B", 100, map[int]float64{15: 0})

	res := anomaly.NewDetector(2.5).Detect(movs, language.Vietnamese)

	require.NotEmpty(t, res.Anomalies)
	assert.Equal(t, anomaly.TypeDrop, res.Anomalies[0].Type)
	assert.Equal(t, anomaly.SeverityHigh, res.Anomalies[0].Severity)
}

func TestDetect_OrdenadoPorScoreDescendente(t *testing.T) {
	movs := makeMovements(30, 1, "Widget A", 50, map[int]float64{10: 300, 20: 600})

	res := anomaly.NewDetector(2.5).Detect(movs, language.Vietnamese)

	require.GreaterOrEqual(t, len(res.Anomalies), 2)
	for i := 1; i < len(res.Anomalies); i++ {
		assert.GreaterOrEqual(t, res.Anomalies[i-1].Score, res.Anomalies[i].Score)
	}
}

func TestDetect_SerieConstanteSinAnomalias(t *testing.T) {
	movs := make([]anomaly.Movement, 0, 30)
	for i := 0; i < 30; i++ {
		movs = append(movs, anomaly.Movement{
			ProductID: 1, ProductName: "Stable", Date: start.AddDate(0, 0, i), Quantity: 100, MovementType: "OUT",
		})
	}

	res := anomaly.NewDetector(2.5).Detect(movs, language.Vietnamese)

	assert.Equal(t, 0, res.AnomalyCount)
	assert.Equal(t, 30, res.TotalChecked)
}

func TestDetect_PocosDiasSeOmitenPeroSeCuentan(t *testing.T) {
	movs := []anomaly.Movement{
		{ProductID: 1, ProductName: "Sparse", Date: start, Quantity: 100},
		{ProductID: 1, ProductName: "Sparse", Date: start.AddDate(0, 0, 1), Quantity: 200},
	}

	res := anomaly.NewDetector(2.5).Detect(movs, language.Vietnamese)

	assert.Equal(t, 2, res.TotalChecked)
	assert.Equal(t, 0, res.AnomalyCount)
}

func TestDetect_VariosProductosSumaDiasDensos(t *testing.T) {
	movs := makeMovements(30, 1, "Widget A", 50, map[int]float64{15: 500})
	// Producto 2: dos registros separados 9 días → 10 días densos tras rellenar.
	movs = append(movs,
		anomaly.Movement{ProductID: 2, ProductName: "Gappy", Date: start, Quantity: 5},
		anomaly.Movement{ProductID: 2, ProductName: "Gappy", Date: start.AddDate(0, 0, 9), Quantity: 5},
	)
	// Mismo día repetido para el producto 3 → se suma en un único día.
	movs = append(movs,
		anomaly.Movement{ProductID: 3, ProductName: "Dup", Date: start, Quantity: 1},
		anomaly.Movement{ProductID: 3, ProductName: "Dup", Date: start, Quantity: 2},
	)

	res := anomaly.NewDetector(2.5).Detect(movs, language.Vietnamese)

	assert.Equal(t, 30+10+1, res.TotalChecked)
	assert.Equal(t, len(res.Anomalies), res.AnomalyCount)
}

func TestDetect_SoloIQRClasificaPatternBreak(t *testing.T) {
	values := []float64{10, 10, 10, 10, 10, 10, 10, 10, 13, 13}
	movs := make([]anomaly.Movement, 0, len(values))
	for i, v := range values {
		movs = append(movs, anomaly.Movement{ProductID: 9, ProductName: "Flat", Date: start.AddDate(0, 0, i), Quantity: v})
	}

	res := anomaly.NewDetector(2.5).Detect(movs, language.Spanish)

	require.Equal(t, 2, res.AnomalyCount)
	for _, a := range res.Anomalies {
		assert.Equal(t, anomaly.TypePatternBreak, a.Type)
		assert.Equal(t, anomaly.SeverityLow, a.Severity)
		assert.Equal(t, 10.6, a.ExpectedValue)
		assert.Contains(t, a.Description, "Patrón inusual")
	}
	// Empate de score: se conserva el orden cronológico.
	assert.True(t, res.Anomalies[0].DetectedAt.Before(res.Anomalies[1].DetectedAt))
}

func TestScore_MonotonoYSaturado(t *testing.T) {
	prev := -1.0
	for z := 0.0; z <= 7; z += 0.05 {
		s := anomaly.Score(z)
		assert.GreaterOrEqual(t, s, prev, "z=%v", z)
		assert.GreaterOrEqual(t, s, 0.0)
		assert.LessOrEqual(t, s, 1.0)
		assert.Equal(t, s, anomaly.Score(-z))
		prev = s
	}
	assert.Equal(t, 1.0, anomaly.Score(5))
	assert.Equal(t, 1.0, anomaly.Score(12))
	assert.Equal(t, 0.5, anomaly.Score(2.5))
}

func TestClassifyAndSeverity(t *testing.T) {
	d := anomaly.NewDetector(2.5)

	assert.Equal(t, anomaly.TypeSpike, anomaly.Classify(3, true))
	assert.Equal(t, anomaly.TypeDrop, anomaly.Classify(-3, true))
	assert.Equal(t, anomaly.TypePatternBreak, anomaly.Classify(1.2, false))

	assert.Equal(t, anomaly.SeverityHigh, d.Severity(-3.5))
	assert.Equal(t, anomaly.SeverityMedium, d.Severity(2.5))
	assert.Equal(t, anomaly.SeverityLow, d.Severity(1))
	assert.Equal(t, 2.5, anomaly.NewDetector(-1).Threshold())
}
