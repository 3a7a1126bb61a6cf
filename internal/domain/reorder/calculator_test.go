package reorder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"

	"github.com/jhoicas/Inventario-ai/internal/domain/reorder"
)

func baseInput() reorder.Input {
	return reorder.Input{
		ProductName:     "Widget",
		CurrentStock:    100,
		AvgDailyUsage:   10,
		LeadTimeDays:    5,
		UnitCost:        10,
		OrderingCost:    reorder.DefaultOrderingCost,
		HoldingCostRate: reorder.DefaultHoldingCostRate,
		ServiceLevel:    reorder.DefaultServiceLevel,
	}
}

func TestCalculate_EjemploDeReferencia(t *testing.T) {
	res := reorder.Calculate(baseInput(), language.English)

	assert.Equal(t, 10, res.SafetyStock)
	assert.Equal(t, 60, res.ReorderPoint)
	// √(2·3650·50 / (10·0.2)) = 427.2 → 428
	assert.Equal(t, 428, res.ReorderQuantity)
	assert.Equal(t, 4330.0, res.EstimatedCost)
	assert.Equal(t, 10, res.DaysUntilStockout)
	// 100 > 60 y 100 > int(90) → low
	assert.Equal(t, reorder.UrgencyLow, res.Urgency)
	assert.Equal(t, "Product 'Widget' is at a safe stock level (100 units). Reorder point: 60. No immediate action needed.", res.Recommendation)
}

func TestCalculate_CriticoCuandoStockBajoSeguridad(t *testing.T) {
	in := baseInput()
	in.CurrentStock = 5

	res := reorder.Calculate(in, language.Vietnamese)

	assert.Equal(t, reorder.UrgencyCritical, res.Urgency)
	assert.LessOrEqual(t, in.CurrentStock, res.SafetyStock)
	assert.Contains(t, res.Recommendation, "Widget")
	assert.Contains(t, res.Recommendation, "428")
}

func TestCalculate_NivelesDeUrgencia(t *testing.T) {
	cases := []struct {
		stock int
		want  reorder.Urgency
	}{
		{10, reorder.UrgencyCritical},
		{11, reorder.UrgencyHigh},
		{60, reorder.UrgencyHigh},
		{61, reorder.UrgencyMedium},
		{90, reorder.UrgencyMedium},
		{91, reorder.UrgencyLow},
	}
	for _, tc := range cases {
		in := baseInput()
		in.CurrentStock = tc.stock
		assert.Equal(t, tc.want, reorder.Calculate(in, language.English).Urgency, "stock=%d", tc.stock)
	}
}

func TestCalculate_SinConsumo(t *testing.T) {
	in := baseInput()
	in.AvgDailyUsage = 0
	in.CurrentStock = 0

	res := reorder.Calculate(in, language.English)

	assert.Equal(t, reorder.NoDepletionDays, res.DaysUntilStockout)
	assert.Equal(t, 1, res.ReorderQuantity)
	assert.Equal(t, 1, res.SafetyStock)
	assert.Equal(t, 1, res.ReorderPoint)
	assert.Equal(t, 60.0, res.EstimatedCost)
	assert.Equal(t, reorder.UrgencyCritical, res.Urgency)
}

func TestEOQ_MinimoUno(t *testing.T) {
	assert.Equal(t, 1, reorder.EOQ(0, 50, 10, 0.2))
	assert.Equal(t, 1, reorder.EOQ(100, 50, 0, 0.2))
	assert.Equal(t, 1, reorder.EOQ(100, 50, 10, 0))
	assert.Equal(t, 1, reorder.EOQ(0.001, 0.001, 1000, 1))
	assert.Equal(t, 428, reorder.EOQ(3650, 50, 10, 0.2))
}

func TestDaysUntilStockout(t *testing.T) {
	assert.Equal(t, 3, reorder.DaysUntilStockout(10, 3))
	assert.Equal(t, 0, reorder.DaysUntilStockout(0, 3))
	assert.Equal(t, reorder.NoDepletionDays, reorder.DaysUntilStockout(10, 0))
	assert.Equal(t, reorder.NoDepletionDays, reorder.DaysUntilStockout(1_000_000_000, 1e-6))
}

func TestCalculate_CostoConDecimales(t *testing.T) {
	in := baseInput()
	in.UnitCost = 0.1
	in.OrderingCost = 0.2
	in.AvgDailyUsage = 0

	res := reorder.Calculate(in, language.English)

	// 1·0.1 + 0.2 sin error de coma flotante
	assert.Equal(t, 0.3, res.EstimatedCost)
}
