// Package reorder calcula punto de reorden, stock de seguridad y cantidad económica
// de pedido (EOQ de Wilson) para un producto.
package reorder

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/jhoicas/Inventario-ai/internal/domain/i18n"
)

const (
	// NoDepletionDays días hasta agotamiento cuando no hay consumo.
	NoDepletionDays = 9999

	DefaultOrderingCost    = 50.0
	DefaultHoldingCostRate = 0.2
	DefaultServiceLevel    = 0.95

	// σ diario aproximado como fracción del consumo promedio.
	demandVariability = 0.25
	mediumFactor      = 1.5
)

// Urgency nivel de urgencia del pedido.
type Urgency string

const (
	UrgencyCritical Urgency = "critical"
	UrgencyHigh     Urgency = "high"
	UrgencyMedium   Urgency = "medium"
	UrgencyLow      Urgency = "low"
)

// Input parámetros escalares del cálculo. Los valores ya vienen validados.
type Input struct {
	ProductName     string
	CurrentStock    int
	AvgDailyUsage   float64
	LeadTimeDays    int
	UnitCost        float64
	OrderingCost    float64
	HoldingCostRate float64
	ServiceLevel    float64
}

// Result resultado del cálculo; todas las cantidades son ≥ 0 y ReorderQuantity ≥ 1.
type Result struct {
	ReorderPoint      int
	ReorderQuantity   int
	SafetyStock       int
	EstimatedCost     float64
	DaysUntilStockout int
	Urgency           Urgency
	Recommendation    string
}

// Calculate aplica las fórmulas de stock de seguridad, ROP y EOQ.
func Calculate(in Input, lang language.Tag) Result {
	z := distuv.UnitNormal.Quantile(in.ServiceLevel)
	leadTime := float64(in.LeadTimeDays)
	sigma := demandVariability * in.AvgDailyUsage

	safetyRaw := z * math.Sqrt(leadTime) * sigma
	safety := atLeastOne(math.Ceil(safetyRaw))
	rop := atLeastOne(math.Ceil(in.AvgDailyUsage*leadTime + safetyRaw))

	annualDemand := in.AvgDailyUsage * 365
	eoq := EOQ(annualDemand, in.OrderingCost, in.UnitCost, in.HoldingCostRate)

	days := DaysUntilStockout(in.CurrentStock, in.AvgDailyUsage)

	cost := decimal.NewFromInt(int64(eoq)).
		Mul(decimal.NewFromFloat(in.UnitCost)).
		Add(decimal.NewFromFloat(in.OrderingCost)).
		Round(2)

	urgency := Classify(in.CurrentStock, safety, rop)

	return Result{
		ReorderPoint:      rop,
		ReorderQuantity:   eoq,
		SafetyStock:       safety,
		EstimatedCost:     cost.InexactFloat64(),
		DaysUntilStockout: days,
		Urgency:           urgency,
		Recommendation:    recommend(lang, urgency, in.ProductName, in.CurrentStock, rop, eoq, days),
	}
}

// EOQ cantidad económica de pedido √(2DS/(C·h)) redondeada hacia arriba, mínimo 1.
func EOQ(annualDemand, orderingCost, unitCost, holdingRate float64) int {
	if annualDemand <= 0 || unitCost <= 0 || holdingRate <= 0 {
		return 1
	}
	q := math.Sqrt(2 * annualDemand * orderingCost / (unitCost * holdingRate))
	return atLeastOne(math.Ceil(q))
}

// DaysUntilStockout floor(stock/consumo); NoDepletionDays si el consumo es 0 o el
// resultado no cabe en un int32.
func DaysUntilStockout(stock int, avgDailyUsage float64) int {
	if avgDailyUsage <= 0 {
		return NoDepletionDays
	}
	days := math.Floor(float64(stock) / avgDailyUsage)
	if days > math.MaxInt32 {
		return NoDepletionDays
	}
	return int(days)
}

// Classify critical si stock ≤ seguridad, high si ≤ ROP, medium si ≤ 1.5·ROP.
func Classify(stock, safety, rop int) Urgency {
	switch {
	case stock <= safety:
		return UrgencyCritical
	case stock <= rop:
		return UrgencyHigh
	case stock <= int(float64(rop)*mediumFactor):
		return UrgencyMedium
	default:
		return UrgencyLow
	}
}

func atLeastOne(v float64) int {
	if v < 1 || math.IsNaN(v) {
		return 1
	}
	if v > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(v)
}

func recommend(lang language.Tag, u Urgency, name string, stock, rop, eoq, days int) string {
	s, r, q, d := strconv.Itoa(stock), strconv.Itoa(rop), strconv.Itoa(eoq), strconv.Itoa(days)
	switch u {
	case UrgencyCritical:
		return i18n.Text(lang, i18n.ReorderCritical, name, s, q, d)
	case UrgencyHigh:
		return i18n.Text(lang, i18n.ReorderHigh, name, s, r, q)
	case UrgencyMedium:
		return i18n.Text(lang, i18n.ReorderMedium, name, s, r, q)
	default:
		return i18n.Text(lang, i18n.ReorderLow, name, s, r)
	}
}
