package usecase

import (
	"context"

	"golang.org/x/text/language"

	"github.com/jhoicas/Inventario-ai/internal/application/dto"
	"github.com/jhoicas/Inventario-ai/internal/application/ports"
	"github.com/jhoicas/Inventario-ai/internal/domain/i18n"
	"github.com/jhoicas/Inventario-ai/internal/domain/reorder"
	"github.com/jhoicas/Inventario-ai/pkg/logger"
)

// ReorderUseCase calcula punto de reorden, stock de seguridad y EOQ.
type ReorderUseCase struct {
	lang    language.Tag
	log     *logger.Logger
	metrics ports.AnalyticsMetrics
}

// NewReorderUseCase construye el caso de uso.
func NewReorderUseCase(deps Deps) *ReorderUseCase {
	return &ReorderUseCase{lang: deps.language(), log: deps.logger(), metrics: deps.metrics()}
}

// Calculate valida los rangos, completa los opcionales y calcula la recomendación.
func (uc *ReorderUseCase) Calculate(ctx context.Context, req dto.ReorderRequest) (*dto.ReorderResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	in, err := toReorderInput(req)
	if err != nil {
		return nil, err
	}

	res := reorder.Calculate(in, i18n.Resolve(req.Language, uc.lang))
	uc.metrics.ObserveReorder(string(res.Urgency))

	uc.log.Info().
		Int64("product_id", req.ProductID).
		Str("product_name", req.ProductName).
		Int("current_stock", req.CurrentStock).
		Int("reorder_point", res.ReorderPoint).
		Str("urgency", string(res.Urgency)).
		Msg("cálculo de reorden")

	return &dto.ReorderResponse{
		ProductID:         req.ProductID,
		ProductName:       req.ProductName,
		ReorderPoint:      res.ReorderPoint,
		ReorderQuantity:   res.ReorderQuantity,
		SafetyStock:       res.SafetyStock,
		EstimatedCost:     res.EstimatedCost,
		DaysUntilStockout: res.DaysUntilStockout,
		Urgency:           string(res.Urgency),
		Recommendation:    res.Recommendation,
	}, nil
}

func toReorderInput(req dto.ReorderRequest) (reorder.Input, error) {
	in := reorder.Input{
		ProductName:     req.ProductName,
		CurrentStock:    req.CurrentStock,
		AvgDailyUsage:   req.AvgDailyUsage,
		LeadTimeDays:    req.LeadTimeDays,
		UnitCost:        req.UnitCost,
		OrderingCost:    valueOr(req.OrderingCost, reorder.DefaultOrderingCost),
		HoldingCostRate: valueOr(req.HoldingCostRate, reorder.DefaultHoldingCostRate),
		ServiceLevel:    valueOr(req.ServiceLevel, reorder.DefaultServiceLevel),
	}

	switch {
	case in.CurrentStock < 0:
		return in, invalid("current_stock debe ser >= 0")
	case in.AvgDailyUsage < 0:
		return in, invalid("avg_daily_usage debe ser >= 0")
	case in.LeadTimeDays < 1:
		return in, invalid("lead_time_days debe ser >= 1")
	case in.UnitCost <= 0:
		return in, invalid("unit_cost debe ser > 0")
	case in.OrderingCost <= 0:
		return in, invalid("ordering_cost debe ser > 0")
	case in.HoldingCostRate <= 0 || in.HoldingCostRate > 1:
		return in, invalid("holding_cost_rate debe estar en (0, 1]")
	case in.ServiceLevel <= 0 || in.ServiceLevel >= 1:
		return in, invalid("service_level debe estar en (0, 1)")
	}
	return in, nil
}

func valueOr(p *float64, def float64) float64 {
	if p == nil {
		return def
	}
	return *p
}
