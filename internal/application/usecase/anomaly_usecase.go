package usecase

import (
	"context"
	"fmt"

	"golang.org/x/text/language"

	"github.com/jhoicas/Inventario-ai/internal/application/dto"
	"github.com/jhoicas/Inventario-ai/internal/application/ports"
	"github.com/jhoicas/Inventario-ai/internal/domain/anomaly"
	"github.com/jhoicas/Inventario-ai/internal/domain/i18n"
	"github.com/jhoicas/Inventario-ai/internal/domain/timeseries"
	"github.com/jhoicas/Inventario-ai/pkg/logger"
)

// AnomalyUseCase detecta movimientos atípicos con el umbral de z-score configurado.
type AnomalyUseCase struct {
	detector *anomaly.Detector
	lang     language.Tag
	log      *logger.Logger
	metrics  ports.AnalyticsMetrics
}

// NewAnomalyUseCase construye el caso de uso.
func NewAnomalyUseCase(detector *anomaly.Detector, deps Deps) *AnomalyUseCase {
	return &AnomalyUseCase{detector: detector, lang: deps.language(), log: deps.logger(), metrics: deps.metrics()}
}

// Detect convierte los movimientos, ejecuta la detección y arma la respuesta.
func (uc *AnomalyUseCase) Detect(ctx context.Context, req dto.AnomalyRequest) (*dto.AnomalyResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	movements := make([]anomaly.Movement, 0, len(req.Movements))
	for i, m := range req.Movements {
		date, err := timeseries.ParseDate(m.Date)
		if err != nil {
			return nil, fmt.Errorf("movements[%d].date: %w", i, err)
		}
		movements = append(movements, anomaly.Movement{
			ProductID:    m.ProductID,
			ProductName:  m.ProductName,
			Date:         date,
			Quantity:     float64(m.Quantity),
			MovementType: m.MovementType,
		})
	}

	res := uc.detector.Detect(movements, i18n.Resolve(req.Language, uc.lang))
	uc.metrics.ObserveAnomalies(res.TotalChecked, res.AnomalyCount)

	uc.log.Info().
		Int("movements", len(req.Movements)).
		Int("total_checked", res.TotalChecked).
		Int("anomaly_count", res.AnomalyCount).
		Float64("threshold", uc.detector.Threshold()).
		Msg("detección de anomalías")

	out := &dto.AnomalyResponse{
		Anomalies:    make([]dto.AnomalyDetailDTO, 0, len(res.Anomalies)),
		TotalChecked: res.TotalChecked,
		AnomalyCount: res.AnomalyCount,
	}
	for _, a := range res.Anomalies {
		out.Anomalies = append(out.Anomalies, dto.AnomalyDetailDTO{
			ProductID:     a.ProductID,
			ProductName:   a.ProductName,
			AnomalyType:   string(a.Type),
			Description:   a.Description,
			Score:         a.Score,
			Severity:      string(a.Severity),
			DetectedAt:    timeseries.FormatDate(a.DetectedAt),
			ExpectedValue: a.ExpectedValue,
			ActualValue:   a.ActualValue,
		})
	}
	return out, nil
}
