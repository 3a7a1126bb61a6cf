package usecase

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/text/language"

	"github.com/jhoicas/Inventario-ai/internal/application/dto"
	"github.com/jhoicas/Inventario-ai/internal/application/ports"
	"github.com/jhoicas/Inventario-ai/internal/domain/forecast"
	"github.com/jhoicas/Inventario-ai/internal/domain/i18n"
	"github.com/jhoicas/Inventario-ai/internal/domain/timeseries"
	"github.com/jhoicas/Inventario-ai/pkg/logger"
)

// ForecastUseCase valida la petición, aplica el horizonte por defecto y delega al
// pronosticador. También genera el reporte PDF del pronóstico.
type ForecastUseCase struct {
	forecaster  *forecast.Forecaster
	report      ports.ForecastReportGenerator
	defaultDays int
	lang        language.Tag
	log         *logger.Logger
	metrics     ports.AnalyticsMetrics
}

// NewForecastUseCase construye el caso de uso. report puede ser nil si no se expone el PDF.
func NewForecastUseCase(
	forecaster *forecast.Forecaster,
	report ports.ForecastReportGenerator,
	defaultDays int,
	deps Deps,
) *ForecastUseCase {
	if defaultDays <= 0 {
		defaultDays = forecast.DefaultDays
	}
	return &ForecastUseCase{
		forecaster:  forecaster,
		report:      report,
		defaultDays: defaultDays,
		lang:        deps.language(),
		log:         deps.logger(),
		metrics:     deps.metrics(),
	}
}

// Forecast pronostica la demanda diaria del producto.
func (uc *ForecastUseCase) Forecast(ctx context.Context, req dto.ForecastRequest) (*dto.ForecastResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	in, err := uc.toInput(req)
	if err != nil {
		return nil, err
	}
	lang := i18n.Resolve(req.Language, uc.lang)

	start := time.Now()
	res := uc.forecaster.Forecast(in, lang)
	elapsed := time.Since(start)
	uc.metrics.ObserveForecast(string(res.Method), elapsed)

	uc.log.Info().
		Int64("product_id", req.ProductID).
		Str("product_name", req.ProductName).
		Int("history", len(req.HistoricalData)).
		Int("days", in.Days).
		Str("method", string(res.Method)).
		Float64("confidence", res.Confidence).
		Dur("elapsed", elapsed).
		Msg("pronóstico de demanda")

	return toForecastResponse(res), nil
}

// Report pronostica y devuelve el PDF del resultado.
func (uc *ForecastUseCase) Report(ctx context.Context, req dto.ForecastRequest) ([]byte, error) {
	if uc.report == nil {
		return nil, fmt.Errorf("reporte de pronóstico no configurado")
	}
	resp, err := uc.Forecast(ctx, req)
	if err != nil {
		return nil, err
	}
	pdf, err := uc.report.GenerateForecastPDF(ctx, resp, i18n.Resolve(req.Language, uc.lang))
	if err != nil {
		return nil, fmt.Errorf("reporte de pronóstico: %w", err)
	}
	return pdf, nil
}

func (uc *ForecastUseCase) toInput(req dto.ForecastRequest) (forecast.Input, error) {
	days := req.ForecastDays
	if days == 0 {
		days = uc.defaultDays
	}
	if days < 1 || days > forecast.MaxDays {
		return forecast.Input{}, invalid("forecast_days debe estar entre 1 y %d", forecast.MaxDays)
	}

	history := make([]forecast.DailyMovement, 0, len(req.HistoricalData))
	for i, h := range req.HistoricalData {
		if h.QuantityIn < 0 || h.QuantityOut < 0 {
			return forecast.Input{}, invalid("historical_data[%d]: las cantidades no pueden ser negativas", i)
		}
		date, err := timeseries.ParseDate(h.Date)
		if err != nil {
			return forecast.Input{}, fmt.Errorf("historical_data[%d].date: %w", i, err)
		}
		history = append(history, forecast.DailyMovement{
			Date:        date,
			QuantityIn:  float64(h.QuantityIn),
			QuantityOut: float64(h.QuantityOut),
		})
	}

	return forecast.Input{
		ProductID:   req.ProductID,
		ProductName: req.ProductName,
		History:     history,
		Days:        days,
	}, nil
}

func toForecastResponse(res forecast.Result) *dto.ForecastResponse {
	preds := make([]dto.DayPredictionDTO, 0, len(res.Predictions))
	for _, p := range res.Predictions {
		preds = append(preds, dto.DayPredictionDTO{
			Date:            timeseries.FormatDate(p.Date),
			PredictedDemand: p.PredictedDemand,
			LowerBound:      p.LowerBound,
			UpperBound:      p.UpperBound,
		})
	}
	return &dto.ForecastResponse{
		ProductID:      res.ProductID,
		ProductName:    res.ProductName,
		Predictions:    preds,
		Confidence:     res.Confidence,
		Trend:          string(res.Trend),
		Recommendation: res.Recommendation,
		Method:         string(res.Method),
	}
}
