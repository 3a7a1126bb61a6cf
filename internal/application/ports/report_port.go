package ports

import (
	"context"

	"golang.org/x/text/language"

	"github.com/jhoicas/Inventario-ai/internal/application/dto"
)

// ForecastReportGenerator genera la representación en PDF de un pronóstico.
type ForecastReportGenerator interface {
	GenerateForecastPDF(ctx context.Context, forecast *dto.ForecastResponse, lang language.Tag) ([]byte, error)
}
