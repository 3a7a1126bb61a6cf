// Package pdf genera el reporte en PDF de un pronóstico de demanda.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + Producto      │  Fecha de generación      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: Confianza | Tendencia | Método                    │
//	│  RECOMENDACIÓN                                              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Pronóstico | Límite inferior | Superior     │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	_ "embed"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/core/entity"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/johnfercher/maroto/v2/pkg/repository"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"

	"github.com/jhoicas/Inventario-ai/internal/application/dto"
	"github.com/jhoicas/Inventario-ai/internal/application/ports"
	"github.com/jhoicas/Inventario-ai/internal/domain/i18n"
)

var _ ports.ForecastReportGenerator = (*MarotoPDFGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorLight   = &props.Color{Red: 235, Green: 241, Blue: 247}
)

// ── Fuentes ───────────────────────────────────────────────────────────────────

// Las fuentes base del PDF (helvetica, arial) solo cubren Latin-1; el vietnamita
// necesita una TTF con soporte UTF-8.
const fontFamily = "dejavu"

var (
	//go:embed fonts/DejaVuSansCondensed.ttf
	fontRegular []byte
	//go:embed fonts/DejaVuSansCondensed-Bold.ttf
	fontBold []byte
)

func loadFonts() ([]*entity.CustomFont, error) {
	return repository.New().
		AddUTF8FontFromBytes(fontFamily, fontstyle.Normal, fontRegular).
		AddUTF8FontFromBytes(fontFamily, fontstyle.Bold, fontBold).
		Load()
}

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa ports.ForecastReportGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	author string
	now    func() time.Time
}

// NewMarotoPDFGenerator construye el generador. author aparece en los metadatos del PDF.
func NewMarotoPDFGenerator(author string) *MarotoPDFGenerator {
	return &MarotoPDFGenerator{author: author, now: time.Now}
}

// GenerateForecastPDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateForecastPDF(
	_ context.Context,
	fc *dto.ForecastResponse,
	lang language.Tag,
) ([]byte, error) {
	if fc == nil {
		return nil, fmt.Errorf("pdf: pronóstico vacío")
	}
	title := i18n.Text(lang, i18n.ReportTitle)

	fonts, err := loadFonts()
	if err != nil {
		return nil, fmt.Errorf("pdf: cargar fuentes: %w", err)
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithCustomFonts(fonts).
		WithDefaultFont(&props.Font{Family: fontFamily, Size: 9}).
		WithTitle(title, true).
		WithAuthor(g.author, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(fc, lang, title, g.now()))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(fc, lang))
	m.AddRows(recommendationRow(fc, lang))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow(lang))
	m.AddRows(tableRows(fc.Predictions)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título y producto (izq), fecha de generación (der).
func headerRow(fc *dto.ForecastResponse, lang language.Tag, title string, now time.Time) core.Row {
	product := fmt.Sprintf("%s: %s (#%d)", i18n.Text(lang, i18n.ReportProduct), nonEmpty(fc.ProductName, "—"), fc.ProductID)
	return row.New(16).Add(
		col.New(8).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(product, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New(now.UTC().Format("2006-01-02 15:04 UTC"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
		),
	)
}

// summaryRow: confianza, tendencia y método.
func summaryRow(fc *dto.ForecastResponse, lang language.Tag) core.Row {
	confidence := decimal.NewFromFloat(fc.Confidence).Mul(decimal.NewFromInt(100)).StringFixed(1) + "%"
	cell := func(label, value string) core.Col {
		return col.New(4).Add(
			text.New(label, props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
			text.New(value, props.Text{Size: 10, Top: 6}),
		)
	}
	return row.New(14).Add(
		cell(i18n.Text(lang, i18n.ReportConfidence), confidence),
		cell(i18n.Text(lang, i18n.ReportTrend), i18n.Label(lang, i18n.ReportTrendPrefix, fc.Trend)),
		cell(i18n.Text(lang, i18n.ReportMethod), i18n.Label(lang, i18n.ReportMethodPrefix, fc.Method)),
	)
}

func recommendationRow(fc *dto.ForecastResponse, lang language.Tag) core.Row {
	return row.New(16).Add(
		col.New(12).Add(
			text.New(i18n.Text(lang, i18n.ReportRecommendation), props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fc.Recommendation, props.Text{Size: 9, Top: 6}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de predicciones.
func tableHeaderRow(lang language.Tag) core.Row {
	h := func(label string, a align.Type) core.Col {
		return col.New(3).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h(i18n.Text(lang, i18n.ReportDate), align.Left),
		h(i18n.Text(lang, i18n.ReportPredicted), align.Right),
		h(i18n.Text(lang, i18n.ReportLower), align.Right),
		h(i18n.Text(lang, i18n.ReportUpper), align.Right),
	).WithStyle(&props.Cell{BackgroundColor: colorLight})
}

// tableRows: una fila por día pronosticado.
func tableRows(preds []dto.DayPredictionDTO) []core.Row {
	cell := func(s string, a align.Type) core.Col {
		return col.New(3).Add(text.New(s, props.Text{Size: 8, Align: a, Top: 1, Left: 1, Right: 1}))
	}
	rows := make([]core.Row, 0, len(preds))
	for _, p := range preds {
		rows = append(rows, row.New(6).Add(
			cell(p.Date, align.Left),
			cell(decimal.NewFromFloat(p.PredictedDemand).StringFixed(2), align.Right),
			cell(decimal.NewFromFloat(p.LowerBound).StringFixed(2), align.Right),
			cell(decimal.NewFromFloat(p.UpperBound).StringFixed(2), align.Right),
		))
	}
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
