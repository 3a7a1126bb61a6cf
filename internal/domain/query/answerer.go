// Package query responde preguntas en lenguaje natural sobre el inventario a partir
// del contexto estructurado recibido. Contiene la ruta determinista por palabras clave
// y los prompts que se envían a un modelo de lenguaje cuando hay uno configurado.
package query

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/language"

	"github.com/jhoicas/Inventario-ai/internal/domain/i18n"
)

// Fuentes reportadas junto a cada respuesta.
const (
	SourceRuleBased        = "rule_based"
	SourceLowStock         = "low_stock_data"
	SourceCategory         = "category_data"
	SourceWarehouse        = "warehouse_data"
	SourceSummary          = "summary_data"
	SourceInventoryContext = "inventory_context"
)

const (
	ConfidenceLLM     = 0.85
	confidenceIntent  = 0.6
	confidenceSummary = 0.7
	confidenceGeneric = 0.4

	maxLowStockItems   = 10
	maxTopItems        = 5
	maxContextLowStock = 15
	maxContextRecent   = 10
	maxContextTop      = 5

	notAvailable = "N/A"
)

// Intent intención detectada en la pregunta.
type Intent string

const (
	IntentLowStock  Intent = "low_stock"
	IntentTop       Intent = "top"
	IntentWarehouse Intent = "warehouse"
	IntentSummary   Intent = "summary"
	IntentGeneric   Intent = "generic"
)

// Palabras clave por intención (vietnamita, inglés y español). Se evalúan en orden
// y gana la primera intención con alguna coincidencia.
var intents = []struct {
	intent   Intent
	keywords []string
}{
	{IntentLowStock, []string{"sắp hết hàng", "hết hàng", "low stock", "thiếu hàng", "cạn kho", "stock bajo", "poco stock", "sin stock", "agotado"}},
	{IntentTop, []string{"top", "bán chạy", "best seller", "nhiều nhất", "phổ biến", "más vendido", "mas vendido", "principales"}},
	{IntentWarehouse, []string{"kho", "warehouse", "nhà kho", "kho hàng", "bodega", "almacén", "almacen"}},
	{IntentSummary, []string{"tổng quan", "summary", "tóm tắt", "overview", "báo cáo", "resumen", "informe", "panorama"}},
}

// Context datos de inventario que acompañan la pregunta. Los elementos de las listas
// son objetos JSON libres.
type Context struct {
	TotalProducts    int                      `json:"total_products"`
	TotalWarehouses  int                      `json:"total_warehouses"`
	LowStockProducts []map[string]interface{} `json:"low_stock_products"`
	RecentMovements  []map[string]interface{} `json:"recent_movements"`
	TopCategories    []map[string]interface{} `json:"top_categories"`
}

// Answer respuesta con su confianza y las fuentes consultadas.
type Answer struct {
	Text       string
	Confidence float64
	Sources    []string
}

// DetectIntent clasifica la pregunta por palabras clave (sin distinguir mayúsculas).
func DetectIntent(question string) Intent {
	q := strings.ToLower(question)
	for _, it := range intents {
		for _, kw := range it.keywords {
			if strings.Contains(q, kw) {
				return it.intent
			}
		}
	}
	return IntentGeneric
}

// AnswerWithRules responde sin modelo de lenguaje. ctx puede ser nil.
func AnswerWithRules(question string, ctx *Context, lang language.Tag) Answer {
	ans := Answer{Confidence: confidenceIntent, Sources: []string{SourceRuleBased}}

	switch DetectIntent(question) {
	case IntentLowStock:
		ans.Text = lowStock(ctx, lang)
		ans.Sources = append(ans.Sources, SourceLowStock)
	case IntentTop:
		ans.Text = topCategories(ctx, lang)
		ans.Sources = append(ans.Sources, SourceCategory)
	case IntentWarehouse:
		ans.Text = warehouses(ctx, lang)
		ans.Sources = append(ans.Sources, SourceWarehouse)
	case IntentSummary:
		ans.Text = summary(ctx, lang)
		ans.Sources = append(ans.Sources, SourceSummary)
		ans.Confidence = confidenceSummary
	default:
		ans.Text = generic(ctx, lang)
		ans.Confidence = confidenceGeneric
	}
	return ans
}

// ── Respuestas por intención ──────────────────────────────────────────────────

func lowStock(ctx *Context, lang language.Tag) string {
	if ctx == nil || len(ctx.LowStockProducts) == 0 {
		return i18n.Text(lang, i18n.QueryLowStockEmpty)
	}
	lines := []string{i18n.Text(lang, i18n.QueryLowStockHeader)}
	for i, p := range head(ctx.LowStockProducts, maxLowStockItems) {
		lines = append(lines, i18n.Text(lang, i18n.QueryLowStockItem,
			strconv.Itoa(i+1), field(p, "name", "product_name"), field(p, "stock", "current_stock")))
	}
	return strings.Join(lines, "\n")
}

func topCategories(ctx *Context, lang language.Tag) string {
	if ctx == nil || len(ctx.TopCategories) == 0 {
		return i18n.Text(lang, i18n.QueryTopEmpty)
	}
	lines := []string{i18n.Text(lang, i18n.QueryTopHeader)}
	for i, c := range head(ctx.TopCategories, maxTopItems) {
		lines = append(lines, i18n.Text(lang, i18n.QueryTopItem,
			strconv.Itoa(i+1), field(c, "name", "category_name"), field(c, "count", "product_count")))
	}
	return strings.Join(lines, "\n")
}

func warehouses(ctx *Context, lang language.Tag) string {
	if ctx == nil {
		return i18n.Text(lang, i18n.QueryWarehouseEmpty)
	}
	return i18n.Text(lang, i18n.QueryWarehouse,
		strconv.Itoa(ctx.TotalWarehouses), strconv.Itoa(ctx.TotalProducts))
}

func summary(ctx *Context, lang language.Tag) string {
	if ctx == nil {
		return i18n.Text(lang, i18n.QuerySummaryEmpty)
	}
	return i18n.Text(lang, i18n.QuerySummary,
		strconv.Itoa(ctx.TotalProducts),
		strconv.Itoa(ctx.TotalWarehouses),
		strconv.Itoa(len(ctx.LowStockProducts)),
		strconv.Itoa(len(ctx.RecentMovements)),
	)
}

func generic(ctx *Context, lang language.Tag) string {
	if ctx != nil {
		return summary(ctx, lang)
	}
	return i18n.Text(lang, i18n.QueryGeneric)
}

// ── Prompt para el modelo de lenguaje ─────────────────────────────────────────

// BuildContextText serializa el contexto en texto plano para el prompt del modelo.
// Devuelve "" si ctx es nil.
func BuildContextText(ctx *Context) string {
	if ctx == nil {
		return ""
	}
	lines := []string{
		fmt.Sprintf("Total products: %d", ctx.TotalProducts),
		fmt.Sprintf("Total warehouses: %d", ctx.TotalWarehouses),
	}

	if len(ctx.LowStockProducts) > 0 {
		lines = append(lines, "Low-stock products:")
		for _, p := range head(ctx.LowStockProducts, maxContextLowStock) {
			lines = append(lines, fmt.Sprintf("  - %s: %s units",
				field(p, "name", "product_name"), field(p, "stock", "current_stock")))
		}
	}

	if len(ctx.RecentMovements) > 0 {
		lines = append(lines, "Recent movements (last entries):")
		for _, m := range head(ctx.RecentMovements, maxContextRecent) {
			raw, err := json.Marshal(m)
			if err != nil {
				raw = []byte(fmt.Sprint(m))
			}
			lines = append(lines, "  - "+string(raw))
		}
	}

	if len(ctx.TopCategories) > 0 {
		lines = append(lines, "Top categories:")
		for _, c := range head(ctx.TopCategories, maxContextTop) {
			lines = append(lines, fmt.Sprintf("  - %s: %s",
				field(c, "name", "category_name"), field(c, "count", "product_count")))
		}
	}

	return strings.Join(lines, "\n")
}

// SystemPrompt instrucciones de sistema para el modelo en el idioma pedido.
func SystemPrompt(lang language.Tag) string {
	return "You are an AI assistant for warehouse inventory management. " +
		"Answer questions based on the provided inventory data. " +
		"Respond in " + i18n.Text(lang, i18n.QueryLanguageName) + ". Be concise and data-driven."
}

// UserPrompt mensaje de usuario con el contexto y la pregunta.
func UserPrompt(question, contextText string) string {
	return "Inventory context:\n" + contextText + "\n\nQuestion: " + question
}

// ── Utilidades ────────────────────────────────────────────────────────────────

func head(items []map[string]interface{}, n int) []map[string]interface{} {
	if len(items) > n {
		return items[:n]
	}
	return items
}

// field devuelve el primer campo presente y no nulo entre keys, o "N/A".
func field(item map[string]interface{}, keys ...string) string {
	for _, k := range keys {
		v, ok := item[k]
		if !ok || v == nil {
			continue
		}
		if s, ok := v.(string); ok {
			return s
		}
		return fmt.Sprint(v)
	}
	return notAvailable
}
