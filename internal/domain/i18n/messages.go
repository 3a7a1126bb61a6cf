// Package i18n registra los textos localizados (vietnamita, inglés y español) que
// acompañan a los resultados analíticos: descripciones de anomalías, recomendaciones
// de reorden y de pronóstico, respuestas del asistente y etiquetas del reporte PDF.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Idiomas soportados. El primero es el idioma por defecto del servicio.
var Supported = []language.Tag{language.Vietnamese, language.English, language.Spanish}

// Claves del catálogo.
const (
	AnomalySpike        = "anomaly.spike"
	AnomalyDrop         = "anomaly.drop"
	AnomalyPatternBreak = "anomaly.pattern_break"

	ReorderCritical = "reorder.critical"
	ReorderHigh     = "reorder.high"
	ReorderMedium   = "reorder.medium"
	ReorderLow      = "reorder.low"

	ForecastIncreasing   = "forecast.increasing"
	ForecastDecreasing   = "forecast.decreasing"
	ForecastStable       = "forecast.stable"
	ForecastInsufficient = "forecast.insufficient"
	ForecastLimited      = "forecast.limited"

	QueryLowStockEmpty  = "query.low_stock.empty"
	QueryLowStockHeader = "query.low_stock.header"
	QueryLowStockItem   = "query.low_stock.item"
	QueryTopEmpty       = "query.top.empty"
	QueryTopHeader      = "query.top.header"
	QueryTopItem        = "query.top.item"
	QueryWarehouseEmpty = "query.warehouse.empty"
	QueryWarehouse      = "query.warehouse"
	QuerySummaryEmpty   = "query.summary.empty"
	QuerySummary        = "query.summary"
	QueryGeneric        = "query.generic"
	QueryLanguageName   = "query.language_name"

	ReportTitle          = "report.title"
	ReportProduct        = "report.product"
	ReportConfidence     = "report.confidence"
	ReportTrend          = "report.trend"
	ReportDate           = "report.date"
	ReportPredicted      = "report.predicted"
	ReportLower          = "report.lower"
	ReportUpper          = "report.upper"
	ReportRecommendation = "report.recommendation"
	ReportMethod         = "report.method"

	// Prefijos de valores del reporte; se completan con el valor del pronóstico.
	ReportTrendPrefix  = "report.trend."
	ReportMethodPrefix = "report.method."
)

var catalog = map[language.Tag]map[string]string{
	language.Vietnamese: {
		AnomalySpike:        "Phát hiện đột biến tăng cho '%s': số lượng %s cao hơn nhiều so với trung bình %s.",
		AnomalyDrop:         "Phát hiện sụt giảm bất thường cho '%s': số lượng %s thấp hơn nhiều so với trung bình %s.",
		AnomalyPatternBreak: "Phát hiện mẫu bất thường cho '%s': số lượng %s nằm ngoài phạm vi thông thường (trung bình %s).",

		ReorderCritical: "KHẨN CẤP: Sản phẩm '%s' đang ở mức tồn kho nguy hiểm (%s đơn vị). Cần đặt hàng ngay %s đơn vị. Dự kiến hết hàng trong %s ngày.",
		ReorderHigh:     "Sản phẩm '%s' đã dưới điểm đặt hàng lại (%s/%s). Nên đặt hàng %s đơn vị trong thời gian sớm nhất.",
		ReorderMedium:   "Sản phẩm '%s' đang tiến gần điểm đặt hàng lại. Tồn kho hiện tại: %s, điểm đặt hàng: %s. Nên lên kế hoạch đặt hàng %s đơn vị.",
		ReorderLow:      "Sản phẩm '%s' đang ở mức tồn kho an toàn (%s đơn vị). Điểm đặt hàng lại: %s. Không cần hành động ngay.",

		ForecastIncreasing:   "Nhu cầu đang tăng, nên tăng tồn kho dự phòng và xem xét đặt hàng sớm hơn để tránh thiếu hụt.",
		ForecastDecreasing:   "Nhu cầu giảm, có thể giảm đặt hàng để tránh tồn kho quá mức và tiết kiệm chi phí lưu kho.",
		ForecastStable:       "Nhu cầu ổn định, giữ mức tồn kho hiện tại và tiếp tục theo dõi xu hướng.",
		ForecastInsufficient: "Không đủ dữ liệu lịch sử để dự báo. Cần ít nhất 7 ngày dữ liệu.",
		ForecastLimited:      "Dữ liệu lịch sử hạn chế (ít hơn 7 ngày). Dự báo dựa trên trung bình đơn giản, độ tin cậy thấp.",

		QueryLowStockEmpty:  "Hiện không có dữ liệu về sản phẩm sắp hết hàng.",
		QueryLowStockHeader: "Danh sách sản phẩm sắp hết hàng:",
		QueryLowStockItem:   "  %s. %s — tồn kho: %s",
		QueryTopEmpty:       "Hiện không có dữ liệu về danh mục sản phẩm hàng đầu.",
		QueryTopHeader:      "Danh mục sản phẩm hàng đầu:",
		QueryTopItem:        "  %s. %s — số sản phẩm: %s",
		QueryWarehouseEmpty: "Hiện không có dữ liệu về kho hàng.",
		QueryWarehouse:      "Hệ thống hiện có %s kho hàng với tổng cộng %s sản phẩm.",
		QuerySummaryEmpty:   "Hiện không có dữ liệu tổng quan.",
		QuerySummary:        "Tổng quan kho hàng:\n  - Tổng sản phẩm: %s\n  - Tổng kho: %s\n  - Sản phẩm sắp hết: %s\n  - Giao dịch gần đây: %s",
		QueryGeneric:        "Xin lỗi, tôi không có đủ dữ liệu để trả lời câu hỏi này. Vui lòng cung cấp thêm ngữ cảnh về kho hàng.",
		QueryLanguageName:   "tiếng Việt",

		ReportTitle:          "Báo cáo dự báo nhu cầu",
		ReportProduct:        "Sản phẩm",
		ReportConfidence:     "Độ tin cậy",
		ReportTrend:          "Xu hướng",
		ReportDate:           "Ngày",
		ReportPredicted:      "Dự báo",
		ReportLower:          "Cận dưới",
		ReportUpper:          "Cận trên",
		ReportRecommendation: "Khuyến nghị",
		ReportMethod:         "Phương pháp",

		ReportTrendPrefix + "increasing":         "Tăng",
		ReportTrendPrefix + "decreasing":         "Giảm",
		ReportTrendPrefix + "stable":             "Ổn định",
		ReportMethodPrefix + "linear_regression": "Hồi quy tuyến tính",
		ReportMethodPrefix + "simple_average":    "Trung bình đơn giản",
		ReportMethodPrefix + "insufficient_data": "Không đủ dữ liệu",
	},
	language.English: {
		AnomalySpike:        "Demand spike detected for '%s': quantity %s is far above the average %s.",
		AnomalyDrop:         "Unusual drop detected for '%s': quantity %s is far below the average %s.",
		AnomalyPatternBreak: "Unusual pattern detected for '%s': quantity %s is outside the normal range (average %s).",

		ReorderCritical: "URGENT: product '%s' is at a dangerous stock level (%s units). Order %s units now. Expected stockout in %s days.",
		ReorderHigh:     "Product '%s' is below its reorder point (%s/%s). Order %s units as soon as possible.",
		ReorderMedium:   "Product '%s' is approaching its reorder point. Current stock: %s, reorder point: %s. Plan an order of %s units.",
		ReorderLow:      "Product '%s' is at a safe stock level (%s units). Reorder point: %s. No immediate action needed.",

		ForecastIncreasing:   "Demand is increasing: raise safety stock and consider ordering earlier to avoid shortages.",
		ForecastDecreasing:   "Demand is decreasing: orders can be reduced to avoid overstock and save holding costs.",
		ForecastStable:       "Demand is stable: keep the current stock level and keep monitoring the trend.",
		ForecastInsufficient: "Not enough historical data to forecast. At least 7 days of data are required.",
		ForecastLimited:      "Limited historical data (fewer than 7 days). Forecast based on a simple average, low confidence.",

		QueryLowStockEmpty:  "No low-stock product data is currently available.",
		QueryLowStockHeader: "Low-stock products:",
		QueryLowStockItem:   "  %s. %s — stock: %s",
		QueryTopEmpty:       "No top-category data is currently available.",
		QueryTopHeader:      "Top categories:",
		QueryTopItem:        "  %s. %s — products: %s",
		QueryWarehouseEmpty: "No warehouse data is currently available.",
		QueryWarehouse:      "The system currently has %s warehouses with a total of %s products.",
		QuerySummaryEmpty:   "No summary data is currently available.",
		QuerySummary:        "Inventory overview:\n  - Total products: %s\n  - Total warehouses: %s\n  - Low-stock items: %s\n  - Recent movements: %s",
		QueryGeneric:        "Sorry, I don't have enough data to answer this question. Please provide more inventory context.",
		QueryLanguageName:   "English",

		ReportTitle:          "Demand forecast report",
		ReportProduct:        "Product",
		ReportConfidence:     "Confidence",
		ReportTrend:          "Trend",
		ReportDate:           "Date",
		ReportPredicted:      "Forecast",
		ReportLower:          "Lower bound",
		ReportUpper:          "Upper bound",
		ReportRecommendation: "Recommendation",
		ReportMethod:         "Method",

		ReportTrendPrefix + "increasing":         "Increasing",
		ReportTrendPrefix + "decreasing":         "Decreasing",
		ReportTrendPrefix + "stable":             "Stable",
		ReportMethodPrefix + "linear_regression": "Linear regression",
		ReportMethodPrefix + "simple_average":    "Simple average",
		ReportMethodPrefix + "insufficient_data": "Insufficient data",
	},
	language.Spanish: {
		AnomalySpike:        "Pico de demanda detectado para '%s': la cantidad %s está muy por encima del promedio %s.",
		AnomalyDrop:         "Caída inusual detectada para '%s': la cantidad %s está muy por debajo del promedio %s.",
		AnomalyPatternBreak: "Patrón inusual detectado para '%s': la cantidad %s está fuera del rango normal (promedio %s).",

		ReorderCritical: "URGENTE: el producto '%s' está en un nivel de stock peligroso (%s unidades). Pida %s unidades de inmediato. Agotamiento estimado en %s días.",
		ReorderHigh:     "El producto '%s' está bajo su punto de reorden (%s/%s). Pida %s unidades lo antes posible.",
		ReorderMedium:   "El producto '%s' se acerca a su punto de reorden. Stock actual: %s, punto de reorden: %s. Planifique un pedido de %s unidades.",
		ReorderLow:      "El producto '%s' tiene un nivel de stock seguro (%s unidades). Punto de reorden: %s. No requiere acción inmediata.",

		ForecastIncreasing:   "La demanda está aumentando: suba el stock de seguridad y considere adelantar los pedidos para evitar faltantes.",
		ForecastDecreasing:   "La demanda está bajando: puede reducir los pedidos para evitar sobrestock y ahorrar costos de almacenamiento.",
		ForecastStable:       "La demanda es estable: mantenga el nivel de stock actual y siga monitoreando la tendencia.",
		ForecastInsufficient: "No hay suficientes datos históricos para pronosticar. Se requieren al menos 7 días de datos.",
		ForecastLimited:      "Datos históricos limitados (menos de 7 días). Pronóstico basado en un promedio simple, confianza baja.",

		QueryLowStockEmpty:  "No hay datos disponibles de productos con stock bajo.",
		QueryLowStockHeader: "Productos con stock bajo:",
		QueryLowStockItem:   "  %s. %s — stock: %s",
		QueryTopEmpty:       "No hay datos disponibles de las categorías principales.",
		QueryTopHeader:      "Categorías principales:",
		QueryTopItem:        "  %s. %s — productos: %s",
		QueryWarehouseEmpty: "No hay datos disponibles de bodegas.",
		QueryWarehouse:      "El sistema tiene actualmente %s bodegas con un total de %s productos.",
		QuerySummaryEmpty:   "No hay datos de resumen disponibles.",
		QuerySummary:        "Resumen de inventario:\n  - Total de productos: %s\n  - Total de bodegas: %s\n  - Productos con stock bajo: %s\n  - Movimientos recientes: %s",
		QueryGeneric:        "Lo siento, no tengo suficientes datos para responder esta pregunta. Por favor proporcione más contexto de inventario.",
		QueryLanguageName:   "español",

		ReportTitle:          "Reporte de pronóstico de demanda",
		ReportProduct:        "Producto",
		ReportConfidence:     "Confianza",
		ReportTrend:          "Tendencia",
		ReportDate:           "Fecha",
		ReportPredicted:      "Pronóstico",
		ReportLower:          "Límite inferior",
		ReportUpper:          "Límite superior",
		ReportRecommendation: "Recomendación",
		ReportMethod:         "Método",

		ReportTrendPrefix + "increasing":         "Creciente",
		ReportTrendPrefix + "decreasing":         "Decreciente",
		ReportTrendPrefix + "stable":             "Estable",
		ReportMethodPrefix + "linear_regression": "Regresión lineal",
		ReportMethodPrefix + "simple_average":    "Promedio simple",
		ReportMethodPrefix + "insufficient_data": "Datos insuficientes",
	},
}

func init() {
	for tag, msgs := range catalog {
		for key, msg := range msgs {
			if err := message.SetString(tag, key, msg); err != nil {
				panic("i18n: registrar " + key + ": " + err.Error())
			}
		}
	}
}

// Resolve convierte un código de idioma ("vi", "en-US", "es") en uno de los idiomas
// soportados comparando el idioma base. Si no hay coincidencia devuelve fallback.
func Resolve(lang string, fallback language.Tag) language.Tag {
	tag, err := language.Parse(strings.TrimSpace(lang))
	if err != nil {
		return fallback
	}
	base, _ := tag.Base()
	for _, t := range Supported {
		if b, _ := t.Base(); b == base {
			return t
		}
	}
	return fallback
}

// Printer devuelve un impresor ligado al catálogo del idioma indicado.
// Los argumentos numéricos se pasan ya formateados como string para que el
// separador decimal no dependa de la configuración regional.
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag)
}

// Text devuelve el mensaje de key en el idioma tag, formateado con args.
func Text(tag language.Tag, key string, args ...interface{}) string {
	return Printer(tag).Sprintf(key, args...)
}

// Label traduce un valor enumerado (tendencia, método) buscando prefix+value.
// Si el catálogo no lo tiene devuelve value sin cambios.
func Label(tag language.Tag, prefix, value string) string {
	key := prefix + value
	if got := Text(tag, key); got != key {
		return got
	}
	return value
}
