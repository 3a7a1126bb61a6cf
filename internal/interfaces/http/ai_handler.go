package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-ai/internal/application/dto"
	"github.com/jhoicas/Inventario-ai/internal/application/usecase"
	"github.com/jhoicas/Inventario-ai/internal/domain"
)

// AIHandler maneja los endpoints analíticos: pronóstico, reorden, anomalías y consultas.
type AIHandler struct {
	forecast *usecase.ForecastUseCase
	reorder  *usecase.ReorderUseCase
	anomaly  *usecase.AnomalyUseCase
	query    *usecase.QueryUseCase
}

// NewAIHandler construye el handler.
func NewAIHandler(
	forecast *usecase.ForecastUseCase,
	reorder *usecase.ReorderUseCase,
	anomaly *usecase.AnomalyUseCase,
	query *usecase.QueryUseCase,
) *AIHandler {
	return &AIHandler{forecast: forecast, reorder: reorder, anomaly: anomaly, query: query}
}

// Forecast godoc
// @Summary      Pronóstico de demanda diaria
// @Description  Regresión lineal con variables de calendario si hay al menos 7 días de historial;
//               promedio simple con menos datos. Devuelve intervalos de predicción al 95 %.
// @Tags         ai
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ForecastRequest  true  "historial diario y horizonte (1-365)"
// @Success      200   {object}  dto.ForecastResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/ai/forecast [post]
func (h *AIHandler) Forecast(c *fiber.Ctx) error {
	var req dto.ForecastRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}
	resp, err := h.forecast.Forecast(c.Context(), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(resp)
}

// ForecastReport godoc
// @Summary      Reporte PDF del pronóstico
// @Tags         ai
// @Accept       json
// @Produce      application/pdf
// @Param        body  body  dto.ForecastRequest  true  "mismo cuerpo que /api/ai/forecast"
// @Success      200
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/ai/forecast/report [post]
func (h *AIHandler) ForecastReport(c *fiber.Ctx) error {
	var req dto.ForecastRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}
	pdf, err := h.forecast.Report(c.Context(), req)
	if err != nil {
		return writeError(c, err)
	}
	c.Attachment(fmt.Sprintf("forecast-%d.pdf", req.ProductID))
	c.Set(fiber.HeaderContentType, "application/pdf")
	return c.Send(pdf)
}

// Reorder godoc
// @Summary      Punto de reorden, stock de seguridad y EOQ
// @Tags         ai
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ReorderRequest  true  "stock, consumo medio, lead time y costos"
// @Success      200   {object}  dto.ReorderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/ai/reorder [post]
func (h *AIHandler) Reorder(c *fiber.Ctx) error {
	var req dto.ReorderRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}
	resp, err := h.reorder.Calculate(c.Context(), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(resp)
}

// Anomaly godoc
// @Summary      Detección de anomalías en movimientos
// @Description  Z-score sobre la serie diaria de cada producto combinado con el rango intercuartílico.
// @Tags         ai
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AnomalyRequest  true  "movimientos de inventario"
// @Success      200   {object}  dto.AnomalyResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/ai/anomaly [post]
func (h *AIHandler) Anomaly(c *fiber.Ctx) error {
	var req dto.AnomalyRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}
	resp, err := h.anomaly.Detect(c.Context(), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(resp)
}

// Query godoc
// @Summary      Pregunta en lenguaje natural sobre el inventario
// @Description  Usa el LLM configurado con timeout; si falla o no hay API key responde por palabras clave.
// @Tags         ai
// @Accept       json
// @Produce      json
// @Param        body  body  dto.QueryRequest  true  "pregunta, idioma y contexto opcional"
// @Success      200   {object}  dto.QueryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/ai/query [post]
func (h *AIHandler) Query(c *fiber.Ctx) error {
	var req dto.QueryRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}
	resp, err := h.query.Answer(c.Context(), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(resp)
}

// ── Errores ──────────────────────────────────────────────────────────────────

func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Code: "INVALID_BODY", Message: "cuerpo de la petición inválido",
	})
}

// writeError traduce los errores de dominio a respuestas HTTP.
func writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidDate):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_DATE", Message: err.Error(),
		})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: err.Error(),
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}
}
