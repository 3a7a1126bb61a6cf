package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-ai/internal/application/dto"
	"github.com/jhoicas/Inventario-ai/internal/application/usecase"
	"github.com/jhoicas/Inventario-ai/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ForecastUC *usecase.ForecastUseCase
	ReorderUC  *usecase.ReorderUseCase
	AnomalyUC  *usecase.AnomalyUseCase
	QueryUC    *usecase.QueryUseCase
	Logger     *logger.Logger
	Metrics    HTTPObserver // nil desactiva las métricas HTTP
	AppName    string
	Version    string
}

// Router registra middlewares y rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Logger
	if log == nil {
		log = logger.Nop()
	}
	app.Use(RequestLogger(log))
	if deps.Metrics != nil {
		app.Use(Metrics(deps.Metrics))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(dto.HealthResponse{Status: "ok", Service: deps.AppName, Version: deps.Version})
	})

	ai := app.Group("/api/ai")
	h := NewAIHandler(deps.ForecastUC, deps.ReorderUC, deps.AnomalyUC, deps.QueryUC)
	ai.Post("/forecast", h.Forecast)
	ai.Post("/forecast/report", h.ForecastReport)
	ai.Post("/reorder", h.Reorder)
	ai.Post("/anomaly", h.Anomaly)
	ai.Post("/query", h.Query)
}
