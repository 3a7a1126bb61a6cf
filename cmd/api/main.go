package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"github.com/jhoicas/Inventario-ai/internal/application/usecase"
	"github.com/jhoicas/Inventario-ai/internal/domain/anomaly"
	"github.com/jhoicas/Inventario-ai/internal/domain/forecast"
	infraai "github.com/jhoicas/Inventario-ai/internal/infrastructure/ai"
	"github.com/jhoicas/Inventario-ai/internal/infrastructure/metrics"
	infrapdf "github.com/jhoicas/Inventario-ai/internal/infrastructure/pdf"
	httpRouter "github.com/jhoicas/Inventario-ai/internal/interfaces/http"
	"github.com/jhoicas/Inventario-ai/pkg/config"
	"github.com/jhoicas/Inventario-ai/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("version", cfg.App.Version).
		Msg("iniciando aplicación")

	reg := metrics.NewRegistry()
	deps := usecase.Deps{
		Logger:          log,
		Metrics:         reg,
		DefaultLanguage: cfg.AI.DefaultLanguage,
	}

	// LLM opcional: sin API key las consultas se responden con reglas.
	llm := infraai.NewFromConfig(cfg.AI)
	log.Info().
		Str("provider", cfg.AI.Provider).
		Str("model", cfg.AI.Model()).
		Str("log_level", cfg.Log.Level).
		Bool("llm_configured", llm != nil).
		Msg("configuración de IA")
	if llm == nil {
		log.Warn().Msg("sin API key del proveedor LLM; consultas en modo reglas")
	}

	forecastUC := usecase.NewForecastUseCase(
		forecast.New(time.Now),
		infrapdf.NewMarotoPDFGenerator(cfg.App.Name),
		cfg.Analytics.ForecastDefaultDays,
		deps,
	)
	reorderUC := usecase.NewReorderUseCase(deps)
	anomalyUC := usecase.NewAnomalyUseCase(anomaly.NewDetector(cfg.Analytics.AnomalyZScoreThreshold), deps)
	queryUC := usecase.NewQueryUseCase(llm, cfg.AI.Timeout, deps)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: httpRouter.ErrorHandler(log),
	})
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(cors.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Inventario AI",
	}))

	app.Get("/metrics", adaptor.HTTPHandler(reg.Handler()))

	httpRouter.Router(app, httpRouter.RouterDeps{
		ForecastUC: forecastUC,
		ReorderUC:  reorderUC,
		AnomalyUC:  anomalyUC,
		QueryUC:    queryUC,
		Logger:     log,
		Metrics:    reg,
		AppName:    cfg.App.Name,
		Version:    cfg.App.Version,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
