// Command inventoryctl ejecuta los cálculos analíticos sobre archivos JSON, sin servidor.
// Los archivos tienen el mismo formato que los cuerpos de la API HTTP.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/jhoicas/Inventario-ai/internal/application/dto"
	"github.com/jhoicas/Inventario-ai/internal/application/usecase"
	"github.com/jhoicas/Inventario-ai/internal/domain/anomaly"
	"github.com/jhoicas/Inventario-ai/internal/domain/forecast"
	infraai "github.com/jhoicas/Inventario-ai/internal/infrastructure/ai"
	"github.com/jhoicas/Inventario-ai/pkg/config"
	"github.com/jhoicas/Inventario-ai/pkg/logger"
)

func main() {
	if err := newApp(os.Stdout, os.Stderr).Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp(stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "inventoryctl",
		Usage:     "Pronósticos, reorden, anomalías y consultas sobre archivos JSON",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "lang",
				Usage:   "Idioma de los textos (vi, en, es); sobrescribe el del archivo",
				EnvVars: []string{"INVENTORYCTL_LANG"},
			},
			&cli.BoolFlag{
				Name:  "rules-only",
				Usage: "No consultar el LLM aunque haya API key",
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "JSON indentado",
				Value: true,
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "forecast",
				Usage:  "Pronóstico de demanda (cuerpo de POST /api/ai/forecast)",
				Flags:  []cli.Flag{inputFlag()},
				Action: runForecast,
			},
			{
				Name:   "reorder",
				Usage:  "Punto de reorden y EOQ (cuerpo de POST /api/ai/reorder)",
				Flags:  []cli.Flag{inputFlag()},
				Action: runReorder,
			},
			{
				Name:   "anomaly",
				Usage:  "Detección de anomalías (cuerpo de POST /api/ai/anomaly)",
				Flags:  []cli.Flag{inputFlag()},
				Action: runAnomaly,
			},
			{
				Name:   "query",
				Usage:  "Pregunta sobre el inventario (cuerpo de POST /api/ai/query)",
				Flags:  []cli.Flag{inputFlag()},
				Action: runQuery,
			},
		},
	}
}

func inputFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:     "input",
		Aliases:  []string{"i"},
		Usage:    "Archivo JSON con la petición (- para stdin)",
		Required: true,
	}
}

// ── Comandos ──────────────────────────────────────────────────────────────────

func runForecast(c *cli.Context) error {
	var req dto.ForecastRequest
	if err := readInput(c, &req); err != nil {
		return err
	}
	env, err := setup(c)
	if err != nil {
		return err
	}
	req.Language = langOr(c, req.Language)
	uc := usecase.NewForecastUseCase(forecast.New(time.Now), nil, env.cfg.Analytics.ForecastDefaultDays, env.deps)
	resp, err := uc.Forecast(c.Context, req)
	if err != nil {
		return fmt.Errorf("forecast: %w", err)
	}
	return writeJSON(c, resp)
}

func runReorder(c *cli.Context) error {
	var req dto.ReorderRequest
	if err := readInput(c, &req); err != nil {
		return err
	}
	env, err := setup(c)
	if err != nil {
		return err
	}
	req.Language = langOr(c, req.Language)
	resp, err := usecase.NewReorderUseCase(env.deps).Calculate(c.Context, req)
	if err != nil {
		return fmt.Errorf("reorder: %w", err)
	}
	return writeJSON(c, resp)
}

func runAnomaly(c *cli.Context) error {
	var req dto.AnomalyRequest
	if err := readInput(c, &req); err != nil {
		return err
	}
	env, err := setup(c)
	if err != nil {
		return err
	}
	req.Language = langOr(c, req.Language)
	detector := anomaly.NewDetector(env.cfg.Analytics.AnomalyZScoreThreshold)
	resp, err := usecase.NewAnomalyUseCase(detector, env.deps).Detect(c.Context, req)
	if err != nil {
		return fmt.Errorf("anomaly: %w", err)
	}
	return writeJSON(c, resp)
}

func runQuery(c *cli.Context) error {
	var req dto.QueryRequest
	if err := readInput(c, &req); err != nil {
		return err
	}
	env, err := setup(c)
	if err != nil {
		return err
	}
	req.Language = langOr(c, req.Language)
	llm := infraai.NewFromConfig(env.cfg.AI)
	if c.Bool("rules-only") {
		llm = nil
	}
	resp, err := usecase.NewQueryUseCase(llm, env.cfg.AI.Timeout, env.deps).Answer(c.Context, req)
	if err != nil {
		return fmt.Errorf("query: %w", err)
	}
	return writeJSON(c, resp)
}

// ── Soporte ───────────────────────────────────────────────────────────────────

type environment struct {
	cfg  *config.Config
	deps usecase.Deps
}

// setup carga la configuración; el log va a stderr para no mezclarse con el JSON.
func setup(c *cli.Context) (*environment, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("cargar configuración: %w", err)
	}
	lg := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level, Out: c.App.ErrWriter})
	return &environment{
		cfg:  cfg,
		deps: usecase.Deps{Logger: lg, DefaultLanguage: cfg.AI.DefaultLanguage},
	}, nil
}

func readInput(c *cli.Context, v interface{}) error {
	path := c.String("input")
	var r io.Reader
	if path == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("abrir %s: %w", path, err)
		}
		defer f.Close()
		r = f
	}
	if err := json.NewDecoder(r).Decode(v); err != nil {
		return fmt.Errorf("leer %s: %w", path, err)
	}
	return nil
}

func writeJSON(c *cli.Context, v interface{}) error {
	enc := json.NewEncoder(c.App.Writer)
	if c.Bool("pretty") {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}

func langOr(c *cli.Context, fromFile string) string {
	if l := c.String("lang"); l != "" {
		return l
	}
	return fromFile
}
