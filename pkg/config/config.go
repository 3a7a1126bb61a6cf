package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App       AppConfig
	HTTP      HTTPConfig
	Log       LogConfig
	AI        AIConfig
	Analytics AnalyticsConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env     string // development, staging, production
	Name    string
	Version string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// LogConfig nivel del logger: trace, debug, info, warn, error.
type LogConfig struct {
	Level string
}

// AIConfig proveedor de modelo de lenguaje para las consultas.
// Sin API key del proveedor elegido el servicio responde solo con reglas.
type AIConfig struct {
	Provider        string // openai, anthropic, gemini
	OpenAIAPIKey    string
	OpenAIModel     string
	OpenAIBaseURL   string
	AnthropicAPIKey string
	AnthropicModel  string
	GeminiAPIKey    string
	GeminiModel     string
	Timeout         time.Duration
	DefaultLanguage string
}

// Model modelo del proveedor elegido.
func (c AIConfig) Model() string {
	switch c.Provider {
	case "anthropic":
		return c.AnthropicModel
	case "gemini":
		return c.GeminiModel
	default:
		return c.OpenAIModel
	}
}

// AnalyticsConfig parámetros de los cálculos.
type AnalyticsConfig struct {
	ForecastDefaultDays    int
	AnomalyZScoreThreshold float64
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, OPENAI_API_KEY, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:     getString(v, "APP_ENV", "development"),
			Name:    getString(v, "APP_NAME", "inventario-ai"),
			Version: getString(v, "APP_VERSION", "1.0.0"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8000),
		},
		Log: LogConfig{
			Level: strings.ToLower(getString(v, "LOG_LEVEL", "info")),
		},
		AI: AIConfig{
			Provider:        strings.ToLower(getString(v, "AI_PROVIDER", "openai")),
			OpenAIAPIKey:    getString(v, "OPENAI_API_KEY", ""),
			OpenAIModel:     getString(v, "AI_MODEL", "gpt-3.5-turbo"),
			OpenAIBaseURL:   getString(v, "OPENAI_BASE_URL", "https://api.openai.com/v1"),
			AnthropicAPIKey: getString(v, "ANTHROPIC_API_KEY", ""),
			AnthropicModel:  getString(v, "ANTHROPIC_MODEL", "claude-3-5-haiku-20241022"),
			GeminiAPIKey:    getString(v, "GEMINI_API_KEY", ""),
			GeminiModel:     getString(v, "GEMINI_MODEL", "gemini-1.5-flash"),
			Timeout:         time.Duration(getInt(v, "AI_TIMEOUT_SECONDS", 10)) * time.Second,
			DefaultLanguage: getString(v, "AI_DEFAULT_LANGUAGE", "vi"),
		},
		Analytics: AnalyticsConfig{
			ForecastDefaultDays:    getInt(v, "FORECAST_DEFAULT_DAYS", 30),
			AnomalyZScoreThreshold: getFloat(v, "ANOMALY_ZSCORE_THRESHOLD", 2.5),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("config: HTTP_PORT fuera de rango: %d", c.HTTP.Port)
	}
	if c.Analytics.ForecastDefaultDays < 1 || c.Analytics.ForecastDefaultDays > 365 {
		return fmt.Errorf("config: FORECAST_DEFAULT_DAYS debe estar entre 1 y 365: %d", c.Analytics.ForecastDefaultDays)
	}
	if c.Analytics.AnomalyZScoreThreshold <= 0 {
		return fmt.Errorf("config: ANOMALY_ZSCORE_THRESHOLD debe ser positivo: %v", c.Analytics.AnomalyZScoreThreshold)
	}
	if c.AI.Timeout <= 0 {
		return fmt.Errorf("config: AI_TIMEOUT_SECONDS debe ser positivo")
	}
	return nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getFloat(v *viper.Viper, key string, def float64) float64 {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case string:
			f, err := strconv.ParseFloat(strings.TrimSpace(v.GetString(key)), 64)
			if err != nil {
				return def
			}
			return f
		default:
			return v.GetFloat64(key)
		}
	}
	return def
}
