package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-ai/pkg/config"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "inventario-ai", cfg.App.Name)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "0.0.0.0:8000", cfg.HTTP.Addr())
	assert.Equal(t, "gpt-3.5-turbo", cfg.AI.OpenAIModel)
	assert.Equal(t, 10*time.Second, cfg.AI.Timeout)
	assert.Equal(t, "vi", cfg.AI.DefaultLanguage)
	assert.Equal(t, 30, cfg.Analytics.ForecastDefaultDays)
	assert.Equal(t, 2.5, cfg.Analytics.AnomalyZScoreThreshold)
}

func TestLoad_VariablesDeEntorno(t *testing.T) {
	t.Setenv("HTTP_PORT", "9100")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("AI_PROVIDER", "Anthropic")
	t.Setenv("ANTHROPIC_API_KEY", "sk-test")
	t.Setenv("FORECAST_DEFAULT_DAYS", "14")
	t.Setenv("ANOMALY_ZSCORE_THRESHOLD", "3.1")
	t.Setenv("AI_TIMEOUT_SECONDS", "4")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 9100, cfg.HTTP.Port)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "anthropic", cfg.AI.Provider)
	assert.Equal(t, "sk-test", cfg.AI.AnthropicAPIKey)
	assert.Equal(t, 14, cfg.Analytics.ForecastDefaultDays)
	assert.Equal(t, 3.1, cfg.Analytics.AnomalyZScoreThreshold)
	assert.Equal(t, 4*time.Second, cfg.AI.Timeout)
}

func TestLoad_RechazaValoresInvalidos(t *testing.T) {
	t.Setenv("FORECAST_DEFAULT_DAYS", "400")
	_, err := config.Load()
	assert.Error(t, err)
}

func TestAIConfig_Model(t *testing.T) {
	ai := config.AIConfig{OpenAIModel: "gpt", AnthropicModel: "claude", GeminiModel: "gemini-flash"}
	assert.Equal(t, "gpt", ai.Model())

	ai.Provider = "anthropic"
	assert.Equal(t, "claude", ai.Model())

	ai.Provider = "gemini"
	assert.Equal(t, "gemini-flash", ai.Model())
}
