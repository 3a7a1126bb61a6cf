package i18n_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"

	"github.com/jhoicas/Inventario-ai/internal/domain/i18n"
)

func TestResolve(t *testing.T) {
	cases := map[string]language.Tag{
		"vi":      language.Vietnamese,
		"en":      language.English,
		"en-US":   language.English,
		"es-CO":   language.Spanish,
		"fr":      language.Vietnamese,
		"":        language.Vietnamese,
		"no-such": language.Vietnamese,
	}
	for in, want := range cases {
		assert.Equal(t, want, i18n.Resolve(in, language.Vietnamese), in)
	}
	assert.Equal(t, language.English, i18n.Resolve("de", language.English))
}

func TestText_TodosLosIdiomasTienenLasMismasClaves(t *testing.T) {
	keys := []string{
		i18n.ForecastStable, i18n.ForecastInsufficient, i18n.QueryGeneric,
		i18n.QueryLowStockEmpty, i18n.ReportTitle, i18n.QueryLanguageName,
	}
	for _, tag := range i18n.Supported {
		for _, key := range keys {
			got := i18n.Text(tag, key)
			assert.NotEqual(t, key, got, "falta %s para %s", key, tag)
			assert.NotEmpty(t, got)
		}
	}
}

func TestText_Formatea(t *testing.T) {
	got := i18n.Text(language.English, i18n.ReorderHigh, "Widget", "12", "40", "150")
	assert.Equal(t, "Product 'Widget' is below its reorder point (12/40). Order 150 units as soon as possible.", got)

	got = i18n.Text(language.Vietnamese, i18n.AnomalySpike, "Widget A", "500", "65.0")
	assert.Contains(t, got, "Widget A")
	assert.Contains(t, got, "500")
	assert.Contains(t, got, "65.0")
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "Ổn định", i18n.Label(language.Vietnamese, i18n.ReportTrendPrefix, "stable"))
	assert.Equal(t, "Decreasing", i18n.Label(language.English, i18n.ReportTrendPrefix, "decreasing"))
	assert.Equal(t, "Regresión lineal", i18n.Label(language.Spanish, i18n.ReportMethodPrefix, "linear_regression"))
	assert.Equal(t, "holt_winters", i18n.Label(language.Spanish, i18n.ReportMethodPrefix, "holt_winters"))

	for _, tag := range i18n.Supported {
		assert.NotEqual(t, i18n.ReportMethod, i18n.Text(tag, i18n.ReportMethod), tag.String())
	}
}
