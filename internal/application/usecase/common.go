package usecase

import (
	"fmt"

	"golang.org/x/text/language"

	"github.com/jhoicas/Inventario-ai/internal/application/ports"
	"github.com/jhoicas/Inventario-ai/internal/domain"
	"github.com/jhoicas/Inventario-ai/internal/domain/i18n"
	"github.com/jhoicas/Inventario-ai/pkg/logger"
)

// Deps dependencias transversales compartidas por los casos de uso analíticos.
type Deps struct {
	Logger          *logger.Logger
	Metrics         ports.AnalyticsMetrics
	DefaultLanguage string // código de idioma ("vi", "en", "es")
}

func (d Deps) logger() *logger.Logger {
	if d.Logger == nil {
		return logger.Nop()
	}
	return d.Logger
}

func (d Deps) metrics() ports.AnalyticsMetrics {
	if d.Metrics == nil {
		return ports.NopMetrics{}
	}
	return d.Metrics
}

func (d Deps) language() language.Tag {
	return i18n.Resolve(d.DefaultLanguage, i18n.Supported[0])
}

// invalid envuelve domain.ErrInvalidInput con el detalle del campo.
func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", domain.ErrInvalidInput, fmt.Sprintf(format, args...))
}

// langCode código base del idioma ("vi", "en", "es").
func langCode(tag language.Tag) string {
	base, _ := tag.Base()
	return base.String()
}
