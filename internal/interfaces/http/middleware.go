package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-ai/internal/application/dto"
	"github.com/jhoicas/Inventario-ai/pkg/logger"
)

// HTTPObserver registra la duración y el resultado de cada petición.
type HTTPObserver interface {
	ObserveHTTP(route, method string, status int, elapsed time.Duration)
}

// GetRequestID devuelve el id asignado por el middleware requestid.
func GetRequestID(c *fiber.Ctx) string {
	return c.GetRespHeader(fiber.HeaderXRequestID)
}

// RequestLogger escribe una línea de acceso por petición.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		status := statusOf(c, err)

		ev := log.Info()
		if status >= fiber.StatusInternalServerError {
			ev = log.Error()
		}
		ev.Str("request_id", GetRequestID(c)).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Msg("http")
		return err
	}
}

// Metrics alimenta el registro de métricas con la ruta registrada (no el path crudo).
func Metrics(obs HTTPObserver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		obs.ObserveHTTP(c.Route().Path, c.Method(), statusOf(c, err), time.Since(start))
		return err
	}
}

// ErrorHandler responde los errores no manejados con dto.ErrorResponse.
func ErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := statusOf(c, err)
		code := "INTERNAL"
		msg := err.Error()
		if status < fiber.StatusInternalServerError {
			code = strings.ToUpper(strings.ReplaceAll(http.StatusText(status), " ", "_"))
		} else {
			log.Error().Err(err).
				Str("request_id", GetRequestID(c)).
				Str("method", c.Method()).
				Str("path", c.Path()).
				Msg("error no manejado")
			msg = "error interno del servidor"
		}
		return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: msg})
	}
}

// statusOf código final de la petición; los errores aún no pasaron por el ErrorHandler.
func statusOf(c *fiber.Ctx, err error) int {
	if err == nil {
		return c.Response().StatusCode()
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code
	}
	return fiber.StatusInternalServerError
}
