package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// El núcleo analítico nunca falla por datos escasos; solo las fechas mal formadas
// y las validaciones de frontera producen error.
var (
	ErrInvalidInput   = errors.New("entrada inválida")
	ErrInvalidDate    = errors.New("fecha inválida")
	ErrLLMUnavailable = errors.New("servicio LLM no configurado")
)
