package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	// Límite de lectura de la respuesta del proveedor.
	maxResponseBytes = 256 * 1024

	// Parámetros de generación comunes.
	temperature = 0.3
	maxTokens   = 1024

	// Timeout de red; el use case impone además un context.WithTimeout.
	httpTimeout = 25 * time.Second
)

// apiError extrae un mensaje legible del cuerpo de error de cada proveedor.
type apiError func(status int, body []byte) error

// postJSON serializa payload, hace POST a url con los headers dados y deserializa la
// respuesta 200 en out. Los códigos distintos de 200 se traducen con onError.
func postJSON(
	ctx context.Context,
	client *http.Client,
	url string,
	headers map[string]string,
	payload, out interface{},
	onError apiError,
) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("AI: serializar request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("AI: crear HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("AI: timeout o cancelación: %w", ctx.Err())
		}
		return fmt.Errorf("AI: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("AI: leer respuesta: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return onError(resp.StatusCode, rawBody)
	}

	if err := json.Unmarshal(rawBody, out); err != nil {
		return fmt.Errorf("AI: deserializar respuesta: %w", err)
	}
	return nil
}
