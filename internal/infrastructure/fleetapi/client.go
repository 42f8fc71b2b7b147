// Package fleetapi implementa los puertos de repository sobre el API de
// flota remoto (JSON, form-urlencoded y un multipart). Usa net/http de la
// librería estándar; el upstream no publica SDK.
//
// El upstream es un servicio PHP heredado con tres rarezas que este paquete
// absorbe para que no se filtren hacia arriba:
//   - una colección puede llegar como array, como objeto con campo nombrado
//     o como objeto suelto que representa un solo elemento;
//   - un HTTP 200 puede traer un fallo embebido ("Fatal error ..." en texto
//     plano, o un campo "error" en el JSON);
//   - un borrado solo es real si el cuerpo trae status == 200.
package fleetapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/portusapp/portus-console/internal/domain"
	"github.com/portusapp/portus-console/pkg/config"
	"github.com/portusapp/portus-console/pkg/logger"
)

// maxBodyBytes limita la lectura de cualquier respuesta del upstream.
const maxBodyBytes = 4 << 20

// serverFaultMarker delata un error de PHP embebido en un cuerpo 200.
const serverFaultMarker = "Fatal error"

// Client es el transporte compartido por todos los gateways.
type Client struct {
	baseURL string
	http    *http.Client
	log     *logger.Logger
}

// NewClient construye el cliente del upstream.
func NewClient(cfg config.UpstreamConfig, log *logger.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: cfg.Timeout},
		log:     log,
	}
}

// UpstreamError es un fallo lógico con respuesta recibida. Satisface
// errors.Is(err, domain.ErrUpstreamFault) y conserva el status y un
// fragmento del cuerpo para que el handler elija el mensaje.
type UpstreamError struct {
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream HTTP %d: %s", e.Status, e.Body)
}

func (e *UpstreamError) Is(target error) bool {
	return target == domain.ErrUpstreamFault
}

func (e *UpstreamError) Unwrap() error { return domain.ErrUpstreamFault }

// do ejecuta la petición y devuelve el cuerpo crudo. Transporte caído →
// domain.ErrUnreachable; no-2xx → *UpstreamError.
func (c *Client) do(req *http.Request) ([]byte, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		if req.Context().Err() != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrUnreachable, req.Context().Err())
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrUnreachable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: leer respuesta: %v", domain.ErrUnreachable, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &UpstreamError{Status: resp.StatusCode, Body: truncate(body)}
	}
	return body, nil
}

// getJSON lanza un GET con query params.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values) ([]byte, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("fleetapi: crear request: %w", err)
	}
	return c.do(req)
}

// sendJSON lanza un POST o PUT con cuerpo JSON.
func (c *Client) sendJSON(ctx context.Context, method, path string, payload any) ([]byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("fleetapi: serializar payload: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("fleetapi: crear request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req)
}

// postForm lanza un POST application/x-www-form-urlencoded.
func (c *Client) postForm(ctx context.Context, path string, form url.Values) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("fleetapi: crear request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.do(req)
}

// delete lanza un DELETE.
func (c *Client) delete(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("fleetapi: crear request: %w", err)
	}
	return c.do(req)
}

// checkFault detecta fallos embebidos en un cuerpo con status 2xx: el
// marcador de PHP en texto plano o un campo "error" no vacío en el JSON.
func checkFault(body []byte) error {
	if bytes.Contains(body, []byte(serverFaultMarker)) {
		return &UpstreamError{Status: http.StatusOK, Body: truncate(body)}
	}
	var probe struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &probe); err == nil && probe.Error != "" {
		return &UpstreamError{Status: http.StatusOK, Body: probe.Error}
	}
	return nil
}

// decodeItems extrae los elementos de una colección tolerando las tres
// formas del upstream: array directo, objeto con alguno de los campos
// nombrados en keys, u objeto suelto que cuenta como colección de uno.
func decodeItems(body []byte, keys ...string) ([]json.RawMessage, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, &UpstreamError{Status: http.StatusOK, Body: "respuesta vacía"}
	}
	switch trimmed[0] {
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, &UpstreamError{Status: http.StatusOK, Body: "colección malformada"}
		}
		return items, nil
	case '{':
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &obj); err != nil {
			return nil, &UpstreamError{Status: http.StatusOK, Body: "objeto malformado"}
		}
		for _, key := range keys {
			raw, found := obj[key]
			if !found {
				continue
			}
			raw = bytes.TrimSpace(raw)
			if string(raw) == "null" {
				return []json.RawMessage{}, nil
			}
			if len(raw) > 0 && raw[0] == '[' {
				var items []json.RawMessage
				if err := json.Unmarshal(raw, &items); err != nil {
					return nil, &UpstreamError{Status: http.StatusOK, Body: "colección malformada"}
				}
				return items, nil
			}
		}
		// objeto suelto: colección de un elemento
		return []json.RawMessage{trimmed}, nil
	default:
		return nil, &UpstreamError{Status: http.StatusOK, Body: truncate(trimmed)}
	}
}

// decodeRows decodifica cada elemento en T descartando filas irrecuperables;
// una fila rota no debe tumbar el listado entero.
func decodeRows[T any](c *Client, items []json.RawMessage, what string) []T {
	rows := make([]T, 0, len(items))
	for _, raw := range items {
		var row T
		if err := json.Unmarshal(raw, &row); err != nil {
			c.log.Warn().Str("collection", what).Err(err).Msg("fila descartada por decodificación")
			continue
		}
		rows = append(rows, row)
	}
	return rows
}

func truncate(b []byte) string {
	const max = 256
	s := strings.TrimSpace(string(b))
	if len(s) > max {
		return s[:max] + "…"
	}
	return s
}
