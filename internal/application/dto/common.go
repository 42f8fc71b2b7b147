package dto

import "fmt"

// ErrorResponse cuerpo de error HTTP. Message es el texto corto del banner
// que muestra la consola; Redirect, si viene, es la ruta sugerida.
type ErrorResponse struct {
	Code     string `json:"code"`
	Message  string `json:"message"`
	Redirect string `json:"redirect,omitempty"`
}

// ValidationError agrupa todas las violaciones de un formulario por campo.
// Se evalúa completo antes de rechazar y nunca llega a la red.
type ValidationError struct {
	Fields map[string]string `json:"fields"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validación: %d campo(s) inválido(s)", len(e.Fields))
}

// add registra una violación; crea el mapa al primer uso.
func (e *ValidationError) add(field, msg string) {
	if e.Fields == nil {
		e.Fields = map[string]string{}
	}
	e.Fields[field] = msg
}

// orNil devuelve nil si no hubo violaciones.
func (e *ValidationError) orNil() *ValidationError {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}
