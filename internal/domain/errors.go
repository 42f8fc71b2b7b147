package domain

import "errors"

// Errores de dominio (sin dependencias externas).
//
// La taxonomía sigue los tres modos de fallo de la consola:
//   - ErrUnreachable: fallo de transporte, el upstream no respondió.
//   - ErrUpstreamFault: hubo respuesta pero indica fallo lógico (no-2xx,
//     cuerpo malformado, marcador de error embebido en un 200, o falta del
//     indicador explícito de éxito en un borrado).
//   - Las violaciones de validación nunca llegan a la red; ver dto.ValidationError.
var (
	ErrNotFound      = errors.New("recurso no encontrado")
	ErrInvalidInput  = errors.New("entrada inválida")
	ErrUnauthorized  = errors.New("no autorizado")
	ErrNoSession     = errors.New("sin sesión activa")
	ErrUnreachable   = errors.New("upstream inaccesible")
	ErrUpstreamFault = errors.New("el upstream indicó un fallo")
	ErrDeleteDenied  = errors.New("el upstream no confirmó el borrado")
	ErrNotSupported  = errors.New("operación no soportada por el upstream")
)
