package dto

import (
	"strings"

	"github.com/portusapp/portus-console/internal/domain/inspection"
)

// SaveChassiRequest formulario del diálogo de alta/edición de tráiler.
type SaveChassiRequest struct {
	Nummer string `json:"chassi_nummer"`
	Tuf    string `json:"tuf"`
	Esp    string `json:"esp"`
	Status string `json:"status,omitempty"`
}

// Normalize recorta espacios y normaliza las fechas al formato de alambre.
func (r *SaveChassiRequest) Normalize() {
	r.Nummer = strings.TrimSpace(r.Nummer)
	r.Tuf = inspection.NormalizeDate(r.Tuf)
	r.Esp = inspection.NormalizeDate(r.Esp)
	r.Status = strings.TrimSpace(r.Status)
}

// Validate evalúa todas las reglas y devuelve las violaciones juntas.
func (r SaveChassiRequest) Validate() *ValidationError {
	verr := &ValidationError{}
	switch {
	case r.Nummer == "":
		verr.add("chassi_nummer", "Введите номер шасси")
	case len([]rune(r.Nummer)) < 3:
		verr.add("chassi_nummer", "Номер шасси слишком короткий")
	}
	if r.Tuf == "" {
		verr.add("tuf", "Укажите дату ТО")
	}
	if r.Esp == "" {
		verr.add("esp", "Укажите дату ЭСП")
	}
	return verr.orNil()
}

// validateDateOrder comprueba que la fecha ЭСП no preceda a la de ТО.
// TODO: activar cuando el upstream deje de aceptar pares invertidos.
func (r SaveChassiRequest) validateDateOrder() (string, bool) {
	tuf, okT := inspection.ParseDate(r.Tuf)
	esp, okE := inspection.ParseDate(r.Esp)
	if okT && okE && esp.Before(tuf) {
		return "Дата ЭСП раньше даты ТО", false
	}
	return "", true
}

// ChassiQuery parámetros de la vista de tráileres. Opera sobre la última
// instantánea cargada, sin tocar el upstream.
type ChassiQuery struct {
	Search string `query:"search"`
	Status string `query:"status"`
	Sort   string `query:"sort"`
}

// ChassiRow fila lista para pintar: fechas crudas, fechas formateadas,
// insignias por fecha y estado derivado.
type ChassiRow struct {
	ID         int    `json:"id_chassi"`
	Nummer     string `json:"chassi_nummer"`
	Tuf        string `json:"tuf"`
	TufDisplay string `json:"tuf_display"`
	TufBadge   string `json:"tuf_badge"`
	Esp        string `json:"esp"`
	EspDisplay string `json:"esp_display"`
	EspBadge   string `json:"esp_badge"`
	Status     string `json:"status"`
}

type ChassiListResponse struct {
	Items []ChassiRow `json:"items"`
	Total int         `json:"total"`
	// Deleted trae el número del tráiler recién borrado, para el texto de
	// confirmación; solo viene en la respuesta de un borrado.
	Deleted string `json:"deleted,omitempty"`
}
