package dto

import (
	"strings"

	"github.com/portusapp/portus-console/internal/domain/inspection"
)

// SaveLkwRequest formulario del diálogo de alta/edición de camión.
type SaveLkwRequest struct {
	Nummer  string `json:"lkw_nummer"`
	Modell  string `json:"modell"`
	Baujahr int    `json:"baujahr"`
	Tuf     string `json:"tuf"`
	Esp     string `json:"esp"`
	Status  string `json:"status,omitempty"`
}

func (r *SaveLkwRequest) Normalize() {
	r.Nummer = strings.TrimSpace(r.Nummer)
	r.Modell = strings.TrimSpace(r.Modell)
	r.Tuf = inspection.NormalizeDate(r.Tuf)
	r.Esp = inspection.NormalizeDate(r.Esp)
	r.Status = strings.TrimSpace(r.Status)
}

// Validate: el número de camión no exige longitud mínima, a diferencia
// del número de tráiler.
func (r SaveLkwRequest) Validate() *ValidationError {
	verr := &ValidationError{}
	if r.Nummer == "" {
		verr.add("lkw_nummer", "Введите номер машины")
	}
	if r.Tuf == "" {
		verr.add("tuf", "Укажите дату ТО")
	}
	if r.Esp == "" {
		verr.add("esp", "Укажите дату ЭСП")
	}
	return verr.orNil()
}

// LkwQuery parámetros de la vista de camiones; la búsqueda cubre número
// y modelo, y hay orden adicional por año de fabricación.
type LkwQuery struct {
	Search string `query:"search"`
	Sort   string `query:"sort"`
}

type LkwRow struct {
	ID         int    `json:"id_lkw"`
	Nummer     string `json:"lkw_nummer"`
	Modell     string `json:"modell"`
	Baujahr    int    `json:"baujahr"`
	Tuf        string `json:"tuf"`
	TufDisplay string `json:"tuf_display"`
	TufBadge   string `json:"tuf_badge"`
	Esp        string `json:"esp"`
	EspDisplay string `json:"esp_display"`
	EspBadge   string `json:"esp_badge"`
	Status     string `json:"status"`
}

type LkwListResponse struct {
	Items []LkwRow `json:"items"`
	Total int      `json:"total"`
}
