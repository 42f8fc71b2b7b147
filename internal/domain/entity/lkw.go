package entity

import "encoding/json"

// Lkw representa un camión. Mismas fechas de inspección que Chassi, pero
// Status sí es un dato del usuario: si llega vacío al guardar, el caso de
// uso lo rellena con el estado automático derivado de Esp.
type Lkw struct {
	ID      int
	Nummer  string
	Modell  string
	Baujahr int
	Tuf     string
	Esp     string
	Status  string
}

// UnmarshalJSON resuelve los alias de id (id, id_lkw, _id, lkw_id) y los
// escalares mixtos del upstream.
func (l *Lkw) UnmarshalJSON(b []byte) error {
	var aux struct {
		ID      FlexInt    `json:"id"`
		IDLkw   FlexInt    `json:"id_lkw"`
		MongoID FlexInt    `json:"_id"`
		LkwID   FlexInt    `json:"lkw_id"`
		Nummer  FlexString `json:"lkw_nummer"`
		Modell  FlexString `json:"modell"`
		Baujahr FlexInt    `json:"baujahr"`
		Tuf     FlexString `json:"tuf"`
		Esp     FlexString `json:"esp"`
		Status  FlexString `json:"status"`
	}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	l.ID = firstNonZero(aux.ID, aux.IDLkw, aux.MongoID, aux.LkwID)
	l.Nummer = aux.Nummer.String()
	l.Modell = aux.Modell.String()
	l.Baujahr = aux.Baujahr.Int()
	l.Tuf = aux.Tuf.String()
	l.Esp = aux.Esp.String()
	l.Status = aux.Status.String()
	return nil
}
