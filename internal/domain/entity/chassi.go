package entity

import "encoding/json"

// Chassi representa un remolque (chassi) tal como lo entrega el API de flota.
// Tuf y Esp son fechas de inspección en texto (yyyy-mm-dd o vacío); Status
// viaja en el registro pero el listado lo ignora y lo recalcula desde Esp.
type Chassi struct {
	ID     int
	Nummer string
	Tuf    string
	Esp    string
	Status string
}

// UnmarshalJSON resuelve los alias de id que el upstream usa según la fila
// (id_chassi, id, _id, chassi_id) y normaliza los escalares mixtos.
func (c *Chassi) UnmarshalJSON(b []byte) error {
	var aux struct {
		IDChassi FlexInt    `json:"id_chassi"`
		ID       FlexInt    `json:"id"`
		MongoID  FlexInt    `json:"_id"`
		ChassiID FlexInt    `json:"chassi_id"`
		Nummer   FlexString `json:"chassi_nummer"`
		Tuf      FlexString `json:"tuf"`
		Esp      FlexString `json:"esp"`
		Status   FlexString `json:"status"`
	}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	c.ID = firstNonZero(aux.IDChassi, aux.ID, aux.MongoID, aux.ChassiID)
	c.Nummer = aux.Nummer.String()
	c.Tuf = aux.Tuf.String()
	c.Esp = aux.Esp.String()
	c.Status = aux.Status.String()
	return nil
}

func firstNonZero(ids ...FlexInt) int {
	for _, id := range ids {
		if id != 0 {
			return id.Int()
		}
	}
	return 0
}
