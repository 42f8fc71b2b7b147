package entity

import "encoding/json"

// Fahrer representa un conductor. Chassi y Lkw son referencias textuales a
// unidades asignadas; el upstream no valida integridad referencial y la
// consola tampoco.
type Fahrer struct {
	ID       int
	Name     string
	Lastname string
	Email    string
	Password string // solo escritura hacia el upstream; nunca se reexpone
	Chassi   string
	Lkw      string
	Phone    string
}

// UnmarshalJSON resuelve alias de id (_id, id) y escalares mixtos.
func (f *Fahrer) UnmarshalJSON(b []byte) error {
	var aux struct {
		MongoID  FlexInt    `json:"_id"`
		ID       FlexInt    `json:"id"`
		Name     FlexString `json:"name"`
		Lastname FlexString `json:"lastname"`
		Email    FlexString `json:"email"`
		Password FlexString `json:"password"`
		Chassi   FlexString `json:"chassi"`
		Lkw      FlexString `json:"lkw"`
		Phone    FlexString `json:"phone"`
	}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	f.ID = firstNonZero(aux.MongoID, aux.ID)
	f.Name = aux.Name.String()
	f.Lastname = aux.Lastname.String()
	f.Email = aux.Email.String()
	f.Password = aux.Password.String()
	f.Chassi = aux.Chassi.String()
	f.Lkw = aux.Lkw.String()
	f.Phone = aux.Phone.String()
	return nil
}
