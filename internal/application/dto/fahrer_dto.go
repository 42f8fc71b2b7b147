package dto

import "strings"

// SaveFahrerRequest formulario de alta/edición de conductor. Chassi y Lkw
// son asignaciones libres en texto; el upstream no las valida.
type SaveFahrerRequest struct {
	Name     string `json:"name"`
	Lastname string `json:"lastname"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
	Chassi   string `json:"chassi,omitempty"`
	Lkw      string `json:"lkw,omitempty"`
	Phone    string `json:"phone,omitempty"`
}

func (r *SaveFahrerRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Lastname = strings.TrimSpace(r.Lastname)
	r.Email = strings.TrimSpace(r.Email)
	r.Chassi = strings.TrimSpace(r.Chassi)
	r.Lkw = strings.TrimSpace(r.Lkw)
	r.Phone = strings.TrimSpace(r.Phone)
}

func (r SaveFahrerRequest) Validate() *ValidationError {
	verr := &ValidationError{}
	if r.Name == "" {
		verr.add("name", "Введите имя")
	}
	if r.Lastname == "" {
		verr.add("lastname", "Введите фамилию")
	}
	if r.Email == "" {
		verr.add("email", "Введите email")
	}
	return verr.orNil()
}

type FahrerQuery struct {
	Search string `query:"search"`
}

type FahrerRow struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Lastname string `json:"lastname"`
	Email    string `json:"email"`
	Chassi   string `json:"chassi"`
	Lkw      string `json:"lkw"`
	Phone    string `json:"phone"`
}

type FahrerListResponse struct {
	Items []FahrerRow `json:"items"`
	Total int         `json:"total"`
}
