package entity

import "encoding/json"

// User representa el usuario de la consola tal como lo devuelve el upstream
// en login/registro. El snapshot serializado original se conserva en la
// cookie de sesión; este tipo solo normaliza la lectura.
type User struct {
	ID       int
	Name     string
	Lastname string
	Email    string
	Role     string
}

// UnmarshalJSON tolera los alias legados del upstream para nombre y rol
// (name|Name|vorname|Vorname, lastname|Lastname|nachname|Nachname, role|Role).
func (u *User) UnmarshalJSON(b []byte) error {
	var aux struct {
		ID       FlexInt    `json:"id"`
		IDUser   FlexInt    `json:"id_user"`
		Name     FlexString `json:"name"`
		NameC    FlexString `json:"Name"`
		Vorname  FlexString `json:"vorname"`
		VornameC FlexString `json:"Vorname"`
		Last     FlexString `json:"lastname"`
		LastC    FlexString `json:"Lastname"`
		Nach     FlexString `json:"nachname"`
		NachC    FlexString `json:"Nachname"`
		Email    FlexString `json:"email"`
		Role     FlexString `json:"role"`
		RoleC    FlexString `json:"Role"`
	}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	u.ID = firstNonZero(aux.ID, aux.IDUser)
	u.Name = firstNonEmpty(aux.Name, aux.NameC, aux.Vorname, aux.VornameC)
	u.Lastname = firstNonEmpty(aux.Last, aux.LastC, aux.Nach, aux.NachC)
	u.Email = aux.Email.String()
	u.Role = firstNonEmpty(aux.Role, aux.RoleC)
	return nil
}

func firstNonEmpty(vals ...FlexString) string {
	for _, v := range vals {
		if v != "" {
			return v.String()
		}
	}
	return ""
}
