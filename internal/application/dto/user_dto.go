package dto

import (
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// LoginRequest credenciales del formulario de acceso.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Normalize() {
	r.Email = strings.TrimSpace(r.Email)
}

func (r LoginRequest) Validate() *ValidationError {
	verr := &ValidationError{}
	if r.Email == "" {
		verr.add("email", "Введите email")
	} else if !emailPattern.MatchString(r.Email) {
		verr.add("email", "Неверный формат email")
	}
	if r.Password == "" {
		verr.add("password", "Введите пароль")
	}
	return verr.orNil()
}

// RegisterRequest formulario de registro; Agree es la casilla de
// condiciones de uso y es obligatoria.
type RegisterRequest struct {
	Name            string `json:"name"`
	Lastname        string `json:"lastname"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	Agree           bool   `json:"agree"`
}

func (r *RegisterRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Lastname = strings.TrimSpace(r.Lastname)
	r.Email = strings.TrimSpace(r.Email)
}

func (r RegisterRequest) Validate() *ValidationError {
	verr := &ValidationError{}
	if r.Name == "" {
		verr.add("name", "Введите имя")
	}
	if r.Lastname == "" {
		verr.add("lastname", "Введите фамилию")
	}
	if r.Email == "" {
		verr.add("email", "Введите email")
	} else if !emailPattern.MatchString(r.Email) {
		verr.add("email", "Неверный формат email")
	}
	if len(r.Password) < 6 {
		verr.add("password", "Пароль должен быть не короче 6 символов")
	} else if r.Password != r.ConfirmPassword {
		verr.add("confirmPassword", "Пароли не совпадают")
	}
	if !r.Agree {
		verr.add("agree", "Необходимо принять условия")
	}
	return verr.orNil()
}

// AuthResponse respuesta de login/registro: el usuario saneado más la
// indicación de a dónde navegar.
type AuthResponse struct {
	User     ProfileResponse `json:"user"`
	Redirect string          `json:"redirect"`
}

// ProfileResponse vista del usuario en sesión.
type ProfileResponse struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Lastname string `json:"lastname"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}
