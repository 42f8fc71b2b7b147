package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/portusapp/portus-console/internal/application/dto"
	"github.com/portusapp/portus-console/internal/application/session"
	"github.com/portusapp/portus-console/internal/domain/entity"
)

const currentUserKey = "currentUser"

// RequestID asigna un identificador único a cada petición y lo expone en
// la respuesta para correlacionar logs.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get("X-Request-ID")
		if id == "" {
			id = uuid.New().String()
		}
		c.Locals("request_id", id)
		c.Set("X-Request-ID", id)
		return c.Next()
	}
}

// LoadSession decodifica la cookie de sesión si existe. Una cookie
// corrupta, caducada o con firma mala se purga y la petición continúa
// como anónima; nunca es un error en sí misma.
func LoadSession(svc *session.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(svc.CookieName())
		if token == "" {
			return c.Next()
		}
		user, err := svc.Decode(token)
		if err != nil {
			purgeCookie(c, svc.CookieName())
			return c.Next()
		}
		c.Locals(currentUserKey, user)
		return c.Next()
	}
}

// RequireSession corta las rutas protegidas: sin usuario en sesión la
// respuesta es 401 con la ruta de login sugerida.
func RequireSession() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if GetCurrentUser(c) == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:     "NO_SESSION",
				Message:  "Требуется вход",
				Redirect: "/login",
			})
		}
		return c.Next()
	}
}

// AnonymousOnly protege login y registro de usuarios ya autenticados.
func AnonymousOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if GetCurrentUser(c) != nil {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Code:     "ALREADY_AUTHENTICATED",
				Message:  "Сессия уже открыта",
				Redirect: "/profil",
			})
		}
		return c.Next()
	}
}

// GetCurrentUser devuelve el usuario en sesión o nil.
func GetCurrentUser(c *fiber.Ctx) *entity.User {
	u, _ := c.Locals(currentUserKey).(*entity.User)
	return u
}

func setSessionCookie(c *fiber.Ctx, name, token string, minutes int) {
	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(time.Duration(minutes) * time.Minute),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

func purgeCookie(c *fiber.Ctx, name string) {
	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}
