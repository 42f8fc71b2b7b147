package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/portusapp/portus-console/internal/application/dto"
	"github.com/portusapp/portus-console/internal/application/session"
	"github.com/portusapp/portus-console/internal/domain"
	"github.com/portusapp/portus-console/internal/domain/entity"
	"github.com/portusapp/portus-console/internal/infrastructure/fleetapi"
)

// AuthHandler maneja login, registro, logout y perfil.
type AuthHandler struct {
	svc        *session.Service
	cookieTTL  int
	cookieName string
}

func NewAuthHandler(svc *session.Service, cookieTTLMinutes int) *AuthHandler {
	return &AuthHandler{svc: svc, cookieTTL: cookieTTLMinutes, cookieName: svc.CookieName()}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "Credenciales"
// @Success      200   {object}  dto.AuthResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	user, token, err := h.svc.Login(c.UserContext(), in)
	if err != nil {
		return respondLoginError(c, err)
	}
	setSessionCookie(c, h.cookieName, token, h.cookieTTL)
	return c.JSON(dto.AuthResponse{User: profileView(user), Redirect: "/profil"})
}

// respondLoginError afina la traducción genérica con los mensajes que el
// formulario de login distingue: red caída, endpoint ausente y base de
// datos sin desplegar son fallos distintos para quien está instalando.
func respondLoginError(c *fiber.Ctx, err error) error {
	var ue *fleetapi.UpstreamError
	if errors.As(err, &ue) && !errors.Is(err, domain.ErrUnauthorized) {
		switch {
		case ue.Status == fiber.StatusNotFound:
			return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{
				Code: "UPSTREAM_FAULT", Message: "Сервис входа не найден на сервере",
			})
		case strings.Contains(ue.Body, "doesn't exist"):
			return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{
				Code: "UPSTREAM_FAULT", Message: "База данных не настроена",
			})
		}
	}
	return respondError(c, err)
}

// Register godoc
// @Summary      Registrar usuario
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "Datos de registro"
// @Success      201   {object}  dto.AuthResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	user, token, err := h.svc.Register(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	setSessionCookie(c, h.cookieName, token, h.cookieTTL)
	return c.Status(fiber.StatusCreated).JSON(dto.AuthResponse{User: profileView(user), Redirect: "/profil"})
}

// Logout godoc
// @Summary      Cerrar sesión
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.ErrorResponse
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	purgeCookie(c, h.cookieName)
	return c.JSON(fiber.Map{"redirect": "/login"})
}

// Profile godoc
// @Summary      Usuario en sesión
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.ProfileResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/profil [get]
func (h *AuthHandler) Profile(c *fiber.Ctx) error {
	user := GetCurrentUser(c)
	if user == nil {
		return respondError(c, domain.ErrNoSession)
	}
	return c.JSON(profileView(user))
}

func profileView(u *entity.User) dto.ProfileResponse {
	return dto.ProfileResponse{
		ID:       u.ID,
		Name:     u.Name,
		Lastname: u.Lastname,
		Email:    u.Email,
		Role:     u.Role,
	}
}
