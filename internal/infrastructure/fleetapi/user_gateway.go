package fleetapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/portusapp/portus-console/internal/domain"
	"github.com/portusapp/portus-console/internal/domain/entity"
	"github.com/portusapp/portus-console/internal/domain/repository"
)

var _ repository.UserGateway = (*UserGateway)(nil)

// UserGateway autentica contra /users/login y /users/register.
type UserGateway struct {
	c *Client
}

// NewUserGateway construye el gateway.
func NewUserGateway(c *Client) *UserGateway {
	return &UserGateway{c: c}
}

// authResponse cubre las formas de respuesta observadas del upstream:
// {user}, {error} o {message}.
type authResponse struct {
	User    json.RawMessage `json:"user"`
	Error   string          `json:"error"`
	Message string          `json:"message"`
}

// Login envía las credenciales como query params (así lo expone el
// upstream) y devuelve el usuario más su snapshot serializado.
func (g *UserGateway) Login(ctx context.Context, email, password string) (*entity.User, []byte, error) {
	q := url.Values{}
	q.Set("email", email)
	q.Set("password", password)

	body, err := g.c.getJSON(ctx, "/users/login", q)
	if err != nil {
		return nil, nil, err
	}
	return decodeAuth(body)
}

// Register envía el alta form-urlencoded y devuelve el usuario más su
// snapshot serializado.
func (g *UserGateway) Register(ctx context.Context, in repository.RegisterInput) (*entity.User, []byte, error) {
	form := url.Values{}
	form.Set("name", in.Name)
	form.Set("lastname", in.Lastname)
	form.Set("email", in.Email)
	form.Set("password", in.Password)
	form.Set("confirmPassword", in.ConfirmPassword)
	form.Set("agree", strconv.FormatBool(in.Agree))
	form.Set("role", in.Role)

	body, err := g.c.postForm(ctx, "/users/register", form)
	if err != nil {
		return nil, nil, err
	}
	if bytes.Contains(body, []byte(serverFaultMarker)) {
		return nil, nil, &UpstreamError{Status: http.StatusOK, Body: truncate(body)}
	}
	return decodeAuth(body)
}

// decodeAuth interpreta la respuesta de auth. Sin campo user, cualquier
// forma (error, message u otra cosa) cuenta como credenciales rechazadas.
func decodeAuth(body []byte) (*entity.User, []byte, error) {
	var resp authResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, nil, &UpstreamError{Status: http.StatusOK, Body: truncate(body)}
	}
	if len(resp.User) == 0 {
		msg := resp.Error
		if msg == "" {
			msg = resp.Message
		}
		if msg != "" {
			return nil, nil, fmt.Errorf("%w: %s", domain.ErrUnauthorized, msg)
		}
		return nil, nil, domain.ErrUnauthorized
	}
	var user entity.User
	if err := json.Unmarshal(resp.User, &user); err != nil {
		return nil, nil, &UpstreamError{Status: http.StatusOK, Body: "objeto user malformado"}
	}
	return &user, resp.User, nil
}
