package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/portusapp/portus-console/internal/application/session"
	apphttp "github.com/portusapp/portus-console/internal/interfaces/http"
	"github.com/portusapp/portus-console/pkg/config"
	pkgjwt "github.com/portusapp/portus-console/pkg/jwt"
	"github.com/portusapp/portus-console/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testSecret     = "test-secret-key-for-unit-tests"
	testIssuer     = "portus-console-test"
	testCookieName = "portus_session"
	testExpMin     = 60
)

var testSnapshot = json.RawMessage(`{"id": 4, "name": "Iwan", "lastname": "Petrov", "email": "iwan@example.com", "role": "admin"}`)

func testSessionService() *session.Service {
	return session.NewService(nil, config.SessionConfig{
		Secret:     testSecret,
		Expiration: testExpMin,
		Issuer:     testIssuer,
		CookieName: testCookieName,
	}, logger.Nop())
}

// buildTestApp construye una aplicación Fiber mínima con la carga de
// sesión, una ruta protegida y una ruta solo-anónimos.
func buildTestApp(t *testing.T) *fiber.App {
	t.Helper()
	svc := testSessionService()

	app := fiber.New()
	app.Use(apphttp.LoadSession(svc))
	app.Get("/protected", apphttp.RequireSession(), func(c *fiber.Ctx) error {
		u := apphttp.GetCurrentUser(c)
		return c.JSON(fiber.Map{"email": u.Email, "name": u.Name})
	})
	app.Get("/anon", apphttp.AnonymousOnly(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func sessionCookie(t *testing.T, snapshot json.RawMessage) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testSecret, testIssuer, testExpMin, snapshot)
	require.NoError(t, err, "debe generarse un token de sesión válido")
	return testCookieName + "=" + tok
}

func doRequest(t *testing.T, app *fiber.App, path, cookie string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != "" {
		req.Header.Set("Cookie", cookie)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de las guardas de sesión
// ──────────────────────────────────────────────────────────────────────────────

func TestRequireSession_SinCookieRetorna401ConRedirect(t *testing.T) {
	app := buildTestApp(t)
	resp := doRequest(t, app, "/protected", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "NO_SESSION")
	assert.Contains(t, string(body), "/login", "la respuesta sugiere la ruta de login")
}

func TestRequireSession_ConCookieValidaPasa(t *testing.T) {
	app := buildTestApp(t)
	resp := doRequest(t, app, "/protected", sessionCookie(t, testSnapshot))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "iwan@example.com", body["email"],
		"el usuario sale del snapshot embebido en la cookie")
	assert.Equal(t, "Iwan", body["name"])
}

func TestRequireSession_CookieCorruptaSePurgaYRetorna401(t *testing.T) {
	app := buildTestApp(t)
	resp := doRequest(t, app, "/protected", testCookieName+"=token.corrupto.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
		"una cookie ilegible equivale a no tener sesión")

	// La respuesta debe incluir la purga de la cookie.
	setCookie := strings.Join(resp.Header.Values("Set-Cookie"), "; ")
	assert.Contains(t, setCookie, testCookieName+"=",
		"la cookie corrupta se purga en la misma respuesta")
}

func TestRequireSession_FirmaAjenaNoVale(t *testing.T) {
	app := buildTestApp(t)
	tok, err := pkgjwt.Generate("otro-secret-distinto", testIssuer, testExpMin, testSnapshot)
	require.NoError(t, err)

	resp := doRequest(t, app, "/protected", testCookieName+"="+tok)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRequireSession_TokenExpirado(t *testing.T) {
	app := buildTestApp(t)
	tok, err := pkgjwt.Generate(testSecret, testIssuer, -1, testSnapshot)
	require.NoError(t, err)

	resp := doRequest(t, app, "/protected", testCookieName+"="+tok)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
		"un token caducado equivale a no tener sesión")
}

func TestAnonymousOnly_ConSesionRedirigeAPerfil(t *testing.T) {
	app := buildTestApp(t)

	resp := doRequest(t, app, "/anon", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode, "sin sesión la ruta anónima pasa")
	resp.Body.Close()

	resp = doRequest(t, app, "/anon", sessionCookie(t, testSnapshot))
	defer resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "/profil")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests del servicio de sesión — decode del snapshot
// ──────────────────────────────────────────────────────────────────────────────

func TestSessionDecode_SnapshotConAliasLegados(t *testing.T) {
	svc := testSessionService()
	tok, err := pkgjwt.Generate(testSecret, testIssuer, testExpMin,
		json.RawMessage(`{"id_user": "4", "Vorname": "Iwan", "Nachname": "Petrov", "email": "iwan@example.com"}`))
	require.NoError(t, err)

	user, err := svc.Decode(tok)
	require.NoError(t, err)
	assert.Equal(t, 4, user.ID)
	assert.Equal(t, "Iwan", user.Name)
	assert.Equal(t, "Petrov", user.Lastname)
}

func TestSessionDecode_TokenRotoEsSinSesion(t *testing.T) {
	svc := testSessionService()
	_, err := svc.Decode("no.es.jwt")
	assert.Error(t, err)
}
