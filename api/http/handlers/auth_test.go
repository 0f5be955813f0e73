package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	httpapi "github.com/jameshwang7534/Family-Tree/api/http"
	"github.com/jameshwang7534/Family-Tree/api/http/handlers"
	"github.com/jameshwang7534/Family-Tree/api/http/presenter"
	"github.com/jameshwang7534/Family-Tree/pkg/auth"
	"github.com/jameshwang7534/Family-Tree/pkg/health"
	"github.com/jameshwang7534/Family-Tree/pkg/repository/memory"
	jwtsec "github.com/jameshwang7534/Family-Tree/pkg/security/jwt"
	"github.com/jameshwang7534/Family-Tree/pkg/tree"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	tokens := jwtsec.NewService("test-secret", time.Hour)
	guard := jwtsec.NewGuard(tokens)
	authUC := auth.NewService(memory.NewUserRepository(), tokens)
	treeUC := tree.NewService(memory.NewTreeRepository())

	app := fiber.New()
	httpapi.Register(app,
		handlers.NewAuthHandler(authUC, guard),
		handlers.NewTreeHandler(treeUC, guard),
		handlers.NewHealthHandler(health.NewService()),
	)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) (*http.Response, []byte) {
	t.Helper()

	var buf io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		buf = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, buf)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}

func register(t *testing.T, app *fiber.App, email, password, first, last string) presenter.AuthResponse {
	t.Helper()

	resp, raw := doJSON(t, app, fiber.MethodPost, "/api/auth/register", "", fiber.Map{
		"email": email, "password": password, "firstName": first, "lastName": last,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(raw))

	var out presenter.AuthResponse
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func TestRegisterLoginMeFlow(t *testing.T) {
	t.Parallel()
	app := newTestApp(t)

	reg := register(t, app, "a@x.com", "pw1", "A", "B")
	require.NotEmpty(t, reg.Token)
	require.NotEmpty(t, reg.User.ID)
	require.Equal(t, "a@x.com", reg.User.Email)

	// The issued token resolves to the registered identity.
	resp, raw := doJSON(t, app, fiber.MethodGet, "/api/auth/me", "Bearer "+reg.Token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var me presenter.UserResponse
	require.NoError(t, json.Unmarshal(raw, &me))
	require.Equal(t, reg.User.ID, me.ID)

	resp, _ = doJSON(t, app, fiber.MethodPost, "/api/auth/login", "", fiber.Map{
		"email": "a@x.com", "password": "wrong",
	})
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, raw = doJSON(t, app, fiber.MethodPost, "/api/auth/login", "", fiber.Map{
		"email": "a@x.com", "password": "pw1",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var login presenter.AuthResponse
	require.NoError(t, json.Unmarshal(raw, &login))
	require.Equal(t, reg.User.ID, login.User.ID)

	// A second login may issue a different token; both resolve the same id.
	resp, raw = doJSON(t, app, fiber.MethodGet, "/api/auth/me", "Bearer "+login.Token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(raw, &me))
	require.Equal(t, reg.User.ID, me.ID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	t.Parallel()
	app := newTestApp(t)

	register(t, app, "a@x.com", "pw1", "A", "B")

	resp, _ := doJSON(t, app, fiber.MethodPost, "/api/auth/register", "", fiber.Map{
		"email": "a@x.com", "password": "pw2", "firstName": "C", "lastName": "D",
	})
	require.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestRegisterMissingFields(t *testing.T) {
	t.Parallel()
	app := newTestApp(t)

	payloads := []fiber.Map{
		{"password": "pw", "firstName": "A", "lastName": "B"},
		{"email": "a@x.com", "firstName": "A", "lastName": "B"},
		{"email": "a@x.com", "password": "pw", "lastName": "B"},
		{"email": "a@x.com", "password": "pw", "firstName": "A"},
	}
	for _, p := range payloads {
		resp, _ := doJSON(t, app, fiber.MethodPost, "/api/auth/register", "", p)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	}
}

func TestMeRejectsBadAuthorization(t *testing.T) {
	t.Parallel()
	app := newTestApp(t)

	register(t, app, "a@x.com", "pw1", "A", "B")

	for _, header := range []string{"", "Token abc", "Bearer", "Bearer garbage"} {
		resp, _ := doJSON(t, app, fiber.MethodGet, "/api/auth/me", header, nil)
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode, "header %q", header)
	}
}

func TestMeRejectsExpiredToken(t *testing.T) {
	t.Parallel()
	app := newTestApp(t)

	reg := register(t, app, "a@x.com", "pw1", "A", "B")

	// Token signed with the right secret but already expired.
	expired := jwtsec.NewService("test-secret", -1*time.Second)
	id, err := uuid.Parse(reg.User.ID)
	require.NoError(t, err)
	tok, err := expired.Issue(context.Background(), auth.User{ID: id, Email: reg.User.Email})
	require.NoError(t, err)

	resp, _ := doJSON(t, app, fiber.MethodGet, "/api/auth/me", "Bearer "+tok, nil)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLogout(t *testing.T) {
	t.Parallel()
	app := newTestApp(t)

	resp, raw := doJSON(t, app, fiber.MethodPost, "/api/auth/logout", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, string(raw), "Logged out")
}

func TestHealth(t *testing.T) {
	t.Parallel()
	app := newTestApp(t)

	resp, raw := doJSON(t, app, fiber.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, string(raw), "ok")

	resp, raw = doJSON(t, app, fiber.MethodGet, "/ready", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, string(raw), "ready")
}
