package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/tiozaobarbearia/agenda-api/internal/config"
	"github.com/tiozaobarbearia/agenda-api/internal/routes"
	"github.com/tiozaobarbearia/agenda-api/internal/store"
)

func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	cfg := &config.Config{
		DataDir:       dir,
		JWTSecret:     "test-secret",
		ServerPort:    "0",
		AdminUsername: "admin",
		AdminPassword: "admin123",
	}

	ledger, err := store.NewAppointmentStore(dir)
	require.NoError(t, err)

	creds, err := store.NewCredentialStore(dir)
	require.NoError(t, err)
	require.NoError(t, creds.EnsureSeeded(context.Background(), cfg.AdminUsername, cfg.AdminPassword))

	r := gin.New()
	routes.RegisterRoutes(r, cfg, ledger, creds, nil)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func loginToken(t *testing.T, r *gin.Engine, username, password string) string {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"username": username,
		"password": password,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()

	var resp struct {
		Code string `json:"error_code"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Code
}

func TestRegister(t *testing.T) {
	r := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"username":         "alice",
		"password":         "secret123",
		"password_confirm": "secret123",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	t.Run("duplicate username is rejected case-insensitively", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
			"username":         "Alice",
			"password":         "secret123",
			"password_confirm": "secret123",
		})
		require.Equal(t, http.StatusBadRequest, w.Code)
		require.Equal(t, "duplicate_user", errorCode(t, w))
	})

	t.Run("password confirmation must match", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
			"username":         "bob",
			"password":         "secret123",
			"password_confirm": "secret456",
		})
		require.Equal(t, http.StatusBadRequest, w.Code)
		require.Equal(t, "password_mismatch", errorCode(t, w))
	})

	t.Run("username charset is validated", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
			"username":         "no spaces here",
			"password":         "secret123",
			"password_confirm": "secret123",
		})
		require.Equal(t, http.StatusBadRequest, w.Code)
		require.Equal(t, "invalid_username", errorCode(t, w))
	})
}

func TestLogin(t *testing.T) {
	r := newTestServer(t)

	t.Run("seeded admin can log in", func(t *testing.T) {
		token := loginToken(t, r, "admin", "admin123")
		require.NotEmpty(t, token)
	})

	t.Run("wrong password and unknown user are indistinguishable", func(t *testing.T) {
		wrongPass := doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
			"username": "admin",
			"password": "nope",
		})
		unknown := doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
			"username": "ghost",
			"password": "nope",
		})

		require.Equal(t, http.StatusUnauthorized, wrongPass.Code)
		require.Equal(t, http.StatusUnauthorized, unknown.Code)
		require.Equal(t, errorCode(t, wrongPass), errorCode(t, unknown))
		require.Equal(t, "invalid_credentials", errorCode(t, unknown))
	})
}

func TestSecuredRoutesRequireToken(t *testing.T) {
	r := newTestServer(t)

	w := doJSON(t, r, http.MethodGet, "/api/me", "", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/me/appointments", "not-a-token", gin.H{})
	require.Equal(t, http.StatusUnauthorized, w.Code)
}
