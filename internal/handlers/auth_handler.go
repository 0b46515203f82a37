package handlers

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/tiozaobarbearia/agenda-api/internal/audit"
	"github.com/tiozaobarbearia/agenda-api/internal/config"
	"github.com/tiozaobarbearia/agenda-api/internal/httperr"
	"github.com/tiozaobarbearia/agenda-api/internal/httpresp"
	"github.com/tiozaobarbearia/agenda-api/internal/metrics"
	"github.com/tiozaobarbearia/agenda-api/internal/store"
	"github.com/tiozaobarbearia/agenda-api/internal/validators"
)

type AuthHandler struct {
	creds   *store.CredentialStore
	config  *config.Config
	metrics *metrics.BookingMetrics
	audit   *audit.Dispatcher
}

func NewAuthHandler(
	creds *store.CredentialStore,
	cfg *config.Config,
	m *metrics.BookingMetrics,
	audit *audit.Dispatcher,
) *AuthHandler {
	return &AuthHandler{creds: creds, config: cfg, metrics: m, audit: audit}
}

// --------- Requests ---------

type RegisterRequest struct {
	Username        string `json:"username" binding:"required"`
	Password        string `json:"password" binding:"required,min=6"`
	PasswordConfirm string `json:"password_confirm" binding:"required"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Preencha todos os campos.")
		return
	}

	username := strings.TrimSpace(req.Username)

	if !validators.IsUsernameValid(username) {
		httperr.BadRequest(c, "invalid_username", "Nome de usuário inválido.")
		return
	}

	if req.Password != req.PasswordConfirm {
		httperr.BadRequest(c, "password_mismatch", "As senhas não conferem.")
		return
	}

	if err := h.creds.Register(c.Request.Context(), username, req.Password); err != nil {
		h.metrics.ObserveAuth("register", "failed")
		respondError(c, err)
		return
	}

	h.metrics.ObserveAuth("register", "ok")
	h.audit.Dispatch(audit.Event{
		Username: username,
		Action:   "user_registered",
		Entity:   "user",
	})

	httpresp.Created(c, gin.H{"username": username})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Informe usuário e senha.")
		return
	}

	username := strings.TrimSpace(req.Username)

	ok, err := h.creds.Authenticate(c.Request.Context(), username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	if !ok {
		// unknown user and wrong password look the same on purpose
		h.metrics.ObserveAuth("login", "failed")
		httperr.Unauthorized(c, "invalid_credentials", "Usuário ou senha inválidos.")
		return
	}

	token, err := h.generateToken(username)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Erro interno.")
		return
	}

	h.metrics.ObserveAuth("login", "ok")

	httpresp.OK(c, gin.H{
		"user":  gin.H{"username": username},
		"token": token,
	})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(username string) (string, error) {
	claims := jwt.MapClaims{
		"sub": username,
		"exp": time.Now().Add(24 * time.Hour).Unix(),
		"iat": time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
