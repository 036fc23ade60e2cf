package handler

import (
	"encoding/json"
	"net/http"

	"github.com/arcadelab/wavearena-go/internal/api/apierr"
	"github.com/arcadelab/wavearena-go/internal/api/middleware"
	"github.com/arcadelab/wavearena-go/internal/api/request"
	"github.com/arcadelab/wavearena-go/internal/api/response"
	"github.com/arcadelab/wavearena-go/internal/model"
	"github.com/arcadelab/wavearena-go/internal/services/auth"
)

// AuthHandler handles registration, login, logout and whoami endpoints
type AuthHandler struct {
	authService *auth.Service

	// cookieSecure sets the Secure flag on session cookies.
	// Off for local development; must be on behind TLS.
	cookieSecure bool
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *auth.Service, cookieSecure bool) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		cookieSecure: cookieSecure,
	}
}

// Register handles POST /api/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("Invalid request body"))
		return
	}

	if req.Username == "" || req.Password == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("Username and password are required"))
		return
	}

	session, err := h.authService.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	h.setSessionCookie(w, session)
	response.JSON(w, http.StatusCreated, response.Auth{Username: session.Username})
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("Invalid request body"))
		return
	}

	if req.Username == "" || req.Password == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("Username and password are required"))
		return
	}

	session, err := h.authService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	h.setSessionCookie(w, session)
	response.JSON(w, http.StatusOK, response.Auth{Username: session.Username})
}

// Logout handles POST /api/auth/logout.
// No auth gate: a request without a session is already logged out.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token := middleware.ExtractToken(r)
	if token == "" {
		response.JSON(w, http.StatusOK, response.Message{Message: "Already logged out"})
		return
	}

	if err := h.authService.Logout(r.Context(), token); err != nil {
		apierr.WriteError(w, apierr.NewLogoutFailedError())
		return
	}

	h.clearSessionCookie(w)
	response.JSON(w, http.StatusOK, response.Message{Message: "Logged out"})
}

// Me handles GET /api/auth/me
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	session := middleware.MustGetSession(r.Context())
	response.JSON(w, http.StatusOK, response.Auth{Username: session.Username})
}

func (h *AuthHandler) setSessionCookie(w http.ResponseWriter, session *model.Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    session.Token,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}
