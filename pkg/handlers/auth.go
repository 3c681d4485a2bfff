package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/pear-vc/demoday-engine/pkg/auth"
	"github.com/pear-vc/demoday-engine/pkg/models"
)

// LoginRequest for POST /api/auth/login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse for POST /api/auth/login
type LoginResponse struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

// AuthHandler handles demo login, logout and identity lookups.
type AuthHandler struct {
	tokens     *auth.TokenService
	sessions   *auth.SessionStore
	middleware *auth.Middleware
	logger     *zap.Logger
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(tokens *auth.TokenService, sessions *auth.SessionStore, middleware *auth.Middleware, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		tokens:     tokens,
		sessions:   sessions,
		middleware: middleware,
		logger:     logger,
	}
}

// RegisterRoutes registers the auth handler's routes on the given mux.
func (h *AuthHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/auth/login", h.Login)
	mux.HandleFunc("POST /api/auth/logout", h.Logout)
	mux.HandleFunc("GET /api/auth/me", h.middleware.RequireAuth(h.Me))
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if err := ErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid JSON in request body"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	user := auth.ValidateCredentials(req.Email, req.Password)
	if user == nil {
		if err := ErrorResponse(w, http.StatusUnauthorized, "invalid_credentials", "Invalid email or password"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	token, err := h.tokens.Issue(user)
	if err != nil {
		h.logger.Error("Failed to issue token", zap.String("user_id", user.ID), zap.Error(err))
		if err := ErrorResponse(w, http.StatusInternalServerError, "login_failed", "Failed to issue token"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	if err := h.sessions.Save(w, r, token); err != nil {
		h.logger.Warn("Failed to save session cookie", zap.Error(err))
	}

	response := LoginResponse{User: user, Token: token}
	if err := WriteJSON(w, http.StatusOK, ApiResponse{Success: true, Data: response}); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// Logout handles POST /api/auth/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Clear(w, r); err != nil {
		h.logger.Warn("Failed to clear session cookie", zap.Error(err))
	}

	if err := WriteJSON(w, http.StatusOK, ApiResponse{Success: true, Message: "logged out"}); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// Me handles GET /api/auth/me
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.GetClaims(r.Context())
	if !ok {
		if err := ErrorResponse(w, http.StatusUnauthorized, "unauthorized", "Authentication required"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	user := auth.UserByID(claims.UserID())
	if user == nil {
		if err := ErrorResponse(w, http.StatusNotFound, "user_not_found", "User not found"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	if err := WriteJSON(w, http.StatusOK, ApiResponse{Success: true, Data: user}); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}
