package auth

import (
	"context"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// Middleware authenticates requests from a bearer header or the session
// cookie and injects claims into the request context.
type Middleware struct {
	tokens   *TokenService
	sessions *SessionStore
	logger   *zap.Logger
}

// NewMiddleware creates an auth middleware.
func NewMiddleware(tokens *TokenService, sessions *SessionStore, logger *zap.Logger) *Middleware {
	return &Middleware{
		tokens:   tokens,
		sessions: sessions,
		logger:   logger,
	}
}

// RequireAuth wraps a handler, rejecting requests without a valid token.
func (m *Middleware) RequireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := m.authenticate(r)
		if !ok {
			http.Error(w, "authentication required", http.StatusUnauthorized)
			return
		}
		next(w, r.WithContext(context.WithValue(r.Context(), ClaimsKey, claims)))
	}
}

// RequireRole wraps a handler, additionally requiring one of the given roles.
func (m *Middleware) RequireRole(roles ...string) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return m.RequireAuth(func(w http.ResponseWriter, r *http.Request) {
			claims, _ := GetClaims(r.Context())
			for _, role := range roles {
				if claims.Role == role {
					next(w, r)
					return
				}
			}
			m.logger.Debug("Role check failed",
				zap.String("user_id", claims.UserID()),
				zap.String("role", claims.Role),
				zap.Strings("required", roles))
			http.Error(w, "forbidden", http.StatusForbidden)
		})
	}
}

// authenticate extracts and verifies a token from the request. The bearer
// header wins over the session cookie when both are present.
func (m *Middleware) authenticate(r *http.Request) (*Claims, bool) {
	token := bearerToken(r)
	if token == "" && m.sessions != nil {
		token = m.sessions.Token(r)
	}
	if token == "" {
		return nil, false
	}

	claims, err := m.tokens.Verify(token)
	if err != nil {
		m.logger.Debug("Token verification failed", zap.Error(err))
		return nil, false
	}
	return claims, true
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}
