package auth

import (
	"context"

	"github.com/golang-jwt/jwt/v5"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

// ClaimsKey is the context key for storing JWT claims.
const ClaimsKey contextKey = "claims"

// Claims represents the JWT claims carried by a demoday session token.
// It embeds RegisteredClaims for standard JWT fields (sub, exp, iat).
type Claims struct {
	jwt.RegisteredClaims
	Email     string `json:"email,omitempty"`
	Name      string `json:"name,omitempty"`
	Role      string `json:"role,omitempty"`
	CompanyID string `json:"cid,omitempty"` // For founder accounts
}

// UserID returns the subject claim (the demo user ID).
func (c *Claims) UserID() string {
	return c.Subject
}

// GetClaims retrieves JWT claims from the request context.
// Returns nil and false if claims are not present.
func GetClaims(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(ClaimsKey).(*Claims)
	return claims, ok
}
