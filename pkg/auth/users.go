// Package auth provides the demo credential login and request
// authentication for demoday-engine. Accounts are a fixed list; tokens
// are HMAC-signed JWTs carried in a bearer header or a session cookie.
package auth

import (
	"github.com/pear-vc/demoday-engine/pkg/models"
	"github.com/pear-vc/demoday-engine/pkg/seed"
)

// ValidateCredentials checks an email/password pair against the demo
// user list. Returns nil when no user matches.
func ValidateCredentials(email, password string) *models.User {
	for _, u := range seed.Users() {
		if u.Email == email && u.Password == password {
			return u
		}
	}
	return nil
}

// UserByID returns a demo user by ID, or nil.
func UserByID(id string) *models.User {
	for _, u := range seed.Users() {
		if u.ID == id {
			return u
		}
	}
	return nil
}
