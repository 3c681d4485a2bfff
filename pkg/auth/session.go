package auth

import (
	"crypto/sha256"
	"net/http"

	"github.com/gorilla/sessions"
)

// SessionName is the name of the login session cookie.
const SessionName = "demoday-session"

// sessionKeyToken is the session value holding the signed JWT.
const sessionKeyToken = "token"

// SessionStore wraps a cookie-based session store that carries the
// session token for browser clients. API clients can skip it and send
// the token as a bearer header instead.
type SessionStore struct {
	store *sessions.CookieStore
}

// NewSessionStore initializes the cookie-based session store.
//
// The secret parameter is used to sign session cookies. It can be any
// passphrase - it will be SHA-256 hashed to derive a 32-byte key.
//
// Security settings:
// - HttpOnly: true (inaccessible to JavaScript)
// - SameSite: Lax (the demo runs over plain HTTP locally)
func NewSessionStore(secret string, maxAge int) *SessionStore {
	key := sha256.Sum256([]byte(secret))

	store := sessions.NewCookieStore(key[:])
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	return &SessionStore{store: store}
}

// Save writes the token into the session cookie.
func (s *SessionStore) Save(w http.ResponseWriter, r *http.Request, token string) error {
	session, _ := s.store.Get(r, SessionName)
	session.Values[sessionKeyToken] = token
	return session.Save(r, w)
}

// Token reads the token from the session cookie. Returns empty string
// when no session exists.
func (s *SessionStore) Token(r *http.Request) string {
	session, err := s.store.Get(r, SessionName)
	if err != nil {
		return ""
	}
	token, _ := session.Values[sessionKeyToken].(string)
	return token
}

// Clear expires the session cookie.
func (s *SessionStore) Clear(w http.ResponseWriter, r *http.Request) error {
	session, _ := s.store.Get(r, SessionName)
	session.Options.MaxAge = -1
	delete(session.Values, sessionKeyToken)
	return session.Save(r, w)
}
