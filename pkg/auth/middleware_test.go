package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/pear-vc/demoday-engine/pkg/models"
)

func newTestMiddleware(t *testing.T) (*Middleware, *TokenService, *SessionStore) {
	t.Helper()
	tokens := NewTokenService("test-secret", time.Hour)
	sessions := NewSessionStore("test-secret", 3600)
	return NewMiddleware(tokens, sessions, zap.NewNop()), tokens, sessions
}

func TestRequireAuthBearerToken(t *testing.T) {
	mw, tokens, _ := newTestMiddleware(t)

	token, err := tokens.Issue(testUser())
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	var gotClaims *Claims
	handler := mw.RequireAuth(func(w http.ResponseWriter, r *http.Request) {
		gotClaims, _ = GetClaims(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/api/connections", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if gotClaims == nil || gotClaims.UserID() != "investor-1" {
		t.Errorf("claims not injected: %+v", gotClaims)
	}
}

func TestRequireAuthSessionCookie(t *testing.T) {
	mw, tokens, sessions := newTestMiddleware(t)

	token, err := tokens.Issue(testUser())
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	// Log in: capture the cookie the session store sets.
	loginRec := httptest.NewRecorder()
	if err := sessions.Save(loginRec, httptest.NewRequest(http.MethodPost, "/api/auth/login", nil), token); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	cookies := loginRec.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("expected a session cookie")
	}

	called := false
	handler := mw.RequireAuth(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	req := httptest.NewRequest(http.MethodGet, "/api/connections", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusOK || !called {
		t.Errorf("status = %d, called = %v", rec.Code, called)
	}
}

func TestRequireAuthRejectsMissingToken(t *testing.T) {
	mw, _, _ := newTestMiddleware(t)

	handler := mw.RequireAuth(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler must not run without a token")
	})

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodGet, "/api/connections", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestRequireAuthRejectsTamperedToken(t *testing.T) {
	mw, tokens, _ := newTestMiddleware(t)

	token, _ := tokens.Issue(testUser())

	handler := mw.RequireAuth(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler must not run with a tampered token")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/connections", nil)
	req.Header.Set("Authorization", "Bearer "+token+"x")
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestRequireRole(t *testing.T) {
	mw, tokens, _ := newTestMiddleware(t)

	investorToken, _ := tokens.Issue(testUser())
	adminToken, _ := tokens.Issue(&models.User{ID: "admin-1", Role: models.RoleAdmin})

	handler := mw.RequireRole(models.RoleAdmin)(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodPost, "/api/admin/seed", nil)
	req.Header.Set("Authorization", "Bearer "+investorToken)
	rec := httptest.NewRecorder()
	handler(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Errorf("investor: status = %d, want 403", rec.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/api/admin/seed", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	rec = httptest.NewRecorder()
	handler(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Errorf("admin: status = %d, want 204", rec.Code)
	}
}
