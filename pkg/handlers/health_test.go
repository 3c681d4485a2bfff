package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/pear-vc/demoday-engine/pkg/config"
)

func TestHealthEndpoint(t *testing.T) {
	mux := http.NewServeMux()
	NewHealthHandler(&config.Config{Version: "test", Env: "local"}, zap.NewNop()).RegisterRoutes(mux)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d", rec.Code)
	}
	if rec.Body.String() != "ok" {
		t.Errorf("body = %q", rec.Body.String())
	}
}

func TestPingEndpoint(t *testing.T) {
	mux := http.NewServeMux()
	NewHealthHandler(&config.Config{Version: "1.2.3", Env: "local"}, zap.NewNop()).RegisterRoutes(mux)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	envelope := decodeEnvelope(t, rec)
	if envelope["version"] != "1.2.3" {
		t.Errorf("version = %v", envelope["version"])
	}
	if envelope["service"] != "demoday-engine" {
		t.Errorf("service = %v", envelope["service"])
	}
}
