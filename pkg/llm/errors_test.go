package llm

import (
	"errors"
	"fmt"
	"testing"
)

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantType  ErrorType
		retryable bool
	}{
		{"quota exhausted", errors.New("429: You exceeded your current quota"), ErrorTypeRateLimit, true},
		{"rate limit text", errors.New("Rate limit reached for requests"), ErrorTypeRateLimit, true},
		{"unauthorized", errors.New("401 Unauthorized"), ErrorTypeAuth, false},
		{"invalid key", errors.New("Incorrect API key provided: invalid api key"), ErrorTypeAuth, false},
		{"forbidden", errors.New("status 403"), ErrorTypeAuth, false},
		{"connection refused", errors.New("dial tcp: connection refused"), ErrorTypeEndpoint, true},
		{"no such host", errors.New("lookup api.example.com: no such host"), ErrorTypeEndpoint, true},
		{"timeout", errors.New("request timeout exceeded"), ErrorTypeEndpoint, true},
		{"server error", errors.New("502 Bad Gateway"), ErrorTypeEndpoint, true},
		{"unknown", errors.New("something unexpected"), ErrorTypeUnknown, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			classified := ClassifyError(tt.err)
			if classified.Type != tt.wantType {
				t.Errorf("Type = %q, want %q", classified.Type, tt.wantType)
			}
			if classified.Retryable != tt.retryable {
				t.Errorf("Retryable = %v, want %v", classified.Retryable, tt.retryable)
			}
		})
	}
}

func TestClassifyErrorQuotaBeatsAuth(t *testing.T) {
	// Quota errors can mention billing and permissions; the rate limit
	// classification must win.
	err := errors.New("429: You exceeded your current quota, please check your plan and billing details")
	if got := ClassifyError(err).Type; got != ErrorTypeRateLimit {
		t.Errorf("Type = %q, want rate limit", got)
	}
}

func TestClassifyErrorNil(t *testing.T) {
	if ClassifyError(nil) != nil {
		t.Error("expected nil for nil error")
	}
}

func TestClassifyErrorPassesThroughStructured(t *testing.T) {
	orig := NewError(ErrorTypeAuth, "authentication failed", false, errors.New("boom"))
	wrapped := fmt.Errorf("call failed: %w", orig)

	if got := ClassifyError(wrapped); got != orig {
		t.Errorf("expected the original structured error back, got %+v", got)
	}
	if GetErrorType(wrapped) != ErrorTypeAuth {
		t.Error("GetErrorType must unwrap structured errors")
	}
}

func TestErrorStringIncludesStatusCode(t *testing.T) {
	err := &Error{Type: ErrorTypeRateLimit, Message: "rate limited", StatusCode: 429}
	want := "rate limit HTTP 429 rate limited"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
