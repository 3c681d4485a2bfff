package models

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/pear-vc/demoday-engine/pkg/apperrors"
)

func TestTransitionLegalMoves(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name            string
		current         ConnectionStatus
		requested       ConnectionStatus
		wantReviewedAt  bool
		wantRespondedAt bool
	}{
		{"review", StatusUnreviewed, StatusReviewed, true, false},
		{"unreview", StatusReviewed, StatusUnreviewed, false, false},
		{"accept from unreviewed", StatusUnreviewed, StatusAccepted, false, true},
		{"accept from reviewed", StatusReviewed, StatusAccepted, false, true},
		{"decline from unreviewed", StatusUnreviewed, StatusDeclined, false, true},
		{"decline from reviewed", StatusReviewed, StatusDeclined, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			effects, err := Transition(tt.current, tt.requested, now)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := effects.ReviewedAt != nil; got != tt.wantReviewedAt {
				t.Errorf("ReviewedAt set = %v, want %v", got, tt.wantReviewedAt)
			}
			if got := effects.RespondedAt != nil; got != tt.wantRespondedAt {
				t.Errorf("RespondedAt set = %v, want %v", got, tt.wantRespondedAt)
			}
			if effects.ReviewedAt != nil && !effects.ReviewedAt.Equal(now) {
				t.Errorf("ReviewedAt = %v, want %v", effects.ReviewedAt, now)
			}
			if effects.RespondedAt != nil && !effects.RespondedAt.Equal(now) {
				t.Errorf("RespondedAt = %v, want %v", effects.RespondedAt, now)
			}
		})
	}
}

func TestTransitionTerminalStatesAreFinal(t *testing.T) {
	now := time.Now()

	for _, terminal := range []ConnectionStatus{StatusAccepted, StatusDeclined} {
		for _, target := range []ConnectionStatus{StatusUnreviewed, StatusReviewed, StatusAccepted, StatusDeclined} {
			if target == terminal {
				continue
			}
			_, err := Transition(terminal, target, now)
			if !errors.Is(err, apperrors.ErrInvalidTransition) {
				t.Errorf("Transition(%s, %s) = %v, want ErrInvalidTransition", terminal, target, err)
			}
		}
	}
}

func TestTransitionSameStatusIsNoop(t *testing.T) {
	for _, status := range []ConnectionStatus{StatusUnreviewed, StatusReviewed, StatusAccepted, StatusDeclined} {
		effects, err := Transition(status, status, time.Now())
		if err != nil {
			t.Errorf("Transition(%s, %s): unexpected error %v", status, status, err)
			continue
		}
		if effects.ReviewedAt != nil || effects.RespondedAt != nil {
			t.Errorf("Transition(%s, %s): expected no side effects", status, status)
		}
	}
}

func TestTransitionRejectsUnknownStatus(t *testing.T) {
	_, err := Transition(StatusUnreviewed, ConnectionStatus("archived"), time.Now())
	if !errors.Is(err, apperrors.ErrInvalidTransition) {
		t.Errorf("expected ErrInvalidTransition for unknown status, got %v", err)
	}
}

func TestConnectionStatusIsTerminal(t *testing.T) {
	if StatusUnreviewed.IsTerminal() || StatusReviewed.IsTerminal() {
		t.Error("open statuses must not be terminal")
	}
	if !StatusAccepted.IsTerminal() || !StatusDeclined.IsTerminal() {
		t.Error("accepted and declined must be terminal")
	}
}

func TestNewConnectionRequestID(t *testing.T) {
	id := NewConnectionRequestID()
	if !strings.HasPrefix(id, "req-") {
		t.Errorf("expected req- prefix, got %q", id)
	}

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewConnectionRequestID()
		if seen[id] {
			t.Fatalf("duplicate ID generated: %q", id)
		}
		seen[id] = true
	}
}

func TestIsValidInterest(t *testing.T) {
	if !IsValidInterest("Lead Investor") {
		t.Error("expected Lead Investor to be a valid interest")
	}
	if IsValidInterest("Skydiving") {
		t.Error("expected Skydiving to be rejected")
	}
}
