package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pear-vc/demoday-engine/pkg/apperrors"
)

// ConnectionStatus is the review state of a connection request.
type ConnectionStatus string

const (
	StatusUnreviewed ConnectionStatus = "unreviewed"
	StatusReviewed   ConnectionStatus = "reviewed"
	StatusAccepted   ConnectionStatus = "accepted"
	StatusDeclined   ConnectionStatus = "declined"
)

// IsValid reports whether s is one of the four known statuses.
func (s ConnectionStatus) IsValid() bool {
	switch s {
	case StatusUnreviewed, StatusReviewed, StatusAccepted, StatusDeclined:
		return true
	}
	return false
}

// IsTerminal reports whether s is a final state. Accepted and declined
// requests carry the founder's binding decision and cannot be moved again.
func (s ConnectionStatus) IsTerminal() bool {
	return s == StatusAccepted || s == StatusDeclined
}

// ConnectionRequest records an investor's expressed interest in a company.
// CompanyName is a denormalized snapshot captured at creation time; it is
// intentionally not re-derived if the company is later renamed.
type ConnectionRequest struct {
	ID               string           `json:"id"`
	InvestorID       string           `json:"investorId"`
	InvestorName     string           `json:"investorName"`
	InvestorEmail    string           `json:"investorEmail"`
	InvestorFirm     string           `json:"investorFirm,omitempty"`
	InvestorLinkedIn string           `json:"investorLinkedIn,omitempty"`
	CompanyID        string           `json:"companyId"`
	CompanyName      string           `json:"companyName"`
	Message          string           `json:"message"`
	Interests        []string         `json:"interests"`
	CheckSize        string           `json:"checkSize,omitempty"`
	Timeline         string           `json:"timeline,omitempty"`
	Status           ConnectionStatus `json:"status"`
	PearNotes        string           `json:"pearNotes,omitempty"`
	FounderResponse  string           `json:"founderResponse,omitempty"`
	CreatedAt        time.Time        `json:"createdAt"`
	ReviewedAt       *time.Time       `json:"reviewedAt,omitempty"`
	RespondedAt      *time.Time       `json:"respondedAt,omitempty"`
}

// ConnectionStats holds counts of connection requests grouped by status.
type ConnectionStats struct {
	Total      int `json:"total"`
	Unreviewed int `json:"unreviewed"`
	Reviewed   int `json:"reviewed"`
	Accepted   int `json:"accepted"`
	Declined   int `json:"declined"`
}

// InterestOptions is the fixed list of interests an investor may select.
var InterestOptions = []string{
	"Lead Investor",
	"Follow-on Investment",
	"Strategic Advisory",
	"Board Seat",
	"Exploring Opportunities",
}

// CheckSizeOptions is the fixed list of check size ranges.
var CheckSizeOptions = []string{
	"$50K - $250K",
	"$250K - $1M",
	"$1M - $5M",
	"$5M+",
	"Flexible",
}

// TimelineOptions is the fixed list of investment timelines.
var TimelineOptions = []string{
	"Immediate (Next 2 weeks)",
	"Short-term (1-3 months)",
	"Medium-term (3-6 months)",
	"Exploring",
}

// IsValidInterest reports whether interest is in InterestOptions.
func IsValidInterest(interest string) bool {
	for _, opt := range InterestOptions {
		if opt == interest {
			return true
		}
	}
	return false
}

// NewConnectionRequestID generates a unique request ID by combining a
// millisecond timestamp with a random suffix, so IDs sort roughly by
// creation time while remaining collision-free.
func NewConnectionRequestID() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return fmt.Sprintf("req-%d-%s", time.Now().UnixMilli(), suffix)
}

// TransitionEffects describes the timestamp side effects a legal status
// transition carries. Nil fields mean "leave unchanged"; timestamps are
// append-only and never cleared by a later transition.
type TransitionEffects struct {
	ReviewedAt  *time.Time
	RespondedAt *time.Time
}

// Transition validates a status change and returns its side effects.
// This is the single gate for all status writes; the store must never
// apply a raw status field without going through it.
//
// Legal transitions:
//
//	unreviewed -> reviewed   (sets ReviewedAt)
//	reviewed   -> unreviewed (ReviewedAt stays set)
//	unreviewed -> accepted   (sets RespondedAt)
//	unreviewed -> declined   (sets RespondedAt)
//	reviewed   -> accepted   (sets RespondedAt)
//	reviewed   -> declined   (sets RespondedAt)
//
// Accepted and declined are terminal; any transition out of them is
// rejected with ErrInvalidTransition.
func Transition(current, requested ConnectionStatus, now time.Time) (*TransitionEffects, error) {
	if !requested.IsValid() {
		return nil, fmt.Errorf("%w: unknown status %q", apperrors.ErrInvalidTransition, requested)
	}
	if current == requested {
		// No-op transition; no side effects.
		return &TransitionEffects{}, nil
	}
	if current.IsTerminal() {
		return nil, fmt.Errorf("%w: %s is terminal", apperrors.ErrInvalidTransition, current)
	}

	effects := &TransitionEffects{}
	switch requested {
	case StatusReviewed:
		effects.ReviewedAt = &now
	case StatusAccepted, StatusDeclined:
		effects.RespondedAt = &now
	case StatusUnreviewed:
		// Un-review keeps ReviewedAt: the record stays marked as having
		// been looked at even though it returns to the triage queue.
	}
	return effects, nil
}
