// Package models contains domain types for demoday-engine.
package models

import "time"

// Stage constants for company funding stages.
const (
	StagePreSeed = "Pre-Seed"
	StageSeed    = "Seed"
	StageSeriesA = "Series A"
	StageSeriesB = "Series B"
)

// Company represents a startup listed on the demo day platform.
// Companies are created by administrative seeding and are immutable
// in normal operation.
type Company struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Tagline      string     `json:"tagline"`
	Logo         string     `json:"logo,omitempty"`
	Description  string     `json:"description"`
	Industry     string     `json:"industry"`
	Stage        string     `json:"stage"`
	Batch        string     `json:"batch"`
	Location     string     `json:"location"`
	Website      string     `json:"website,omitempty"`
	VideoURL     string     `json:"videoUrl,omitempty"`
	PitchDeckURL string     `json:"pitchDeckUrl,omitempty"`
	Tags         []string   `json:"tags"`
	Featured     bool       `json:"featured"`
	Image        string     `json:"image,omitempty"`
	Founders     []*Founder `json:"founders"`
	CreatedAt    time.Time  `json:"createdAt"`
}

// Founder represents a member of a company's founding team.
// Founders are seeded alongside their company and hold a back-reference
// to it via CompanyID.
type Founder struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Title     string    `json:"title"`
	Photo     string    `json:"photo,omitempty"`
	Bio       string    `json:"bio"`
	LinkedIn  string    `json:"linkedIn,omitempty"`
	Twitter   string    `json:"twitter,omitempty"`
	CompanyID string    `json:"companyId"`
	CreatedAt time.Time `json:"createdAt"`
}

// IsValidStage reports whether stage is one of the known funding stages.
func IsValidStage(stage string) bool {
	switch stage {
	case StagePreSeed, StageSeed, StageSeriesA, StageSeriesB:
		return true
	}
	return false
}
