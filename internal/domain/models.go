package domain

import (
	"time"
)

type Campaign struct {
	ID            int64
	Budget        float64
	Ambiance      string
	PlatformPref  string
	Interactivity int
	Style         string
	Timeline      string // compared lexicographically against designer availability
	SubmittedAt   time.Time
}

type Designer struct {
	ID                  int64
	Name                string
	RateTier            *float64 // nil when the tier was never recorded
	SceneTags           TagList
	ExportFormats       TagList
	GameLogicExperience *int
	VisualMetadata      TagList
	Availability        string
	PerformanceScore    float64 // zero and never-recorded score the same
}

// ScoredDesigner pairs a designer with its score for one campaign. It is
// computed per match request and never stored.
type ScoredDesigner struct {
	Designer Designer
	Score    float64
}

// MatchRun is the audit record of one match request. It keeps run metadata
// only; designer/score pairings stay transient.
type MatchRun struct {
	ID         string // nanoid
	CampaignID int64
	Threshold  float64
	Matched    int
	CreatedAt  time.Time
}
