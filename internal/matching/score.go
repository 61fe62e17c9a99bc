// Package matching holds the weighted compatibility rubric between one
// campaign and the pool of registered designers. Scoring is pure and total:
// a missing designer field is a failing criterion, never an error.
package matching

import (
	"github.com/PastaSec/orbitivexr/internal/domain"
)

const (
	BudgetWeight        = 20.0
	AmbianceWeight      = 20.0
	PlatformWeight      = 15.0
	InteractivityWeight = 15.0
	StyleWeight         = 15.0
	TimelineWeight      = 10.0

	// PerformanceMultiplier scales the historical performance score, which is
	// nominally in [0,1] but not enforced, so the total can exceed 100.
	PerformanceMultiplier = 5.0
)

// Score computes the weighted compatibility of one designer against one
// campaign. Each criterion contributes its full weight or nothing; the
// performance term scales linearly and is deliberately uncapped.
func Score(c domain.Campaign, d domain.Designer) float64 {
	score := 0.0

	if d.RateTier != nil && c.Budget >= *d.RateTier {
		score += BudgetWeight
	}

	sceneTags := domain.NormalizeTags(d.SceneTags)
	if c.Ambiance != "" && sceneTags.Contains(c.Ambiance) {
		score += AmbianceWeight
	}

	exportFormats := domain.NormalizeTags(d.ExportFormats)
	if c.PlatformPref != "" && exportFormats.Contains(c.PlatformPref) {
		score += PlatformWeight
	}

	if d.GameLogicExperience != nil && *d.GameLogicExperience >= c.Interactivity {
		score += InteractivityWeight
	}

	visualMetadata := domain.NormalizeTags(d.VisualMetadata)
	if c.Style != "" && visualMetadata.Contains(c.Style) {
		score += StyleWeight
	}

	// Lexicographic comparison, deliberately not date-aware.
	if d.Availability != "" && c.Timeline != "" && d.Availability <= c.Timeline {
		score += TimelineWeight
	}

	if d.PerformanceScore != 0 {
		score += d.PerformanceScore * PerformanceMultiplier
	}

	return score
}
