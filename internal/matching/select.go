package matching

import (
	"sort"

	"github.com/PastaSec/orbitivexr/internal/domain"
)

// Select scores every candidate against the campaign and returns those at or
// above threshold (inclusive), ordered by descending score. Equal scores keep
// the original candidate order. An empty result means no designer qualified,
// which is not an error.
func Select(c domain.Campaign, candidates []domain.Designer, threshold float64) []domain.ScoredDesigner {
	matched := make([]domain.ScoredDesigner, 0, len(candidates))
	for _, d := range candidates {
		d.SceneTags = domain.NormalizeTags(d.SceneTags)
		d.ExportFormats = domain.NormalizeTags(d.ExportFormats)
		d.VisualMetadata = domain.NormalizeTags(d.VisualMetadata)

		score := Score(c, d)
		if score >= threshold {
			matched = append(matched, domain.ScoredDesigner{Designer: d, Score: score})
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Score > matched[j].Score
	})

	return matched
}
