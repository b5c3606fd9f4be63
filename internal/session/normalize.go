package session

import (
	"github.com/streameme/streameme/internal/analyzer"
	"github.com/streameme/streameme/internal/domain"
	"github.com/streameme/streameme/internal/memelib"
)

// Normalize transforms raw service output into the immutable result model.
// This is the single point where a suggestion's meme asset is picked; the
// stored reference is never re-randomized afterwards. Unknown categories
// resolve to an empty reference and the presentation renders without the
// image. Service order is preserved; sorting belongs to the presenter.
func Normalize(raw *analyzer.Response, selector *memelib.Selector, rng Rand) *domain.AnalysisResult {
	suggestions := make([]domain.Suggestion, 0, len(raw.Suggestions))
	for _, rs := range raw.Suggestions {
		category := rs.MemeTypeDesc
		suggestions = append(suggestions, domain.Suggestion{
			StartTime:   clampNonNegative(float64(rs.Start)),
			EndTime:     clampNonNegative(float64(rs.End)),
			Category:    category,
			MemeRef:     selector.PickRandom(category),
			Description: domain.DescriptionFor(category),
			Confidence:  0.7 + rng.Float64()*0.3,
		})
	}

	return &domain.AnalysisResult{
		FileName:    raw.FileName,
		AnalyzeTime: string(raw.AnalyzeTime),
		AnalyzeMode: raw.AnalyzeMode,
		Suggestions: suggestions,
	}
}

// clampNonNegative floors malformed negative timestamps at zero. end < start
// is deliberately left as-is; the service contract does not define the
// intended behavior and the playback surface owns range handling.
func clampNonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
