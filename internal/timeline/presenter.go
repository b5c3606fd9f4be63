// Package timeline derives the chronological suggestion view from an
// analysis result and drives the playback surface when a row is clicked.
package timeline

import (
	"sort"
	"strconv"

	"github.com/streameme/streameme/internal/domain"
	"github.com/streameme/streameme/internal/format"
)

// PlaybackSurface is the video player the presenter commands. Out-of-range
// seeks are the surface's responsibility, not validated here.
type PlaybackSurface interface {
	Seek(seconds float64)
	Play()
}

// Presenter turns analysis results into displayable rows and forwards
// jump actions to the playback surface.
type Presenter struct {
	surface PlaybackSurface
}

// NewPresenter creates a presenter driving surface.
func NewPresenter(surface PlaybackSurface) *Presenter {
	return &Presenter{surface: surface}
}

// VisibleSuggestions returns the result's suggestions sorted ascending by
// start time. The sort is stable: suggestions sharing a start time keep the
// service's original relative order across renders. The input is not
// mutated.
func VisibleSuggestions(result *domain.AnalysisResult) []domain.Suggestion {
	if result == nil || len(result.Suggestions) == 0 {
		return nil
	}
	out := make([]domain.Suggestion, len(result.Suggestions))
	copy(out, result.Suggestions)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StartTime < out[j].StartTime
	})
	return out
}

// JumpTo seeks the playback surface to the suggestion's start time and
// resumes playback. No suggestion state is mutated.
func (p *Presenter) JumpTo(s domain.Suggestion) {
	p.surface.Seek(s.StartTime)
	p.surface.Play()
}

// Row is one rendered timeline entry.
type Row struct {
	StartTime  float64 `json:"start_time"`
	EndTime    float64 `json:"end_time"`
	RangeLabel string  `json:"range_label"`
	Category   string  `json:"category"`
	Detail     string  `json:"detail"`
	MemeRef    string  `json:"meme_ref,omitempty"`
	Confidence float64 `json:"confidence"`
}

// Rows renders the sorted suggestion list for display. Suggestions whose
// category resolved to no asset still get a row, just without an image.
func Rows(result *domain.AnalysisResult) []Row {
	suggestions := VisibleSuggestions(result)
	rows := make([]Row, 0, len(suggestions))
	for _, s := range suggestions {
		rows = append(rows, Row{
			StartTime:  s.StartTime,
			EndTime:    s.EndTime,
			RangeLabel: format.TimeRange(s.StartTime, s.EndTime),
			Category:   s.Category,
			Detail:     "Category: " + s.Category + " – " + s.Description,
			MemeRef:    s.MemeRef,
			Confidence: s.Confidence,
		})
	}
	return rows
}

// Summary is the "analysis complete" panel state.
type Summary struct {
	FileName        string `json:"file_name"`
	SuggestionCount string `json:"suggestion_count"`
	AnalyzeMode     int    `json:"analyze_mode"`
	AnalyzedAt      string `json:"analyzed_at"`
}

// Summarize builds the completion panel for a result. An empty suggestion
// list reads as "0".
func Summarize(result *domain.AnalysisResult) *Summary {
	if result == nil {
		return nil
	}
	return &Summary{
		FileName:        result.FileName,
		SuggestionCount: strconv.Itoa(len(result.Suggestions)),
		AnalyzeMode:     result.AnalyzeMode,
		AnalyzedAt:      result.AnalyzeTime,
	}
}
