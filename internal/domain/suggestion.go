package domain

// Suggestion is one time-ranged moment detected by the analysis service,
// normalized for presentation. MemeRef is picked exactly once, when the raw
// response is normalized, and never re-randomized afterwards; it is empty
// when the category is not in the asset catalog. Confidence is synthetic,
// generated client-side in [0.7, 1.0).
type Suggestion struct {
	StartTime   float64 `json:"start_time"`
	EndTime     float64 `json:"end_time"`
	Category    string  `json:"category"`
	MemeRef     string  `json:"meme_ref,omitempty"`
	Description string  `json:"description"`
	Confidence  float64 `json:"confidence"`
}

// AnalysisResult is the normalized output of one successful upload. It is
// immutable once produced and replaced wholesale by the next success.
// Suggestions keep the service's order; sorting happens in the presenter.
type AnalysisResult struct {
	FileName    string       `json:"file_name"`
	AnalyzeTime string       `json:"analyze_time"`
	AnalyzeMode int          `json:"analyze_mode"`
	Suggestions []Suggestion `json:"suggestions"`
}
