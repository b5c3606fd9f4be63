package session

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/streameme/streameme/internal/analyzer"
	"github.com/streameme/streameme/internal/domain"
	"github.com/streameme/streameme/internal/memelib"
)

func TestNormalizeMapsFields(t *testing.T) {
	lib := memelib.New("/memes")
	rng := rand.New(rand.NewSource(7))

	raw := &analyzer.Response{
		FileName:    "clip.mp4",
		AnalyzeTime: "2024-05-01T10:00:00Z",
		AnalyzeMode: 1,
		Suggestions: []analyzer.RawSuggestion{
			{Start: 12, End: 15.5, MemeTypeDesc: "anger"},
			{Start: 3, End: 4, MemeTypeDesc: "sorrow"},
		},
	}

	res := Normalize(raw, memelib.NewSelector(lib, rng), rng)

	if res.FileName != "clip.mp4" || res.AnalyzeMode != 1 || res.AnalyzeTime != "2024-05-01T10:00:00Z" {
		t.Errorf("header fields: %+v", res)
	}
	if len(res.Suggestions) != 2 {
		t.Fatalf("got %d suggestions", len(res.Suggestions))
	}

	// Insertion order preserved, not sorted
	if res.Suggestions[0].StartTime != 12 || res.Suggestions[1].StartTime != 3 {
		t.Errorf("normalization reordered suggestions: %+v", res.Suggestions)
	}

	first := res.Suggestions[0]
	if first.Category != "anger" {
		t.Errorf("category = %q", first.Category)
	}
	if !strings.HasPrefix(first.MemeRef, "/memes/anger/anger_") {
		t.Errorf("meme ref = %q", first.MemeRef)
	}
	if first.Description != "an angry or frustrated reaction" {
		t.Errorf("description = %q", first.Description)
	}
}

func TestNormalizeConfidenceRange(t *testing.T) {
	lib := memelib.New("/memes")
	rng := rand.New(rand.NewSource(99))

	raw := &analyzer.Response{Suggestions: make([]analyzer.RawSuggestion, 200)}
	for i := range raw.Suggestions {
		raw.Suggestions[i] = analyzer.RawSuggestion{MemeTypeDesc: "love"}
	}

	res := Normalize(raw, memelib.NewSelector(lib, rng), rng)
	for i, sug := range res.Suggestions {
		if sug.Confidence < 0.7 || sug.Confidence >= 1.0 {
			t.Fatalf("suggestion %d confidence %v out of [0.7, 1.0)", i, sug.Confidence)
		}
	}
}

func TestNormalizeUnknownCategory(t *testing.T) {
	lib := memelib.New("/memes")
	rng := rand.New(rand.NewSource(1))

	raw := &analyzer.Response{
		Suggestions: []analyzer.RawSuggestion{
			{Start: 5, End: 6, MemeTypeDesc: "disgust"},
		},
	}

	res := Normalize(raw, memelib.NewSelector(lib, rng), rng)
	sug := res.Suggestions[0]
	if sug.MemeRef != "" {
		t.Errorf("unknown category resolved to %q, want empty", sug.MemeRef)
	}
	if sug.Description != domain.DefaultDescription {
		t.Errorf("description = %q, want default", sug.Description)
	}
}

func TestNormalizeDescriptionFallbackForCatalogOnlyKeys(t *testing.T) {
	// happiness, hate, and love are catalog categories without their own
	// description entries; they fall back to the neutral phrase but still
	// resolve an asset.
	lib := memelib.New("/memes")
	rng := rand.New(rand.NewSource(1))

	raw := &analyzer.Response{
		Suggestions: []analyzer.RawSuggestion{{MemeTypeDesc: "happiness"}},
	}

	res := Normalize(raw, memelib.NewSelector(lib, rng), rng)
	sug := res.Suggestions[0]
	if sug.Description != domain.DefaultDescription {
		t.Errorf("description = %q, want default", sug.Description)
	}
	if sug.MemeRef == "" {
		t.Error("expected an asset for a catalog category")
	}
}

func TestNormalizeClampsNegativeTimes(t *testing.T) {
	lib := memelib.New("/memes")
	rng := rand.New(rand.NewSource(1))

	raw := &analyzer.Response{
		Suggestions: []analyzer.RawSuggestion{{Start: -3, End: -1, MemeTypeDesc: "anger"}},
	}

	res := Normalize(raw, memelib.NewSelector(lib, rng), rng)
	if res.Suggestions[0].StartTime != 0 || res.Suggestions[0].EndTime != 0 {
		t.Errorf("negative times not clamped: %+v", res.Suggestions[0])
	}
}

func TestNormalizeMemoizesPick(t *testing.T) {
	lib := memelib.New("/memes")
	rng := rand.New(rand.NewSource(5))

	raw := &analyzer.Response{
		Suggestions: []analyzer.RawSuggestion{{MemeTypeDesc: "surprise"}},
	}

	res := Normalize(raw, memelib.NewSelector(lib, rng), rng)
	ref := res.Suggestions[0].MemeRef

	// Repeated reads observe the same reference; no re-randomization.
	for i := 0; i < 10; i++ {
		if res.Suggestions[0].MemeRef != ref {
			t.Fatal("meme ref changed between reads")
		}
	}
}
