package memelib

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/streameme/streameme/internal/domain"
)

func TestLibraryAssetsForValidCategories(t *testing.T) {
	lib := New("/memes")

	for _, cat := range domain.Categories {
		t.Run(string(cat.Key), func(t *testing.T) {
			assets := lib.AssetsFor(string(cat.Key))
			if len(assets) != MemesPerCategory {
				t.Fatalf("expected %d assets, got %d", MemesPerCategory, len(assets))
			}
			if got, want := assets[0], fmt.Sprintf("%s_1.jpg", cat.Key); got != want {
				t.Errorf("first asset = %q, want %q", got, want)
			}
			if got, want := assets[MemesPerCategory-1], fmt.Sprintf("%s_%d.jpg", cat.Key, MemesPerCategory); got != want {
				t.Errorf("last asset = %q, want %q", got, want)
			}
		})
	}
}

func TestLibraryAssetsForUnknownCategory(t *testing.T) {
	lib := New("/memes")

	for _, key := range []string{"", "joy", "disgust", "ANGER"} {
		if assets := lib.AssetsFor(key); len(assets) != 0 {
			t.Errorf("AssetsFor(%q) = %d assets, want none", key, len(assets))
		}
	}
}

func TestLibraryAssetURL(t *testing.T) {
	lib := New("/memes")

	got := lib.AssetURL("anger", "anger_7.jpg")
	if got != "/memes/anger/anger_7.jpg" {
		t.Errorf("AssetURL = %q", got)
	}
}

func TestSelectorPickRandom(t *testing.T) {
	lib := New("/memes")
	sel := NewSelector(lib, rand.New(rand.NewSource(1)))

	for i := 0; i < 50; i++ {
		got := sel.PickRandom("love")
		if !strings.HasPrefix(got, "/memes/love/love_") || !strings.HasSuffix(got, ".jpg") {
			t.Fatalf("unexpected pick %q", got)
		}
	}
}

func TestSelectorPickRandomDeterministicForSeed(t *testing.T) {
	lib := New("/memes")

	a := NewSelector(lib, rand.New(rand.NewSource(42))).PickRandom("surprise")
	b := NewSelector(lib, rand.New(rand.NewSource(42))).PickRandom("surprise")
	if a != b {
		t.Errorf("same seed picked %q and %q", a, b)
	}
}

func TestSelectorPickRandomUnknownCategory(t *testing.T) {
	lib := New("/memes")
	sel := NewSelector(lib, rand.New(rand.NewSource(1)))

	if got := sel.PickRandom("disgust"); got != "" {
		t.Errorf("PickRandom on unknown category = %q, want empty", got)
	}
}
