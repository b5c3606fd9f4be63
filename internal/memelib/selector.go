package memelib

// Rand is the random capability the selector draws from. Injected rather
// than using the global source so tests can pin a seed.
type Rand interface {
	Intn(n int) int
}

// Selector picks one asset from the library for a category. It keeps no
// state between calls; two calls for the same category may return different
// assets, which is why callers memoize the pick per suggestion.
type Selector struct {
	lib *Library
	rng Rand
}

// NewSelector creates a selector over lib using rng.
func NewSelector(lib *Library, rng Rand) *Selector {
	return &Selector{lib: lib, rng: rng}
}

// PickRandom returns the servable path of one uniformly chosen asset for
// the category, or "" when the category has no assets.
func (s *Selector) PickRandom(category string) string {
	assets := s.lib.AssetsFor(category)
	if len(assets) == 0 {
		return ""
	}
	return s.lib.AssetURL(category, assets[s.rng.Intn(len(assets))])
}
