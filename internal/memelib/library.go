// Package memelib holds the static per-category meme asset catalog and the
// random selector that resolves a category to one asset.
package memelib

import (
	"fmt"

	"github.com/streameme/streameme/internal/domain"
)

// MemesPerCategory is the number of assets every category ships with.
// Assets are named <category>_<n>.jpg for n in 1..MemesPerCategory.
const MemesPerCategory = 100

// Library is the process-wide, read-only catalog of meme asset names,
// keyed by category. Built once at startup; pure lookup afterwards.
type Library struct {
	assets  map[domain.Category][]string
	baseURL string
}

// New builds the catalog for all known categories. baseURL is the static
// prefix assets are served under (e.g. "/memes").
func New(baseURL string) *Library {
	assets := make(map[domain.Category][]string, len(domain.Categories))
	for _, cat := range domain.Categories {
		names := make([]string, MemesPerCategory)
		for i := range names {
			names[i] = fmt.Sprintf("%s_%d.jpg", cat.Key, i+1)
		}
		assets[cat.Key] = names
	}
	return &Library{assets: assets, baseURL: baseURL}
}

// AssetsFor returns the ordered asset names for a category. Unknown
// categories yield nil, never an error.
func (l *Library) AssetsFor(category string) []string {
	return l.assets[domain.Category(category)]
}

// AssetURL returns the servable path for one asset of a category.
func (l *Library) AssetURL(category, name string) string {
	return fmt.Sprintf("%s/%s/%s", l.baseURL, category, name)
}
