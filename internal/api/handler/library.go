package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/streameme/streameme/internal/domain"
	"github.com/streameme/streameme/internal/memelib"
)

// LibraryHandler serves the static meme catalog: category metadata and
// per-category asset listings.
type LibraryHandler struct {
	library      *memelib.Library
	previewCount int
}

// NewLibraryHandler creates a library handler. previewCount controls how
// many asset URLs the preview strip returns per category.
func NewLibraryHandler(library *memelib.Library, previewCount int) *LibraryHandler {
	if previewCount <= 0 {
		previewCount = 15
	}
	return &LibraryHandler{library: library, previewCount: previewCount}
}

// Categories handles GET /api/v1/library/categories.
func (h *LibraryHandler) Categories(c *gin.Context) {
	out := make([]gin.H, 0, len(domain.Categories))
	for _, cat := range domain.Categories {
		assets := h.library.AssetsFor(string(cat.Key))
		n := h.previewCount
		if n > len(assets) {
			n = len(assets)
		}
		preview := make([]string, n)
		for i := 0; i < n; i++ {
			preview[i] = h.library.AssetURL(string(cat.Key), assets[i])
		}
		out = append(out, gin.H{
			"category": cat,
			"total":    len(assets),
			"preview":  preview,
			"more":     len(assets) - n,
		})
	}
	c.JSON(http.StatusOK, gin.H{"categories": out})
}

// Assets handles GET /api/v1/library/categories/:category/assets. Unknown
// categories yield an empty listing, never an error.
func (h *LibraryHandler) Assets(c *gin.Context) {
	category := c.Param("category")
	assets := h.library.AssetsFor(category)

	limit := len(assets)
	if q := c.Query("limit"); q != "" {
		if n, err := strconv.Atoi(q); err == nil && n >= 0 && n < limit {
			limit = n
		}
	}

	urls := make([]string, limit)
	for i := 0; i < limit; i++ {
		urls[i] = h.library.AssetURL(category, assets[i])
	}

	c.JSON(http.StatusOK, gin.H{
		"category": category,
		"known":    domain.ValidCategory(category),
		"total":    len(assets),
		"assets":   urls,
	})
}
