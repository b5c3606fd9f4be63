package domain

// Category is one of the fixed emotional/reaction classes used to select a
// meme image. The set is closed; suggestion categories coming from the
// analysis service are validated against it.
type Category string

const (
	CategorySorrow    Category = "sorrow"
	CategoryAnger     Category = "anger"
	CategoryHappiness Category = "happiness"
	CategorySurprise  Category = "surprise"
	CategoryHate      Category = "hate"
	CategoryLove      Category = "love"
)

// CategoryInfo carries the display metadata for one category.
type CategoryInfo struct {
	Key         Category `json:"key"`
	DisplayName string   `json:"display_name"`
	Blurb       string   `json:"blurb"`
	Badge       string   `json:"badge"`
}

// Categories lists all known categories in display order.
var Categories = []CategoryInfo{
	{Key: CategorySorrow, DisplayName: "Sorrow", Blurb: "Sad or disappointed reactions", Badge: "sad"},
	{Key: CategoryAnger, DisplayName: "Anger", Blurb: "Angry or frustrated reactions", Badge: "angry"},
	{Key: CategoryHappiness, DisplayName: "Happiness", Blurb: "Happy or excited reactions", Badge: "happy"},
	{Key: CategorySurprise, DisplayName: "Surprise", Blurb: "Shocked or surprised reactions", Badge: "confused"},
	{Key: CategoryHate, DisplayName: "Hate", Blurb: "Negative or hateful reactions", Badge: "content"},
	{Key: CategoryLove, DisplayName: "Love", Blurb: "Loving or affectionate reactions", Badge: "content"},
}

// ValidCategory reports whether key names a category in the fixed set.
func ValidCategory(key string) bool {
	for _, c := range Categories {
		if string(c.Key) == key {
			return true
		}
	}
	return false
}

// DefaultDescription is used when a suggestion's category has no entry in
// the description table.
const DefaultDescription = "a neutral or thinking reaction"

// categoryDescriptions maps category keys to human-readable phrases for the
// suggestion rows. The table carries the analysis service's legacy keys
// (joy, fear, neutral) alongside the catalog ones; anything unknown falls
// back to the neutral phrase.
var categoryDescriptions = map[string]string{
	"sorrow":   "a sad or disappointed reaction",
	"anger":    "an angry or frustrated reaction",
	"joy":      "a happy or excited reaction",
	"surprise": "a shocked or surprised reaction",
	"fear":     "a scared or anxious reaction",
	"neutral":  DefaultDescription,
}

// DescriptionFor returns the human description for a category key, falling
// back to DefaultDescription for unknown keys.
func DescriptionFor(key string) string {
	if d, ok := categoryDescriptions[key]; ok {
		return d
	}
	return DefaultDescription
}
