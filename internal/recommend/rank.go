package recommend

import (
	"sort"
	"strings"

	"github.com/jonathan/moviefy/internal/types"
)

const (
	// DefaultTopN is used when the caller does not ask for a specific count.
	DefaultTopN = 10
	// MaxRecommendations bounds a single result set.
	MaxRecommendations = 15
)

// seriesMarkers flag an item as episodic content.
var seriesMarkers = []string{"series", "season", "episode", "part ", "vol ", "miniseries"}

// ScoredItem is one catalog item with its signals and scores.
type ScoredItem struct {
	Item      types.CatalogItem `json:"item"`
	Signals   Signals           `json:"signals"`
	Composite float64           `json:"composite"`
	Score     float64           `json:"score"` // composite relative to the best item, 0-100
}

// ClampTopN maps non-positive values to DefaultTopN and caps at MaxRecommendations.
func ClampTopN(n int) int {
	if n <= 0 {
		return DefaultTopN
	}
	if n > MaxRecommendations {
		return MaxRecommendations
	}
	return n
}

// normalizeScores scales composites so the best item scores 100. When every
// composite is zero the raw values are kept (times 100).
func normalizeScores(items []ScoredItem) {
	maxComposite := 0.0
	for i := range items {
		if items[i].Composite > maxComposite {
			maxComposite = items[i].Composite
		}
	}
	for i := range items {
		if maxComposite > 0 {
			items[i].Score = items[i].Composite / maxComposite * 100
		} else {
			items[i].Score = items[i].Composite * 100
		}
	}
}

// Rank sorts items in place by score descending and returns the first n.
// Equal scores keep catalog order. A negative n returns no items.
func Rank(items []ScoredItem, n int) []ScoredItem {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Score > items[j].Score
	})
	if n < 0 {
		n = 0
	}
	if n < len(items) {
		items = items[:n]
	}
	return items
}

// ContentType classifies an item as a web series or a movie from its title and summary.
func ContentType(title, summary string) string {
	title = strings.ToLower(title)
	summary = strings.ToLower(summary)
	for _, marker := range seriesMarkers {
		if strings.Contains(title, marker) || strings.Contains(summary, marker) {
			return types.ContentTypeSeries
		}
	}
	return types.ContentTypeMovie
}
