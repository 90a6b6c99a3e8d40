package recommend

import (
	"testing"

	"github.com/jonathan/moviefy/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClampTopN(t *testing.T) {
	assert.Equal(t, DefaultTopN, ClampTopN(0))
	assert.Equal(t, DefaultTopN, ClampTopN(-1))
	assert.Equal(t, 7, ClampTopN(7))
	assert.Equal(t, MaxRecommendations, ClampTopN(MaxRecommendations))
	assert.Equal(t, MaxRecommendations, ClampTopN(99))
}

func TestNormalizeScores(t *testing.T) {
	items := []ScoredItem{{Composite: 0.2}, {Composite: 0.5}, {Composite: 0}}
	normalizeScores(items)

	assert.InDelta(t, 40.0, items[0].Score, 1e-9)
	assert.InDelta(t, 100.0, items[1].Score, 1e-9)
	assert.Zero(t, items[2].Score)
}

func TestNormalizeScores_AllZero(t *testing.T) {
	items := []ScoredItem{{Composite: 0}, {Composite: 0}}
	normalizeScores(items)
	assert.Zero(t, items[0].Score)
	assert.Zero(t, items[1].Score)
}

func TestRank_StableDescending(t *testing.T) {
	items := []ScoredItem{
		{Item: types.CatalogItem{ID: 1}, Score: 50},
		{Item: types.CatalogItem{ID: 2}, Score: 90},
		{Item: types.CatalogItem{ID: 3}, Score: 50},
		{Item: types.CatalogItem{ID: 4}, Score: 10},
	}
	ranked := Rank(items, 3)

	require.Len(t, ranked, 3)
	assert.Equal(t, int64(2), ranked[0].Item.ID)
	// Ties keep catalog order.
	assert.Equal(t, int64(1), ranked[1].Item.ID)
	assert.Equal(t, int64(3), ranked[2].Item.ID)
}

func TestRank_NegativeN(t *testing.T) {
	items := []ScoredItem{{Score: 1}, {Score: 2}}
	assert.Empty(t, Rank(items, -1))
}

func TestRank_FewerThanN(t *testing.T) {
	items := []ScoredItem{{Score: 1}}
	assert.Len(t, Rank(items, 10), 1)
}

func TestContentType(t *testing.T) {
	tests := []struct {
		title, summary, want string
	}{
		{"Moneyball", "A general manager uses data.", types.ContentTypeMovie},
		{"Industry (TV Series Concept)", "", types.ContentTypeSeries},
		{"Band of Brothers", "A ten-episode war drama.", types.ContentTypeSeries},
		{"Chef", "Season after season in the kitchen.", types.ContentTypeSeries},
		{"Kill Bill: Vol 1", "", types.ContentTypeSeries},
		{"Dune", "Part of a two-film saga.", types.ContentTypeSeries},
		{"Counterpart", "", types.ContentTypeMovie},
	}
	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			assert.Equal(t, tt.want, ContentType(tt.title, tt.summary))
		})
	}
}

func TestRoundScore(t *testing.T) {
	assert.Equal(t, 0.1235, roundScore(0.123456))
	assert.Equal(t, 1.0, roundScore(1.00001))
	assert.Equal(t, 0.0, roundScore(0))
}
