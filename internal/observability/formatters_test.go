package observability

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/jonathan/moviefy/internal/recommend"
	"github.com/jonathan/moviefy/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestPrintCareerProfile(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	profile := &types.CareerProfile{
		FoundSkills:       []string{"analytics", "sql", "negotiation", "forecasting"},
		SkillGaps:         []string{"leadership"},
		Industry:          "Finance",
		SecondaryIndustry: "Technology",
		CareerStage:       "Mid-Level",
		Vibe:              string(types.AnalyticalStoic),
	}

	p.PrintCareerProfile(profile)
	output := buf.String()

	assert.Contains(t, output, "CAREER PROFILE")
	assert.Contains(t, output, "Analytical Stoic")
	assert.Contains(t, output, "Technology")
	assert.Contains(t, output, "leadership")
	assert.Contains(t, output, "... and 1 more")
	assert.NotContains(t, output, "forecasting")
}

func TestPrintCareerProfile_Nil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintCareerProfile(nil)
	assert.Empty(t, buf.String())
}

func TestPrintScores(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	scored := make([]recommend.ScoredItem, 7)
	for i := range scored {
		scored[i] = recommend.ScoredItem{
			Item:      types.CatalogItem{Title: "Title " + string(rune('A'+i))},
			Signals:   recommend.Signals{Similarity: 0.42, Industry: 1},
			Composite: 0.5,
			Score:     100,
		}
	}

	p.PrintScores(scored)
	output := buf.String()

	assert.Contains(t, output, "SIGNAL BREAKDOWN")
	assert.Contains(t, output, "Title A")
	assert.Contains(t, output, "sim 0.42")
	assert.Contains(t, output, "ind 1.00")
	assert.NotContains(t, output, "Title F")
	assert.Contains(t, output, "... and 2 more items")
}

func TestPrintScores_Empty(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintScores(nil)
	assert.Empty(t, buf.String())
}

func TestPrintRecommendations(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	recs := []types.Recommendation{
		{Title: "Moneyball", Type: types.ContentTypeMovie, MatchScore: 1, Explanation: "Build it. Then ship it."},
		{Title: "Industry (TV Series Concept)", Type: types.ContentTypeSeries, MatchScore: 0.8123, Explanation: "Watch."},
	}

	p.PrintRecommendations(recs)
	output := buf.String()

	assert.Contains(t, output, "RECOMMENDATIONS")
	assert.Contains(t, output, "#1  Moneyball (Movie)")
	assert.Contains(t, output, "Match: 100%")
	assert.Contains(t, output, "Match: 81%")
	assert.Contains(t, output, "Build it.")
	assert.NotContains(t, output, "Then ship it")
}

func TestPrintRecommendations_Empty(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintRecommendations(nil)
	assert.Contains(t, buf.String(), "NO RECOMMENDATIONS")
}

func TestPrintIndexStats(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintIndexStats(types.CatalogStats{
		Items:      33,
		Features:   1200,
		Ready:      true,
		BuiltAt:    time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		BuildCount: 2,
	})
	output := buf.String()
	assert.Contains(t, output, "Items:     33")
	assert.Contains(t, output, "Features:  1200")
	assert.Contains(t, output, "2026-01-02 03:04:05")

	buf.Reset()
	p.PrintIndexStats(types.CatalogStats{LastError: "connection refused", BuildCount: 1})
	assert.Contains(t, buf.String(), "No index")
	assert.Contains(t, buf.String(), "connection refused")
}

func TestPrintBox_TruncatesLongLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.printBox("TITLE", strings.Repeat("é", 100))
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		assert.Equal(t, boxWidth, len([]rune(line)), line)
	}
	assert.Contains(t, buf.String(), "...")
}
