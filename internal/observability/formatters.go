// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/moviefy/internal/recommend"
	"github.com/jonathan/moviefy/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// truncate shortens s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// writeList writes up to limit items as bullets, summarizing the rest.
func writeList(sb *strings.Builder, label string, items []string, limit int) {
	if len(items) == 0 {
		return
	}
	sb.WriteString(label + ":\n")
	for _, item := range items[:min(len(items), limit)] {
		sb.WriteString(fmt.Sprintf("  • %s\n", item))
	}
	if len(items) > limit {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-limit))
	}
}

// PrintCareerProfile outputs a human-readable summary of the normalized profile.
func (p *Printer) PrintCareerProfile(profile *types.CareerProfile) {
	if profile == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Vibe:      %s\n", profile.Vibe))
	sb.WriteString(fmt.Sprintf("Industry:  %s\n", profile.Industry))
	if profile.SecondaryIndustry != "" {
		sb.WriteString(fmt.Sprintf("Secondary: %s\n", profile.SecondaryIndustry))
	}
	sb.WriteString(fmt.Sprintf("Stage:     %s\n", profile.CareerStage))
	sb.WriteString("\n")

	writeList(&sb, "Skill Gaps", profile.SkillGaps, maxItemsToShow)
	writeList(&sb, "Strengths", profile.FoundSkills, 3)
	writeList(&sb, "Technologies", profile.Technologies, 3)

	p.printBox("CAREER PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintScores outputs the top scored items with their individual signals.
func (p *Printer) PrintScores(scored []recommend.ScoredItem) {
	if len(scored) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Catalog items scored: %d\n\n", len(scored)))

	count := min(len(scored), maxItemsToShow)
	for i := 0; i < count; i++ {
		s := scored[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, s.Item.Title))
		sb.WriteString(fmt.Sprintf("    Score: %.1f  (composite %.3f)\n", s.Score, s.Composite))
		sb.WriteString(fmt.Sprintf("    sim %.2f  ind %.2f  stage %.2f\n",
			s.Signals.Similarity, s.Signals.Industry, s.Signals.Stage))
		sb.WriteString(fmt.Sprintf("    vibe %.2f  depth %.2f  edu %.2f\n",
			s.Signals.Vibe, s.Signals.SkillDepth, s.Signals.Education))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(scored) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more items", len(scored)-maxItemsToShow))
	}

	p.printBox("SIGNAL BREAKDOWN", sb.String())
}

// PrintRecommendations outputs the ranked recommendations.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintRecommendations(recs []types.Recommendation) {
	if len(recs) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "NO RECOMMENDATIONS")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d recommendations:\n\n", len(recs)))

	for i, r := range recs {
		sb.WriteString(fmt.Sprintf("#%d  %s (%s)\n", i+1, r.Title, r.Type))
		sb.WriteString(fmt.Sprintf("    Match: %.0f%%\n", r.MatchScore*100))
		sb.WriteString(fmt.Sprintf("    %s\n", openingSentence(r.Explanation)))
		if i < len(recs)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("RECOMMENDATIONS", sb.String())
}

// PrintIndexStats outputs the state of the TF-IDF index.
func (p *Printer) PrintIndexStats(stats types.CatalogStats) {
	var sb strings.Builder
	if stats.Ready {
		sb.WriteString(fmt.Sprintf("Items:     %d\n", stats.Items))
		sb.WriteString(fmt.Sprintf("Features:  %d\n", stats.Features))
		sb.WriteString(fmt.Sprintf("Built at:  %s\n", stats.BuiltAt.Format("2006-01-02 15:04:05")))
	} else {
		sb.WriteString("No index (catalog empty or unavailable)\n")
	}
	sb.WriteString(fmt.Sprintf("Builds:    %d", stats.BuildCount))
	if stats.LastError != "" {
		sb.WriteString(fmt.Sprintf("\nError:     %s", stats.LastError))
	}

	p.printBox("CATALOG INDEX", sb.String())
}

func openingSentence(s string) string {
	if i := strings.Index(s, ". "); i >= 0 {
		return s[:i+1]
	}
	return s
}
