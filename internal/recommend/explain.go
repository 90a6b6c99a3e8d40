package recommend

import (
	"strings"

	"github.com/jonathan/moviefy/internal/types"
)

// Templater fills {name} placeholders in a phrase template.
type Templater interface {
	Fill(template string, values map[string]string) string
}

// braceTemplater replaces each {key} with its value. Unknown placeholders are left as-is.
type braceTemplater struct{}

func (braceTemplater) Fill(template string, values map[string]string) string {
	if len(values) == 0 {
		return template
	}
	pairs := make([]string, 0, len(values)*2)
	for k, v := range values {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(template)
}

const (
	maxGapSkills      = 3
	maxStrengthSkills = 2
)

// Explainer writes the natural-language rationale for each ranked item.
type Explainer struct {
	permute   PermuteFunc
	templater Templater
}

// NewExplainer creates an Explainer using Permute and {placeholder} templates.
func NewExplainer() *Explainer {
	return &Explainer{permute: Permute, templater: braceTemplater{}}
}

// WithPermuter returns a copy of the Explainer using a different permutation function.
func (e *Explainer) WithPermuter(p PermuteFunc) *Explainer {
	cp := *e
	cp.permute = p
	return &cp
}

// explanationPlan holds the phrase orders for one result set. Rank i starts from entry
// seq[i mod len(seq)] of each pool. The opening vibe sentence additionally skips any
// candidate whose rendered first sentence was already used, so a plan must be asked
// for ranks in order and never shared between result sets.
type explanationPlan struct {
	templater Templater
	profile   types.CareerProfile
	industry  string

	vibePool []string
	vibeSeq  []int
	gapSeq   []int
	indSeq   []int
	strSeq   []int
	genSeq   []int

	openings map[string]struct{}
}

// plan derives the deterministic phrase orders for a profile.
func (e *Explainer) plan(p types.CareerProfile) *explanationPlan {
	pool, ok := vibePhrases[types.Vibe(p.Vibe)]
	if !ok {
		pool = vibePhrases[types.DefaultVibe]
	}

	seed := p.Vibe + p.Industry + p.CareerStage
	return &explanationPlan{
		templater: e.templater,
		profile:   p,
		industry:  strings.ToLower(p.Industry),
		vibePool:  pool,
		vibeSeq:   sequence(e.permute, len(pool), seed+"_vibe"),
		gapSeq:    sequence(e.permute, len(gapPhrases), seed+"_gap"),
		indSeq:    sequence(e.permute, len(industryPhrases), seed+"_ind"),
		strSeq:    sequence(e.permute, len(strengthPhrases), seed+"_str"),
		genSeq:    sequence(e.permute, len(genericPhrases), seed+"_gen"),
		openings:  make(map[string]struct{}),
	}
}

func pick(pool []string, seq []int, rank int) string {
	return pool[seq[rank%len(seq)]]
}

// firstSentence returns the text before the first ". ", or all of s.
func firstSentence(s string) string {
	if i := strings.Index(s, ". "); i >= 0 {
		return s[:i]
	}
	return s
}

// vibePhrase renders the opening phrase for a rank. Candidates are tried in sequence
// order starting at the rank; the first one with an unused opening sentence wins.
func (pl *explanationPlan) vibePhrase(rank int, title string) string {
	values := map[string]string{"title": title}
	var first string
	for k := 0; k < len(pl.vibeSeq); k++ {
		idx := pl.vibeSeq[(rank+k)%len(pl.vibeSeq)]
		phrase := pl.templater.Fill(pl.vibePool[idx], values)
		if k == 0 {
			first = phrase
		}
		opening := firstSentence(phrase + " ")
		if _, used := pl.openings[opening]; !used {
			pl.openings[opening] = struct{}{}
			return phrase
		}
	}
	return first
}

// explain builds the explanation for the item at the given 0-based rank.
func (pl *explanationPlan) explain(rank int, item *types.CatalogItem) string {
	skills := strings.ToLower(item.CareerSkills)

	parts := []string{pl.vibePhrase(rank, item.Title)}

	if gaps := matchedSkills(pl.profile.SkillGaps, skills, maxGapSkills); len(gaps) > 0 {
		parts = append(parts, pl.templater.Fill(pick(gapPhrases, pl.gapSeq, rank),
			map[string]string{"skills": strings.Join(gaps, ", ")}))
	}

	if pl.industry != "" && strings.Contains(strings.ToLower(item.Industry), pl.industry) {
		parts = append(parts, pl.templater.Fill(pick(industryPhrases, pl.indSeq, rank),
			map[string]string{"ind": pl.profile.Industry}))
	}

	if strengths := matchedSkills(pl.profile.FoundSkills, skills, maxStrengthSkills); len(strengths) > 0 {
		parts = append(parts, pl.templater.Fill(pick(strengthPhrases, pl.strSeq, rank),
			map[string]string{"skills": strings.Join(strengths, ", ")}))
	}

	// Every explanation carries at least two sentences.
	if len(parts) == 1 {
		parts = append(parts, pick(genericPhrases, pl.genSeq, rank))
	}

	return strings.Join(parts, " ")
}

// matchedSkills returns up to limit skills, in profile order, that occur in the
// lower-cased career skills text.
func matchedSkills(skills []string, careerSkills string, limit int) []string {
	var matched []string
	for _, s := range skills {
		if len(matched) == limit {
			break
		}
		if strings.Contains(careerSkills, strings.ToLower(s)) {
			matched = append(matched, s)
		}
	}
	return matched
}
