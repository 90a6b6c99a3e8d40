package recommend

import (
	"math"
	"strings"

	"github.com/jonathan/moviefy/internal/textvec"
	"github.com/jonathan/moviefy/internal/types"
)

// Signals are the independent per-item match scores, each in [0,1].
type Signals struct {
	Similarity float64 `json:"similarity"`
	Industry   float64 `json:"industry"`
	Stage      float64 `json:"stage"`
	Vibe       float64 `json:"vibe"`
	SkillDepth float64 `json:"skill_depth"`
	Education  float64 `json:"education"`
}

// vibeKeywords maps each vibe to the genre and theme words it resonates with.
var vibeKeywords = map[types.Vibe][]string{
	types.StrategicVisionary: {"sci-fi", "biography", "epic", "future", "visionary", "pioneer", "revolution", "empire"},
	types.AnalyticalStoic:    {"mystery", "thriller", "documentary", "technical", "logic", "investigation", "puzzle", "heist"},
	types.CreativeFreeSpirit: {"animation", "fantasy", "art", "music", "musical", "indie", "experimental", "surreal"},
	types.RelentlessHustler:  {"crime", "drama", "action", "competition", "business", "wall street", "hustle", "rise"},
	types.EmpathicLeader:     {"romance", "family", "social", "community", "leadership", "mentor", "sacrifice", "unity"},
	types.PragmaticBuilder:   {"war", "adventure", "construction", "survival", "endurance", "engineering", "mission"},
}

// vibeSaturation is the number of keyword hits that earns a full vibe score.
const vibeSaturation = 3.0

// BuildQuery assembles the synthetic query document for a profile: skill gaps three
// times, found skills and technologies once, the primary industry twice, the secondary
// industry and the career stage once.
func BuildQuery(p types.CareerProfile) string {
	parts := make([]string, 0, 3*len(p.SkillGaps)+len(p.FoundSkills)+len(p.Technologies)+4)
	for i := 0; i < 3; i++ {
		parts = append(parts, p.SkillGaps...)
	}
	parts = append(parts, p.FoundSkills...)
	parts = append(parts, p.Technologies...)
	parts = append(parts, p.Industry, p.Industry)
	if p.SecondaryIndustry != "" {
		parts = append(parts, p.SecondaryIndustry)
	}
	parts = append(parts, p.CareerStage)
	return strings.Join(parts, " ")
}

// scorer holds the lower-cased profile fields reused for every catalog item.
type scorer struct {
	industry       string
	industryTokens []string
	secondary      string
	stage          string
	vibeWords      []string
	skills         []string
}

func newScorer(p types.CareerProfile) *scorer {
	industry := strings.ToLower(p.Industry)

	seen := make(map[string]bool)
	var skills []string
	for _, list := range [][]string{p.FoundSkills, p.SkillGaps, p.Technologies} {
		for _, s := range list {
			s = strings.ToLower(s)
			if s == "" || seen[s] {
				continue
			}
			seen[s] = true
			skills = append(skills, s)
		}
	}

	return &scorer{
		industry:       industry,
		industryTokens: strings.Fields(industry),
		secondary:      strings.ToLower(p.SecondaryIndustry),
		stage:          strings.ToLower(p.CareerStage),
		vibeWords:      vibeKeywords[types.Vibe(p.Vibe)],
		skills:         skills,
	}
}

// score computes all six signals for one index entry against the query vector.
func (s *scorer) score(e *Entry, query textvec.SparseVector) Signals {
	item := &e.Item
	return Signals{
		Similarity: clamp01(textvec.Cosine(query, e.Vector)),
		Industry:   s.industryMatch(strings.ToLower(item.Industry)),
		Stage:      s.stageMatch(strings.ToLower(item.CareerStage)),
		Vibe:       s.vibeAlignment(strings.ToLower(item.Summary + " " + item.CareerSkills)),
		SkillDepth: s.skillDepth(strings.ToLower(item.CareerSkills)),
		Education:  clamp01(float64(item.EducationalValue()) / 10.0),
	}
}

func (s *scorer) industryMatch(itemIndustry string) float64 {
	if s.industry != "" && strings.Contains(itemIndustry, s.industry) {
		return 1.0
	}
	if s.secondary != "" && strings.Contains(itemIndustry, s.secondary) {
		return 0.7
	}
	for _, tok := range s.industryTokens {
		if strings.Contains(itemIndustry, tok) {
			return 0.3
		}
	}
	return 0
}

func (s *scorer) stageMatch(itemStage string) float64 {
	if s.stage != "" && strings.Contains(itemStage, s.stage) {
		return 1.0
	}
	if strings.Contains(itemStage, "all") {
		return 0.5
	}
	return 0
}

func (s *scorer) vibeAlignment(text string) float64 {
	hits := 0
	for _, w := range s.vibeWords {
		if strings.Contains(text, w) {
			hits++
		}
	}
	return math.Min(float64(hits)/vibeSaturation, 1.0)
}

func (s *scorer) skillDepth(itemSkills string) float64 {
	if len(s.skills) == 0 {
		return 0
	}
	count := 0
	for _, skill := range s.skills {
		if strings.Contains(itemSkills, skill) {
			count++
		}
	}
	return math.Min(float64(count)/float64(len(s.skills)), 1.0)
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
