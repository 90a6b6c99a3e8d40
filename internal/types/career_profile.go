package types

// Vibe is one of the fixed professional archetypes used to bias recommendations.
type Vibe string

// Known vibes.
const (
	StrategicVisionary Vibe = "Strategic Visionary"
	AnalyticalStoic    Vibe = "Analytical Stoic"
	CreativeFreeSpirit Vibe = "Creative Free-Spirit"
	RelentlessHustler  Vibe = "The Relentless Hustler"
	EmpathicLeader     Vibe = "Empathic Leader"
	PragmaticBuilder   Vibe = "Pragmatic Builder"
)

// DefaultVibe is assumed when a profile carries no vibe.
const DefaultVibe = PragmaticBuilder

// Vibes lists every known vibe in a stable order.
var Vibes = []Vibe{
	StrategicVisionary,
	AnalyticalStoic,
	CreativeFreeSpirit,
	RelentlessHustler,
	EmpathicLeader,
	PragmaticBuilder,
}

// KnownVibe reports whether v names one of the fixed vibe categories.
func KnownVibe(v string) bool {
	for _, known := range Vibes {
		if string(known) == v {
			return true
		}
	}
	return false
}

// CareerProfile is the normalized career profile a recommendation request is scored against.
type CareerProfile struct {
	FoundSkills       []string `json:"found_skills"`
	SkillGaps         []string `json:"skill_gaps"`
	Technologies      []string `json:"technologies"`
	Industry          string   `json:"industry"`
	SecondaryIndustry string   `json:"secondary_industry,omitempty"`
	CareerStage       string   `json:"career_stage"`
	Vibe              string   `json:"vibe"`
}

// IsEmpty reports whether the profile carries no usable text signal at all.
func (p *CareerProfile) IsEmpty() bool {
	return len(p.FoundSkills) == 0 && len(p.SkillGaps) == 0 && len(p.Technologies) == 0 &&
		p.Industry == "" && p.SecondaryIndustry == "" && p.CareerStage == ""
}
