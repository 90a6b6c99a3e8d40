// Package profile turns loosely-typed career profiles into the structured form the recommender scores.
package profile

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jonathan/moviefy/internal/types"
)

// Normalize extracts the fields the recommender needs from a parser-produced profile.
// Missing or wrongly shaped collections become empty, missing strings become "",
// and a missing vibe becomes the default vibe. It never fails.
func Normalize(raw map[string]any) types.CareerProfile {
	p := types.CareerProfile{
		FoundSkills:       stringList(raw["found_skills"]),
		SkillGaps:         stringList(raw["skill_gaps"]),
		Technologies:      stringList(raw["technologies"]),
		Industry:          stringValue(raw["industry"]),
		SecondaryIndustry: stringValue(raw["secondary_industry"]),
		CareerStage:       stringValue(raw["career_stage"]),
		Vibe:              stringValue(raw["vibe"]),
	}
	return applyDefaults(p)
}

// FromJSON decodes a JSON profile object and normalizes it.
// Only malformed JSON is an error.
func FromJSON(data []byte) (types.CareerProfile, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return types.CareerProfile{}, fmt.Errorf("failed to parse profile JSON: %w", err)
	}
	return Normalize(raw), nil
}

// FromStruct applies the same cleanup and defaults to an already typed profile.
func FromStruct(p types.CareerProfile) types.CareerProfile {
	p.FoundSkills = cleanList(p.FoundSkills)
	p.SkillGaps = cleanList(p.SkillGaps)
	p.Technologies = cleanList(p.Technologies)
	p.Industry = strings.TrimSpace(p.Industry)
	p.SecondaryIndustry = strings.TrimSpace(p.SecondaryIndustry)
	p.CareerStage = strings.TrimSpace(p.CareerStage)
	p.Vibe = strings.TrimSpace(p.Vibe)
	return applyDefaults(p)
}

func applyDefaults(p types.CareerProfile) types.CareerProfile {
	if p.Vibe == "" {
		p.Vibe = string(types.DefaultVibe)
	}
	return p
}

// stringValue coerces a scalar into a trimmed string. Non-strings become "".
func stringValue(v any) string {
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(s)
}

// stringList coerces a JSON array of strings. Non-string members are skipped;
// any other shape yields an empty list.
func stringList(v any) []string {
	switch list := v.(type) {
	case []string:
		return cleanList(list)
	case []any:
		values := make([]string, 0, len(list))
		for _, item := range list {
			if s, ok := item.(string); ok {
				values = append(values, s)
			}
		}
		return cleanList(values)
	default:
		return []string{}
	}
}

// cleanList trims values, drops blanks and removes case-insensitive duplicates,
// keeping the first spelling seen.
func cleanList(values []string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]bool, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		key := strings.ToLower(v)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, v)
	}
	return out
}
