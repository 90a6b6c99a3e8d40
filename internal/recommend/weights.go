package recommend

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Weights sets how much each signal contributes to the composite score.
type Weights struct {
	Similarity float64 `json:"similarity" validate:"min=0"`
	Industry   float64 `json:"industry" validate:"min=0"`
	Vibe       float64 `json:"vibe" validate:"min=0"`
	SkillDepth float64 `json:"skill_depth" validate:"min=0"`
	Stage      float64 `json:"stage" validate:"min=0"`
	Education  float64 `json:"education" validate:"min=0"`
}

// CanonicalWeights is the six-signal configuration.
func CanonicalWeights() Weights {
	return Weights{
		Similarity: 0.35,
		Industry:   0.20,
		Vibe:       0.15,
		SkillDepth: 0.15,
		Stage:      0.10,
		Education:  0.05,
	}
}

// ReducedWeights ignores vibe and skill depth, for catalogs or profiles without
// vibe and technology data.
func ReducedWeights() Weights {
	return Weights{
		Similarity: 0.50,
		Industry:   0.25,
		Stage:      0.15,
		Education:  0.10,
	}
}

// WeightsByName resolves "canonical" (or "") and "reduced".
func WeightsByName(name string) (Weights, error) {
	switch name {
	case "", "canonical":
		return CanonicalWeights(), nil
	case "reduced":
		return ReducedWeights(), nil
	default:
		return Weights{}, fmt.Errorf("unknown weight set %q", name)
	}
}

// Validate rejects negative weights and an all-zero configuration.
func (w Weights) Validate() error {
	if err := validator.New().Struct(w); err != nil {
		return fmt.Errorf("invalid weights: %w", err)
	}
	if w.Similarity+w.Industry+w.Vibe+w.SkillDepth+w.Stage+w.Education == 0 {
		return errors.New("at least one weight must be positive")
	}
	return nil
}

// Combine returns the weighted sum of the signals.
func (w Weights) Combine(s Signals) float64 {
	return w.Similarity*s.Similarity +
		w.Industry*s.Industry +
		w.Vibe*s.Vibe +
		w.SkillDepth*s.SkillDepth +
		w.Stage*s.Stage +
		w.Education*s.Education
}
