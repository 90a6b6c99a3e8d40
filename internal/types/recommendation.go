package types

import "github.com/go-playground/validator/v10"

// Content types derived for each recommendation.
const (
	ContentTypeMovie  = "Movie"
	ContentTypeSeries = "Web Series"
)

// Recommendation is one ranked, explained catalog pick.
type Recommendation struct {
	ID           int64   `json:"id"`
	Title        string  `json:"title"`
	Type         string  `json:"type"`
	CareerSkills string  `json:"career_skills"`
	Vibe         string  `json:"vibe"`
	Industry     string  `json:"industry"`
	Summary      string  `json:"summary"`
	Explanation  string  `json:"explanation"`
	MatchScore   float64 `json:"match_score"`
}

// RecommendRequest is the HTTP request body for recommendations.
// The profile is kept loosely typed; the profile normalizer applies defaults.
type RecommendRequest struct {
	Profile map[string]any `json:"profile" validate:"required"`
	TopN    int            `json:"top_n,omitempty" validate:"omitempty,min=1,max=15"`
}

// Validate validates the RecommendRequest using the validator.
func (r *RecommendRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// RecommendResponse wraps the ranked recommendations returned to callers.
type RecommendResponse struct {
	RequestID       string           `json:"request_id,omitempty"`
	Recommendations []Recommendation `json:"recommendations"`
}
