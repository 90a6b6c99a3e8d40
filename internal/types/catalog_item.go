// Package types provides type definitions for structured data used throughout the moviefy system.
package types

import "time"

// DefaultEducationalValue is used when a catalog row carries no educational value score.
const DefaultEducationalValue = 5

// CatalogItem is one movie or show as stored in the catalog.
// Items are never mutated once loaded.
type CatalogItem struct {
	ID                    int64  `json:"id"`
	Title                 string `json:"title"`
	CareerSkills          string `json:"career_skills"`
	Industry              string `json:"industry"`
	CareerStage           string `json:"career_stage"`
	Summary               string `json:"summary"`
	EducationalValueScore int    `json:"educational_value_score,omitempty"`
}

// Document returns the text the vector index is built from.
func (c *CatalogItem) Document() string {
	return c.CareerSkills + " " + c.Industry + " " + c.CareerStage + " " + c.Summary
}

// EducationalValue returns the raw educational value score, defaulting missing scores.
func (c *CatalogItem) EducationalValue() int {
	if c.EducationalValueScore == 0 {
		return DefaultEducationalValue
	}
	return c.EducationalValueScore
}

// CatalogStats summarizes the currently indexed catalog snapshot.
type CatalogStats struct {
	Items      int       `json:"items"`
	Features   int       `json:"features"`
	Ready      bool      `json:"ready"`
	BuiltAt    time.Time `json:"built_at,omitempty"`
	LastError  string    `json:"last_error,omitempty"`
	BuildCount int64     `json:"build_count"`
}
