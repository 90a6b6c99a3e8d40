package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKnownVibe(t *testing.T) {
	for _, v := range Vibes {
		assert.True(t, KnownVibe(string(v)), v)
	}
	assert.False(t, KnownVibe("Chaotic Neutral"))
	assert.False(t, KnownVibe(""))
	assert.Equal(t, PragmaticBuilder, DefaultVibe)
}

func TestCareerProfile_IsEmpty(t *testing.T) {
	assert.True(t, (&CareerProfile{Vibe: "Analytical Stoic"}).IsEmpty())
	assert.False(t, (&CareerProfile{CareerStage: "Senior"}).IsEmpty())
	assert.False(t, (&CareerProfile{SkillGaps: []string{"leadership"}}).IsEmpty())
}
