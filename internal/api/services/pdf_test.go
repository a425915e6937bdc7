package services

import (
	"testing"

	"github.com/startovate/server/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testIdea() models.IdeaRecord {
	return models.IdeaRecord{
		Name:         "NexaAI",
		Tagline:      "Smart ideas, real impact.",
		Industry:     "Healthcare",
		Audience:     "Students",
		Tech:         "AI Tool",
		Goal:         "Disrupt the market",
		Monetization: []string{"Subscription", "Ads"},
		Region:       "Global",
		Team:         5,
		Score:        88,
		Idea:         "analyze health metrics and provide instant AI feedback for personalized wellness plans.",
	}
}

func TestBuildPitchPDF(t *testing.T) {
	data, err := BuildPitchPDF(testIdea())
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))
}
