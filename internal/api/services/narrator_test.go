package services

import (
	"testing"

	"github.com/startovate/server/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestCleanForSpeech(t *testing.T) {
	assert.Equal(t, "Core Idea: a plan", CleanForSpeech("**Core Idea:** `a` _plan_"))
	assert.Equal(t, "plain text", CleanForSpeech("plain text"))
}

func TestIdeaNarration(t *testing.T) {
	text := IdeaNarration(testIdea())

	assert.Contains(t, text, "Startup name is NexaAI.")
	assert.Contains(t, text, "Expected team size: 5 members.")
	assert.Contains(t, text, "Feasibility score: 88 out of 100.")
	assert.NotContains(t, text, "*")
}

func TestPitchNarration(t *testing.T) {
	text := PitchNarration(testIdea())

	assert.Contains(t, text, "Introducing NexaAI")
	assert.Contains(t, text, "Subscription, Ads")
	assert.Contains(t, text, "poised for success")
}

func TestPitchProblemFallbackRewording(t *testing.T) {
	idea := models.IdeaRecord{Idea: "solve a pressing problem in the chosen domain."}
	assert.Equal(t, "existing inefficiencies or lack of innovative solutions.", PitchProblem(idea))

	specific := models.IdeaRecord{Idea: "automate savings, budgets, and investments with intelligent predictive analytics."}
	assert.Equal(t, specific.Idea, PitchProblem(specific))
}
