package repositories

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/startovate/server/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newIdeaStore(t *testing.T) *IdeaStore {
	t.Helper()
	return NewIdeaStore(filepath.Join(t.TempDir(), "saved_ideas.json"))
}

func sampleIdea(name string) models.IdeaRecord {
	return models.IdeaRecord{
		Name:         name,
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

func TestAppendAndLoad(t *testing.T) {
	store := newIdeaStore(t)

	require.NoError(t, store.Append("alice", sampleIdea("NexaAI")))
	require.NoError(t, store.Append("alice", sampleIdea("ZenoHub")))

	ideas := store.Load("alice")
	require.Len(t, ideas, 2)
	assert.Equal(t, "NexaAI", ideas[0].Name)
	assert.Equal(t, "ZenoHub", ideas[1].Name)
}

func TestAppendDuplicateIsNoOp(t *testing.T) {
	store := newIdeaStore(t)

	require.NoError(t, store.Append("alice", sampleIdea("NexaAI")))
	before := store.Load("alice")

	err := store.Append("alice", sampleIdea("NexaAI"))
	assert.ErrorIs(t, err, models.ErrAlreadySaved)
	assert.Equal(t, before, store.Load("alice"))
}

func TestAppendDifferingFieldIsNotDuplicate(t *testing.T) {
	store := newIdeaStore(t)

	require.NoError(t, store.Append("alice", sampleIdea("NexaAI")))

	changed := sampleIdea("NexaAI")
	changed.Monetization = []string{"Ads", "Subscription"} // order matters
	require.NoError(t, store.Append("alice", changed))

	assert.Len(t, store.Load("alice"), 2)
}

func TestSavePreservesOtherUsers(t *testing.T) {
	store := newIdeaStore(t)

	bobIdeas := []models.IdeaRecord{sampleIdea("OrbitGo")}
	require.NoError(t, store.Save("bob", bobIdeas))
	require.NoError(t, store.Save("carol", []models.IdeaRecord{sampleIdea("NovaFlow")}))

	assert.Equal(t, bobIdeas, store.Load("bob"))
	require.Len(t, store.Load("carol"), 1)
	assert.Equal(t, "NovaFlow", store.Load("carol")[0].Name)
}

func TestUpdateTagline(t *testing.T) {
	store := newIdeaStore(t)

	require.NoError(t, store.Append("alice", sampleIdea("NexaAI")))
	require.NoError(t, store.Append("alice", sampleIdea("ZenoHub")))

	require.NoError(t, store.UpdateTagline("alice", 1, "Power through simplicity."))

	ideas := store.Load("alice")
	require.Len(t, ideas, 2)
	assert.Equal(t, "Power through simplicity.", ideas[1].Tagline)

	// everything except the edited tagline is untouched
	assert.Equal(t, sampleIdea("NexaAI"), ideas[0])
	expected := sampleIdea("ZenoHub")
	expected.Tagline = "Power through simplicity."
	assert.Equal(t, expected, ideas[1])
}

func TestUpdateTaglineIndexOutOfRange(t *testing.T) {
	store := newIdeaStore(t)
	require.NoError(t, store.Append("alice", sampleIdea("NexaAI")))

	assert.ErrorIs(t, store.UpdateTagline("alice", 1, "nope"), models.ErrIndexOutOfRange)
	assert.ErrorIs(t, store.UpdateTagline("alice", -1, "nope"), models.ErrIndexOutOfRange)
	assert.ErrorIs(t, store.UpdateTagline("nobody", 0, "nope"), models.ErrIndexOutOfRange)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store := newIdeaStore(t)

	ideas := []models.IdeaRecord{sampleIdea("NexaAI"), sampleIdea("GlowrX")}
	require.NoError(t, store.Save("alice", ideas))
	assert.Equal(t, ideas, store.Load("alice"))
}

func TestLoadMalformedIdeasFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saved_ideas.json")
	require.NoError(t, os.WriteFile(path, []byte("not json at all"), 0o600))

	store := NewIdeaStore(path)
	assert.Empty(t, store.Load("alice"))

	// a save over a malformed file starts from an empty mapping
	require.NoError(t, store.Save("alice", []models.IdeaRecord{sampleIdea("NexaAI")}))
	assert.Len(t, store.Load("alice"), 1)
}
