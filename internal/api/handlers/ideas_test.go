package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/startovate/server/internal/generator"
	"github.com/startovate/server/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateIdea(t *testing.T) {
	setupStores(t)
	t.Cleanup(func() { Sessions.Reset("alice") })

	body := `{"industry":"Healthcare","audience":"Students","tech":"AI Tool","goal":"Disrupt the market","monetization":["Subscription"],"region":"Global","teamSize":5}`
	rec := httptest.NewRecorder()
	GenerateIdea(rec, authedRequest(http.MethodPost, "/ideas/generate", body, "alice"))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			Idea      models.IdeaRecord `json:"idea"`
			EmailSent bool              `json:"emailSent"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.GreaterOrEqual(t, resp.Data.Idea.Score, 70)
	assert.LessOrEqual(t, resp.Data.Idea.Score, 95)
	assert.Equal(t, 5, resp.Data.Idea.Team)
	assert.False(t, resp.Data.EmailSent, "no account email, nothing to deliver")

	// the generated idea became the session's current idea
	current, ok := Sessions.CurrentIdea("alice")
	require.True(t, ok)
	assert.True(t, current.Equals(resp.Data.Idea))
}

func TestGenerateIdeaRejectsBadParams(t *testing.T) {
	setupStores(t)

	tests := []struct {
		name string
		body string
	}{
		{"unknown industry", `{"industry":"Astrology","audience":"Students","tech":"AI Tool","goal":"Disrupt the market","monetization":["Subscription"],"region":"Global","teamSize":5}`},
		{"empty monetization", `{"industry":"Healthcare","audience":"Students","tech":"AI Tool","goal":"Disrupt the market","monetization":[],"region":"Global","teamSize":5}`},
		{"unknown monetization", `{"industry":"Healthcare","audience":"Students","tech":"AI Tool","goal":"Disrupt the market","monetization":["Bribes"],"region":"Global","teamSize":5}`},
		{"team too large", `{"industry":"Healthcare","audience":"Students","tech":"AI Tool","goal":"Disrupt the market","monetization":["Subscription"],"region":"Global","teamSize":51}`},
		{"team too small", `{"industry":"Healthcare","audience":"Students","tech":"AI Tool","goal":"Disrupt the market","monetization":["Subscription"],"region":"Global","teamSize":0}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			GenerateIdea(rec, authedRequest(http.MethodPost, "/ideas/generate", tt.body, "alice"))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestCurrentIdeaWithoutGeneration(t *testing.T) {
	setupStores(t)
	Sessions.Reset("nobody-yet")

	rec := httptest.NewRecorder()
	CurrentIdea(rec, authedRequest(http.MethodGet, "/ideas/current", "", "nobody-yet"))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestValidateParamsAcceptsEveryOption(t *testing.T) {
	for _, industry := range generator.Industries {
		p := generator.Params{
			Industry:     industry,
			Audience:     generator.Audiences[0],
			Tech:         generator.Technologies[0],
			Goal:         generator.Goals[0],
			Monetization: generator.MonetizationOptions,
			Region:       generator.Regions[0],
			TeamSize:     1,
		}
		msg, ok := validateParams(p)
		assert.True(t, ok, msg)
	}
}
