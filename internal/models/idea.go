package models

import "slices"

// IdeaRecord is one generated startup idea. The json tags define the
// saved_ideas.json wire format, so renaming a field is a breaking change.
type IdeaRecord struct {
	Name         string   `json:"name"`
	Tagline      string   `json:"tagline"`
	Industry     string   `json:"industry"`
	Audience     string   `json:"audience"`
	Tech         string   `json:"tech"`
	Goal         string   `json:"goal"`
	Monetization []string `json:"monetization"`
	Region       string   `json:"region"`
	Team         int      `json:"team"`
	Score        int      `json:"score"`
	Idea         string   `json:"idea"`
}

// Equals reports whether every field matches. The gallery's duplicate check
// depends on this being a full field-wise comparison; monetization order
// matters (order = selection order).
func (r IdeaRecord) Equals(other IdeaRecord) bool {
	return r.Name == other.Name &&
		r.Tagline == other.Tagline &&
		r.Industry == other.Industry &&
		r.Audience == other.Audience &&
		r.Tech == other.Tech &&
		r.Goal == other.Goal &&
		r.Region == other.Region &&
		r.Team == other.Team &&
		r.Score == other.Score &&
		r.Idea == other.Idea &&
		slices.Equal(r.Monetization, other.Monetization)
}
