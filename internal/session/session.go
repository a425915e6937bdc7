package session

import (
	"sync"

	"github.com/startovate/server/internal/models"
)

// DefaultPage is where a fresh session lands.
const DefaultPage = "Startup Generator"

// State is the transient per-login context a cookie cannot carry: the most
// recently generated idea, the last recorded voice transcript, and the page
// the user is on.
type State struct {
	CurrentIdea    *models.IdeaRecord
	LastTranscript string
	CurrentPage    string
}

// Registry holds session state per username, in process memory only.
// Nothing here survives a restart, matching the ephemeral session contract.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*State
}

func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string]*State)}
}

// SetCurrentIdea replaces the user's current idea.
func (r *Registry) SetCurrentIdea(username string, idea models.IdeaRecord) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state(username).CurrentIdea = &idea
}

// CurrentIdea returns the user's current idea, or false when none exists.
func (r *Registry) CurrentIdea(username string) (models.IdeaRecord, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[username]
	if !ok || s.CurrentIdea == nil {
		return models.IdeaRecord{}, false
	}
	return *s.CurrentIdea, true
}

// SetTranscript records the last voice-feedback transcript.
func (r *Registry) SetTranscript(username, transcript string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state(username).LastTranscript = transcript
}

// Transcript returns the last recorded transcript, empty when none exists.
func (r *Registry) Transcript(username string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.sessions[username]; ok {
		return s.LastTranscript
	}
	return ""
}

// SetPage records which page the user is on.
func (r *Registry) SetPage(username, page string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state(username).CurrentPage = page
}

// Page returns the user's current page, DefaultPage when unset.
func (r *Registry) Page(username string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.sessions[username]; ok && s.CurrentPage != "" {
		return s.CurrentPage
	}
	return DefaultPage
}

// Reset drops all transient state for the user. Called on logout.
func (r *Registry) Reset(username string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, username)
}

func (r *Registry) state(username string) *State {
	s, ok := r.sessions[username]
	if !ok {
		s = &State{}
		r.sessions[username] = s
	}
	return s
}
