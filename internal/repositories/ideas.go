package repositories

import (
	"sync"

	"github.com/startovate/server/internal/models"
)

// IdeaStore persists every user's saved-idea gallery as one JSON document
// mapping username -> ordered idea list (order = save order). Entries keep
// stable indices, which the tagline edit relies on.
type IdeaStore struct {
	mu   sync.Mutex
	path string
}

func NewIdeaStore(path string) *IdeaStore {
	return &IdeaStore{path: path}
}

// Load returns the user's saved sequence. An absent or malformed store, or a
// user with no entry, yields an empty sequence.
func (s *IdeaStore) Load(username string) []models.IdeaRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadAll()[username]
}

func (s *IdeaStore) loadAll() map[string][]models.IdeaRecord {
	all := map[string][]models.IdeaRecord{}
	readJSONFile(s.path, &all)
	return all
}

// Save replaces only this user's entry and writes the full mapping back.
// Other users' galleries are preserved unchanged.
func (s *IdeaStore) Save(username string, ideas []models.IdeaRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(username, ideas)
}

func (s *IdeaStore) save(username string, ideas []models.IdeaRecord) error {
	all := s.loadAll()
	all[username] = ideas
	return writeJSONFile(s.path, all)
}

// Append adds the record to the user's gallery unless an existing entry is
// field-wise identical, in which case it reports ErrAlreadySaved and leaves
// the sequence unchanged.
func (s *IdeaStore) Append(username string, record models.IdeaRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ideas := s.loadAll()[username]
	for _, saved := range ideas {
		if saved.Equals(record) {
			return models.ErrAlreadySaved
		}
	}
	return s.save(username, append(ideas, record))
}

// UpdateTagline overwrites the tagline of the entry at index and persists the
// whole sequence. The tagline is the only field the gallery may edit in place.
func (s *IdeaStore) UpdateTagline(username string, index int, tagline string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ideas := s.loadAll()[username]
	if index < 0 || index >= len(ideas) {
		return models.ErrIndexOutOfRange
	}
	ideas[index].Tagline = tagline
	return s.save(username, ideas)
}
