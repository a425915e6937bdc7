package repositories

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"sync"

	"github.com/startovate/server/internal/models"
)

// UserStore persists the username -> account mapping as one JSON document.
// Usernames are normalized to lowercase before every lookup or insert, so
// logins are case-insensitive while the stored keys stay lowercase.
type UserStore struct {
	mu   sync.Mutex
	path string
}

func NewUserStore(path string) *UserStore {
	return &UserStore{path: path}
}

// HashPassword returns the SHA-256 hex digest of the plaintext. Deterministic
// and unsalted: the digest is pinned by the persisted credential format.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// Load reads the persisted accounts. An absent or malformed store yields an
// empty mapping, never an error.
func (s *UserStore) Load() map[string]models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *UserStore) load() map[string]models.User {
	users := map[string]models.User{}
	readJSONFile(s.path, &users)
	return users
}

// Save overwrites the whole persisted store with the given mapping.
func (s *UserStore) Save(users map[string]models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return writeJSONFile(s.path, users)
}

// SignUp creates a new account. Every field is required; the username must
// not already be taken (case-insensitive).
func (s *UserStore) SignUp(name, username, email, password string) error {
	if name == "" || username == "" || email == "" || password == "" {
		return models.ErrMissingField
	}
	username = strings.ToLower(username)

	s.mu.Lock()
	defer s.mu.Unlock()

	users := s.load()
	if _, exists := users[username]; exists {
		return models.ErrDuplicateUsername
	}
	users[username] = models.User{
		Name:     name,
		Email:    email,
		Password: HashPassword(password),
	}
	return writeJSONFile(s.path, users)
}

// Login checks the credentials and returns the matching account.
func (s *UserStore) Login(username, password string) (models.User, error) {
	username = strings.ToLower(username)

	s.mu.Lock()
	defer s.mu.Unlock()

	user, exists := s.load()[username]
	if !exists || user.Password != HashPassword(password) {
		return models.User{}, models.ErrInvalidCredentials
	}
	return user, nil
}
