package repositories

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/startovate/server/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserStore(t *testing.T) *UserStore {
	t.Helper()
	return NewUserStore(filepath.Join(t.TempDir(), "users.json"))
}

func TestSignUpThenLogin(t *testing.T) {
	store := newUserStore(t)

	err := store.SignUp("Alice Doe", "alice", "alice@example.com", "p@ss")
	require.NoError(t, err)

	user, err := store.Login("alice", "p@ss")
	require.NoError(t, err)
	assert.Equal(t, "Alice Doe", user.Name)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, HashPassword("p@ss"), user.Password)
}

func TestLoginUsernameCaseInsensitive(t *testing.T) {
	store := newUserStore(t)

	require.NoError(t, store.SignUp("Alice Doe", "alice", "alice@example.com", "p@ss"))

	user, err := store.Login("ALICE", "p@ss")
	require.NoError(t, err)
	assert.Equal(t, "Alice Doe", user.Name)
}

func TestSignUpNormalizesUsername(t *testing.T) {
	store := newUserStore(t)

	require.NoError(t, store.SignUp("Bob", "BoB", "bob@example.com", "hunter2"))

	users := store.Load()
	_, hasLower := users["bob"]
	assert.True(t, hasLower, "storage key should be lowercase")
	assert.NotContains(t, users, "BoB")
}

func TestSignUpDuplicateUsername(t *testing.T) {
	store := newUserStore(t)

	require.NoError(t, store.SignUp("Alice Doe", "alice", "alice@example.com", "p@ss"))
	before := store.Load()

	err := store.SignUp("Imposter", "ALICE", "other@example.com", "secret")
	assert.ErrorIs(t, err, models.ErrDuplicateUsername)
	assert.Equal(t, before, store.Load(), "store must be unchanged after a rejected sign-up")
}

func TestSignUpMissingFields(t *testing.T) {
	store := newUserStore(t)

	tests := []struct {
		name                            string
		userName, username, email, pass string
	}{
		{"empty name", "", "alice", "a@b.c", "pw"},
		{"empty username", "Alice", "", "a@b.c", "pw"},
		{"empty email", "Alice", "alice", "", "pw"},
		{"empty password", "Alice", "alice", "a@b.c", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := store.SignUp(tt.userName, tt.username, tt.email, tt.pass)
			assert.ErrorIs(t, err, models.ErrMissingField)
		})
	}
	assert.Empty(t, store.Load())
}

func TestLoginInvalidCredentials(t *testing.T) {
	store := newUserStore(t)
	require.NoError(t, store.SignUp("Alice Doe", "alice", "alice@example.com", "p@ss"))

	_, err := store.Login("alice", "wrong")
	assert.ErrorIs(t, err, models.ErrInvalidCredentials)

	_, err = store.Login("nobody", "p@ss")
	assert.ErrorIs(t, err, models.ErrInvalidCredentials)
}

func TestHashPasswordDeterministic(t *testing.T) {
	assert.Equal(t, HashPassword("p@ss"), HashPassword("p@ss"))
	assert.NotEqual(t, HashPassword("p@ss"), HashPassword("p@ss "))
	assert.Len(t, HashPassword("anything"), 64)
}

func TestLoadMalformedStoreFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	store := NewUserStore(path)
	assert.Empty(t, store.Load())
}

func TestLoadAbsentStoreFile(t *testing.T) {
	store := NewUserStore(filepath.Join(t.TempDir(), "does-not-exist.json"))
	assert.Empty(t, store.Load())
}
