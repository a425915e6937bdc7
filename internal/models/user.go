package models

// User is one account record in the credential store. Accounts are keyed by
// lowercase username in the store file, so the username itself is not a field
// here. Password holds the SHA-256 hex digest, never plaintext.
type User struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}
