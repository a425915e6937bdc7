package repositories

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// Global store handles, initialized once at startup.
var (
	Users *UserStore
	Ideas *IdeaStore
)

const (
	userDataFile   = "users.json"
	savedIdeasFile = "saved_ideas.json"
)

// Init creates the data directory if missing and wires the store handles.
func Init(dataDir string) error {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	Users = NewUserStore(filepath.Join(dataDir, userDataFile))
	Ideas = NewIdeaStore(filepath.Join(dataDir, savedIdeasFile))
	log.Println("Store files initialized under", dataDir)
	return nil
}

// readJSONFile decodes the whole store file into dst. An absent or malformed
// file is not an error: the caller keeps the empty value dst already holds.
// Malformed content is logged as a notice so a truncated file is not silent.
func readJSONFile(path string, dst any) {
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}
	if err := json.Unmarshal(data, dst); err != nil {
		log.Printf("Malformed store file %s, treating as empty: %v", path, err)
	}
}

// writeJSONFile replaces the whole store file. Pretty-printed with 4-space
// indent; the on-disk format is part of the external interface.
func writeJSONFile(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return fmt.Errorf("encode store file: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write store file: %w", err)
	}
	return nil
}
