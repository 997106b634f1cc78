// repositories/user_repository.go
package repositories

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/agrisure/agrisure_backend/models"
)

// UserRepository is the append-only record store backing POST /save and
// GET /users. Every mutation rewrites the whole collection; the mutex
// serializes the read-modify-write sequence so concurrent saves cannot drop
// records.
type UserRepository struct {
	path string
	mu   sync.Mutex
}

// NewUserRepository ensures the data directory and backing file exist and
// returns the store.
func NewUserRepository(dataDir string) (*UserRepository, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	repo := &UserRepository{path: filepath.Join(dataDir, "users.json")}
	if _, err := os.Stat(repo.path); os.IsNotExist(err) {
		if err := writeJSONFile(repo.path, []models.UserRecord{}); err != nil {
			return nil, err
		}
	}
	return repo, nil
}

// Append adds a record to the collection. Records are never updated or
// removed afterwards.
func (r *UserRepository) Append(record models.UserRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.load()
	if err != nil {
		return err
	}
	records = append(records, record)
	return writeJSONFile(r.path, records)
}

// ListAll returns every persisted record, unfiltered and unpaginated.
func (r *UserRepository) ListAll() ([]models.UserRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load()
}

func (r *UserRepository) load() ([]models.UserRecord, error) {
	content, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read user records: %w", err)
	}
	var records []models.UserRecord
	if err := json.Unmarshal(content, &records); err != nil {
		return nil, fmt.Errorf("failed to parse user records: %w", err)
	}
	return records, nil
}

// writeJSONFile persists v by writing to a temporary file and renaming it
// over the target. A crash leaves either the old file or the new one, never
// a torn write.
func writeJSONFile(path string, v interface{}) error {
	bytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	tempPath := path + ".tmp"
	if err := os.WriteFile(tempPath, bytes, 0644); err != nil {
		return err
	}
	return os.Rename(tempPath, path)
}
