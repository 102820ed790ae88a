package cache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/hap-bridge/accessory-go/pkg/serialize"
)

// CacheVersion is the current version of the cache file format.
const CacheVersion = 1

// cacheFile is the on-disk envelope around the accessory records.
type cacheFile struct {
	// Version is the cache file format version.
	Version int `json:"version"`

	// SavedAt is when the cache was last saved.
	SavedAt time.Time `json:"saved_at"`

	// Accessories are the flattened accessory records.
	Accessories []*serialize.AccessoryRecord `json:"accessories,omitempty"`
}

// Store manages persistence of flattened accessory records to a JSON
// file. A bridge saves its known accessories here and restores them
// through serialize.Deserialize after a restart.
type Store struct {
	mu   sync.Mutex
	path string
}

// NewStore creates a store backed by the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Save persists the records to disk.
func (s *Store) Save(records []*serialize.AccessoryRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Ensure parent directory exists
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	file := cacheFile{
		Version:     CacheVersion,
		SavedAt:     time.Now(),
		Accessories: records,
	}

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(s.path, data, 0644)
}

// Load reads the records from disk.
// Returns nil, nil if the file doesn't exist (empty cache).
func (s *Store) Load() ([]*serialize.AccessoryRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	file := &cacheFile{}
	if err := json.Unmarshal(data, file); err != nil {
		return nil, fmt.Errorf("parse accessory cache %s: %w", s.path, err)
	}

	return file.Accessories, nil
}

// Clear removes the cache file.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
