// Package store persists the raw simulation input so a household can
// reload its scenario later. Computed projections are never stored.
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	json "github.com/goccy/go-json"

	"github.com/nwgo/networth-projector/internal/domain"
)

const inputFileName = "user_data.json"

// FileStore saves and loads a single SimulationInput as a JSON file.
// Writes go through a temp file plus rename so a crash mid-write never
// leaves a truncated document behind.
type FileStore struct {
	mu   sync.RWMutex
	path string
}

// NewFileStore creates the data directory if needed and returns a store
// rooted there.
func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data dir %s: %w", dir, err)
	}
	return &FileStore{path: filepath.Join(dir, inputFileName)}, nil
}

// Save persists the input, replacing any previous snapshot.
func (s *FileStore) Save(input *domain.SimulationInput) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(input, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode input: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", s.path, err)
	}
	return nil
}

// Load returns the previously saved input. When nothing has been saved the
// error wraps os.ErrNotExist.
func (s *FileStore) Load() (*domain.SimulationInput, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read saved input: %w", err)
	}

	var input domain.SimulationInput
	if err := json.Unmarshal(data, &input); err != nil {
		return nil, fmt.Errorf("failed to decode saved input: %w", err)
	}
	return &input, nil
}
