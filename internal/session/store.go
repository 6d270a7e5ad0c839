package session

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

// MemoryStore keeps the session in memory only. Used in tests and one-shot
// invocations.
type MemoryStore struct {
	state *State
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Load() (*State, error) {
	return s.state, nil
}

func (s *MemoryStore) Save(state *State) error {
	copied := *state
	s.state = &copied
	return nil
}

func (s *MemoryStore) Clear() error {
	s.state = nil
	return nil
}

// FileStore persists the session as a JSON file, the CLI's equivalent of the
// web client's local storage.
type FileStore struct {
	path string
}

// NewFileStore creates a store writing to the given path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Load() (*State, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	var state State
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

func (s *FileStore) Save(state *State) error {
	data, err := json.Marshal(state)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}

func (s *FileStore) Clear() error {
	err := os.Remove(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
