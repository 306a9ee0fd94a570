// internal/storage/store.go
package storage

import (
	"encoding/json"
	"log"
	"os"
)

// MemStore is an in-memory Store for the demo driver and tests.
type MemStore struct {
	values map[string]string
}

func NewMemStore() *MemStore {
	return &MemStore{values: make(map[string]string)}
}

func (s *MemStore) Get(key string) (string, bool) {
	v, ok := s.values[key]
	return v, ok
}

func (s *MemStore) Set(key, value string) {
	s.values[key] = value
}

func (s *MemStore) Remove(key string) {
	delete(s.values, key)
}

// FileStore persists keys as a single JSON object on disk. All failures are
// swallowed: a broken save file means starting from defaults, never a
// crashed run.
type FileStore struct {
	path   string
	values map[string]string
}

func NewFileStore(path string) *FileStore {
	s := &FileStore{path: path, values: make(map[string]string)}
	data, err := os.ReadFile(path)
	if err != nil {
		return s
	}
	if err := json.Unmarshal(data, &s.values); err != nil {
		log.Printf("save file %s is corrupt, starting fresh: %v", path, err)
		s.values = make(map[string]string)
	}
	return s
}

func (s *FileStore) Get(key string) (string, bool) {
	v, ok := s.values[key]
	return v, ok
}

func (s *FileStore) Set(key, value string) {
	s.values[key] = value
	s.flush()
}

func (s *FileStore) Remove(key string) {
	delete(s.values, key)
	s.flush()
}

func (s *FileStore) flush() {
	data, err := json.Marshal(s.values)
	if err != nil {
		return
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		log.Printf("failed to write save file %s: %v", s.path, err)
	}
}
