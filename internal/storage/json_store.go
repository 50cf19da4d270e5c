package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	apperrors "github.com/julianstephens/smokefree/internal/errors"
)

type jsonFile struct {
	Version   int                        `json:"version"`
	Documents map[string]json.RawMessage `json:"documents"`
}

// jsonDocuments keeps every document in one file that is rewritten on each put.
type jsonDocuments struct {
	path string
	file *jsonFile
}

func newJSONDocuments(path string) *jsonDocuments {
	return &jsonDocuments{
		path: path,
	}
}

func (s *jsonDocuments) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Re-running init keeps existing data.
	if _, err := os.Stat(s.path); err == nil {
		return s.Load()
	}

	s.file = &jsonFile{
		Version:   1,
		Documents: make(map[string]json.RawMessage),
	}
	return s.save()
}

func (s *jsonDocuments) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return apperrors.ErrNotInitialized
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.file = &jsonFile{}
	if err := json.Unmarshal(data, s.file); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}
	if s.file.Documents == nil {
		s.file.Documents = make(map[string]json.RawMessage)
	}
	return nil
}

func (s *jsonDocuments) Close() error {
	return nil
}

// save writes to a temporary file and renames it over the original.
func (s *jsonDocuments) save() error {
	data, err := json.MarshalIndent(s.file, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to write storage: %w", err)
	}
	return nil
}

func (s *jsonDocuments) Get(key string) ([]byte, bool, error) {
	if s.file == nil {
		return nil, false, fmt.Errorf("storage not loaded")
	}
	raw, ok := s.file.Documents[key]
	if !ok {
		return nil, false, nil
	}
	return []byte(raw), true, nil
}

func (s *jsonDocuments) Put(key string, value []byte) error {
	if s.file == nil {
		return fmt.Errorf("storage not loaded")
	}
	if !json.Valid(value) {
		return fmt.Errorf("refusing to store invalid JSON under %s", key)
	}
	s.file.Documents[key] = json.RawMessage(append([]byte(nil), value...))
	return s.save()
}

func (s *jsonDocuments) Delete(keys ...string) error {
	if s.file == nil {
		return fmt.Errorf("storage not loaded")
	}
	for _, key := range keys {
		delete(s.file.Documents, key)
	}
	return s.save()
}

func (s *jsonDocuments) GetConfigPath() string {
	return s.path
}
