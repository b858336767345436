package presets

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/pelletier/go-toml/v2"
)

// Ensure FileStore implements the interface.
var _ Store = (*FileStore)(nil)

// FileStore persists presets as a TOML file.
type FileStore struct {
	mu       sync.RWMutex
	filePath string
}

// presetFile is the on-disk layout: a [[presets]] array of tables.
type presetFile struct {
	Presets []Preset `toml:"presets"`
}

// NewFileStore creates a TOML-backed preset store.
// If path is empty, defaults to ~/.galley/presets.toml.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(home, ".galley", "presets.toml")
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, err
	}

	return &FileStore{filePath: path}, nil
}

// Load reads the preset list. A missing file is an empty list, not an
// error.
func (s *FileStore) Load() ([]Preset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return []Preset{}, nil
		}
		return nil, err
	}

	var f presetFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	if f.Presets == nil {
		f.Presets = []Preset{}
	}
	return f.Presets, nil
}

// Save replaces the stored list.
func (s *FileStore) Save(list []Preset) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := toml.Marshal(presetFile{Presets: list})
	if err != nil {
		return err
	}

	// Write with restricted permissions
	return os.WriteFile(s.filePath, data, 0600)
}

// Path returns the preset file path.
func (s *FileStore) Path() string {
	return s.filePath
}
