package presets

import "sync"

// Ensure MemoryStore implements the interface.
var _ Store = (*MemoryStore)(nil)

// MemoryStore keeps presets in memory. Handy for tests and for running
// the server without a writable home directory.
type MemoryStore struct {
	mu   sync.RWMutex
	list []Preset
}

// NewMemoryStore creates an in-memory preset store, optionally seeded.
func NewMemoryStore(seed ...Preset) *MemoryStore {
	return &MemoryStore{list: append([]Preset(nil), seed...)}
}

func (s *MemoryStore) Load() ([]Preset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Preset, len(s.list))
	copy(out, s.list)
	return out, nil
}

func (s *MemoryStore) Save(list []Preset) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.list = make([]Preset, len(list))
	copy(s.list, list)
	return nil
}
