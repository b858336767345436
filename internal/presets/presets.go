// Package presets stores named layout configurations so a user can save
// the format and page budget they tuned and reapply them later.
package presets

import "time"

// Preset is a saved layout configuration.
type Preset struct {
	ID        string    `toml:"id" json:"id"`
	Name      string    `toml:"name" json:"name"`
	Format    string    `toml:"format" json:"format"`
	SoftLimit int       `toml:"soft_limit" json:"soft_limit"`
	CreatedAt time.Time `toml:"created_at" json:"created_at"`
}

// Store loads and saves the full preset list. Implementations replace
// the stored list wholesale on Save.
type Store interface {
	Load() ([]Preset, error)
	Save([]Preset) error
}
