// Package assets describes imported files the way the layout panels see
// them: an ID, a display name, a coarse kind and a human-readable size
// label. The core never holds asset bytes; pages reference assets
// through URLs embedded in the buffer.
package assets

import (
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
)

// Kind coarsely classifies an imported file.
type Kind string

const (
	KindImage Kind = "image"
	KindText  Kind = "text"
	KindOther Kind = "other"
)

// Asset identifies one imported file.
type Asset struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Kind      Kind   `json:"kind"`
	SizeLabel string `json:"size_label"`
}

// New builds an Asset for a filename and byte size, assigning a fresh ID.
func New(name string, size int64) Asset {
	if size < 0 {
		size = 0
	}
	return Asset{
		ID:        NewID(),
		Name:      name,
		Kind:      KindForFile(name),
		SizeLabel: humanize.Bytes(uint64(size)),
	}
}

var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
	".svg":  true,
	".bmp":  true,
}

var textExtensions = map[string]bool{
	".txt":      true,
	".md":       true,
	".markdown": true,
	".csv":      true,
	".html":     true,
	".htm":      true,
	".pdf":      true,
	".docx":     true,
	".epub":     true,
}

// KindForFile classifies a filename by extension.
func KindForFile(name string) Kind {
	ext := strings.ToLower(filepath.Ext(name))
	switch {
	case imageExtensions[ext]:
		return KindImage
	case textExtensions[ext]:
		return KindText
	default:
		return KindOther
	}
}
