// Package importer converts uploaded files into editable document buffers.
//
// Every importer flattens its input to Markdown-flavoured plain text:
// headings become "#" lines and blocks become blank-line separated
// paragraphs. Formats with native page-like units (PDF pages, EPUB
// chapters) join them with explicit page-break markers so the source
// pagination survives the trip into the editor.
package importer

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/galleypress/galley/internal/document"
)

// Importer converts one file format into a document.
type Importer interface {
	Import(r io.Reader, filename string) (*document.Document, error)
}

// SupportedExtensions lists the file extensions the import surface accepts.
var SupportedExtensions = map[string]bool{
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

// ForFile returns the importer for a filename.
func ForFile(filename string) (Importer, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".txt":
		return &TextImporter{}, nil
	case ".md", ".markdown":
		return &MarkdownImporter{}, nil
	case ".csv":
		return &CSVImporter{}, nil
	case ".html", ".htm":
		return &HTMLImporter{}, nil
	case ".pdf":
		return &PDFImporter{}, nil
	case ".docx":
		return &DOCXImporter{}, nil
	case ".epub":
		return &EPUBImporter{}, nil
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", ext)
	}
}

// IsSupported reports whether the filename's extension can be imported.
func IsSupported(filename string) bool {
	return SupportedExtensions[strings.ToLower(filepath.Ext(filename))]
}

// titleFromFilename derives a display title from a file name.
func titleFromFilename(filename string) string {
	base := filepath.Base(filename)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
