package importer

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/taylorskalyo/goreader/epub"
	"golang.org/x/net/html"

	"github.com/galleypress/galley/internal/document"
	"github.com/galleypress/galley/internal/paginator"
)

// EPUBImporter handles .epub files. Chapters are read in spine order and
// joined with explicit page-break markers; the book title comes from the
// package metadata when present.
type EPUBImporter struct{}

func (p *EPUBImporter) Import(r io.Reader, filename string) (*document.Document, error) {
	// The epub package opens by path, so spool to a temp file.
	tmp, err := os.CreateTemp("", "galley-epub-*.epub")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	tmp.Close()

	rc, err := epub.OpenReader(tmpPath)
	if err != nil {
		return nil, fmt.Errorf("open epub: %w", err)
	}
	defer rc.Close()

	if len(rc.Rootfiles) == 0 {
		return nil, fmt.Errorf("epub has no rootfile")
	}
	book := rc.Rootfiles[0]

	title := strings.TrimSpace(book.Title)
	if title == "" {
		title = titleFromFilename(filename)
	}

	var chapters []string
	for _, ref := range book.Spine.Itemrefs {
		if ref.Item == nil {
			continue
		}
		text, err := chapterText(ref.Item)
		if err != nil {
			// Skip unreadable chapters rather than failing the book.
			continue
		}
		if text != "" {
			chapters = append(chapters, text)
		}
	}

	return &document.Document{
		Title:   title,
		Content: strings.Join(chapters, "\n\n"+paginator.PageBreakMarker+"\n\n"),
	}, nil
}

// chapterText flattens one spine item's XHTML into text blocks.
func chapterText(item *epub.Item) (string, error) {
	r, err := item.Open()
	if err != nil {
		return "", err
	}
	defer r.Close()

	doc, err := html.Parse(r)
	if err != nil {
		return "", err
	}

	root := findBody(doc)
	if root == nil {
		root = doc
	}

	text := strings.Join(htmlBlocks(root), "\n\n")
	if text == "" {
		text = textContent(root)
	}
	return strings.TrimSpace(text), nil
}
