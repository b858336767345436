package importer

import (
	"bufio"
	"io"
	"strings"

	"github.com/galleypress/galley/internal/document"
)

// TextImporter handles plain text files. Blank-line separated paragraphs
// are kept; single newlines inside a paragraph survive.
type TextImporter struct{}

func (p *TextImporter) Import(r io.Reader, filename string) (*document.Document, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var paragraphs []string
	var current strings.Builder

	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			if current.Len() > 0 {
				paragraphs = append(paragraphs, current.String())
				current.Reset()
			}
		} else {
			if current.Len() > 0 {
				current.WriteString("\n")
			}
			current.WriteString(line)
		}
	}
	if current.Len() > 0 {
		paragraphs = append(paragraphs, current.String())
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return &document.Document{
		Title:   titleFromFilename(filename),
		Content: strings.Join(paragraphs, "\n\n"),
	}, nil
}
