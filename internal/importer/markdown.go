package importer

import (
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	gtext "github.com/yuin/goldmark/text"

	"github.com/galleypress/galley/internal/document"
)

// MarkdownImporter handles Markdown files. The editor's buffer format is
// Markdown already, so content passes through as written (line endings
// normalized); only the title is derived, from the first heading.
type MarkdownImporter struct{}

func (p *MarkdownImporter) Import(r io.Reader, filename string) (*document.Document, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	title := firstHeading(src)
	if title == "" {
		title = titleFromFilename(filename)
	}

	content := strings.ReplaceAll(string(src), "\r\n", "\n")
	return &document.Document{
		Title:   title,
		Content: strings.TrimSpace(content),
	}, nil
}

// firstHeading returns the text of the first heading block, if any.
func firstHeading(src []byte) string {
	md := goldmark.New()
	doc := md.Parser().Parse(gtext.NewReader(src))

	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		if h, ok := n.(*ast.Heading); ok {
			return strings.TrimSpace(string(h.Text(src)))
		}
	}
	return ""
}
