package preflight

import (
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	gtext "github.com/yuin/goldmark/text"
)

// Detector reports whether a buffer exhibits some content shape. It is a
// single-capability interface so stricter parsers can replace the regex
// heuristics without touching the severity-aggregation contract.
type Detector interface {
	Detect(buffer string) bool
}

// DetectorFunc adapts a plain function to the Detector interface.
type DetectorFunc func(buffer string) bool

func (f DetectorFunc) Detect(buffer string) bool {
	return f(buffer)
}

var (
	headingPattern  = regexp.MustCompile(`(?m)^#{1,6}\s+\S`)
	bulletPattern   = regexp.MustCompile(`(?m)^[ \t]*[-*+][ \t]+\S`)
	numberedPattern = regexp.MustCompile(`(?m)^[ \t]*\d+[.)][ \t]+\S`)
	imagePattern    = regexp.MustCompile(`!\[[^\]]*\]\([^)]+\)`)
	blankLineRun    = regexp.MustCompile(`\n[ \t]*\n`)
)

// StructureDetector matches recognizable block structure: a heading, a
// bullet or numbered list item, or at least one paragraph break.
func StructureDetector() Detector {
	return DetectorFunc(func(buffer string) bool {
		return headingPattern.MatchString(buffer) ||
			bulletPattern.MatchString(buffer) ||
			numberedPattern.MatchString(buffer) ||
			blankLineRun.MatchString(strings.TrimSpace(buffer))
	})
}

// CatalogueDetector matches catalogue-style content: image references or
// list items.
func CatalogueDetector() Detector {
	return DetectorFunc(func(buffer string) bool {
		return imagePattern.MatchString(buffer) ||
			bulletPattern.MatchString(buffer) ||
			numberedPattern.MatchString(buffer)
	})
}

// MarkdownStructureDetector parses the buffer as Markdown and looks for
// heading or list blocks in the AST. Stricter than StructureDetector: a
// "#" line inside a fenced code block does not count as a heading here.
func MarkdownStructureDetector() Detector {
	return DetectorFunc(func(buffer string) bool {
		src := []byte(buffer)
		md := goldmark.New()
		doc := md.Parser().Parse(gtext.NewReader(src))

		found := false
		_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
			if !entering {
				return ast.WalkContinue, nil
			}
			switch n.Kind() {
			case ast.KindHeading, ast.KindList:
				found = true
				return ast.WalkStop, nil
			}
			return ast.WalkContinue, nil
		})
		if found {
			return true
		}
		// Multiple paragraphs still count as structure.
		return blankLineRun.MatchString(strings.TrimSpace(buffer))
	})
}
