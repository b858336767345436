// Package document defines the flat buffer model shared by the importers,
// the paginator and the preflight analyzer.
package document

// Document is an editable text buffer with a display title. Content is
// UTF-8 Markdown/plain text; the owning editor mutates it, everything in
// this module only reads it.
type Document struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}
