// Package paginator splits a flat text buffer into page-sized chunks.
//
// Pagination is a pure function of its inputs: no state is kept between
// calls and no I/O happens. Hosts recompute on every content change and
// memoize results themselves.
package paginator

import (
	"strings"
	"unicode/utf8"
)

// PageBreakMarker forces a page boundary at its exact position in the
// buffer, regardless of the size budget. It is consumed during splitting
// and never appears in emitted pages. Content that happens to contain the
// literal is indistinguishable from an intentional break; the marker is a
// visible, hand-typeable token on purpose, since buffers are edited as
// plain text.
const PageBreakMarker = "---pagebreak---"

// DefaultSoftLimit is the page budget in characters used when a caller
// supplies none.
const DefaultSoftLimit = 1200

// Page is one unit of paginated output. Forced marks a page whose trailing
// boundary came from an explicit marker rather than the soft limit; only
// forced boundaries are re-emitted by JoinPages.
type Page struct {
	Text   string `json:"text"`
	Forced bool   `json:"forced"`
}

// SplitContentIntoPages splits buffer into trimmed page texts. It is the
// string-only form of Paginate for callers that do not care which
// boundaries were forced.
func SplitContentIntoPages(buffer string, softLimit int) []string {
	pages := Paginate(buffer, softLimit)
	out := make([]string, len(pages))
	for i, p := range pages {
		out[i] = p.Text
	}
	return out
}

// Paginate splits buffer into pages.
//
// The buffer is first split on PageBreakMarker; segments never merge
// across a marker. Within a segment, paragraphs (blank-line separated)
// are packed greedily: a paragraph is appended while the page stays at or
// under softLimit, otherwise the page is closed and a new one starts. A
// paragraph that alone exceeds softLimit is emitted whole; the budget is
// a preference, never a reason to cut content mid-word. softLimit <= 0
// means one paragraph per page. The result always holds at least one
// page; an effectively empty buffer yields a single empty page.
func Paginate(buffer string, softLimit int) []Page {
	segments := strings.Split(buffer, PageBreakMarker)

	var pages []Page
	for i, segment := range segments {
		texts := packParagraphs(segment, softLimit)
		// The marker that ended this segment belongs to the segment's
		// last page. A whitespace-only segment contributes no page; its
		// marker is dropped, which collapses doubled markers on rejoin.
		forced := i < len(segments)-1
		for j, text := range texts {
			pages = append(pages, Page{
				Text:   text,
				Forced: forced && j == len(texts)-1,
			})
		}
	}

	if len(pages) == 0 {
		return []Page{{}}
	}
	return pages
}

// JoinPages reassembles an edited page sequence into a single buffer.
// Pages are joined with a blank line; PageBreakMarker is re-inserted
// after each forced page so explicit boundaries survive an edit round
// trip. Soft-limit boundaries are deliberately not preserved; they are
// recomputed on the next Paginate call.
func JoinPages(pages []Page) string {
	var sb strings.Builder
	for _, p := range pages {
		text := strings.TrimSpace(p.Text)
		if text != "" {
			if sb.Len() > 0 {
				sb.WriteString("\n\n")
			}
			sb.WriteString(text)
		}
		if p.Forced {
			if sb.Len() > 0 {
				sb.WriteString("\n\n")
			}
			sb.WriteString(PageBreakMarker)
		}
	}
	return sb.String()
}

// packParagraphs greedily accumulates a segment's paragraphs into pages
// of at most softLimit characters (runes, not bytes).
func packParagraphs(segment string, softLimit int) []string {
	paragraphs := splitParagraphs(segment)

	const sepLen = 2 // the "\n\n" between paragraphs counts against the budget

	var pages []string
	var current strings.Builder
	currentLen := 0

	for _, para := range paragraphs {
		paraLen := utf8.RuneCountInString(para)

		if currentLen > 0 && (softLimit <= 0 || currentLen+sepLen+paraLen > softLimit) {
			pages = append(pages, current.String())
			current.Reset()
			currentLen = 0
		}

		if current.Len() > 0 {
			current.WriteString("\n\n")
			currentLen += sepLen
		}
		current.WriteString(para)
		currentLen += paraLen
	}

	if current.Len() > 0 {
		pages = append(pages, current.String())
	}
	return pages
}

// splitParagraphs splits on blank lines (runs of newlines, tolerating
// horizontal whitespace on the blank lines) and drops empty paragraphs.
// Single newlines inside a paragraph are preserved.
func splitParagraphs(segment string) []string {
	lines := strings.Split(segment, "\n")

	var paragraphs []string
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			paragraphs = append(paragraphs, strings.TrimSpace(current.String()))
			current.Reset()
		}
	}

	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		if current.Len() > 0 {
			current.WriteString("\n")
		}
		current.WriteString(line)
	}
	flush()

	return paragraphs
}
