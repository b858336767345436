// Package preflight inspects a document buffer for structural problems
// before export.
//
// Analysis is deterministic: the same buffer always produces the same
// severity and the same issues in the same order. No clock, randomness or
// external state is consulted.
package preflight

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/galleypress/galley/internal/paginator"
)

// Severity classifies the layout risk found in a document.
type Severity string

const (
	SeverityNone  Severity = "none"
	SeverityMinor Severity = "minor"
	SeverityMajor Severity = "major"
)

// rank orders severities: none < minor < major. Unknown values rank with
// none.
func (s Severity) rank() int {
	switch s {
	case SeverityMinor:
		return 1
	case SeverityMajor:
		return 2
	}
	return 0
}

// Max returns the higher-ranked of s and other.
func (s Severity) Max(other Severity) Severity {
	if other.rank() > s.rank() {
		return other
	}
	return s
}

func (s Severity) String() string {
	return string(s)
}

// Stable issue identifiers. UIs key on these instead of re-deriving the
// condition from the message text.
const (
	IssueFlatStructure      = "flat-structure"
	IssueNoCatalogueSignals = "no-catalogue-signals"
	IssueOversizedPage      = "oversized-page"
	IssueDanglingBreak      = "dangling-break"
)

// Issue describes one detected structural problem. Severity is the
// contribution of this issue alone; informational issues carry
// SeverityNone and never raise the report severity.
type Issue struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Text     string   `json:"text"`
	Severity Severity `json:"severity"`
}

// Report is the result of analyzing one buffer.
type Report struct {
	Severity Severity `json:"severity"`
	Issues   []Issue  `json:"issues"`
}

// Analyzer runs the preflight checks with a fixed configuration.
type Analyzer struct {
	pageTarget int
	structure  Detector
	catalogue  Detector
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithPageTarget sets the page character budget the oversized-page check
// measures against. Non-positive values keep the default.
func WithPageTarget(chars int) Option {
	return func(a *Analyzer) {
		if chars > 0 {
			a.pageTarget = chars
		}
	}
}

// WithStructureDetector swaps the block-structure heuristic.
func WithStructureDetector(d Detector) Option {
	return func(a *Analyzer) {
		if d != nil {
			a.structure = d
		}
	}
}

// WithCatalogueDetector swaps the catalogue-signal heuristic.
func WithCatalogueDetector(d Detector) Option {
	return func(a *Analyzer) {
		if d != nil {
			a.catalogue = d
		}
	}
}

// NewAnalyzer builds an Analyzer. Without options it checks against the
// paginator's default soft limit using the regex detectors.
func NewAnalyzer(opts ...Option) *Analyzer {
	a := &Analyzer{
		pageTarget: paginator.DefaultSoftLimit,
		structure:  StructureDetector(),
		catalogue:  CatalogueDetector(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

var defaultAnalyzer = NewAnalyzer()

// AnalyzeDocument classifies buffer with the default configuration.
func AnalyzeDocument(buffer string) Report {
	return defaultAnalyzer.Analyze(buffer)
}

// Analyze classifies buffer. Checks run in a fixed order (structure,
// catalogue signals, oversized pages, dangling markers) so the issue
// list is stable for identical input. An empty buffer is clean: there is
// nothing to warn about.
func (a *Analyzer) Analyze(buffer string) Report {
	issues := []Issue{}

	if strings.TrimSpace(buffer) == "" {
		return Report{Severity: SeverityNone, Issues: issues}
	}

	if !a.structure.Detect(buffer) {
		issues = append(issues, Issue{
			ID:       IssueFlatStructure,
			Title:    "No block structure detected",
			Text:     "The content has no headings, list items or paragraph breaks and may render as a single unstructured blob.",
			Severity: SeverityMinor,
		})
	}

	if !a.catalogue.Detect(buffer) {
		issues = append(issues, Issue{
			ID:       IssueNoCatalogueSignals,
			Title:    "No catalogue signals",
			Text:     "The content has no image references or list items; catalogue layouts work best with itemized content.",
			Severity: SeverityNone,
		})
	}

	if page, size, ok := a.oversizedPage(buffer); ok {
		issues = append(issues, Issue{
			ID:       IssueOversizedPage,
			Title:    "Oversized page",
			Text:     fmt.Sprintf("Page %d is %d characters against a target of %d and is likely to overflow its frame.", page, size, a.pageTarget),
			Severity: SeverityMajor,
		})
	}

	if hasDanglingMarker(buffer) {
		issues = append(issues, Issue{
			ID:       IssueDanglingBreak,
			Title:    "Dangling page break",
			Text:     "A page-break marker has no content on one of its sides; it was probably inserted by accident.",
			Severity: SeverityMinor,
		})
	}

	report := Report{Severity: SeverityNone, Issues: issues}
	for _, issue := range issues {
		report.Severity = report.Severity.Max(issue.Severity)
	}
	return report
}

// oversizedPage paginates the buffer at the configured target and reports
// the first page exceeding twice the budget. Only an unsplittable
// paragraph can get there, since the paginator otherwise respects the
// budget.
func (a *Analyzer) oversizedPage(buffer string) (page, size int, ok bool) {
	for i, text := range paginator.SplitContentIntoPages(buffer, a.pageTarget) {
		if n := utf8.RuneCountInString(text); n > 2*a.pageTarget {
			return i + 1, n, true
		}
	}
	return 0, 0, false
}

// hasDanglingMarker reports whether any page-break marker borders a
// whitespace-only stretch: a marker at the very start or end of the
// buffer, or two markers in a row.
func hasDanglingMarker(buffer string) bool {
	if !strings.Contains(buffer, paginator.PageBreakMarker) {
		return false
	}
	for _, segment := range strings.Split(buffer, paginator.PageBreakMarker) {
		if strings.TrimSpace(segment) == "" {
			return true
		}
	}
	return false
}
