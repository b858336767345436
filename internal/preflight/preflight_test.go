package preflight

import (
	"reflect"
	"strings"
	"testing"

	"github.com/galleypress/galley/internal/paginator"
)

func issueIDs(r Report) []string {
	ids := make([]string, 0, len(r.Issues))
	for _, issue := range r.Issues {
		ids = append(ids, issue.ID)
	}
	return ids
}

func hasIssue(r Report, id string) bool {
	for _, issue := range r.Issues {
		if issue.ID == id {
			return true
		}
	}
	return false
}

func TestAnalyzeDocument_EmptyBufferIsClean(t *testing.T) {
	for _, in := range []string{"", "   ", "\n\n\t"} {
		r := AnalyzeDocument(in)
		if r.Severity != SeverityNone {
			t.Errorf("%q: expected severity none, got %s", in, r.Severity)
		}
		if len(r.Issues) != 0 {
			t.Errorf("%q: expected no issues, got %v", in, issueIDs(r))
		}
	}
}

func TestAnalyzeDocument_StructuredItemizedDocumentIsClean(t *testing.T) {
	buffer := "# Spring Catalogue\n\n- Chair ![chair](https://example.com/chair.png)\n- Table\n\nAll prices include delivery."
	r := AnalyzeDocument(buffer)

	if r.Severity != SeverityNone {
		t.Fatalf("expected severity none, got %s (issues %v)", r.Severity, issueIDs(r))
	}
	if len(r.Issues) != 0 {
		t.Errorf("expected no issues, got %v", issueIDs(r))
	}
}

func TestAnalyzeDocument_FlatBlobIsMinor(t *testing.T) {
	buffer := strings.Repeat("word ", 40) // single line, no structure at all
	r := AnalyzeDocument(buffer)

	if r.Severity != SeverityMinor {
		t.Fatalf("expected severity minor, got %s", r.Severity)
	}
	if !hasIssue(r, IssueFlatStructure) {
		t.Errorf("expected %s issue, got %v", IssueFlatStructure, issueIDs(r))
	}
}

func TestAnalyzeDocument_CatalogueHintDoesNotRaiseSeverity(t *testing.T) {
	// Structured prose, but nothing itemized: the hint is reported with
	// severity none and the report stays clean.
	buffer := "# Essay\n\nFirst paragraph of prose.\n\nSecond paragraph of prose."
	r := AnalyzeDocument(buffer)

	if !hasIssue(r, IssueNoCatalogueSignals) {
		t.Fatalf("expected %s issue, got %v", IssueNoCatalogueSignals, issueIDs(r))
	}
	if r.Severity != SeverityNone {
		t.Errorf("informational issue raised severity to %s", r.Severity)
	}
	for _, issue := range r.Issues {
		if issue.ID == IssueNoCatalogueSignals && issue.Severity != SeverityNone {
			t.Errorf("expected issue severity none, got %s", issue.Severity)
		}
	}
}

func TestAnalyze_OversizedPageIsMajor(t *testing.T) {
	a := NewAnalyzer(WithPageTarget(50))
	buffer := "# Doc\n\n" + strings.Repeat("x", 150) + "\n\n- item"
	r := a.Analyze(buffer)

	if r.Severity != SeverityMajor {
		t.Fatalf("expected severity major, got %s (issues %v)", r.Severity, issueIDs(r))
	}
	if !hasIssue(r, IssueOversizedPage) {
		t.Errorf("expected %s issue, got %v", IssueOversizedPage, issueIDs(r))
	}
}

func TestAnalyze_PagesWithinTwiceTargetAreFine(t *testing.T) {
	a := NewAnalyzer(WithPageTarget(50))
	// 90 chars exceeds the target but stays under the 2x threshold.
	buffer := "# Doc\n\n" + strings.Repeat("x", 90) + "\n\n- item"
	r := a.Analyze(buffer)

	if hasIssue(r, IssueOversizedPage) {
		t.Errorf("expected no oversized-page issue for a page under 2x target, got %v", issueIDs(r))
	}
}

func TestAnalyzeDocument_DanglingMarkerIsMinor(t *testing.T) {
	cases := map[string]string{
		"trailing": "# Doc\n\ncontent here\n\n" + paginator.PageBreakMarker,
		"leading":  paginator.PageBreakMarker + "\n\n# Doc\n\ncontent here",
		"doubled":  "# Doc\n\nA\n\n" + paginator.PageBreakMarker + "\n\n" + paginator.PageBreakMarker + "\n\nB",
	}
	for name, buffer := range cases {
		r := AnalyzeDocument(buffer)
		if !hasIssue(r, IssueDanglingBreak) {
			t.Errorf("%s: expected %s issue, got %v", name, IssueDanglingBreak, issueIDs(r))
			continue
		}
		if r.Severity.rank() < SeverityMinor.rank() {
			t.Errorf("%s: expected at least minor severity, got %s", name, r.Severity)
		}
	}
}

func TestAnalyzeDocument_WellPlacedMarkerIsNotDangling(t *testing.T) {
	buffer := "# Doc\n\nfirst page\n\n" + paginator.PageBreakMarker + "\n\nsecond page"
	r := AnalyzeDocument(buffer)
	if hasIssue(r, IssueDanglingBreak) {
		t.Errorf("marker with content on both sides flagged as dangling: %v", issueIDs(r))
	}
}

func TestAnalyzeDocument_AppendingDanglingMarkerNeverLowersBelowMinor(t *testing.T) {
	docs := []string{
		"# Doc\n\nparagraph one\n\nparagraph two",
		"- a\n- b\n- c",
		"1. first\n2. second",
		strings.Repeat("flat blob ", 30),
	}
	for _, doc := range docs {
		r := AnalyzeDocument(doc + "\n\n" + paginator.PageBreakMarker)
		if r.Severity.rank() < SeverityMinor.rank() {
			t.Errorf("doc %.20q...: expected at least minor, got %s", doc, r.Severity)
		}
	}
}

func TestAnalyze_IssueOrderIsStable(t *testing.T) {
	a := NewAnalyzer(WithPageTarget(40))
	// One buffer that trips every check: an unbroken blob over twice the
	// target with a marker glued to its end.
	buffer := strings.Repeat("x", 100) + paginator.PageBreakMarker
	r := a.Analyze(buffer)

	want := []string{IssueFlatStructure, IssueNoCatalogueSignals, IssueOversizedPage, IssueDanglingBreak}
	got := issueIDs(r)
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected issues %v, got %v", want, got)
	}
	if r.Severity != SeverityMajor {
		t.Errorf("expected severity major, got %s", r.Severity)
	}
}

func TestAnalyze_Deterministic(t *testing.T) {
	buffer := "intro blob " + strings.Repeat("y", 80) + paginator.PageBreakMarker
	a := NewAnalyzer(WithPageTarget(30))

	first := a.Analyze(buffer)
	for i := 0; i < 5; i++ {
		if next := a.Analyze(buffer); !reflect.DeepEqual(first, next) {
			t.Fatalf("run %d differed:\nfirst: %+v\n next: %+v", i, first, next)
		}
	}
}

func TestSeverity_MaxOrdering(t *testing.T) {
	if got := SeverityNone.Max(SeverityMinor); got != SeverityMinor {
		t.Errorf("none vs minor: got %s", got)
	}
	if got := SeverityMinor.Max(SeverityMajor); got != SeverityMajor {
		t.Errorf("minor vs major: got %s", got)
	}
	if got := SeverityMajor.Max(SeverityNone); got != SeverityMajor {
		t.Errorf("major vs none: got %s", got)
	}
}

func TestAnalyze_CustomDetectorsAreUsed(t *testing.T) {
	never := DetectorFunc(func(string) bool { return false })
	always := DetectorFunc(func(string) bool { return true })

	a := NewAnalyzer(WithStructureDetector(never), WithCatalogueDetector(always))
	r := a.Analyze("# This has structure, but the detector says otherwise.")

	if !hasIssue(r, IssueFlatStructure) {
		t.Errorf("custom structure detector ignored: %v", issueIDs(r))
	}
	if hasIssue(r, IssueNoCatalogueSignals) {
		t.Errorf("custom catalogue detector ignored: %v", issueIDs(r))
	}
}
