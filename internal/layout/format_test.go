package layout

import "testing"

func TestParse_EmptyFallsBackToDefault(t *testing.T) {
	f, ok := Parse("")
	if !ok {
		t.Fatal("expected empty name to be accepted")
	}
	if f != DefaultFormat {
		t.Errorf("expected %q, got %q", DefaultFormat, f)
	}
}

func TestParse_RejectsUnknownFormat(t *testing.T) {
	f, ok := Parse("broadsheet")
	if ok {
		t.Fatalf("expected unknown format to be rejected, got %q", f)
	}
	if f != Format("broadsheet") {
		t.Errorf("expected input echoed back, got %q", f)
	}
}

func TestAll_StableOrderAndCompleteness(t *testing.T) {
	all := All()
	want := []Format{FormatZine, FormatBook, FormatCatalogue, FormatReport}
	if len(all) != len(want) {
		t.Fatalf("expected %d formats, got %d", len(want), len(all))
	}
	for i, s := range all {
		if s.Name != want[i] {
			t.Errorf("position %d: expected %q, got %q", i, want[i], s.Name)
		}
		if s.PageTarget <= 0 {
			t.Errorf("%s: page target must be positive, got %d", s.Name, s.PageTarget)
		}
		if s.PageWidthMM <= 0 || s.PageHeightMM <= 0 {
			t.Errorf("%s: dimensions must be positive", s.Name)
		}
		if s.Columns < 1 {
			t.Errorf("%s: columns must be at least 1, got %d", s.Name, s.Columns)
		}
	}
}

func TestSpec_UnknownFormat(t *testing.T) {
	if _, ok := Format("flyer").Spec(); ok {
		t.Error("expected unknown format to have no spec")
	}
}

func TestDescription(t *testing.T) {
	if got := FormatZine.Description(); got != "Zine (A5 folded)" {
		t.Errorf("unexpected zine description %q", got)
	}
	if got := Format("flyer").Description(); got != "" {
		t.Errorf("expected empty description for unknown format, got %q", got)
	}
}
