// Package layout declares the output formats a document can be paginated
// against. A format is plain data: a page character budget and physical
// dimensions. Drawing the frames is the rendering surface's concern, not
// ours.
package layout

// Format identifies an output format preset.
type Format string

const (
	FormatZine      Format = "zine"
	FormatBook      Format = "book"
	FormatCatalogue Format = "catalogue"
	FormatReport    Format = "report"
)

// DefaultFormat is used when a caller names no format.
const DefaultFormat = FormatBook

// Spec carries the layout numbers for one format. PageTarget is the soft
// page budget in characters handed to the paginator; preflight treats
// pages beyond twice this target as overflow risks.
type Spec struct {
	Name         Format  `json:"name"`
	Label        string  `json:"label"`
	PageTarget   int     `json:"page_target"`
	PageWidthMM  float64 `json:"page_width_mm"`
	PageHeightMM float64 `json:"page_height_mm"`
	Columns      int     `json:"columns"`
}

var specs = map[Format]Spec{
	FormatZine:      {Name: FormatZine, Label: "Zine (A5 folded)", PageTarget: 600, PageWidthMM: 148, PageHeightMM: 210, Columns: 1},
	FormatBook:      {Name: FormatBook, Label: "Book (trade paperback)", PageTarget: 1500, PageWidthMM: 129, PageHeightMM: 198, Columns: 1},
	FormatCatalogue: {Name: FormatCatalogue, Label: "Catalogue (A4, two column)", PageTarget: 1000, PageWidthMM: 210, PageHeightMM: 297, Columns: 2},
	FormatReport:    {Name: FormatReport, Label: "Report (A4)", PageTarget: 2200, PageWidthMM: 210, PageHeightMM: 297, Columns: 1},
}

// order fixes the presentation sequence for All.
var order = []Format{FormatZine, FormatBook, FormatCatalogue, FormatReport}

// IsValid reports whether f names a known format.
func (f Format) IsValid() bool {
	_, ok := specs[f]
	return ok
}

func (f Format) String() string {
	return string(f)
}

// Description returns the human-readable label for f, or "" when f is not
// a known format.
func (f Format) Description() string {
	return specs[f].Label
}

// Spec returns the layout numbers for f.
func (f Format) Spec() (Spec, bool) {
	s, ok := specs[f]
	return s, ok
}

// All returns every format spec in presentation order.
func All() []Spec {
	out := make([]Spec, 0, len(order))
	for _, f := range order {
		out = append(out, specs[f])
	}
	return out
}

// Parse normalizes a user-supplied format name. Empty input falls back to
// DefaultFormat; unknown names are returned as-is with ok=false so the
// caller can report them.
func Parse(name string) (Format, bool) {
	if name == "" {
		return DefaultFormat, true
	}
	f := Format(name)
	return f, f.IsValid()
}
