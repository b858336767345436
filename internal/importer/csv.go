package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/galleypress/galley/internal/document"
)

// CSVImporter handles CSV files, turning rows into catalogue-style list
// items grouped under per-batch headings. The first record is treated as
// the header row.
type CSVImporter struct{}

const csvBatchSize = 20

func (p *CSVImporter) Import(r io.Reader, filename string) (*document.Document, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}

	doc := &document.Document{Title: titleFromFilename(filename)}
	if len(records) == 0 {
		return doc, nil
	}

	headers := records[0]
	rows := records[1:]

	var blocks []string
	for start := 0; start < len(rows); start += csvBatchSize {
		end := min(start+csvBatchSize, len(rows))

		blocks = append(blocks, fmt.Sprintf("## Items %d-%d", start+1, end))
		var list strings.Builder
		for i, row := range rows[start:end] {
			if i > 0 {
				list.WriteString("\n")
			}
			list.WriteString("- ")
			for j, cell := range row {
				if j > 0 {
					list.WriteString(", ")
				}
				if j < len(headers) {
					list.WriteString(headers[j] + ": " + cell)
				} else {
					list.WriteString(cell)
				}
			}
		}
		blocks = append(blocks, list.String())
	}

	doc.Content = strings.Join(blocks, "\n\n")
	return doc, nil
}
