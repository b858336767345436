package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/galleypress/galley/internal/importer"
	"github.com/galleypress/galley/internal/paginator"
)

var (
	importFormat string
	importLimit  int
	importJSON   bool
	importOutput string
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Convert a file into an editable document",
	Long: `Converts a PDF, EPUB, DOCX, HTML, CSV, Markdown or plain-text file
into the editor's Markdown buffer and reports how it paginates.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().StringVarP(&importFormat, "format", "f", "", "layout format for the pagination summary")
	importCmd.Flags().IntVarP(&importLimit, "limit", "n", 0, "characters per page")
	importCmd.Flags().BoolVar(&importJSON, "json", false, "output the document as JSON")
	importCmd.Flags().StringVarP(&importOutput, "output", "o", "", "write the converted buffer to a file")
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	path := args[0]

	imp, err := importer.ForFile(path)
	if err != nil {
		return err
	}
	if pdfImp, ok := imp.(*importer.PDFImporter); ok {
		pdfImp.FallbackPdftotext = true
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	doc, err := imp.Import(f, filepath.Base(path))
	if err != nil {
		return fmt.Errorf("import %s: %w", path, err)
	}

	format, limit, err := resolveLayout(importFormat, importLimit)
	if err != nil {
		return err
	}
	pages := paginator.Paginate(doc.Content, limit)

	if importOutput != "" {
		if err := os.WriteFile(importOutput, []byte(doc.Content), 0644); err != nil {
			return fmt.Errorf("write %s: %w", importOutput, err)
		}
	}

	if importJSON {
		return printJSON(cmd, map[string]any{
			"title":      doc.Title,
			"content":    doc.Content,
			"format":     format,
			"soft_limit": limit,
			"page_count": len(pages),
		})
	}

	cmd.Printf("Imported %q\n", doc.Title)
	cmd.Printf("  %s of text across %d pages (%s, %d chars per page)\n",
		humanize.Bytes(uint64(len(doc.Content))), len(pages), format, limit)
	if importOutput != "" {
		cmd.Printf("  buffer written to %s\n", importOutput)
	}
	return nil
}
