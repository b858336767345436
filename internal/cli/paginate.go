package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/galleypress/galley/internal/layout"
	"github.com/galleypress/galley/internal/paginator"
)

var (
	paginateFormat  string
	paginateLimit   int
	paginateJSON    bool
	paginatePreview bool
)

var paginateCmd = &cobra.Command{
	Use:   "paginate [file]",
	Short: "Split a document into pages",
	Long: `Reads a Markdown or plain-text file (or stdin when no file is given)
and splits it into pages. Explicit ---pagebreak--- markers always force a
new page; otherwise paragraphs are packed up to the page budget.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPaginate,
}

func init() {
	paginateCmd.Flags().StringVarP(&paginateFormat, "format", "f", "", "layout format (zine, book, catalogue, report)")
	paginateCmd.Flags().IntVarP(&paginateLimit, "limit", "n", 0, "characters per page (overrides the format's target)")
	paginateCmd.Flags().BoolVar(&paginateJSON, "json", false, "output pages as JSON")
	paginateCmd.Flags().BoolVar(&paginatePreview, "preview", false, "render each page in a framed preview")
	rootCmd.AddCommand(paginateCmd)
}

func runPaginate(cmd *cobra.Command, args []string) error {
	content, err := readInput(args)
	if err != nil {
		return err
	}

	format, limit, err := resolveLayout(paginateFormat, paginateLimit)
	if err != nil {
		return err
	}

	pages := paginator.Paginate(content, limit)

	if paginateJSON {
		return printJSON(cmd, map[string]any{
			"format":     format,
			"soft_limit": limit,
			"page_count": len(pages),
			"pages":      pages,
		})
	}

	if paginatePreview {
		cmd.Print(renderPreview(pages, format, limit))
		return nil
	}

	cmd.Printf("%d pages (%s, %d chars per page)\n", len(pages), format, limit)
	for i, p := range pages {
		note := ""
		if p.Forced {
			note = " [forced]"
		}
		cmd.Printf("  [%d]%s %s\n", i+1, note, summarize(p.Text, 60))
	}
	return nil
}

// readInput returns the named file's contents, or stdin when no file was
// given.
func readInput(args []string) (string, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// resolveLayout picks the effective format and page budget: an explicit
// limit wins, then the named format's page target, then the paginator
// default.
func resolveLayout(formatName string, limit int) (layout.Format, int, error) {
	f, ok := layout.Parse(formatName)
	if !ok {
		return "", 0, fmt.Errorf("unknown format %q (expected one of: zine, book, catalogue, report)", formatName)
	}
	if limit > 0 {
		return f, limit, nil
	}
	if formatName != "" {
		if spec, ok := f.Spec(); ok {
			return f, spec.PageTarget, nil
		}
	}
	return f, paginator.DefaultSoftLimit, nil
}

func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

// summarize collapses whitespace and truncates to width runes.
func summarize(text string, width int) string {
	text = strings.Join(strings.Fields(text), " ")
	r := []rune(text)
	if len(r) <= width {
		return text
	}
	return string(r[:width-3]) + "..."
}
