package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/galleypress/galley/internal/preflight"
)

var (
	preflightFormat string
	preflightLimit  int
	preflightJSON   bool
)

var preflightCmd = &cobra.Command{
	Use:   "preflight [file]",
	Short: "Check a document for layout problems",
	Long: `Analyzes a document before printing and reports structural problems:
missing paragraph structure, pages that blow past the page budget, and
stray page-break markers. Exits non-zero when a major issue is found.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPreflight,
}

func init() {
	preflightCmd.Flags().StringVarP(&preflightFormat, "format", "f", "", "layout format (zine, book, catalogue, report)")
	preflightCmd.Flags().IntVarP(&preflightLimit, "limit", "n", 0, "characters per page (overrides the format's target)")
	preflightCmd.Flags().BoolVar(&preflightJSON, "json", false, "output the report as JSON")
	rootCmd.AddCommand(preflightCmd)
}

func runPreflight(cmd *cobra.Command, args []string) error {
	content, err := readInput(args)
	if err != nil {
		return err
	}

	_, limit, err := resolveLayout(preflightFormat, preflightLimit)
	if err != nil {
		return err
	}

	report := preflight.NewAnalyzer(preflight.WithPageTarget(limit)).Analyze(content)

	if preflightJSON {
		if err := printJSON(cmd, report); err != nil {
			return err
		}
	} else {
		renderReport(cmd, report)
	}

	if report.Severity == preflight.SeverityMajor {
		return fmt.Errorf("preflight found major issues")
	}
	return nil
}

func renderReport(cmd *cobra.Command, report preflight.Report) {
	if len(report.Issues) == 0 {
		cmd.Println(cleanStyle.Render("No issues found."))
		return
	}

	cmd.Printf("Severity: %s\n\n", severityStyle(report.Severity).Render(report.Severity.String()))
	for _, issue := range report.Issues {
		cmd.Printf("  [%s] %s\n", severityStyle(issue.Severity).Render(issue.Severity.String()), issue.Title)
		cmd.Printf("      %s\n", issue.Text)
	}
}
