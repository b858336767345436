// Package cli implements the galley command line interface.
package cli

import (
	"github.com/spf13/cobra"
)

// version is injected at build time via ldflags.
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "galley",
	Short: "Paginate and preflight print-ready documents",
	Long: `Galley turns Markdown and plain-text drafts into paginated documents
for small-press formats: zines, books, catalogues and reports.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
