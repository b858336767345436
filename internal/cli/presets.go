package cli

import (
	"github.com/spf13/cobra"

	"github.com/galleypress/galley/internal/presets"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "Manage saved layout presets",
	Long:  `Inspect the layout presets persisted by the preset store.`,
}

var presetsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved layout presets",
	Args:  cobra.NoArgs,
	RunE:  runPresetsList,
}

// presetsPath is a flag for the list command.
var presetsPath string

func init() {
	presetsListCmd.Flags().StringVar(&presetsPath, "path", "", "preset file (default ~/.galley/presets.toml)")

	presetsCmd.AddCommand(presetsListCmd)
	rootCmd.AddCommand(presetsCmd)
}

func runPresetsList(cmd *cobra.Command, _ []string) error {
	store, err := presets.NewFileStore(presetsPath)
	if err != nil {
		return err
	}

	list, err := store.Load()
	if err != nil {
		return err
	}
	if len(list) == 0 {
		cmd.Println("No presets saved.")
		return nil
	}

	for _, p := range list {
		cmd.Printf("  %s  %-24s %-10s %d chars/page\n", p.ID, p.Name, p.Format, p.SoftLimit)
	}
	return nil
}
