// internal/commands/validate.go
package commands

import (
	"fmt"
	"strings"

	"github.com/mwiater/ttsreport/internal/assets"
	"github.com/mwiater/ttsreport/internal/report"
	"github.com/spf13/cobra"
)

// validateCmd checks a dataset file without rendering anything.
var validateCmd = &cobra.Command{
	Use:   "validate [dataset]",
	Short: "Validate a score dataset",
	Long: `Load a JSON or YAML dataset, check it against the dataset schema and the
score table rules, and make sure the palette has a color for every model.
Without an argument the configured dataset (or the built-in one) is checked.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := *GetConfig()
		if len(args) == 1 {
			cfg.Dataset = args[0]
		}
		name := strings.TrimSpace(cfg.Dataset)
		if name == "" {
			name = "built-in dataset"
		}

		table, err := loadTable(&cfg)
		if err != nil {
			return err
		}
		if _, err := report.NewRenderer(table, assets.NewResolver(cfg.MediaDirPath()), report.Options{Palette: paletteFromConfig(cfg.Palette)}); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "OK: %s (%d models, %d criteria)\n", name, table.Len(), len(table.Criteria()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
