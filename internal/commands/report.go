// internal/commands/report.go
package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/mwiater/ttsreport/internal/appconfig"
	"github.com/mwiater/ttsreport/internal/report"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// reportCmd renders the full report to a file or the terminal.
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Render the TTS comparison report",
	Long: `Render one radar chart section per model, the summary score table and the
ranking by average score. HTML output is a single page with example snippets
inlined. Audio clips from the media directory are linked relative to the page
unless --embed-assets inlines them as data URIs.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		out := cmd.OutOrStdout()

		r, err := newRenderer(cfg)
		if err != nil {
			return err
		}
		rep, err := r.Render()
		if err != nil {
			return fmt.Errorf("render report: %w", err)
		}

		switch cfg.OutputFormat() {
		case appconfig.FormatTerminal:
			if err := r.WriteTerminal(out, rep); err != nil {
				return err
			}
		default:
			path := cfg.OutputPath()
			if err := r.WriteHTMLFile(path, rep); err != nil {
				return err
			}
			fmt.Fprintf(out, "HTML report written to %s\n", path)
		}

		if cfg.AnalysisOutput != "" {
			if err := report.WriteAnalysisJSON(cfg.AnalysisOutput, rep); err != nil {
				return err
			}
			fmt.Fprintf(out, "Analysis JSON written to %s\n", cfg.AnalysisOutput)
		}

		missing := 0
		for _, s := range rep.Sections {
			missing += len(s.Missing)
		}
		if missing > 0 {
			warn := color.New(color.FgYellow).SprintFunc()
			fmt.Fprintln(out, warn(fmt.Sprintf("%d optional asset(s) missing, see the log for details", missing)))
		}
		return nil
	},
}

func init() {
	reportCmd.Flags().StringP("output", "o", "", "destination HTML report path (default reports/tts-report.html)")
	reportCmd.Flags().String("analysis-output", "", "optional path to write the analysis JSON")
	reportCmd.Flags().String("format", "", "output format: html or terminal (default html)")
	reportCmd.Flags().Bool("embed-assets", false, "inline audio clips as data URIs")

	_ = viper.BindPFlag("output", reportCmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("analysisOutput", reportCmd.Flags().Lookup("analysis-output"))
	_ = viper.BindPFlag("format", reportCmd.Flags().Lookup("format"))
	_ = viper.BindPFlag("embedAssets", reportCmd.Flags().Lookup("embed-assets"))

	rootCmd.AddCommand(reportCmd)
}
