// internal/commands/show.go
package commands

import (
	"github.com/k0kubun/pp"
	"github.com/mwiater/ttsreport/internal/appconfig"
	"github.com/mwiater/ttsreport/internal/report"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var showRaw bool

// showCmd represents the 'show' command group for displaying resources.
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Group commands for displaying report data",
	Long:  `The 'show' command groups subcommands that print the score table, the ranking or the active configuration.`,
}

// showScoresCmd prints every score in table order.
var showScoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Print the summary score table",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := newRenderer(GetConfig())
		if err != nil {
			return err
		}
		summary := r.RenderSummaryTable()
		if showRaw {
			_, err = pp.Fprintln(cmd.OutOrStdout(), summary)
			return err
		}
		return report.WriteSummaryText(cmd.OutOrStdout(), summary)
	},
}

// showRankingCmd prints models ordered by average score.
var showRankingCmd = &cobra.Command{
	Use:   "ranking",
	Short: "Print the ranking by average score",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := newRenderer(GetConfig())
		if err != nil {
			return err
		}
		ranking := r.RenderRanking()
		if showRaw {
			_, err = pp.Fprintln(cmd.OutOrStdout(), ranking, r.Highlights(ranking))
			return err
		}
		return r.WriteRankingText(cmd.OutOrStdout(), ranking)
	},
}

// showConfigCmd implements the 'show config' command, which displays the current configuration settings.
var showConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Show config settings",
	Long:  `Show config settings ensuring that the JSON configs are loaded properly and overriden by flags accordingly.`,
	Run: func(cmd *cobra.Command, args []string) {
		if showRaw {
			_, _ = pp.Fprintln(cmd.OutOrStdout(), GetConfig())
			return
		}
		fallback := appconfig.Config{
			Debug:    viper.GetBool("debug"),
			MediaDir: viper.GetString("mediaDir"),
			Dataset:  viper.GetString("dataset"),
			Locale:   viper.GetString("locale"),
			LogFile:  viper.GetString("logFile"),
		}
		file := ""
		if configLoaded {
			file = loadedConfigPath
		}
		appconfig.ShowConfig(cmd.OutOrStdout(), file, currentConfig, fallback)
	},
}

func init() {
	showCmd.PersistentFlags().BoolVar(&showRaw, "raw", false, "dump the underlying data structures")

	showCmd.AddCommand(showScoresCmd)
	showCmd.AddCommand(showRankingCmd)
	showCmd.AddCommand(showConfigCmd)
	rootCmd.AddCommand(showCmd)
}
