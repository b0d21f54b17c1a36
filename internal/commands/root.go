// internal/commands/root.go
// Package commands wires the ttsreport command tree.
package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/mwiater/ttsreport/internal/appconfig"
	"github.com/mwiater/ttsreport/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile          string
	configLoaded     bool
	loadedConfigPath string
	currentConfig    *appconfig.Config
	appVersion       = "dev"
	appCommit        = "none"
	appDate          = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:          "ttsreport",
	Short:        "ttsreport renders the Dutch TTS listening test as an HTML or terminal report",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := ensureConfigLoaded(); err != nil {
			return err
		}

		if !cmd.Flags().Changed("debug") {
			_ = cmd.Flags().Set("debug", strconv.FormatBool(viper.GetBool("debug")))
		}
		for _, name := range []string{"logFile", "mediaDir", "dataset", "locale"} {
			if !cmd.Flags().Changed(name) {
				_ = cmd.Flags().Set(name, viper.GetString(name))
			}
		}

		var cfg appconfig.Config
		if err := viper.Unmarshal(&cfg); err != nil {
			return fmt.Errorf("unmarshal config: %w", err)
		}
		if configLoaded {
			cfg.ConfigPath = loadedConfigPath
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}
		currentConfig = &cfg

		// stdout belongs to the report unless debugging.
		logging.SetConsole(cfg.Debug)
		if err := logging.Init(currentConfig.LogFilePath()); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		if cfg.Debug {
			logging.LogEvent("[CONFIG] file=%q mediaDir=%s dataset=%q locale=%s", cfg.ConfigPath, cfg.MediaDirPath(), cfg.Dataset, cfg.LocaleTag())
		}

		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", appVersion, appCommit, appDate)

	defer logging.Close()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", appconfig.DefaultConfigPath, "config file (e.g., config/config.json)")

	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	rootCmd.PersistentFlags().String("logFile", "", "path to the log file")
	rootCmd.PersistentFlags().String("mediaDir", "", "directory holding <key>.wav clips and <key>.py snippets (default media)")
	rootCmd.PersistentFlags().String("dataset", "", "JSON or YAML score dataset (default: built-in survey results)")
	rootCmd.PersistentFlags().String("locale", "", "locale for number formatting (default nl)")

	for _, name := range []string{"debug", "logFile", "mediaDir", "dataset", "locale"} {
		_ = viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name))
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}
}

// ensureConfigLoaded reads the config file. When the default path is missing,
// appconfig.Load resolves the legacy location; no file at all means defaults
// apply.
func ensureConfigLoaded() error {
	configLoaded = false
	loadedConfigPath = ""
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if cfgFile != appconfig.DefaultConfigPath {
			return nil
		}
		legacy, loadErr := appconfig.Load("")
		if errors.Is(loadErr, fs.ErrNotExist) {
			return nil
		}
		if loadErr != nil {
			return fmt.Errorf("failed to load config: %w", loadErr)
		}
		if legacy.ConfigPath == appconfig.DefaultConfigPath {
			return nil
		}
		viper.SetConfigFile(legacy.ConfigPath)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		loadedConfigPath = legacy.ConfigPath
		configLoaded = true
		return nil
	}
	loadedConfigPath = viper.ConfigFileUsed()
	configLoaded = true
	return nil
}

// GetConfig returns the loaded application configuration, or defaults when
// no command has loaded one yet.
func GetConfig() *appconfig.Config {
	if currentConfig == nil {
		return &appconfig.Config{}
	}
	return currentConfig
}

// SetVersionInfo allows the main package to inject build-time variables.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}
