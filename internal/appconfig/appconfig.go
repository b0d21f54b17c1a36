// internal/appconfig/appconfig.go
// Package appconfig manages loading and interpreting application configuration.
package appconfig

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

const (
	// DefaultConfigPath is the default path to the application's configuration file.
	DefaultConfigPath = "config/config.json"
	// legacyConfigPath is the path used before configs moved under config/.
	legacyConfigPath = "ttsreport.json"

	defaultMediaDir = "media"
	defaultOutput   = "reports/tts-report.html"
	defaultLocale   = "nl"
	defaultLogFile  = "ttsreport.log"

	// FormatHTML writes a standalone HTML page.
	FormatHTML = "html"
	// FormatTerminal writes the styled terminal rendition.
	FormatTerminal = "terminal"
)

// Config represents the top-level application configuration.
type Config struct {
	MediaDir       string   `json:"mediaDir,omitempty" mapstructure:"mediaDir"`
	Output         string   `json:"output,omitempty" mapstructure:"output"`
	AnalysisOutput string   `json:"analysisOutput,omitempty" mapstructure:"analysisOutput"`
	Dataset        string   `json:"dataset,omitempty" mapstructure:"dataset"`
	Format         string   `json:"format,omitempty" mapstructure:"format"`
	EmbedAssets    bool     `json:"embedAssets" mapstructure:"embedAssets"`
	Locale         string   `json:"locale,omitempty" mapstructure:"locale"`
	Palette        []string `json:"palette,omitempty" mapstructure:"palette"`
	LogFile        string   `json:"logFile,omitempty" mapstructure:"logFile"`
	Debug          bool     `json:"debug" mapstructure:"debug"`
	ConfigPath     string   `json:"-" mapstructure:"-"`
}

// MediaDirPath returns the directory holding audio clips and example snippets.
func (c Config) MediaDirPath() string {
	if dir := strings.TrimSpace(c.MediaDir); dir != "" {
		return dir
	}
	return defaultMediaDir
}

// OutputPath returns the report destination, applying a default if not set.
func (c Config) OutputPath() string {
	if path := strings.TrimSpace(c.Output); path != "" {
		return path
	}
	return defaultOutput
}

// OutputFormat returns the normalized report format.
func (c Config) OutputFormat() string {
	switch strings.ToLower(strings.TrimSpace(c.Format)) {
	case FormatTerminal, "term", "tty":
		return FormatTerminal
	default:
		return FormatHTML
	}
}

// LocaleTag returns the locale used for number formatting.
func (c Config) LocaleTag() string {
	if l := strings.TrimSpace(c.Locale); l != "" {
		return l
	}
	return defaultLocale
}

// LogFilePath returns the path to the application log file, applying a default if not set.
func (c Config) LogFilePath() string {
	if path := c.LogFile; strings.TrimSpace(path) != "" {
		return path
	}
	return defaultLogFile
}

// Validate rejects settings that cannot produce a report.
func (c Config) Validate() error {
	switch strings.ToLower(strings.TrimSpace(c.Format)) {
	case "", FormatHTML, FormatTerminal, "term", "tty":
	default:
		return fmt.Errorf("unsupported format %q (want %q or %q)", c.Format, FormatHTML, FormatTerminal)
	}
	for _, hex := range c.Palette {
		if !validHex(hex) {
			return fmt.Errorf("invalid palette color %q", hex)
		}
	}
	return nil
}

func validHex(s string) bool {
	if len(s) != 7 || s[0] != '#' {
		return false
	}
	for _, r := range s[1:] {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}

// Load reads the application configuration from the specified path, with fallback to a legacy path.
func Load(path string) (Config, error) {
	if path == "" {
		path = DefaultConfigPath
	}

	config, err := loadFromPath(path)
	if err == nil {
		if err := config.Validate(); err != nil {
			return Config{}, fmt.Errorf("invalid config %q: %w", path, err)
		}
		config.ConfigPath = path
		return config, nil
	}

	if errors.Is(err, os.ErrNotExist) {
		if path == DefaultConfigPath {
			config, legacyErr := loadFromPath(legacyConfigPath)
			if legacyErr == nil {
				if err := config.Validate(); err != nil {
					return Config{}, fmt.Errorf("invalid config %q: %w", legacyConfigPath, err)
				}
				config.ConfigPath = legacyConfigPath
				return config, nil
			}
			if errors.Is(legacyErr, os.ErrNotExist) {
				return Config{}, fmt.Errorf("no configuration file found (searched %q and %q): %w", DefaultConfigPath, legacyConfigPath, os.ErrNotExist)
			}
			return Config{}, fmt.Errorf("could not read config file %q: %w", legacyConfigPath, legacyErr)
		}
		return Config{}, fmt.Errorf("no configuration file found at %q: %w", path, os.ErrNotExist)
	}

	return Config{}, fmt.Errorf("could not read config file %q: %w", path, err)
}

// loadFromPath is a helper function that loads the configuration from a specific file path.
func loadFromPath(path string) (Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer file.Close()

	var config Config
	if err := json.NewDecoder(file).Decode(&config); err != nil {
		return Config{}, err
	}
	return config, nil
}
