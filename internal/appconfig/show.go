package appconfig

import (
	"fmt"
	"io"
	"strings"
)

// ShowConfig prints the current configuration summary.
func ShowConfig(out io.Writer, file string, cfg *Config, fallback Config) {
	if file == "" {
		fmt.Fprintln(out, "No config file loaded (using defaults).")
	} else {
		fmt.Fprintf(out, "Config file: %s\n\n", file)
	}

	fmt.Fprintln(out, "Current configuration:")
	if cfg == nil {
		cfg = &fallback
	}

	dataset := cfg.Dataset
	if strings.TrimSpace(dataset) == "" {
		dataset = "(built-in)"
	}
	fmt.Fprintf(out, "  Debug:           %v\n", cfg.Debug)
	fmt.Fprintf(out, "  Media Dir:       %s\n", cfg.MediaDirPath())
	fmt.Fprintf(out, "  Dataset:         %s\n", dataset)
	fmt.Fprintf(out, "  Output:          %s\n", cfg.OutputPath())
	fmt.Fprintf(out, "  Format:          %s\n", cfg.OutputFormat())
	fmt.Fprintf(out, "  Embed Assets:    %v\n", cfg.EmbedAssets)
	fmt.Fprintf(out, "  Locale:          %s\n", cfg.LocaleTag())
	fmt.Fprintf(out, "  Log File:        %s\n", cfg.LogFilePath())
	if cfg.AnalysisOutput != "" {
		fmt.Fprintf(out, "  Analysis Output: %s\n", cfg.AnalysisOutput)
	}
	if len(cfg.Palette) > 0 {
		fmt.Fprintf(out, "  Palette:         %s\n", strings.Join(cfg.Palette, ", "))
	}
}
