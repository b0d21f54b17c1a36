// internal/commands/build.go
package commands

import (
	"fmt"
	"strings"

	"github.com/mwiater/ttsreport/internal/appconfig"
	"github.com/mwiater/ttsreport/internal/assets"
	"github.com/mwiater/ttsreport/internal/report"
	"github.com/mwiater/ttsreport/internal/scores"
)

// loadTable returns the configured dataset, or the built-in survey results
// when no dataset file is set.
func loadTable(cfg *appconfig.Config) (*scores.Table, error) {
	path := strings.TrimSpace(cfg.Dataset)
	if path == "" {
		return scores.Default(), nil
	}
	table, err := scores.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load dataset: %w", err)
	}
	return table, nil
}

// paletteFromConfig turns configured hex colors into a report palette.
func paletteFromConfig(hexes []string) []report.Color {
	if len(hexes) == 0 {
		return nil
	}
	palette := make([]report.Color, 0, len(hexes))
	for i, hex := range hexes {
		palette = append(palette, report.Color{Name: fmt.Sprintf("color%d", i+1), Hex: hex})
	}
	return palette
}

// newRenderer builds a renderer for the configured dataset and media directory.
func newRenderer(cfg *appconfig.Config) (*report.Renderer, error) {
	table, err := loadTable(cfg)
	if err != nil {
		return nil, err
	}
	return report.NewRenderer(table, assets.NewResolver(cfg.MediaDirPath()), report.Options{
		Palette:     paletteFromConfig(cfg.Palette),
		EmbedAssets: cfg.EmbedAssets,
		Locale:      cfg.LocaleTag(),
	})
}
