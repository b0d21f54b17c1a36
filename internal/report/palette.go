// internal/report/palette.go
package report

import "fmt"

// Color is one palette entry.
type Color struct {
	Name string `json:"name"`
	Hex  string `json:"hex"`
}

// DefaultPalette assigns one color per model position.
var DefaultPalette = []Color{
	{Name: "red", Hex: "#EF4444"},
	{Name: "green", Hex: "#10B981"},
	{Name: "blue", Hex: "#3B82F6"},
	{Name: "orange", Hex: "#F59E0B"},
	{Name: "purple", Hex: "#8B5CF6"},
}

// PaletteOverflowError is returned when there are more models than colors.
type PaletteOverflowError struct {
	Models  int
	Palette int
}

func (e *PaletteOverflowError) Error() string {
	return fmt.Sprintf("palette has %d colors but the table has %d models", e.Palette, e.Models)
}

func checkPalette(palette []Color, models int) error {
	if models > len(palette) {
		return &PaletteOverflowError{Models: models, Palette: len(palette)}
	}
	return nil
}
