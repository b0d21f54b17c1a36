// internal/report/analysis.go
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Analysis is the machine-readable export of a rendered report.
type Analysis struct {
	Title      string          `json:"title"`
	Raters     int             `json:"raters"`
	Criteria   []string        `json:"criteria"`
	Models     []AnalysisModel `json:"models"`
	Ranking    []RankEntry     `json:"ranking"`
	Highlights []Highlight     `json:"highlights"`
}

// AnalysisModel is one model in the export.
type AnalysisModel struct {
	Name     string         `json:"name"`
	AssetKey string         `json:"assetKey"`
	Cloud    bool           `json:"cloud"`
	Scores   map[string]int `json:"scores"`
	Average  float64        `json:"average"`
	Radar    RadarChart     `json:"radar"`
	Missing  []string       `json:"missingAssets,omitempty"`
}

// BuildAnalysis condenses a report into its exportable form.
func BuildAnalysis(rep *Report) Analysis {
	criteria := make([]string, 0, len(rep.Rubric))
	for _, c := range rep.Rubric {
		criteria = append(criteria, c.Name)
	}
	models := make([]AnalysisModel, 0, len(rep.Sections))
	for _, s := range rep.Sections {
		models = append(models, AnalysisModel{
			Name:     s.Model.Name,
			AssetKey: s.Model.AssetKey,
			Cloud:    s.Model.Cloud,
			Scores:   s.Model.Scores,
			Average:  s.Average,
			Radar:    s.Chart,
			Missing:  s.Missing,
		})
	}
	return Analysis{
		Title:      rep.Title,
		Raters:     rep.Survey.Raters,
		Criteria:   criteria,
		Models:     models,
		Ranking:    rep.Ranking,
		Highlights: rep.Highlights,
	}
}

// WriteAnalysisJSON writes the analysis export of rep to path.
func WriteAnalysisJSON(path string, rep *Report) error {
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("unable to create directory for %s: %w", path, err)
		}
	}

	data, err := json.MarshalIndent(BuildAnalysis(rep), "", "  ")
	if err != nil {
		return fmt.Errorf("unable to marshal analysis JSON: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("unable to write analysis JSON %s: %w", path, err)
	}
	return nil
}
