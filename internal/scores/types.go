// internal/scores/types.go
package scores

// Score bounds of the MOS scale.
const (
	MinScore = 1
	MaxScore = 5
)

// Criterion is one evaluation dimension scored for every model.
type Criterion struct {
	Name    string `json:"name" yaml:"name"`
	Meaning string `json:"meaning,omitempty" yaml:"meaning,omitempty"`
	// Labels holds the rubric wording for the scores 5 down to 1.
	Labels []string `json:"labels,omitempty" yaml:"labels,omitempty"`
}

// Label returns the rubric wording for score, or "" when none is defined.
func (c Criterion) Label(score int) string {
	idx := MaxScore - score
	if idx < 0 || idx >= len(c.Labels) {
		return ""
	}
	return c.Labels[idx]
}

// Model is a single row of the score table.
type Model struct {
	Name string `json:"name" yaml:"name"`
	// AssetKey names the audio clip and example snippet belonging to this model.
	AssetKey    string         `json:"assetKey,omitempty" yaml:"assetKey,omitempty"`
	URL         string         `json:"url,omitempty" yaml:"url,omitempty"`
	Cloud       bool           `json:"cloud,omitempty" yaml:"cloud,omitempty"`
	Description string         `json:"description,omitempty" yaml:"description,omitempty"`
	Scores      map[string]int `json:"scores" yaml:"scores"`
}

// Survey describes how the scores were collected.
type Survey struct {
	Raters   int    `json:"raters" yaml:"raters"`
	Sentence string `json:"sentence,omitempty" yaml:"sentence,omitempty"`
}

// Dataset is the serializable form of a Table.
type Dataset struct {
	Survey   Survey      `json:"survey" yaml:"survey"`
	Criteria []Criterion `json:"criteria" yaml:"criteria"`
	Models   []Model     `json:"models" yaml:"models"`
}
