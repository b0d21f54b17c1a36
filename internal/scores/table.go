// internal/scores/table.go
// Package scores holds the immutable MOS evaluation dataset.
package scores

import (
	"sort"
	"strconv"
	"strings"
)

// Table is the validated, read-only score dataset. It is safe for concurrent
// readers since nothing mutates it after New returns.
type Table struct {
	survey   Survey
	criteria []Criterion
	models   []Model
	index    map[string]int
}

// New validates the dataset and builds a Table. Models with an empty AssetKey
// get their 1-based position as key.
func New(criteria []Criterion, models []Model, survey Survey) (*Table, error) {
	if len(criteria) == 0 {
		return nil, &NotFoundError{Kind: "criterion set", Name: "criteria"}
	}

	known := make(map[string]struct{}, len(criteria))
	crit := make([]Criterion, 0, len(criteria))
	for _, c := range criteria {
		name := strings.TrimSpace(c.Name)
		if name == "" {
			return nil, &DuplicateError{Kind: "criterion name"}
		}
		if _, ok := known[name]; ok {
			return nil, &DuplicateError{Kind: "criterion name", Value: name}
		}
		known[name] = struct{}{}
		c.Name = name
		c.Labels = append([]string(nil), c.Labels...)
		crit = append(crit, c)
	}

	t := &Table{
		survey:   survey,
		criteria: crit,
		models:   make([]Model, 0, len(models)),
		index:    make(map[string]int, len(models)),
	}
	assetKeys := make(map[string]struct{}, len(models))

	for i, m := range models {
		m.Name = strings.TrimSpace(m.Name)
		if m.Name == "" {
			return nil, &DuplicateError{Kind: "model name"}
		}
		if _, ok := t.index[m.Name]; ok {
			return nil, &DuplicateError{Kind: "model name", Value: m.Name}
		}
		if err := checkScores(m, crit); err != nil {
			return nil, err
		}
		m.AssetKey = strings.TrimSpace(m.AssetKey)
		if m.AssetKey == "" {
			m.AssetKey = strconv.Itoa(i + 1)
		}
		if _, ok := assetKeys[m.AssetKey]; ok {
			return nil, &DuplicateError{Kind: "asset key", Value: m.AssetKey}
		}
		assetKeys[m.AssetKey] = struct{}{}

		m.Scores = copyScores(m.Scores)
		t.index[m.Name] = len(t.models)
		t.models = append(t.models, m)
	}

	return t, nil
}

func checkScores(m Model, criteria []Criterion) error {
	var missing, extra []string
	for _, c := range criteria {
		score, ok := m.Scores[c.Name]
		if !ok {
			missing = append(missing, c.Name)
			continue
		}
		if score < MinScore || score > MaxScore {
			return &ScoreRangeError{Model: m.Name, Criterion: c.Name, Score: score}
		}
	}
	if len(m.Scores) != len(criteria)-len(missing) {
		known := make(map[string]struct{}, len(criteria))
		for _, c := range criteria {
			known[c.Name] = struct{}{}
		}
		for name := range m.Scores {
			if _, ok := known[name]; !ok {
				extra = append(extra, name)
			}
		}
		sort.Strings(extra)
	}
	if len(missing) > 0 || len(extra) > 0 {
		return &CriteriaError{Model: m.Name, Missing: missing, Extra: extra}
	}
	return nil
}

func copyScores(in map[string]int) map[string]int {
	out := make(map[string]int, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

// Len returns the number of models.
func (t *Table) Len() int { return len(t.models) }

// Survey returns the survey metadata.
func (t *Table) Survey() Survey { return t.survey }

// AllModels returns the models in declaration order.
func (t *Table) AllModels() []Model {
	out := make([]Model, len(t.models))
	for i, m := range t.models {
		m.Scores = copyScores(m.Scores)
		out[i] = m
	}
	return out
}

// Model returns the named model.
func (t *Table) Model(name string) (Model, error) {
	i, ok := t.index[name]
	if !ok {
		return Model{}, &NotFoundError{Kind: "model", Name: name}
	}
	m := t.models[i]
	m.Scores = copyScores(m.Scores)
	return m, nil
}

// Criteria returns the criterion names in their fixed order.
func (t *Table) Criteria() []string {
	names := make([]string, len(t.criteria))
	for i, c := range t.criteria {
		names[i] = c.Name
	}
	return names
}

// CriteriaDetails returns the criteria including their rubric.
func (t *Table) CriteriaDetails() []Criterion {
	out := make([]Criterion, len(t.criteria))
	for i, c := range t.criteria {
		c.Labels = append([]string(nil), c.Labels...)
		out[i] = c
	}
	return out
}

// ScoresFor returns the criterion to score mapping of the named model.
func (t *Table) ScoresFor(name string) (map[string]int, error) {
	i, ok := t.index[name]
	if !ok {
		return nil, &NotFoundError{Kind: "model", Name: name}
	}
	return copyScores(t.models[i].Scores), nil
}

// OrderedScores returns the scores of the named model in criteria order.
func (t *Table) OrderedScores(name string) ([]int, error) {
	i, ok := t.index[name]
	if !ok {
		return nil, &NotFoundError{Kind: "model", Name: name}
	}
	m := t.models[i]
	out := make([]int, len(t.criteria))
	for j, c := range t.criteria {
		out[j] = m.Scores[c.Name]
	}
	return out, nil
}

// AverageScore returns the arithmetic mean of the named model's scores.
func (t *Table) AverageScore(name string) (float64, error) {
	values, err := t.OrderedScores(name)
	if err != nil {
		return 0, err
	}
	sum := 0
	for _, v := range values {
		sum += v
	}
	return float64(sum) / float64(len(values)), nil
}

// Dataset returns the serializable form of the table.
func (t *Table) Dataset() Dataset {
	return Dataset{
		Survey:   t.survey,
		Criteria: t.CriteriaDetails(),
		Models:   t.AllModels(),
	}
}
