// internal/scores/table_test.go
package scores

import (
	"errors"
	"reflect"
	"testing"
)

func TestDefaultTableInvariants(t *testing.T) {
	table := Default()
	want := []string{"Natuurlijkheid", "Verstaanbaarheid", "Audio-kwaliteit", "Stememotie", "Algemene tevredenheid"}
	if got := table.Criteria(); !reflect.DeepEqual(got, want) {
		t.Fatalf("criteria = %v, want %v", got, want)
	}
	if table.Len() != 5 {
		t.Fatalf("expected 5 models, got %d", table.Len())
	}
	for _, m := range table.AllModels() {
		if len(m.Scores) != len(want) {
			t.Fatalf("model %s has %d scores", m.Name, len(m.Scores))
		}
		for c, v := range m.Scores {
			if v < MinScore || v > MaxScore {
				t.Fatalf("model %s criterion %s out of range: %d", m.Name, c, v)
			}
		}
		if m.Description == "" {
			t.Fatalf("model %s has no description", m.Name)
		}
	}
	if table.Survey().Raters != 10 {
		t.Fatalf("expected 10 raters, got %d", table.Survey().Raters)
	}
}

func TestAllModelsOrderIsStable(t *testing.T) {
	table := Default()
	first := table.AllModels()
	first[0].Name = "mutated"
	first[0].Scores["Natuurlijkheid"] = 1

	second := table.AllModels()
	if second[0].Name != "parler-tts-mini-multilingual-v1.1" {
		t.Fatalf("table order changed: %s", second[0].Name)
	}
	if second[0].Scores["Natuurlijkheid"] != 5 {
		t.Fatal("caller mutation leaked into the table")
	}
	for i, m := range second {
		if m.AssetKey == "" {
			t.Fatalf("model %d has no asset key", i)
		}
	}
}

func TestAverageScore(t *testing.T) {
	table := Default()
	cases := map[string]float64{
		"parler-tts-mini-multilingual-v1.1":           4.0,
		"speecht5_finetuned_facebook_voxpopuli_dutch": 1.8,
		"training_tts_nl_v2":                          2.8,
		"mms-tts-nld":                                 3.8,
		"OpenAI-TTS-1-hd":                             4.8,
	}
	for name, want := range cases {
		got, err := table.AverageScore(name)
		if err != nil {
			t.Fatalf("AverageScore(%s): %v", name, err)
		}
		if diff := got - want; diff > 1e-9 || diff < -1e-9 {
			t.Fatalf("AverageScore(%s) = %v, want %v", name, got, want)
		}
	}
}

func TestAverageMatchesMeanOfScoresFor(t *testing.T) {
	table := Default()
	for _, m := range table.AllModels() {
		scores, err := table.ScoresFor(m.Name)
		if err != nil {
			t.Fatal(err)
		}
		sum := 0
		for _, v := range scores {
			sum += v
		}
		avg, _ := table.AverageScore(m.Name)
		if avg != float64(sum)/float64(len(scores)) {
			t.Fatalf("%s: average %v does not match mean of scores", m.Name, avg)
		}
	}
}

func TestLookupsReturnNotFound(t *testing.T) {
	table := Default()
	if _, err := table.ScoresFor("nope"); !IsNotFound(err) {
		t.Fatalf("ScoresFor: expected NotFoundError, got %v", err)
	}
	if _, err := table.AverageScore("nope"); !IsNotFound(err) {
		t.Fatalf("AverageScore: expected NotFoundError, got %v", err)
	}
	if _, err := table.OrderedScores("nope"); !IsNotFound(err) {
		t.Fatalf("OrderedScores: expected NotFoundError, got %v", err)
	}
	if _, err := table.Model("nope"); !IsNotFound(err) {
		t.Fatalf("Model: expected NotFoundError, got %v", err)
	}
}

func TestNewRejectsInvalidDatasets(t *testing.T) {
	crit := []Criterion{{Name: "A"}, {Name: "B"}}

	tests := []struct {
		name   string
		crit   []Criterion
		models []Model
		check  func(error) bool
	}{
		{
			name:   "score too high",
			crit:   crit,
			models: []Model{{Name: "m", Scores: map[string]int{"A": 6, "B": 1}}},
			check: func(err error) bool {
				var e *ScoreRangeError
				return errors.As(err, &e) && e.Score == 6 && e.Criterion == "A"
			},
		},
		{
			name:   "score too low",
			crit:   crit,
			models: []Model{{Name: "m", Scores: map[string]int{"A": 1, "B": 0}}},
			check: func(err error) bool {
				var e *ScoreRangeError
				return errors.As(err, &e)
			},
		},
		{
			name:   "missing criterion",
			crit:   crit,
			models: []Model{{Name: "m", Scores: map[string]int{"A": 3}}},
			check: func(err error) bool {
				var e *CriteriaError
				return errors.As(err, &e) && reflect.DeepEqual(e.Missing, []string{"B"})
			},
		},
		{
			name:   "extra criterion",
			crit:   crit,
			models: []Model{{Name: "m", Scores: map[string]int{"A": 3, "B": 3, "C": 3}}},
			check: func(err error) bool {
				var e *CriteriaError
				return errors.As(err, &e) && reflect.DeepEqual(e.Extra, []string{"C"})
			},
		},
		{
			name: "duplicate model",
			crit: crit,
			models: []Model{
				{Name: "m", Scores: map[string]int{"A": 3, "B": 3}},
				{Name: "m", Scores: map[string]int{"A": 3, "B": 3}},
			},
			check: func(err error) bool {
				var e *DuplicateError
				return errors.As(err, &e) && e.Kind == "model name"
			},
		},
		{
			name: "duplicate asset key",
			crit: crit,
			models: []Model{
				{Name: "a", AssetKey: "1", Scores: map[string]int{"A": 3, "B": 3}},
				{Name: "b", AssetKey: "1", Scores: map[string]int{"A": 3, "B": 3}},
			},
			check: func(err error) bool {
				var e *DuplicateError
				return errors.As(err, &e) && e.Kind == "asset key"
			},
		},
		{
			name:   "no criteria",
			crit:   nil,
			models: nil,
			check:  IsNotFound,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.crit, tc.models, Survey{})
			if err == nil {
				t.Fatal("expected error")
			}
			if !tc.check(err) {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestNewDefaultsAssetKeyToPosition(t *testing.T) {
	table, err := New([]Criterion{{Name: "A"}}, []Model{
		{Name: "x", Scores: map[string]int{"A": 1}},
		{Name: "y", Scores: map[string]int{"A": 2}},
	}, Survey{})
	if err != nil {
		t.Fatal(err)
	}
	models := table.AllModels()
	if models[0].AssetKey != "1" || models[1].AssetKey != "2" {
		t.Fatalf("unexpected asset keys: %q %q", models[0].AssetKey, models[1].AssetKey)
	}
}

func TestOrderedScoresFollowCriteria(t *testing.T) {
	got, err := Default().OrderedScores("OpenAI-TTS-1-hd")
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{4, 5, 5, 5, 5}; !reflect.DeepEqual(got, want) {
		t.Fatalf("OrderedScores = %v, want %v", got, want)
	}
}

func TestCriterionLabel(t *testing.T) {
	c := DefaultCriteria[0]
	if c.Label(5) != "Zeer natuurlijk" || c.Label(1) != "Zeer onnatuurlijk" {
		t.Fatalf("unexpected labels: %q %q", c.Label(5), c.Label(1))
	}
	if c.Label(0) != "" || c.Label(6) != "" {
		t.Fatal("expected empty label outside the scale")
	}
}
