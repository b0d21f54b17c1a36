// internal/scores/errors.go
package scores

import (
	"errors"
	"fmt"
)

// NotFoundError reports a lookup against a model or criterion that is not in the table.
type NotFoundError struct {
	Kind string
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found in score table", e.Kind, e.Name)
}

// ScoreRangeError reports a score outside [MinScore, MaxScore].
type ScoreRangeError struct {
	Model     string
	Criterion string
	Score     int
}

func (e *ScoreRangeError) Error() string {
	return fmt.Sprintf("model %q: score %d for %q is outside [%d,%d]", e.Model, e.Score, e.Criterion, MinScore, MaxScore)
}

// CriteriaError reports a model whose scores do not cover exactly the table criteria.
type CriteriaError struct {
	Model   string
	Missing []string
	Extra   []string
}

func (e *CriteriaError) Error() string {
	switch {
	case len(e.Missing) > 0 && len(e.Extra) > 0:
		return fmt.Sprintf("model %q: missing criteria %v, unknown criteria %v", e.Model, e.Missing, e.Extra)
	case len(e.Missing) > 0:
		return fmt.Sprintf("model %q: missing criteria %v", e.Model, e.Missing)
	default:
		return fmt.Sprintf("model %q: unknown criteria %v", e.Model, e.Extra)
	}
}

// DuplicateError reports a repeated or empty identifier in the dataset.
type DuplicateError struct {
	Kind  string
	Value string
}

func (e *DuplicateError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("empty %s in dataset", e.Kind)
	}
	return fmt.Sprintf("duplicate %s %q in dataset", e.Kind, e.Value)
}

// IsNotFound reports whether err wraps a *NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
