// internal/scores/load.go
package scores

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

// datasetSchema constrains dataset files before the table invariants are checked.
var datasetSchema = map[string]any{
	"type":     "object",
	"required": []any{"criteria", "models"},
	"properties": map[string]any{
		"survey": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"raters":   map[string]any{"type": "integer", "minimum": 0},
				"sentence": map[string]any{"type": "string"},
			},
		},
		"criteria": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type":     "object",
				"required": []any{"name"},
				"properties": map[string]any{
					"name":    map[string]any{"type": "string", "minLength": 1},
					"meaning": map[string]any{"type": "string"},
					"labels": map[string]any{
						"type":     "array",
						"maxItems": MaxScore - MinScore + 1,
						"items":    map[string]any{"type": "string"},
					},
				},
			},
		},
		"models": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type":     "object",
				"required": []any{"name", "scores"},
				"properties": map[string]any{
					"name":        map[string]any{"type": "string", "minLength": 1},
					"assetKey":    map[string]any{"type": "string"},
					"url":         map[string]any{"type": "string"},
					"cloud":       map[string]any{"type": "boolean"},
					"description": map[string]any{"type": "string"},
					"scores": map[string]any{
						"type": "object",
						"additionalProperties": map[string]any{
							"type":    "integer",
							"minimum": MinScore,
							"maximum": MaxScore,
						},
					},
				},
			},
		},
	},
}

// SchemaError lists the schema violations of a dataset document.
type SchemaError struct {
	Path   string
	Issues []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("dataset %s failed schema validation: %s", e.Path, strings.Join(e.Issues, "; "))
}

// Load reads a dataset from a JSON or YAML file, validates it against the
// dataset schema and builds a Table from it.
func Load(path string) (*Table, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read dataset %s: %w", path, err)
	}
	return Parse(path, raw)
}

// Parse decodes raw dataset bytes. The file extension of name selects YAML
// (.yaml, .yml) or JSON decoding.
func Parse(name string, raw []byte) (*Table, error) {
	doc, err := decodeDocument(name, raw)
	if err != nil {
		return nil, err
	}

	result, err := gojsonschema.Validate(gojsonschema.NewGoLoader(datasetSchema), gojsonschema.NewGoLoader(doc))
	if err != nil {
		return nil, fmt.Errorf("unable to validate dataset %s: %w", name, err)
	}
	if !result.Valid() {
		issues := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			issues = append(issues, desc.String())
		}
		return nil, &SchemaError{Path: name, Issues: issues}
	}

	// Round-trip through JSON so both formats share the struct tags.
	normalized, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("unable to normalize dataset %s: %w", name, err)
	}
	var ds Dataset
	if err := json.Unmarshal(normalized, &ds); err != nil {
		return nil, fmt.Errorf("unable to decode dataset %s: %w", name, err)
	}

	return New(ds.Criteria, ds.Models, ds.Survey)
}

func decodeDocument(name string, raw []byte) (any, error) {
	var doc any
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("unable to parse dataset YAML %s: %w", name, err)
		}
	default:
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("unable to parse dataset JSON %s: %w", name, err)
		}
	}
	return doc, nil
}
