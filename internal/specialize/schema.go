// internal/specialize/schema.go
package specialize

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// configSchema validates non-interactive specialization documents before they
// are unmarshalled.
var configSchema = map[string]any{
	"type":                 "object",
	"required":             []string{"task", "level", "style", "optimization"},
	"additionalProperties": false,
	"properties": map[string]any{
		"task": map[string]any{
			"type":      "string",
			"minLength": 1,
		},
		"level": map[string]any{
			"type":    "integer",
			"minimum": 1,
			"maximum": 6,
		},
		"style": map[string]any{
			"type":    "integer",
			"minimum": 1,
			"maximum": 5,
		},
		"optimization": map[string]any{
			"type":    "integer",
			"minimum": 1,
			"maximum": 6,
		},
		"features": map[string]any{
			"type":                 "object",
			"additionalProperties": false,
			"properties": map[string]any{
				"code_focus":          map[string]any{"type": "boolean"},
				"math_focus":          map[string]any{"type": "boolean"},
				"creative_boost":      map[string]any{"type": "boolean"},
				"memory_optimization": map[string]any{"type": "boolean"},
				"maximum_capability":  map[string]any{"type": "boolean"},
				"creative_solutions":  map[string]any{"type": "boolean"},
				"decision_framework":  map[string]any{"type": "boolean"},
				"strict_task_mode":    map[string]any{"type": "boolean"},
			},
		},
	},
}

// LoadFile reads a specialization config from a JSON document, validating it
// against the schema so every violation is reported at once.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read spec file: %w", err)
	}
	return ParseDocument(data)
}

// ParseDocument validates and unmarshals a specialization document.
func ParseDocument(data []byte) (Config, error) {
	schemaLoader := gojsonschema.NewGoLoader(configSchema)
	documentLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return Config{}, fmt.Errorf("schema validation error: %w", err)
	}
	if !result.Valid() {
		var problems []string
		for _, desc := range result.Errors() {
			problems = append(problems, desc.String())
		}
		return Config{}, fmt.Errorf("invalid specialization document: %s", strings.Join(problems, "; "))
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode specialization document: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
