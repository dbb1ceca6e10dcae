// internal/specialize/config.go
// Package specialize compiles a task description and a handful of user choices
// into a system prompt, sampling and performance parameters, and an ollama
// model file.
package specialize

import (
	"fmt"
	"strings"
)

// FeatureFlags toggles the optional clauses of the generated instruction text.
// Each enabled flag contributes one fixed sentence, in declaration order.
type FeatureFlags struct {
	CodeFocus          bool `json:"code_focus"`
	MathFocus          bool `json:"math_focus"`
	CreativeBoost      bool `json:"creative_boost"`
	MemoryOptimization bool `json:"memory_optimization"`
	MaximumCapability  bool `json:"maximum_capability"`
	CreativeSolutions  bool `json:"creative_solutions"`
	DecisionFramework  bool `json:"decision_framework"`
	StrictTaskMode     bool `json:"strict_task_mode"`
}

// Config is the complete set of user choices for one specialization.
type Config struct {
	Task         string       `json:"task"`
	Level        int          `json:"level"`
	Style        int          `json:"style"`
	Optimization int          `json:"optimization"`
	Features     FeatureFlags `json:"features"`
}

// Validate checks the closed ranges of the selection fields and that the task
// is non-empty after trimming. The compiler itself does not guard its lookups;
// this is the only range check.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Task) == "" {
		return fmt.Errorf("task must not be empty")
	}
	if c.Level < 1 || c.Level > 6 {
		return fmt.Errorf("level must be in [1,6], got %d", c.Level)
	}
	if c.Style < 1 || c.Style > 5 {
		return fmt.Errorf("style must be in [1,5], got %d", c.Style)
	}
	if c.Optimization < 1 || c.Optimization > 6 {
		return fmt.Errorf("optimization must be in [1,6], got %d", c.Optimization)
	}
	return nil
}

// SamplingParams are the generation parameters written to the model file. One
// fixed record exists per optimization profile.
type SamplingParams struct {
	Temperature   float64
	TopP          float64
	TopK          int
	NumCtx        int
	RepeatPenalty float64
	NumPredict    int
}

// PerformanceParams are the resource-usage parameters written to the model
// file. One fixed record exists per optimization profile.
type PerformanceParams struct {
	NumThread int
	NumBatch  int
	NumGPU    int
}
