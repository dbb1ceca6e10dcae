// internal/specialize/builder.go
package specialize

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/mwiater/forge/internal/appconfig"
	"github.com/mwiater/forge/internal/console"
	"github.com/mwiater/forge/internal/logging"
)

// smokeTestPrompt is the fixed greeting used to verify a freshly created model.
const smokeTestPrompt = "Hello, introduce yourself briefly and show your capabilities."

// ModelManager is the slice of the ollama client the builder needs.
type ModelManager interface {
	Create(ctx context.Context, name, modelfilePath string) error
	Generate(ctx context.Context, model, prompt string) (string, error)
}

// Builder materializes a specialization: it writes the model-file artifact,
// runs the create subcommand, smoke-tests the result, and always removes the
// artifact afterwards.
type Builder struct {
	manager     ModelManager
	out         *console.Console
	workDir     string
	testTimeout time.Duration
}

// NewBuilder returns a Builder using the application's working directory and
// smoke-test timeout.
func NewBuilder(manager ModelManager, out *console.Console, cfg appconfig.Config) *Builder {
	return &Builder{
		manager:     manager,
		out:         out,
		workDir:     cfg.WorkingDir(),
		testTimeout: cfg.TestTimeout(),
	}
}

// Build creates the specialized model from a base model. It returns the new
// model's name, or an error when the create subcommand fails. A smoke-test
// timeout or failure is reported as a warning; the model is still considered
// created. The model-file artifact is removed on every exit path.
func (b *Builder) Build(ctx context.Context, baseModel string, cfg Config) (string, error) {
	name := ModelName(cfg.Task, cfg.Optimization)

	switch cfg.Optimization {
	case OptimizationTiny:
		b.out.Infof("Creating tiny specialist model...")
	case OptimizationMobile:
		b.out.Infof("Creating mobile-optimized model...")
	default:
		b.out.Infof("Creating model with apex optimizations...")
	}

	path, err := WriteArtifact(b.workDir, baseModel, cfg)
	if err != nil {
		return "", err
	}
	defer func() {
		if rmErr := os.Remove(path); rmErr == nil {
			b.out.Infof("Cleaned up temporary files")
		}
	}()

	start := time.Now()
	if err := b.manager.Create(ctx, name, path); err != nil {
		return "", fmt.Errorf("create model %s: %w", name, err)
	}
	b.out.Successf("Successfully created: %s (in %.1fs)", name, time.Since(start).Seconds())
	logging.LogEvent("created model %s from %s", name, baseModel)

	b.out.Infof("Testing model with a short prompt...")
	testCtx, cancel := context.WithTimeout(ctx, b.testTimeout)
	defer cancel()

	testStart := time.Now()
	if _, err := b.manager.Generate(testCtx, name, smokeTestPrompt); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			b.out.Warnf("Model created but the test timed out")
		} else {
			b.out.Warnf("Model created but the test had issues: %v", err)
		}
		return name, nil
	}
	b.out.Successf("Model test successful! (Response time: %.1fs)", time.Since(testStart).Seconds())

	return name, nil
}
