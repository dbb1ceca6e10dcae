// internal/specialize/modelfile.go
package specialize

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/mwiater/forge/internal/util"
)

// responseTemplate is the conditional-section template consumed by the ollama
// runtime. It is opaque to this tool and written through verbatim.
const responseTemplate = `{{ if .System }}{{ .System }}

{{ end }}{{ if .Prompt }}{{ .Prompt }}

{{ end }}{{ .Response }}`

// Render produces the full model file text for a specialization: the base
// model, the response template, the compiled system prompt, and one PARAMETER
// line per tunable.
func Render(baseModel string, cfg Config) string {
	sampling := Sampling(cfg.Optimization)
	performance := Performance(cfg.Optimization)

	var b strings.Builder
	fmt.Fprintf(&b, "FROM %s\n", baseModel)
	fmt.Fprintf(&b, "TEMPLATE \"\"\"%s\"\"\"\n", responseTemplate)
	fmt.Fprintf(&b, "SYSTEM \"\"\"%s\"\"\"\n", SystemPrompt(cfg))
	fmt.Fprintf(&b, "PARAMETER temperature %g\n", sampling.Temperature)
	fmt.Fprintf(&b, "PARAMETER top_p %g\n", sampling.TopP)
	fmt.Fprintf(&b, "PARAMETER top_k %d\n", sampling.TopK)
	fmt.Fprintf(&b, "PARAMETER num_ctx %d\n", sampling.NumCtx)
	fmt.Fprintf(&b, "PARAMETER repeat_penalty %g\n", sampling.RepeatPenalty)
	fmt.Fprintf(&b, "PARAMETER num_predict %d\n", sampling.NumPredict)
	fmt.Fprintf(&b, "PARAMETER num_thread %d\n", performance.NumThread)
	fmt.Fprintf(&b, "PARAMETER num_gpu %d\n", performance.NumGPU)
	fmt.Fprintf(&b, "PARAMETER num_batch %d\n", performance.NumBatch)
	return b.String()
}

// SizeTag maps an optimization profile to the size tag used in artifact names.
func SizeTag(optimization int) string {
	switch optimization {
	case OptimizationTiny:
		return "tiny"
	case OptimizationMobile:
		return "mobile"
	default:
		return "optimized"
	}
}

// ArtifactName builds the unique model-file name for a task at a point in time.
func ArtifactName(task string, optimization int, now time.Time) string {
	return fmt.Sprintf("Modelfile-%s-%s-%d",
		strings.ReplaceAll(task, " ", "-"),
		SizeTag(optimization),
		now.Unix(),
	)
}

// WriteArtifact renders the model file and writes it into dir, returning the
// full path. The artifact is transient: the builder removes it once the model
// has been created (or the creation has failed).
func WriteArtifact(dir, baseModel string, cfg Config) (string, error) {
	path := filepath.Join(dir, ArtifactName(cfg.Task, cfg.Optimization, time.Now()))
	if err := util.WriteFile(path, []byte(Render(baseModel, cfg))); err != nil {
		return "", fmt.Errorf("write model file: %w", err)
	}
	return path, nil
}
