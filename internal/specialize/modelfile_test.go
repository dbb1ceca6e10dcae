// internal/specialize/modelfile_test.go
package specialize

import (
	"strings"
	"testing"
	"time"
)

func TestRenderDirectives(t *testing.T) {
	cfg := Config{Task: "Cybersecurity Analysis", Level: 4, Style: 4, Optimization: 5}
	content := Render("qwen2.5:0.5b", cfg)

	if !strings.HasPrefix(content, "FROM qwen2.5:0.5b\n") {
		t.Fatalf("model file does not start with FROM: %q", content[:40])
	}

	wantLines := []string{
		"PARAMETER temperature 0.2",
		"PARAMETER top_p 0.6",
		"PARAMETER top_k 15",
		"PARAMETER num_ctx 1024",
		"PARAMETER repeat_penalty 1.15",
		"PARAMETER num_predict 1024",
		"PARAMETER num_thread 8",
		"PARAMETER num_gpu 1",
		"PARAMETER num_batch 128",
	}
	lastIndex := -1
	for _, line := range wantLines {
		idx := strings.Index(content, line+"\n")
		if idx < 0 {
			t.Errorf("missing parameter line %q", line)
			continue
		}
		if idx < lastIndex {
			t.Errorf("parameter line %q out of order", line)
		}
		lastIndex = idx
	}

	if !strings.Contains(content, `TEMPLATE """`) {
		t.Error("missing TEMPLATE directive")
	}
	if !strings.Contains(content, "{{ .Response }}") {
		t.Error("missing response template body")
	}
	if !strings.Contains(content, `SYSTEM """`) || !strings.Contains(content, "CYBERSECURITY_ANALYSIS_APEX_SPECIALIST") {
		t.Error("missing SYSTEM directive with compiled prompt")
	}
}

func TestArtifactName(t *testing.T) {
	now := time.Unix(1700000000, 0)

	tests := []struct {
		task string
		opt  int
		want string
	}{
		{"Python Backend", 5, "Modelfile-Python-Backend-tiny-1700000000"},
		{"Python Backend", 6, "Modelfile-Python-Backend-mobile-1700000000"},
		{"Python Backend", 3, "Modelfile-Python-Backend-optimized-1700000000"},
	}
	for _, tt := range tests {
		if got := ArtifactName(tt.task, tt.opt, now); got != tt.want {
			t.Errorf("ArtifactName(%q, %d) = %q, want %q", tt.task, tt.opt, got, tt.want)
		}
	}
}
