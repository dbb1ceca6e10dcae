// internal/prompt/prompt_test.go
package prompt

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/mwiater/forge/internal/console"
	"github.com/mwiater/forge/internal/ollama"
)

func newTestPrompter(input string) (*Prompter, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return New(strings.NewReader(input), console.New(out)), out
}

func TestReadTextTrims(t *testing.T) {
	p, _ := newTestPrompter("  Python backend development  \n")
	got, err := p.ReadText("task: ")
	if err != nil {
		t.Fatalf("ReadText: %v", err)
	}
	if got != "Python backend development" {
		t.Errorf("ReadText = %q", got)
	}
}

func TestReadTextLastLineWithoutNewline(t *testing.T) {
	p, _ := newTestPrompter("final answer")
	got, err := p.ReadText("task: ")
	if err != nil {
		t.Fatalf("ReadText: %v", err)
	}
	if got != "final answer" {
		t.Errorf("ReadText = %q", got)
	}
}

func TestSelectRangeRetriesUntilValid(t *testing.T) {
	p, out := newTestPrompter("abc\n0\n9\n3\n")
	got, err := p.SelectRange("Select", 1, 6)
	if err != nil {
		t.Fatalf("SelectRange: %v", err)
	}
	if got != 3 {
		t.Errorf("SelectRange = %d, want 3", got)
	}
	text := out.String()
	if !strings.Contains(text, "valid number") {
		t.Error("missing non-numeric warning")
	}
	if !strings.Contains(text, "select 1-6") {
		t.Error("missing out-of-range warning")
	}
}

func TestSelectRangeErrorsOnExhaustedInput(t *testing.T) {
	p, _ := newTestPrompter("abc\n")
	if _, err := p.SelectRange("Select", 1, 6); err == nil {
		t.Error("expected error once input runs out")
	}
}

func TestYesNo(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"Y\n", true},
		{"yes\n", true},
		{"Yeah sure\n", true},
		{"n\n", false},
		{"no\n", false},
		{"\n", false},
		{"", false}, // exhausted input
		{"maybe\n", false},
	}
	for _, tc := range cases {
		p, _ := newTestPrompter(tc.input)
		if got := p.YesNo("Continue?"); got != tc.want {
			t.Errorf("YesNo(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestCollectFullScript(t *testing.T) {
	// Task, level, style, optimization, then eight feature answers ending
	// with strict mode.
	input := strings.Join([]string{
		"Python backend development",
		"4", // Expert
		"2", // Practical
		"5", // Tiny Specialist
		"y", // code focus
		"n", // math focus
		"n", // creative boost
		"y", // memory optimization
		"n", // maximum capability
		"n", // creative solutions
		"n", // decision framework
		"y", // strict task mode
	}, "\n") + "\n"

	p, out := newTestPrompter(input)
	cfg, err := p.Collect()
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if cfg.Task != "Python backend development" {
		t.Errorf("Task = %q", cfg.Task)
	}
	if cfg.Level != 4 || cfg.Style != 2 || cfg.Optimization != 5 {
		t.Errorf("selections = %d/%d/%d, want 4/2/5", cfg.Level, cfg.Style, cfg.Optimization)
	}
	if !cfg.Features.CodeFocus || !cfg.Features.MemoryOptimization || !cfg.Features.StrictTaskMode {
		t.Errorf("enabled features lost: %+v", cfg.Features)
	}
	if cfg.Features.MathFocus || cfg.Features.MaximumCapability {
		t.Errorf("declined features set: %+v", cfg.Features)
	}
	if !strings.Contains(out.String(), "Strict mode enabled") {
		t.Error("missing strict mode confirmation")
	}
}

func TestCollectRejectsEmptyTask(t *testing.T) {
	p, _ := newTestPrompter("\n")
	if _, err := p.Collect(); err == nil {
		t.Error("expected error for empty task")
	}
}

func TestCollectAnnouncesCapabilityModes(t *testing.T) {
	input := strings.Join([]string{
		"Machine learning research",
		"6", "1", "3",
		"n", "n", "n", "n",
		"y", // maximum capability
		"y", // creative solutions
		"n",
		"n", // flexible mode
	}, "\n") + "\n"

	p, out := newTestPrompter(input)
	cfg, err := p.Collect()
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if !cfg.Features.MaximumCapability || !cfg.Features.CreativeSolutions {
		t.Errorf("capability flags lost: %+v", cfg.Features)
	}
	text := out.String()
	if !strings.Contains(text, "Maximum capability mode enabled") {
		t.Error("missing maximum capability announcement")
	}
	if !strings.Contains(text, "think outside the box for Machine learning research") {
		t.Error("missing creative solutions announcement")
	}
	if !strings.Contains(text, "Flexible mode") {
		t.Error("missing flexible mode warning")
	}
}

func TestSelectBaseModelFromInventory(t *testing.T) {
	records := []ollama.ModelRecord{
		{Name: "llama3.3:70b", Size: "42GB"},
		{Name: "qwen2.5:0.5b", Size: "398MB"},
		{Name: "llama3.1:7b", Size: "4.7GB"},
	}

	// Display order is bucket-sorted, so 1 selects the tiny model.
	p, out := newTestPrompter("1\n")
	name, err := p.SelectBaseModel(records, nil, nil, nil)
	if err != nil {
		t.Fatalf("SelectBaseModel: %v", err)
	}
	if name != "qwen2.5:0.5b" {
		t.Errorf("selected %q, want qwen2.5:0.5b", name)
	}
	if !strings.Contains(out.String(), "Perfect choice for tiny specialists!") {
		t.Error("missing tiny bucket advice")
	}
}

func TestSelectBaseModelEmptyInventoryOffersDownload(t *testing.T) {
	var pulled []string
	pull := func(model string) error {
		pulled = append(pulled, model)
		if model == "gemma:2b" {
			return errors.New("registry unavailable")
		}
		return nil
	}
	relist := func() []ollama.ModelRecord {
		return []ollama.ModelRecord{{Name: "llama3.2:1b", Size: "1.3GB"}}
	}

	p, _ := newTestPrompter("y\n1\n")
	name, err := p.SelectBaseModel(nil, []string{"qwen2.5:0.5b", "gemma:2b"}, pull, relist)
	if err != nil {
		t.Fatalf("SelectBaseModel: %v", err)
	}
	if name != "llama3.2:1b" {
		t.Errorf("selected %q, want llama3.2:1b", name)
	}
	// One pull failure does not abort the rest of the downloads.
	if len(pulled) != 2 {
		t.Errorf("pulled %v, want both recommended models attempted", pulled)
	}
}

func TestSelectBaseModelEmptyInventoryDeclined(t *testing.T) {
	p, _ := newTestPrompter("n\n")
	if _, err := p.SelectBaseModel(nil, []string{"qwen2.5:0.5b"}, nil, nil); err == nil {
		t.Error("expected error when download is declined")
	}
}

func TestSelectBaseModelStillEmptyAfterDownload(t *testing.T) {
	p, _ := newTestPrompter("y\n")
	pull := func(string) error { return nil }
	relist := func() []ollama.ModelRecord { return nil }
	if _, err := p.SelectBaseModel(nil, []string{"qwen2.5:0.5b"}, pull, relist); err == nil {
		t.Error("expected error when inventory stays empty")
	}
}
