// internal/ollama/client_test.go
package ollama

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"testing"

	"github.com/mwiater/forge/internal/appconfig"
	"github.com/mwiater/forge/internal/console"
)

// fakeRunner resolves commands against a scripted table keyed by the joined
// argv, and records every invocation.
type fakeRunner struct {
	results map[string]fakeResult
	files   map[string]bool
	calls   []string
}

type fakeResult struct {
	stdout string
	stderr string
	err    error
}

func (f *fakeRunner) key(name string, args ...string) string {
	return strings.Join(append([]string{name}, args...), " ")
}

func (f *fakeRunner) Run(ctx context.Context, name string, args ...string) (string, string, error) {
	key := f.key(name, args...)
	f.calls = append(f.calls, key)
	if result, ok := f.results[key]; ok {
		return result.stdout, result.stderr, result.err
	}
	return "", "", errors.New("command not scripted: " + key)
}

func (f *fakeRunner) RunAttached(ctx context.Context, name string, args ...string) error {
	key := f.key(name, args...)
	f.calls = append(f.calls, key)
	if result, ok := f.results[key]; ok {
		return result.err
	}
	return errors.New("command not scripted: " + key)
}

func (f *fakeRunner) FileExists(path string) bool {
	return f.files[path]
}

func newTestClient(runner *fakeRunner) *Client {
	return NewWithRunner(appconfig.Config{}, console.New(&bytes.Buffer{}), runner)
}

func TestBinaryPrefersFirstWorkingCandidate(t *testing.T) {
	runner := &fakeRunner{results: map[string]fakeResult{
		"ollama --help": {},
	}}
	client := newTestClient(runner)

	if got := client.Binary(context.Background()); got != "ollama" {
		t.Fatalf("Binary = %q, want ollama", got)
	}
	// Resolution is cached: a second call issues no further probes.
	probes := len(runner.calls)
	client.Binary(context.Background())
	if len(runner.calls) != probes {
		t.Fatal("Binary probed again after resolution")
	}
}

func TestBinaryFallsBackToPathCandidate(t *testing.T) {
	runner := &fakeRunner{results: map[string]fakeResult{
		"/usr/local/bin/ollama --help": {},
	}}
	client := newTestClient(runner)

	if got := client.Binary(context.Background()); got != "/usr/local/bin/ollama" {
		t.Fatalf("Binary = %q, want /usr/local/bin/ollama", got)
	}
}

func TestBinaryDefaultsToBareNameWhenNothingWorks(t *testing.T) {
	runner := &fakeRunner{}
	client := newTestClient(runner)

	if got := client.Binary(context.Background()); got != "ollama" {
		t.Fatalf("Binary = %q, want bare fallback", got)
	}
}

func TestBinaryHonorsConfiguredOverride(t *testing.T) {
	runner := &fakeRunner{results: map[string]fakeResult{
		"/opt/custom/ollama --help": {},
	}}
	client := NewWithRunner(appconfig.Config{Binary: "/opt/custom/ollama"}, console.New(&bytes.Buffer{}), runner)

	if got := client.Binary(context.Background()); got != "/opt/custom/ollama" {
		t.Fatalf("Binary = %q, want configured override", got)
	}
}

func TestCheckInstallationShortCircuitsOnFirstDiagnostic(t *testing.T) {
	runner := &fakeRunner{results: map[string]fakeResult{
		"ollama --help":  {},
		"ollama version": {stdout: "ollama version 0.5.4\n"},
	}}
	client := newTestClient(runner)

	if !client.CheckInstallation(context.Background(), nil) {
		t.Fatal("CheckInstallation = false, want true")
	}
	for _, call := range runner.calls {
		if strings.HasPrefix(call, "pgrep") {
			t.Fatal("process scan ran despite successful diagnostic")
		}
	}
}

func TestCheckInstallationFallsBackToProcessScan(t *testing.T) {
	runner := &fakeRunner{results: map[string]fakeResult{
		"pgrep -f ollama": {stdout: "1234\n"},
	}}
	client := newTestClient(runner)

	if !client.CheckInstallation(context.Background(), nil) {
		t.Fatal("CheckInstallation = false, want true via process scan")
	}
}

func TestCheckInstallationFallsBackToFilesystem(t *testing.T) {
	runner := &fakeRunner{files: map[string]bool{"/usr/bin/ollama": true}}
	client := newTestClient(runner)

	if !client.CheckInstallation(context.Background(), nil) {
		t.Fatal("CheckInstallation = false, want true via filesystem check")
	}
}

func TestCheckInstallationManualOverride(t *testing.T) {
	runner := &fakeRunner{}
	client := newTestClient(runner)

	if client.CheckInstallation(context.Background(), func() bool { return false }) {
		t.Fatal("CheckInstallation = true despite declined override")
	}
	if !client.CheckInstallation(context.Background(), func() bool { return true }) {
		t.Fatal("CheckInstallation = false despite accepted override")
	}
}

func TestParseList(t *testing.T) {
	output := "NAME            SIZE    MODIFIED\n" +
		"llama3.2:1b     1.3 GB  2 days ago\n" +
		"qwen2.5:0.5b    398 MB  5 weeks ago\n"

	records := ParseList(output)
	if len(records) != 2 {
		t.Fatalf("ParseList returned %d records, want 2", len(records))
	}
	if records[0].Name != "llama3.2:1b" || records[0].Size != "1.3" {
		t.Fatalf("unexpected first record: %+v", records[0])
	}
	if records[0].ModifiedAt != "GB 2 days ago" {
		t.Fatalf("unexpected modified field: %q", records[0].ModifiedAt)
	}
}

func TestParseListShortRowsDefaultToUnknown(t *testing.T) {
	records := ParseList("NAME SIZE MODIFIED\nsolo-model\n")
	if len(records) != 1 {
		t.Fatalf("ParseList returned %d records, want 1", len(records))
	}
	if records[0].Size != "Unknown" || records[0].ModifiedAt != "Unknown" {
		t.Fatalf("missing fields not defaulted: %+v", records[0])
	}
}

func TestParseListWithoutHeader(t *testing.T) {
	records := ParseList("some-model 1GB yesterday\n\n")
	if len(records) != 1 {
		t.Fatalf("ParseList returned %d records, want 1", len(records))
	}
	if records[0].Name != "some-model" || records[0].Size != "1GB" || records[0].ModifiedAt != "yesterday" {
		t.Fatalf("unexpected record: %+v", records[0])
	}
}

func TestParseListEmpty(t *testing.T) {
	if records := ParseList(""); len(records) != 0 {
		t.Fatalf("ParseList of empty output returned %d records", len(records))
	}
	if records := ParseList("NAME SIZE MODIFIED\n"); len(records) != 0 {
		t.Fatalf("ParseList of header-only output returned %d records", len(records))
	}
}

func TestListModelsDegradesToEmpty(t *testing.T) {
	runner := &fakeRunner{results: map[string]fakeResult{
		"ollama --help": {},
	}}
	client := newTestClient(runner)

	if records := client.ListModels(context.Background()); len(records) != 0 {
		t.Fatalf("expected empty inventory, got %d records", len(records))
	}
}

func TestListModelsTriesAbsolutePaths(t *testing.T) {
	runner := &fakeRunner{results: map[string]fakeResult{
		"ollama --help":              {},
		"/usr/bin/ollama list":       {stdout: "NAME SIZE MODIFIED\nphi3:mini 2.2GB now\n"},
		"/usr/local/bin/ollama list": {err: errors.New("no such file")},
		"ollama list":                {err: errors.New("exit status 1")},
	}}
	client := newTestClient(runner)

	records := client.ListModels(context.Background())
	if len(records) != 1 || records[0].Name != "phi3:mini" {
		t.Fatalf("unexpected inventory: %+v", records)
	}
}

func TestIsExit(t *testing.T) {
	exitErr := &exec.ExitError{}
	if !IsExit(exitErr) {
		t.Error("bare exit error not recognized")
	}
	if !IsExit(fmt.Errorf("pull llama3.2:1b: %w", exitErr)) {
		t.Error("wrapped exit error not recognized")
	}
	if IsExit(errors.New(`exec: "ollama": executable file not found in $PATH`)) {
		t.Error("spawn failure misread as an exit")
	}
	if IsExit(nil) {
		t.Error("nil misread as an exit")
	}
}

func TestCreateSurfacesStderr(t *testing.T) {
	runner := &fakeRunner{results: map[string]fakeResult{
		"ollama --help":                       {},
		"ollama create broken -f Modelfile-x": {stderr: "unknown base model\n", err: errors.New("exit status 1")},
	}}
	client := newTestClient(runner)

	err := client.Create(context.Background(), "broken", "Modelfile-x")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "unknown base model") {
		t.Fatalf("error does not carry stderr: %v", err)
	}
}
