// internal/ollama/client.go
// Package ollama manages all interaction with the ollama command-line binary:
// locating it, checking the installation, listing models, and running the
// pull/create/run subcommands.
package ollama

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/mwiater/forge/internal/appconfig"
	"github.com/mwiater/forge/internal/console"
)

// ModelRecord is one row of the local model inventory.
type ModelRecord struct {
	Name       string
	Size       string
	ModifiedAt string
}

// unknownField is the placeholder for inventory columns the listing omitted.
const unknownField = "Unknown"

// fixedBinaryPaths are the well-known install locations checked after PATH
// resolution fails.
var fixedBinaryPaths = []string{
	"/usr/local/bin/ollama",
	"/usr/bin/ollama",
	"/opt/ollama/bin/ollama",
}

// Client wraps the located ollama binary.
type Client struct {
	cfg    appconfig.Config
	runner Runner
	out    *console.Console

	bin string
}

// New returns a Client using the os/exec runner.
func New(cfg appconfig.Config, out *console.Console) *Client {
	return NewWithRunner(cfg, out, NewRunner())
}

// NewWithRunner returns a Client with an explicit Runner, used by tests.
func NewWithRunner(cfg appconfig.Config, out *console.Console, runner Runner) *Client {
	return &Client{cfg: cfg, runner: runner, out: out}
}

// candidateBinaries returns the ordered list of binary paths to probe. A
// configured override is tried first.
func (c *Client) candidateBinaries() []string {
	candidates := []string{}
	if c.cfg.Binary != "" {
		candidates = append(candidates, c.cfg.Binary)
	}
	candidates = append(candidates, "ollama")
	candidates = append(candidates, fixedBinaryPaths...)
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, ".ollama", "bin", "ollama"))
	}
	return candidates
}

// Binary resolves the ollama binary path, probing each candidate with a quick
// --help invocation. Absence is not an error here: the bare name is returned as
// a fallback and failures surface on the first real invocation.
func (c *Client) Binary(ctx context.Context) string {
	if c.bin != "" {
		return c.bin
	}

	for _, candidate := range c.candidateBinaries() {
		probeCtx, cancel := context.WithTimeout(ctx, c.cfg.ProbeTimeout())
		_, _, err := c.runner.Run(probeCtx, candidate, "--help")
		cancel()
		if err == nil {
			c.bin = candidate
			return c.bin
		}
	}

	c.bin = "ollama"
	return c.bin
}

// CheckInstallation reports whether the ollama installation is usable. It runs
// a sequence of diagnostics, then falls back to a process-table scan and
// filesystem checks, and finally asks the user for a manual override. A false
// return is a hard stop for the caller.
func (c *Client) CheckInstallation(ctx context.Context, override func() bool) bool {
	bin := c.Binary(ctx)

	diagnostics := []struct {
		argv   []string
		method string
	}{
		{[]string{bin, "version"}, "version check"},
		{[]string{bin, "list"}, "list models"},
		{[]string{bin, "--help"}, "help command"},
		{[]string{"/usr/local/bin/ollama", "version"}, "full path version"},
		{[]string{"/usr/bin/ollama", "version"}, "system path version"},
	}

	for _, diag := range diagnostics {
		diagCtx, cancel := context.WithTimeout(ctx, c.cfg.DiagnosticTimeout())
		stdout, _, err := c.runner.Run(diagCtx, diag.argv[0], diag.argv[1:]...)
		cancel()
		if err != nil {
			continue
		}
		c.out.Successf("Ollama detected via %s", diag.method)
		if strings.Contains(diag.method, "version") {
			version := strings.TrimSpace(stdout)
			if version == "" {
				version = "version detected"
			}
			c.out.Infof("  Version: %s", version)
		}
		return true
	}

	if _, _, err := c.runner.Run(ctx, "pgrep", "-f", "ollama"); err == nil {
		c.out.Successf("Ollama process detected running")
		c.out.Warnf("  Warning: command line access may be limited")
		return true
	}

	paths := append([]string{}, fixedBinaryPaths...)
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".ollama", "bin", "ollama"))
	}
	for _, path := range paths {
		if c.runner.FileExists(path) {
			c.out.Successf("Ollama binary found at: %s", path)
			return true
		}
	}

	c.out.Errorf("Ollama not detected through standard methods")
	c.out.Warnf("Please verify the installation:")
	c.out.Warnf("  1. Run: ollama --version")
	c.out.Warnf("  2. Check if the service is running: systemctl status ollama")
	c.out.Warnf("  3. Try: which ollama")

	if override != nil && override() {
		c.out.Warnf("Continuing with manual override...")
		return true
	}
	return false
}

// ListModels retrieves the local model inventory. Failures degrade to an empty
// list with a warning; this never returns an error.
func (c *Client) ListModels(ctx context.Context) []ModelRecord {
	attempts := [][]string{
		{c.Binary(ctx), "list"},
		{"/usr/local/bin/ollama", "list"},
		{"/usr/bin/ollama", "list"},
	}

	for _, argv := range attempts {
		listCtx, cancel := context.WithTimeout(ctx, c.cfg.ListTimeout())
		stdout, _, err := c.runner.Run(listCtx, argv[0], argv[1:]...)
		cancel()
		if err != nil {
			c.out.Warnf("Failed to list models with %s: %v", argv[0], err)
			continue
		}
		if records := ParseList(stdout); len(records) > 0 {
			c.out.Successf("Found %d models", len(records))
			return records
		}
	}

	c.out.Warnf("Could not retrieve model list")
	return nil
}

// ParseList parses the tabular output of `ollama list` into ModelRecords. A
// leading header line is skipped; short rows default missing columns to
// "Unknown".
func ParseList(output string) []ModelRecord {
	lines := strings.Split(strings.TrimSpace(output), "\n")
	if len(lines) > 0 && (strings.Contains(lines[0], "NAME") || strings.Contains(lines[0], "Model")) {
		lines = lines[1:]
	}

	var records []ModelRecord
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.Fields(line)
		record := ModelRecord{Name: fields[0], Size: unknownField, ModifiedAt: unknownField}
		if len(fields) > 1 {
			record.Size = fields[1]
		}
		if len(fields) > 2 {
			record.ModifiedAt = strings.Join(fields[2:], " ")
		}
		records = append(records, record)
	}
	return records
}

// Pull downloads a model, streaming progress to the terminal.
func (c *Client) Pull(ctx context.Context, model string) error {
	if err := c.runner.RunAttached(ctx, c.Binary(ctx), "pull", model); err != nil {
		return fmt.Errorf("pull %s: %w", model, err)
	}
	return nil
}

// Create builds a model from a model file. A non-zero exit surfaces the
// captured stderr.
func (c *Client) Create(ctx context.Context, name, modelfilePath string) error {
	_, stderr, err := c.runner.Run(ctx, c.Binary(ctx), "create", name, "-f", modelfilePath)
	if err != nil {
		if msg := strings.TrimSpace(stderr); msg != "" {
			return fmt.Errorf("create %s: %s: %w", name, msg, err)
		}
		return fmt.Errorf("create %s: %w", name, err)
	}
	return nil
}

// Generate runs a single prompt against a model and captures the response.
func (c *Client) Generate(ctx context.Context, model, prompt string) (string, error) {
	stdout, stderr, err := c.runner.Run(ctx, c.Binary(ctx), "run", model, prompt)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", context.DeadlineExceeded
		}
		if msg := strings.TrimSpace(stderr); msg != "" {
			return "", fmt.Errorf("run %s: %s: %w", model, msg, err)
		}
		return "", fmt.Errorf("run %s: %w", model, err)
	}
	return stdout, nil
}

// GenerateStreaming runs a single prompt with inherited stdio so the response
// streams straight to the terminal.
func (c *Client) GenerateStreaming(ctx context.Context, model, prompt string) error {
	return c.runner.RunAttached(ctx, c.Binary(ctx), "run", model, prompt)
}

// IsExit reports whether the error carries a process exit status, as opposed
// to a spawn failure or cancellation.
func IsExit(err error) bool {
	var exitErr *exec.ExitError
	return errors.As(err, &exitErr)
}
