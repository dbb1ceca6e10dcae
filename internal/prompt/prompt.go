// internal/prompt/prompt.go
// Package prompt implements the sequential interactive elicitation of a
// specialization config. Input comes from an injected reader so the retry
// loops are testable with scripted input.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mwiater/forge/internal/console"
)

// Prompter reads user answers from in and writes prompts through the console
// sink.
type Prompter struct {
	in  *bufio.Reader
	out *console.Console
}

// New returns a Prompter reading from in.
func New(in io.Reader, out *console.Console) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// readLine reads one line, trimming the trailing newline and surrounding
// whitespace. io.EOF is returned once input is exhausted.
func (p *Prompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// ReadText shows a prompt and returns the trimmed answer, which may be empty.
func (p *Prompter) ReadText(label string) (string, error) {
	p.out.Promptf("%s", label)
	return p.readLine()
}

// SelectRange shows a prompt and loops until the answer is an integer inside
// [lo, hi]. Non-numeric and out-of-range answers re-prompt; only exhausted
// input ends the loop with an error.
func (p *Prompter) SelectRange(label string, lo, hi int) (int, error) {
	for {
		p.out.Promptf("%s (%d-%d): ", label, lo, hi)
		line, err := p.readLine()
		if err != nil {
			return 0, fmt.Errorf("input closed while waiting for a selection: %w", err)
		}
		value, err := strconv.Atoi(line)
		if err != nil {
			p.out.Warnf("Please enter a valid number.")
			continue
		}
		if value < lo || value > hi {
			p.out.Warnf("Please select %d-%d.", lo, hi)
			continue
		}
		return value, nil
	}
}

// YesNo shows a prompt and returns true when the answer begins with "y" or
// "Y". Anything else, including exhausted input, is false; there is no retry.
func (p *Prompter) YesNo(label string) bool {
	p.out.Promptf("%s (y/n): ", label)
	line, err := p.readLine()
	if err != nil {
		return false
	}
	return strings.HasPrefix(strings.ToLower(line), "y")
}
