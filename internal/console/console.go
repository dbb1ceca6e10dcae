// internal/console/console.go
// Package console provides a mutex-guarded, colorized output sink shared by the
// interactive components.
package console

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/fatih/color"
)

// Console serializes writes to a single output stream. Components receive a
// *Console instead of printing directly so concurrent helpers (such as bulk
// model pulls) cannot interleave lines.
type Console struct {
	mu  sync.Mutex
	out io.Writer

	header  *color.Color
	success *color.Color
	warn    *color.Color
	fail    *color.Color
	info    *color.Color
	bold    *color.Color
}

// New returns a Console writing to out.
func New(out io.Writer) *Console {
	return &Console{
		out:     out,
		header:  color.New(color.FgHiMagenta, color.Bold),
		success: color.New(color.FgGreen),
		warn:    color.New(color.FgYellow),
		fail:    color.New(color.FgRed),
		info:    color.New(color.FgCyan),
		bold:    color.New(color.Bold),
	}
}

// Default returns a Console writing to stdout.
func Default() *Console {
	return New(os.Stdout)
}

// Writer exposes the underlying writer for components that render their own
// styled output (catalog tables, pp dumps).
func (c *Console) Writer() io.Writer {
	return c.out
}

func (c *Console) println(col *color.Color, format string, args ...any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	msg := fmt.Sprintf(format, args...)
	if col != nil {
		fmt.Fprintln(c.out, col.Sprint(msg))
		return
	}
	fmt.Fprintln(c.out, msg)
}

// Printf writes an unstyled line.
func (c *Console) Printf(format string, args ...any) {
	c.println(nil, format, args...)
}

// Headerf writes a section header line.
func (c *Console) Headerf(format string, args ...any) {
	c.println(c.header, format, args...)
}

// Successf writes a success line.
func (c *Console) Successf(format string, args ...any) {
	c.println(c.success, format, args...)
}

// Warnf writes a warning line.
func (c *Console) Warnf(format string, args ...any) {
	c.println(c.warn, format, args...)
}

// Errorf writes a failure line.
func (c *Console) Errorf(format string, args ...any) {
	c.println(c.fail, format, args...)
}

// Infof writes an informational line.
func (c *Console) Infof(format string, args ...any) {
	c.println(c.info, format, args...)
}

// Promptf writes a bold prompt without a trailing newline.
func (c *Console) Promptf(format string, args ...any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprint(c.out, c.bold.Sprintf(format, args...))
}
