// internal/chat/plain.go
package chat

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"

	"github.com/mwiater/forge/internal/appconfig"
	"github.com/mwiater/forge/internal/console"
	"github.com/mwiater/forge/internal/ollama"
)

// RunPlain drives the line-oriented session: a bounded opening overview with
// output streaming straight to the terminal, then a read-evaluate loop where
// each line becomes a fresh run invocation. Interrupting the context ends the
// loop cleanly, not as an error.
func RunPlain(ctx context.Context, client *ollama.Client, out *console.Console, in io.Reader, cfg appconfig.Config, modelName, task string) error {
	out.Printf("")
	out.Headerf("LAUNCHING INTERACTIVE SESSION")
	out.Printf("Starting conversation with your %s specialist...", task)
	out.Printf("Type 'exit' or 'quit' to end the session")
	out.Printf("")

	out.Infof("Starting comprehensive overview...")
	overviewCtx, cancel := context.WithTimeout(ctx, cfg.SessionTimeout())
	err := client.GenerateStreaming(overviewCtx, modelName, OverviewPrompt(task))
	cancel()
	switch {
	case err == nil:
		out.Successf("Overview completed! Now entering interactive mode...")
	case errors.Is(overviewCtx.Err(), context.DeadlineExceeded):
		out.Warnf("Initial overview timed out, but your model is ready!")
	case ctx.Err() != nil:
		out.Warnf("Session interrupted. Your model is ready for use!")
		return nil
	default:
		out.Warnf("Overview failed: %v", err)
	}

	out.Printf("")
	out.Headerf("INTERACTIVE MODE - Ask anything about %s!", task)
	out.Printf("%s", strings.Repeat("─", 60))

	reader := bufio.NewReader(in)
	for {
		if ctx.Err() != nil {
			out.Warnf("Session interrupted. Your model is ready for use!")
			return nil
		}
		out.Promptf("\nYou: ")
		line, err := reader.ReadString('\n')
		if ctx.Err() != nil {
			out.Warnf("Session interrupted. Your model is ready for use!")
			return nil
		}
		if err != nil && line == "" {
			out.Infof("Session ended. Your %s specialist is ready for future use!", task)
			return nil
		}
		input := strings.TrimSpace(line)
		if IsExitCommand(input) {
			out.Infof("Session ended. Your %s specialist is ready for future use!", task)
			return nil
		}
		if input == "" {
			continue
		}

		out.Infof("%s:", modelName)
		if err := client.GenerateStreaming(ctx, modelName, input); err != nil {
			if ctx.Err() != nil {
				out.Warnf("Session interrupted. Your model is ready for use!")
				return nil
			}
			out.Warnf("Response failed: %v", err)
		}
	}
}
