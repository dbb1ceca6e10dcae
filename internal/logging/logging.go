// internal/logging/logging.go
// Package logging writes application events and external-command records to
// stdout and an optional log file.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

var (
	mu      sync.Mutex
	logFile *os.File

	// execLog writes external-command records to the log file only. Routing
	// them through stdout would scribble behind the full-screen session.
	execLog = log.New(io.Discard, "", log.LstdFlags)
)

// Init routes the standard logger to stdout plus the given file. An empty path
// keeps stdout only. Calling Init again closes the previous file.
func Init(logPath string) error {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
	execLog = log.New(io.Discard, "", log.LstdFlags)

	writers := []io.Writer{os.Stdout}

	if logPath != "" {
		if dir := filepath.Dir(logPath); dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return err
			}
		}
		file, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return err
		}
		logFile = file
		execLog = log.New(logFile, "", log.LstdFlags)
		writers = append(writers, logFile)
	}

	log.SetOutput(io.MultiWriter(writers...))
	return nil
}

// Close releases the log file and restores the default logger output.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if logFile == nil {
		return nil
	}
	log.SetOutput(os.Stderr)
	execLog = log.New(io.Discard, "", log.LstdFlags)
	err := logFile.Close()
	logFile = nil
	return err
}

// LogEvent records a formatted application event.
func LogEvent(format string, args ...any) {
	log.Println(fmt.Sprintf(format, args...))
}

// LogInvocation records one external-command run: the argv, how long it took,
// and how it ended ("ok", "exit N", "timeout", or an error string). Records go
// to the log file only, never the terminal.
func LogInvocation(argv []string, elapsed time.Duration, status string) {
	if status = strings.TrimSpace(status); status == "" {
		status = "unknown"
	}
	mu.Lock()
	sink := execLog
	mu.Unlock()
	sink.Println(fmt.Sprintf("[EXEC] cmd=%q elapsed=%.1fs status=%s", strings.Join(argv, " "), elapsed.Seconds(), status))
}
