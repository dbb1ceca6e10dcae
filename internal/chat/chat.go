// internal/chat/chat.go
// Package chat drives an interactive session against a newly created model,
// either as a full-screen TUI or as a plain streaming loop.
package chat

import (
	"fmt"
	"strings"
)

// exitKeywords end the interactive loop, matched case-insensitively.
var exitKeywords = []string{"exit", "quit", "bye"}

// IsExitCommand reports whether an input line ends the session.
func IsExitCommand(input string) bool {
	lower := strings.ToLower(strings.TrimSpace(input))
	for _, keyword := range exitKeywords {
		if lower == keyword {
			return true
		}
	}
	return false
}

// OverviewPrompt is the fixed opening prompt that elicits a comprehensive
// first answer from the specialist.
func OverviewPrompt(task string) string {
	return fmt.Sprintf("Hello! I'm your %[1]s specialist. Let me demonstrate my comprehensive expertise "+
		"by providing you with a complete overview of %[1]s from beginner to advanced levels. "+
		"I'll cover all essential aspects, methodologies, tools, best practices, and advanced techniques. "+
		"Please share everything you know about this field in detail.", task)
}
