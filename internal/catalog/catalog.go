// internal/catalog/catalog.go
// Package catalog organizes the local model inventory into size buckets and
// renders it for selection.
package catalog

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mwiater/forge/internal/console"
	"github.com/mwiater/forge/internal/ollama"
)

// Bucket is a coarse size category for a local model.
type Bucket int

const (
	// Tiny models run fast with minimal resources.
	Tiny Bucket = iota
	// Small models balance capability and efficiency.
	Small
	// Large is every model that matches neither smaller bucket.
	Large
)

var (
	tinyMarkers  = []string{"0.5b", "1b", "2b", "mini"}
	smallMarkers = []string{"3b", "7b"}
)

// Classify assigns a model name to a bucket. Markers can overlap between
// buckets; the first matching bucket wins, tiny checked before small before
// large.
func Classify(name string) Bucket {
	lower := strings.ToLower(name)
	for _, marker := range tinyMarkers {
		if strings.Contains(lower, marker) {
			return Tiny
		}
	}
	for _, marker := range smallMarkers {
		if strings.Contains(lower, marker) {
			return Small
		}
	}
	return Large
}

// Label returns the display label for a bucket.
func (b Bucket) Label() string {
	switch b {
	case Tiny:
		return "TINY (Ultra-fast, minimal resources)"
	case Small:
		return "RECOMMENDED (Good balance)"
	default:
		return "LARGE (High capability, more resources)"
	}
}

// Sort orders records tiny-first, then small, then large, preserving the
// inventory order inside each bucket.
func Sort(records []ollama.ModelRecord) []ollama.ModelRecord {
	var tiny, small, large []ollama.ModelRecord
	for _, record := range records {
		switch Classify(record.Name) {
		case Tiny:
			tiny = append(tiny, record)
		case Small:
			small = append(small, record)
		default:
			large = append(large, record)
		}
	}
	ordered := append([]ollama.ModelRecord{}, tiny...)
	ordered = append(ordered, small...)
	return append(ordered, large...)
}

// Render prints the bucket-sorted inventory as a numbered list and returns the
// records in display order, so a numeric selection indexes straight into it.
func Render(out *console.Console, records []ollama.ModelRecord) []ollama.ModelRecord {
	ordered := Sort(records)

	tinyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
	smallStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	largeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("33"))

	out.Headerf("Available Models:")
	out.Printf("%s", strings.Repeat("─", 60))
	for i, record := range ordered {
		var style lipgloss.Style
		bucket := Classify(record.Name)
		switch bucket {
		case Tiny:
			style = tinyStyle
		case Small:
			style = smallStyle
		default:
			style = largeStyle
		}
		line := fmt.Sprintf("%2d. %-30s %-8s %s", i+1, record.Name, record.Size, bucket.Label())
		out.Printf("%s", style.Render(line))
	}
	out.Printf("%s", strings.Repeat("─", 60))
	out.Warnf("TIP: choose smaller models (1b-2b) for truly tiny specialists")

	return ordered
}
