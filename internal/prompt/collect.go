// internal/prompt/collect.go
package prompt

import (
	"fmt"

	"github.com/mwiater/forge/internal/catalog"
	"github.com/mwiater/forge/internal/ollama"
	"github.com/mwiater/forge/internal/specialize"
)

// menuOption is one numbered entry of a selection menu.
type menuOption struct {
	name string
	desc string
}

var levelOptions = []menuOption{
	{"Novice", "Basic concepts, beginner-friendly explanations"},
	{"Learner", "Educational content with step-by-step guidance"},
	{"Practitioner", "Practical, industry-focused applications"},
	{"Expert", "Advanced, professional-grade expertise"},
	{"Master", "Cutting-edge, research-level insights"},
	{"Grandmaster", "World-class, authoritative mastery"},
}

var styleOptions = []menuOption{
	{"Comprehensive", "Detailed explanations with examples and context"},
	{"Practical", "Implementation-focused with actionable solutions"},
	{"Theoretical", "Deep technical concepts and principles"},
	{"Concise", "Brief, precise answers with key insights"},
	{"Aggressive", "Ultra-fast, no-nonsense, direct responses"},
}

var optimizationOptions = []menuOption{
	{"Speed Demon", "Maximum speed, lower context"},
	{"Balanced", "Optimal speed-quality balance"},
	{"Quality Focus", "Maximum quality, larger context"},
	{"Memory Master", "Extended context, complex reasoning"},
	{"Tiny Specialist", "Ultra-small, lightning-fast specialist"},
	{"Mobile Optimized", "Efficient for resource-constrained environments"},
}

func (p *Prompter) showMenu(title string, options []menuOption) {
	p.out.Printf("")
	p.out.Headerf("%s:", title)
	for i, option := range options {
		p.out.Printf("%d. %-16s - %s", i+1, option.name, option.desc)
	}
}

// Collect runs the full interactive elicitation and returns a validated
// specialization config. An empty task is an error: the caller treats it as
// fatal rather than re-prompting.
func (p *Prompter) Collect() (specialize.Config, error) {
	p.out.Printf("")
	p.out.Headerf("=== MODEL CONFIGURATION ===")

	task, err := p.ReadText("\nEnter your specialization task\n" +
		"Examples: 'Python backend development', 'Machine learning research'\n→ ")
	if err != nil || task == "" {
		return specialize.Config{}, fmt.Errorf("task cannot be empty")
	}

	p.showMenu("Expertise Level", levelOptions)
	level, err := p.SelectRange("\nSelect expertise level", 1, 6)
	if err != nil {
		return specialize.Config{}, err
	}

	p.showMenu("Response Style", styleOptions)
	style, err := p.SelectRange("\nSelect response style", 1, 5)
	if err != nil {
		return specialize.Config{}, err
	}

	p.showMenu("Performance Optimization", optimizationOptions)
	optimization, err := p.SelectRange("\nSelect optimization", 1, 6)
	if err != nil {
		return specialize.Config{}, err
	}

	p.out.Printf("")
	p.out.Headerf("Additional Features:")
	features := specialize.FeatureFlags{
		CodeFocus:          p.YesNo("Include code generation optimization?"),
		MathFocus:          p.YesNo("Include mathematical computation enhancement?"),
		CreativeBoost:      p.YesNo("Include creative thinking enhancement?"),
		MemoryOptimization: p.YesNo("Include conversation memory optimization?"),
		MaximumCapability:  p.YesNo("Enable maximum capability mode for your task?"),
		CreativeSolutions:  p.YesNo("Enable creative problem-solving and innovation?"),
		DecisionFramework:  p.YesNo("Include advanced decision-making frameworks?"),
	}

	if features.MaximumCapability {
		p.out.Successf("Maximum capability mode enabled - the model will provide comprehensive task expertise")
	}
	if features.CreativeSolutions {
		p.out.Infof("Creative solutions enabled - the model will think outside the box for %s", task)
	}

	p.out.Printf("")
	p.out.Headerf("Task Specialization:")
	features.StrictTaskMode = p.YesNo("Enforce STRICT task-only responses (recommended)?")
	if features.StrictTaskMode {
		p.out.Successf("Strict mode enabled - the model will ONLY answer questions about %s", task)
	} else {
		p.out.Warnf("Flexible mode - the model may answer some general questions")
	}

	cfg := specialize.Config{
		Task:         task,
		Level:        level,
		Style:        style,
		Optimization: optimization,
		Features:     features,
	}
	if err := cfg.Validate(); err != nil {
		return specialize.Config{}, err
	}
	return cfg, nil
}

// SelectBaseModel renders the categorized inventory and asks for a numbered
// choice. When the inventory is empty it offers to pull the recommended
// starter set via pull, re-listing afterwards; a still-empty inventory is an
// error.
func (p *Prompter) SelectBaseModel(records []ollama.ModelRecord, recommended []string, pull func(model string) error, relist func() []ollama.ModelRecord) (string, error) {
	if len(records) == 0 {
		p.out.Warnf("No models found.")
		if !p.YesNo("Download the recommended starter models?") {
			return "", fmt.Errorf("no models available")
		}
		for _, model := range recommended {
			p.out.Infof("Downloading %s...", model)
			if err := pull(model); err != nil {
				p.out.Errorf("Failed to download %s: %v", model, err)
				continue
			}
			p.out.Successf("Downloaded %s", model)
		}
		records = relist()
		if len(records) == 0 {
			return "", fmt.Errorf("no models available")
		}
	}

	ordered := catalog.Render(p.out, records)
	choice, err := p.SelectRange("\nSelect model", 1, len(ordered))
	if err != nil {
		return "", err
	}
	selected := ordered[choice-1]
	p.out.Successf("Selected: %s", selected.Name)

	switch catalog.Classify(selected.Name) {
	case catalog.Tiny:
		p.out.Successf("Perfect choice for tiny specialists!")
	case catalog.Small:
		p.out.Infof("Good balance of capability and efficiency")
	default:
		p.out.Warnf("Large model - high capability but bigger size")
	}
	return selected.Name, nil
}
