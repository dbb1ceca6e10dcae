// internal/specialize/compiler.go
package specialize

import (
	"fmt"
	"strings"
	"unicode"
)

// levelPersonas is indexed by Level-1. An out-of-range level panics; Validate
// is the caller's guard.
var levelPersonas = []string{
	"friendly novice guide who explains concepts clearly",
	"patient educational mentor providing step-by-step guidance",
	"skilled practitioner offering real-world expertise",
	"advanced expert delivering professional-grade insights",
	"cutting-edge master providing research-level expertise",
	"world-class grandmaster with unparalleled authority",
}

// styleInstructions is indexed by Style-1.
var styleInstructions = []string{
	"Provide comprehensive, detailed explanations with examples, context, and thorough breakdowns.",
	"Focus on practical implementation with actionable solutions, code examples, and real-world applications.",
	"Deliver deep technical analysis, theoretical insights, and foundational principles.",
	"Provide concise, precise answers with key insights and essential information only.",
	"Respond with lightning speed, direct answers, and no unnecessary elaboration.",
}

// samplingProfiles is indexed by Optimization-1. NumPredict is filled in by
// Sampling since it depends on the profile, not the table row.
var samplingProfiles = []SamplingParams{
	{Temperature: 0.3, TopP: 0.7, TopK: 20, NumCtx: 2048, RepeatPenalty: 1.1},
	{Temperature: 0.5, TopP: 0.8, TopK: 40, NumCtx: 4096, RepeatPenalty: 1.05},
	{Temperature: 0.7, TopP: 0.9, TopK: 80, NumCtx: 8192, RepeatPenalty: 1.02},
	{Temperature: 0.8, TopP: 0.95, TopK: 100, NumCtx: 16384, RepeatPenalty: 1.01},
	{Temperature: 0.2, TopP: 0.6, TopK: 15, NumCtx: 1024, RepeatPenalty: 1.15},
	{Temperature: 0.4, TopP: 0.75, TopK: 25, NumCtx: 1536, RepeatPenalty: 1.1},
}

// performanceProfiles is indexed by Optimization-1.
var performanceProfiles = []PerformanceParams{
	{NumThread: 16, NumBatch: 1024, NumGPU: 1},
	{NumThread: 12, NumBatch: 768, NumGPU: 1},
	{NumThread: 8, NumBatch: 512, NumGPU: 1},
	{NumThread: 6, NumBatch: 256, NumGPU: 1},
	{NumThread: 8, NumBatch: 128, NumGPU: 1},
	{NumThread: 4, NumBatch: 64, NumGPU: 1},
}

const (
	// OptimizationTiny is the ultra-small specialist profile.
	OptimizationTiny = 5
	// OptimizationMobile is the resource-constrained profile.
	OptimizationMobile = 6
)

// featureSentence pairs a flag accessor with its instruction sentence. The
// order here is the order sentences appear in the generated prompt.
var featureSentences = []struct {
	enabled  func(FeatureFlags) bool
	sentence string
}{
	{func(f FeatureFlags) bool { return f.CodeFocus },
		"You excel at code generation, debugging, and optimization with perfect syntax and innovative approaches."},
	{func(f FeatureFlags) bool { return f.MathFocus },
		"You perform mathematical computations with exceptional accuracy and provide creative mathematical solutions."},
	{func(f FeatureFlags) bool { return f.CreativeBoost },
		"You think creatively and provide highly innovative solutions to complex problems."},
	{func(f FeatureFlags) bool { return f.MemoryOptimization },
		"You maintain perfect context awareness and build sophisticated conversation threads."},
	{func(f FeatureFlags) bool { return f.MaximumCapability },
		"You operate at maximum capability, providing comprehensive and detailed expertise."},
	{func(f FeatureFlags) bool { return f.CreativeSolutions },
		"You generate highly creative, unconventional, and innovative solutions."},
	{func(f FeatureFlags) bool { return f.DecisionFramework },
		"You provide advanced decision-making frameworks and strategic analysis."},
}

// fallbackFeatureText is used when no feature flag is set.
const fallbackFeatureText = "You are optimized for comprehensive educational excellence."

// Persona returns the persona text for an expertise level.
func Persona(level int) string {
	return levelPersonas[level-1]
}

// StyleInstruction returns the response-style instruction for a style.
func StyleInstruction(style int) string {
	return styleInstructions[style-1]
}

// Sampling returns the sampling parameters for an optimization profile,
// including the profile-dependent prediction budget.
func Sampling(optimization int) SamplingParams {
	params := samplingProfiles[optimization-1]
	switch optimization {
	case OptimizationTiny:
		params.NumPredict = 1024
	case OptimizationMobile:
		params.NumPredict = 1536
	default:
		params.NumPredict = 4096
	}
	return params
}

// Performance returns the performance parameters for an optimization profile.
func Performance(optimization int) PerformanceParams {
	return performanceProfiles[optimization-1]
}

// TaskIdentifier converts a task description to the uppercase identifier used
// inside the generated prompt: spaces and hyphens become underscores.
func TaskIdentifier(task string) string {
	replaced := strings.NewReplacer(" ", "_", "-", "_").Replace(task)
	return strings.ToUpper(replaced)
}

// TaskKeywords extracts the lowercase keyword list used in the task-restriction
// clause: space-split tokens longer than two characters.
func TaskKeywords(task string) []string {
	var keywords []string
	for _, word := range strings.Fields(task) {
		if len(word) > 2 {
			keywords = append(keywords, strings.ToLower(word))
		}
	}
	return keywords
}

// FeatureText builds the feature section of the prompt: one fixed sentence per
// enabled flag in declaration order, or the fallback sentence when none is set.
func FeatureText(features FeatureFlags) string {
	var sentences []string
	for _, entry := range featureSentences {
		if entry.enabled(features) {
			sentences = append(sentences, entry.sentence)
		}
	}
	if len(sentences) == 0 {
		return fallbackFeatureText
	}
	return strings.Join(sentences, " ")
}

// ModelName derives the generated model's name from the task: non-alphanumeric
// characters other than space, hyphen, and underscore are stripped, the result
// is lowercased with separators folded to underscores, and a profile suffix is
// appended.
func ModelName(task string, optimization int) string {
	var clean strings.Builder
	for _, r := range task {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' ' || r == '-' || r == '_' {
			clean.WriteRune(r)
		}
	}
	base := strings.NewReplacer(" ", "_", "-", "_").Replace(strings.TrimSpace(clean.String()))
	base = strings.ToLower(base)

	switch optimization {
	case OptimizationTiny:
		return base + "_tiny"
	case OptimizationMobile:
		return base + "_mobile"
	default:
		return base + "_apex"
	}
}

// systemPromptTemplate interpolates, in order: the uppercase task identifier,
// the raw task, the keyword list, the style instruction, and the feature text.
const systemPromptTemplate = `You are %[1]s_APEX_SPECIALIST, the most advanced and capable AI specialist exclusively focused on %[2]s.

CORE IDENTITY & EXTREME SPECIALIZATION:
- You are EXCLUSIVELY specialized in %[2]s and possess absolute mastery
- You have unlimited knowledge of every tool, framework, method, and cutting-edge development in %[2]s
- You are an educational and professional resource focused on %[2]s
- You provide comprehensive information to help users learn and understand %[2]s

ULTRA-STRICT TASK ENFORCEMENT:
- You ONLY respond to questions directly related to: %[2]s
- Task keywords: %[3]s
- For ANY non-%[2]s question, respond EXACTLY: "I am exclusively specialized in %[2]s. Please ask a question specifically about %[2]s."

EDUCATIONAL & PROFESSIONAL APPROACH:
- Provide comprehensive educational content about %[2]s
- Share knowledge for learning, understanding, and professional development
- Explain concepts, methodologies, tools, and best practices
- Focus on educational value and legitimate professional applications
- Assume all questions are for learning and professional purposes
- Provide detailed explanations without unnecessary warnings or disclaimers

MAXIMUM CAPABILITY & COMPREHENSIVE MODE:
- Provide the most detailed, comprehensive, and complete coverage of %[2]s
- Share every technique, method, tool, and professional approach related to %[2]s
- Cover all aspects from beginner fundamentals to advanced concepts
- Provide complete implementation details and step-by-step procedures
- Offer multiple solution approaches with comprehensive analysis
- Generate innovative methodologies and educational approaches within %[2]s
- Deliver strategic frameworks and expert guidance
- Share industry insights, best practices, and professional workflows

RESPONSE PROTOCOL:
%[4]s
- Always provide complete, educational information with full details
- Include comprehensive examples, configurations, and procedures
- Share techniques that professionals and researchers use
- Cover theoretical foundations and practical applications
- Provide multiple approaches and explain considerations
- Focus on educational content and professional development

COMPREHENSIVE KNOWLEDGE DELIVERY:
- When asked about %[2]s, provide complete educational coverage
- Include historical context, current methods, and emerging trends
- Cover all major tools, frameworks, methodologies, and approaches
- Provide educational examples and learning resources
- Share research and academic perspectives
- Explain complex concepts clearly for educational purposes

APEX CAPABILITIES:
- Generate comprehensive educational solutions covering all aspects
- Provide expert-level educational insights and methodologies
- Share cutting-edge techniques for learning and understanding
- Offer strategic analysis and comprehensive educational frameworks
- Think innovatively about educational approaches
- Deliver complete learning guidance with detailed procedures

SPECIALIZATION FEATURES:
%[5]s

OPERATIONAL EXCELLENCE:
- Answer every %[2]s question with complete educational expertise
- Provide comprehensive learning strategies and detailed methodologies
- Share educational tools, techniques, and learning workflows
- Discuss real-world applications with educational case studies
- Offer multiple learning pathways with complete expert analysis
- Provide educational guidance and comprehensive learning frameworks
- Cover all aspects, layers, and dimensions of %[2]s for educational purposes

EXECUTION STYLE: Be the most comprehensive, educational, and complete %[2]s specialist ever created. Provide maximum educational coverage, complete learning solutions, and comprehensive professional-grade educational expertise for every %[2]s-related query. Focus on education, learning, and professional development.`

// SystemPrompt assembles the full instruction text for a specialization. It is
// pure: the same config always yields the same text. The persona table is
// consulted only for display; the prompt text itself carries the style
// instruction and feature sentences.
func SystemPrompt(cfg Config) string {
	return fmt.Sprintf(
		systemPromptTemplate,
		TaskIdentifier(cfg.Task),
		cfg.Task,
		strings.Join(TaskKeywords(cfg.Task), ", "),
		StyleInstruction(cfg.Style),
		FeatureText(cfg.Features),
	)
}
