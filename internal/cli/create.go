// internal/cli/create.go
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/k0kubun/pp"
	"github.com/mwiater/forge/internal/appconfig"
	"github.com/mwiater/forge/internal/chat"
	"github.com/mwiater/forge/internal/console"
	"github.com/mwiater/forge/internal/ollama"
	"github.com/mwiater/forge/internal/prompt"
	"github.com/mwiater/forge/internal/specialize"
	"github.com/mwiater/forge/internal/util"
	"github.com/spf13/cobra"
)

var (
	createSpecFile  string
	createBaseModel string
)

// createCmd runs the full generation flow: installation check, base-model
// selection, configuration collection, model build, and an optional session.
var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a task-specialized model",
	Long: `The 'create' command walks through the specialization choices, compiles them
into a model file, and builds the model with ollama. Use --file to load the
choices from a JSON document instead of answering interactively.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfig()
		out := console.Default()
		client := ollama.New(cfg, out)
		prompter := prompt.New(os.Stdin, out)
		return runCreate(cmd.Context(), cfg, out, client, prompter, createSpecFile, createBaseModel)
	},
}

// runCreate drives the generation flow: installation check, base-model
// selection, then the specialization choices, then build.
func runCreate(ctx context.Context, cfg appconfig.Config, out *console.Console, client *ollama.Client, prompter *prompt.Prompter, specFile, baseOverride string) error {
	out.Headerf("MODEL SPECIALIZATION GENERATOR")
	out.Infof("Creating fast, task-specialized models from your local base models")

	if !client.CheckInstallation(ctx, func() bool {
		return prompter.YesNo("\nContinue anyway?")
	}) {
		return fmt.Errorf("ollama installation not detected")
	}

	var err error
	baseModel := baseOverride
	if baseModel == "" {
		baseModel, err = prompter.SelectBaseModel(
			client.ListModels(ctx),
			cfg.Recommended(),
			func(model string) error { return client.Pull(ctx, model) },
			func() []ollama.ModelRecord { return client.ListModels(ctx) },
		)
		if err != nil {
			return err
		}
	}

	var spec specialize.Config
	if specFile != "" {
		spec, err = specialize.LoadFile(specFile)
		if err != nil {
			return err
		}
		out.Successf("Loaded specialization from %s", specFile)
	} else {
		spec, err = prompter.Collect()
		if err != nil {
			return err
		}
	}

	if cfg.Debug {
		pp.Fprintln(out.Writer(), specialize.Sampling(spec.Optimization))
		pp.Fprintln(out.Writer(), specialize.Performance(spec.Optimization))
		out.Printf("%s", util.TruncateRunes(specialize.SystemPrompt(spec), 400))
	}

	out.Printf("")
	out.Headerf("Building specialized model from %s", baseModel)

	builder := specialize.NewBuilder(client, out, cfg)
	modelName, err := builder.Build(ctx, baseModel, spec)
	if err != nil {
		out.Errorf("Failed to create specialized model: %v", err)
		return err
	}

	printSummary(out, modelName, spec)

	if prompter.YesNo("\nStart interactive session to see full capabilities?") {
		return runSession(ctx, client, cfg, out, modelName, spec.Task)
	}
	out.Infof("Model ready! Use: ollama run %s", modelName)
	return nil
}

// printSummary reports the created model and its enabled features.
func printSummary(out *console.Console, modelName string, spec specialize.Config) {
	out.Printf("")
	out.Headerf("MODEL CREATED SUCCESSFULLY")
	out.Printf("")
	out.Printf("Model Details:")
	out.Infof("  Name:    %s", modelName)
	out.Infof("  Task:    %s", spec.Task)
	out.Infof("  Persona: %s", specialize.Persona(spec.Level))
	out.Infof("  Level:   %d/6", spec.Level)
	out.Infof("  Style:   %d/5", spec.Style)

	out.Printf("")
	out.Printf("Usage Instructions:")
	out.Successf("  Run:    ollama run %s", modelName)
	out.Successf("  Chat:   ollama run %s \"Your question here\"", modelName)
	out.Successf("  List:   ollama list")
	out.Successf("  Remove: ollama rm %s", modelName)

	features := spec.Features
	enabled := []struct {
		on   bool
		text string
	}{
		{features.CodeFocus, "Advanced code generation optimization enabled"},
		{features.MathFocus, "Mathematical computation enhancement enabled"},
		{features.CreativeBoost, "Creative thinking enhancement enabled"},
		{features.MemoryOptimization, "Conversation memory optimization enabled"},
		{features.MaximumCapability, fmt.Sprintf("Maximum capability mode enabled for %s", spec.Task)},
		{features.CreativeSolutions, "Creative problem-solving enabled"},
		{features.DecisionFramework, "Advanced decision-making frameworks enabled"},
		{features.StrictTaskMode, "Strict task specialization enforced"},
	}
	var headerShown bool
	for _, f := range enabled {
		if f.on {
			if !headerShown {
				out.Printf("")
				out.Printf("Performance Features:")
				headerShown = true
			}
			out.Successf("  %s", f.text)
		}
	}
}

// runSession launches the interactive session, honoring the --plain flag.
func runSession(ctx context.Context, client *ollama.Client, cfg appconfig.Config, out *console.Console, modelName, task string) error {
	if cfg.Plain {
		return chat.RunPlain(ctx, client, out, os.Stdin, cfg, modelName, task)
	}
	return chat.RunTUI(ctx, client, cfg, modelName, task)
}

func init() {
	createCmd.Flags().StringVarP(&createSpecFile, "file", "f", "", "load the specialization from a JSON document")
	createCmd.Flags().StringVarP(&createBaseModel, "base", "b", "", "base model to specialize (skips the picker)")
	rootCmd.AddCommand(createCmd)
}
