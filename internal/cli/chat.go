// internal/cli/chat.go
package cli

import (
	"strings"

	"github.com/mwiater/forge/internal/console"
	"github.com/mwiater/forge/internal/ollama"
	"github.com/spf13/cobra"
)

var chatTask string

// chatCmd opens an interactive session against an existing model.
var chatCmd = &cobra.Command{
	Use:   "chat <model>",
	Short: "Chat with an existing specialized model",
	Long: `The 'chat' command opens an interactive session against an already created
model. The session starts with a comprehensive overview of the task, then
accepts free-form questions; type exit, quit, or bye to leave.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfig()
		out := console.Default()
		client := ollama.New(cfg, out)

		modelName := args[0]
		task := chatTask
		if task == "" {
			// A model named python_backend_tiny reads as "python backend".
			task = strings.ReplaceAll(strings.TrimSuffix(strings.TrimSuffix(strings.TrimSuffix(
				modelName, "_tiny"), "_mobile"), "_apex"), "_", " ")
		}

		return runSession(cmd.Context(), client, cfg, out, modelName, task)
	},
}

func init() {
	chatCmd.Flags().StringVarP(&chatTask, "task", "t", "", "task description shown in the session")
	rootCmd.AddCommand(chatCmd)
}
