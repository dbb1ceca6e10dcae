// internal/cli/models.go
package cli

import (
	"github.com/mwiater/forge/internal/catalog"
	"github.com/mwiater/forge/internal/console"
	"github.com/mwiater/forge/internal/ollama"
	"github.com/spf13/cobra"
)

// modelsCmd lists the local model inventory grouped by size bucket.
var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List local models grouped by size",
	Long:  `The 'models' command lists the local ollama inventory, categorized into tiny, recommended, and large buckets.`,
	Run: func(cmd *cobra.Command, args []string) {
		out := console.Default()
		client := ollama.New(getConfig(), out)
		catalog.Render(out, client.ListModels(cmd.Context()))
	},
}

func init() {
	rootCmd.AddCommand(modelsCmd)
}
