// internal/cli/pull.go
package cli

import (
	"github.com/mwiater/forge/internal/console"
	"github.com/mwiater/forge/internal/ollama"
	"github.com/spf13/cobra"
)

// pullCmd downloads models: the named arguments, or the recommended starter
// set when called with none.
var pullCmd = &cobra.Command{
	Use:   "pull [model...]",
	Short: "Pull models, defaulting to the recommended starter set",
	Long: `The 'pull' command downloads the given models. With no arguments it pulls the
recommended starter set of small base models.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := getConfig()
		out := console.Default()
		client := ollama.New(cfg, out)

		models := args
		if len(models) == 0 {
			out.Headerf("Downloading recommended starter models")
			models = cfg.Recommended()
		}

		for _, model := range models {
			out.Infof("Downloading %s...", model)
			if err := client.Pull(cmd.Context(), model); err != nil {
				out.Errorf("Failed to download %s: %v", model, err)
				// A non-exit failure means ollama never ran; the
				// remaining downloads would fail the same way.
				if !ollama.IsExit(err) {
					out.Warnf("Skipping remaining downloads")
					break
				}
				continue
			}
			out.Successf("Downloaded %s", model)
		}
	},
}

func init() {
	rootCmd.AddCommand(pullCmd)
}
