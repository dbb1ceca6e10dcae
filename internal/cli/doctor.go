// internal/cli/doctor.go
package cli

import (
	"fmt"
	"os"

	"github.com/mwiater/forge/internal/console"
	"github.com/mwiater/forge/internal/ollama"
	"github.com/mwiater/forge/internal/prompt"
	"github.com/spf13/cobra"
)

// doctorCmd probes the ollama installation and reports whether it is usable.
var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check whether the ollama installation is usable",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := console.Default()
		client := ollama.New(getConfig(), out)
		prompter := prompt.New(os.Stdin, out)

		if !client.CheckInstallation(cmd.Context(), func() bool {
			return prompter.YesNo("\nContinue anyway?")
		}) {
			return fmt.Errorf("ollama installation not detected")
		}
		out.Successf("Installation looks usable")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
