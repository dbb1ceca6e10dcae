// internal/cli/root.go
// Package cli defines the forge command tree.
package cli

import (
	"context"
	"os"
	"os/signal"

	"github.com/mwiater/forge/internal/appconfig"
	"github.com/mwiater/forge/internal/console"
	"github.com/mwiater/forge/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile       string
	currentConfig *appconfig.Config
)

var rootCmd = &cobra.Command{
	Use:   "forge",
	Short: "forge — generate task-specialized Ollama models interactively",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// 1) Load config (file or defaults)
		cfg, err := appconfig.Load(cfgFile)
		if err != nil {
			return err
		}

		// 2) Flags override the file: only values the user actually set.
		if cmd.Flags().Changed("debug") {
			cfg.Debug = viper.GetBool("debug")
		}
		if cmd.Flags().Changed("plain") {
			cfg.Plain = viper.GetBool("plain")
		}
		if cmd.Flags().Changed("binary") {
			cfg.Binary = viper.GetString("binary")
		}

		// 3) Materialize the merged configuration for the commands.
		currentConfig = &cfg

		return logging.Init(cfg.LogFilePath())
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logging.Close()
	},
}

// Execute runs the command tree with interrupt-aware context. A user interrupt
// is a clean termination, not an error.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if ctx.Err() != nil {
			console.Default().Warnf("Process interrupted by user")
			os.Exit(0)
		}
		os.Exit(1)
	}
	if ctx.Err() != nil {
		console.Default().Warnf("Process interrupted by user")
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", appconfig.DefaultConfigPath, "config file (e.g., config/config.json)")

	rootCmd.PersistentFlags().Bool("debug", false, "enable debug output")
	rootCmd.PersistentFlags().Bool("plain", false, "use the plain streaming session instead of the TUI")
	rootCmd.PersistentFlags().String("binary", "", "explicit path to the ollama binary")

	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("plain", rootCmd.PersistentFlags().Lookup("plain"))
	_ = viper.BindPFlag("binary", rootCmd.PersistentFlags().Lookup("binary"))

	rootCmd.SilenceUsage = true
}

// getConfig returns the loaded application configuration for the commands.
func getConfig() appconfig.Config {
	if currentConfig == nil {
		return appconfig.Config{}
	}
	return *currentConfig
}
