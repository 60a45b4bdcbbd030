// Package cli provides the Cobra command structure for mdsurface.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/inkfold/mdsurface/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root mdsurface command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "mdsurface",
		Short: "Markdown surface engine for live-editing hosts",
		Long: `mdsurface is the markdown surface engine behind live note editors: it
classifies lines, computes viewport decoration sets, derives foldable
sections, and produces atomic block-format toggle transactions.

The commands below expose each engine surface against files on disk, so
hosts and scripts can inspect exactly what an editor embedding the engine
would see.`,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
			cmd.SetContext(logging.WithLogger(cmd.Context(), logging.Default()))
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	// Add subcommands.
	rootCmd.AddCommand(newClassifyCommand())
	rootCmd.AddCommand(newDecorateCommand())
	rootCmd.AddCommand(newSectionsCommand())
	rootCmd.AddCommand(newToggleCommand())
	rootCmd.AddCommand(newPreviewCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	// Apply styled help formatting.
	helpFormatter := NewHelpFormatter(color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}
