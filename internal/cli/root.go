// Package cli provides the Cobra command structure for rangelight.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/rangelight/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root rangelight command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "rangelight",
		Short: "Render source code to themed HTML with line-range features",
		Long: `rangelight renders source code to HTML colored through the CSS Custom
Highlight API: per-line markup, a block-scoped stylesheet, and a script
that registers each color's character ranges with the browser.

Blocks support line numbering, highlighted, focused, and diff-marked
lines, selected with a compact range syntax ("1,3,5-7"). Languages and
themes come from the embedded grammar engine; untagged input falls back
to content-based detection.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
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
	rootCmd.AddCommand(newRenderCommand())
	rootCmd.AddCommand(newMDCommand())
	rootCmd.AddCommand(newLangsCommand())
	rootCmd.AddCommand(newThemesCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	// Apply styled help formatting.
	helpFormatter := NewHelpFormatter(color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}

// colorMode reads the root command's persistent color flag.
func colorMode(cmd *cobra.Command) string {
	mode, err := cmd.Flags().GetString("color")
	if err != nil {
		return "auto" // Default to auto if flag retrieval fails
	}
	return mode
}
