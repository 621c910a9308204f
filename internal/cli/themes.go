package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/rangelight/pkg/engine"
)

func newThemesCommand() *cobra.Command {
	flags := &listFlags{}

	cmd := &cobra.Command{
		Use:   "themes",
		Short: "List available color themes",
		Long: `List the color themes the embedded engine ships. Any listed name is
valid for --theme and the theme configuration key; unknown names fall
back to the engine default at render time.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runListing(cmd, "Themes", engine.Themes(), flags)
		},
	}

	addListFlags(cmd, flags)

	return cmd
}
