package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/rangelight/internal/ui/pretty"
	"github.com/yaklabco/rangelight/pkg/engine"
)

const formatJSON = "json"

type listFlags struct {
	format string
}

func newLangsCommand() *cobra.Command {
	flags := &listFlags{}

	cmd := &cobra.Command{
		Use:   "langs",
		Short: "List available languages",
		Long: `List the languages the embedded engine can tokenize. Any listed name
(or one of its aliases) is valid for --lang and for fence info strings.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runListing(cmd, "Languages", engine.Languages(), flags)
		},
	}

	addListFlags(cmd, flags)

	return cmd
}

// runListing prints names as a column listing or a JSON array.
func runListing(cmd *cobra.Command, title string, names []string, flags *listFlags) error {
	if flags.format == formatJSON {
		return outputNamesJSON(cmd.OutOrStdout(), names)
	}

	styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode(cmd), os.Stdout))
	width := pretty.TerminalWidth(os.Stdout)

	fmt.Fprint(cmd.OutOrStdout(), styles.FormatListing(title, names, width))
	return nil
}

// outputNamesJSON writes names as an indented JSON array.
func outputNamesJSON(w io.Writer, names []string) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(names); err != nil {
		return fmt.Errorf("encoding names: %w", err)
	}
	return nil
}

func addListFlags(cmd *cobra.Command, flags *listFlags) {
	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json")
}
