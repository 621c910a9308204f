package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yaklabco/rangelight/internal/logging"
	"github.com/yaklabco/rangelight/pkg/config"
	"github.com/yaklabco/rangelight/pkg/engine"
)

// configFilePermissions is the file mode for configuration files (world-readable).
const configFilePermissions = 0644

// Full config templates document the theme names the engine ships.
//
//nolint:gochecknoinits // Wires the engine registry into template generation.
func init() {
	config.DefaultThemeProvider = engine.Themes
}

// initFlags holds the flags for the init command.
type initFlags struct {
	force  bool
	full   bool
	output string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new rangelight configuration file",
		Long: `Create a new .rangelight.yml configuration file in the current directory
with sensible defaults. The file can be customized to change the theme,
default language, numbering, and output locations.

Examples:
  rangelight init                    Create minimal .rangelight.yml
  rangelight init --full             Create full config with every option
  rangelight init --output conf.yml  Write to a custom file path`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runInit(flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "Overwrite existing configuration file")
	cmd.Flags().BoolVar(&flags.full, "full", false, "Generate full template with all options documented")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output file path (default: .rangelight.yml)")

	return cmd
}

func runInit(flags *initFlags) error {
	logger := logging.NewInteractive()

	// Determine output path
	outputPath := flags.output
	if outputPath == "" {
		outputPath = ".rangelight.yml"
	}

	// Make path absolute
	absPath, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	// Check if file exists
	if _, err := os.Stat(absPath); err == nil {
		if !flags.force {
			return fmt.Errorf("file %q already exists; use --force to overwrite", outputPath)
		}
		logger.Warn("overwriting existing file", logging.FieldPath, outputPath)
	}

	// Generate template
	content := config.GenerateTemplate(config.TemplateOptions{
		Full: flags.full,
	})

	// Write file
	if err := os.WriteFile(absPath, content, configFilePermissions); err != nil {
		return fmt.Errorf("write file: %w", err)
	}

	logger.Info("created configuration file", logging.FieldPath, outputPath)

	if flags.full {
		logger.Info("full template lists every option and the available themes")
	}

	logger.Info("customize your configuration by editing the file")
	logger.Info("run 'rangelight themes' to see all available themes")

	return nil
}
