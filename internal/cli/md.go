package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/rangelight/internal/configloader"
	"github.com/yaklabco/rangelight/internal/logging"
	"github.com/yaklabco/rangelight/pkg/config"
	"github.com/yaklabco/rangelight/pkg/fsutil"
	"github.com/yaklabco/rangelight/pkg/markdown"
)

type mdFlags struct {
	flavor     string
	theme      string
	output     string
	standalone bool
}

func newMDCommand() *cobra.Command {
	var cfg config.Config
	flags := &mdFlags{}

	cmd := &cobra.Command{
		Use:   "md [file]",
		Short: "Render a Markdown document with highlighted code blocks",
		Long:  mdLongDescription,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMD(cmd, args, &cfg, flags)
		},
	}

	addMDFlags(cmd, &cfg, flags)

	return cmd
}

const mdLongDescription = `Convert a Markdown document to HTML, rendering every fenced code block
through the highlight pipeline.

Fence info strings carry per-block options after the language:
  ` + "```" + `go {1,3-5} numbers focus=2 add=4 del=5
The brace group selects highlighted lines; numbers enables numbering
(numbers=10 starts at 10); focus, add, and del take range selections.
Fences without a language are detected from their content.

The converted document is written to <stem>.html next to the input (or
under out_dir from configuration); --out overrides the path. With no
file, input is read from stdin and HTML is written to stdout.

Examples:
  rangelight md README.md               # Write README.html
  rangelight md --standalone README.md  # Complete document with <html> shell
  rangelight md -o docs/index.html README.md
  cat notes.md | rangelight md          # Convert stdin to stdout`

func runMD(cmd *cobra.Command, args []string, cfg *config.Config, flags *mdFlags) error {
	logger := logging.Default()

	// Map string flags to typed config values.
	// Only set values that were explicitly provided via CLI flags.
	if cmd.Flags().Changed("flavor") {
		cfg.Flavor = config.Flavor(flags.flavor)
	}
	if cmd.Flags().Changed("theme") {
		cfg.Theme = flags.theme
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cfg,
	})
	if err != nil {
		return errors.Join(errors.New("failed to load configuration"), err)
	}

	finalCfg := loadResult.Config

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}

	logger.Debug("configuration loaded",
		"flavor", finalCfg.Flavor,
		"theme", finalCfg.Theme,
		"block_prefix", finalCfg.BlockPrefix,
	)

	renderer := markdown.New(
		markdown.WithFlavor(string(finalCfg.Flavor)),
		markdown.WithTheme(finalCfg.Theme),
		markdown.WithLineNumbers(finalCfg.LineNumbers),
		markdown.WithNumberStart(finalCfg.NumberStart),
		markdown.WithBlockPrefix(finalCfg.BlockPrefix),
	)

	// No input file: convert stdin to stdout.
	if len(args) == 0 {
		return convertStdin(ctx, cmd, renderer, flags.standalone)
	}

	input := args[0]
	source, err := fsutil.ReadFile(ctx, input)
	if err != nil {
		return err
	}

	body, err := renderer.Render(ctx, source)
	if err != nil {
		return fmt.Errorf("render %s: %w", input, err)
	}

	if flags.standalone {
		body = htmlDocument(filepath.Base(input), body)
	}

	outPath := flags.output
	if outPath == "" {
		outPath = documentPath(input, finalCfg.OutDir)
	}
	if outPath == input {
		return fmt.Errorf("output %s would overwrite the input; use --out", outPath)
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	if _, err := fsutil.WriteAtomicIfChanged(ctx, outPath, body, fsutil.DefaultFileMode); err != nil {
		return fmt.Errorf("write %s: %w", outPath, err)
	}

	logger.Info("wrote document",
		logging.FieldInput, input,
		logging.FieldOutput, displayPath(outPath, workDir),
	)

	return nil
}

// convertStdin converts Markdown from standard input to stdout.
func convertStdin(ctx context.Context, cmd *cobra.Command, renderer *markdown.Renderer, standalone bool) error {
	source, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}

	body, err := renderer.Render(ctx, source)
	if err != nil {
		return fmt.Errorf("render stdin: %w", err)
	}

	if standalone {
		body = htmlDocument("rangelight", body)
	}

	if _, err := cmd.OutOrStdout().Write(body); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	return nil
}

// documentPath derives the output path for a converted document: the
// input's stem plus ".html", next to the input or under outDir.
func documentPath(input, outDir string) string {
	base := filepath.Base(input)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if stem == "" {
		stem = base
	}

	dir := outDir
	if dir == "" {
		dir = filepath.Dir(input)
	}
	return filepath.Join(dir, stem+".html")
}

func addMDFlags(cmd *cobra.Command, cfg *config.Config, flags *mdFlags) {
	cmd.Flags().StringVar(&flags.flavor, "flavor", "commonmark", "Markdown flavor: commonmark, gfm")
	cmd.Flags().StringVar(&flags.theme, "theme", config.DefaultTheme, "color theme for code blocks")
	cmd.Flags().BoolVar(&cfg.LineNumbers, "line-numbers", false, "number every code block")
	cmd.Flags().IntVar(&cfg.NumberStart, "number-start", 0, "first line number (0 = 1)")
	cmd.Flags().StringVar(&cfg.BlockPrefix, "block-prefix", "",
		"prefix for block element ids (empty = auto-generated)")
	cmd.Flags().StringVarP(&flags.output, "out", "o", "", "output file path (default: <stem>.html)")
	cmd.Flags().BoolVar(&flags.standalone, "standalone", false, "wrap output in a complete HTML document")
}
