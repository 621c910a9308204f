package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yaklabco/rangelight/internal/configloader"
	"github.com/yaklabco/rangelight/internal/logging"
	"github.com/yaklabco/rangelight/internal/ui/pretty"
	"github.com/yaklabco/rangelight/pkg/config"
	"github.com/yaklabco/rangelight/pkg/langdetect"
	"github.com/yaklabco/rangelight/pkg/lineset"
	"github.com/yaklabco/rangelight/pkg/render"
	"github.com/yaklabco/rangelight/pkg/runner"
)

// ErrRenderFailed is returned when one or more inputs fail to render.
var ErrRenderFailed = errors.New("render failed")

type renderFlags struct {
	lang      string
	theme     string
	blockID   string
	highlight string
	focus     string
	add       string
	del       string
	summary   bool
}

func newRenderCommand() *cobra.Command {
	var cfg config.Config
	flags := &renderFlags{}

	cmd := &cobra.Command{
		Use:   "render [files...]",
		Short: "Render source files to highlight artifacts",
		Long:  renderLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args, &cfg, flags)
		},
	}

	addRenderFlags(cmd, &cfg, flags)

	return cmd
}

const renderLongDescription = `Render source files to themed HTML, a block-scoped stylesheet, and the
range-registration script.

Each input produces <stem>.html, <stem>.css, and <stem>.js next to the
file (or under --out-dir). With --standalone each input produces one
self-contained <stem>.html document instead. With no files, input is
read from stdin and the rendered block is written to stdout.

Line selections use the range syntax: comma-separated line numbers and
inclusive ranges, e.g. "1,3,5-7".

Examples:
  rangelight render main.go                  # Render one file
  rangelight render --theme nord *.go        # Render many files with a theme
  rangelight render --highlight 3-5 main.go  # Highlight lines 3 to 5
  rangelight render --standalone main.go     # One self-contained document
  cat main.go | rangelight render --lang go  # Render stdin to stdout`

func runRender(cmd *cobra.Command, args []string, cfg *config.Config, flags *renderFlags) error {
	logger := logging.Default()

	// Map string flags to typed config values.
	// Only set values that were explicitly provided via CLI flags.
	if cmd.Flags().Changed("lang") {
		cfg.Lang = flags.lang
	}
	if cmd.Flags().Changed("theme") {
		cfg.Theme = flags.theme
	}

	// Load and merge configuration.
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	// Get the explicit config path from the root command's persistent flag.
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}

	// Get working directory for config discovery and path resolution.
	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	// Build load options.
	loadOpts := configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cfg,
	}

	loadResult, err := configloader.Load(ctx, loadOpts)
	if err != nil {
		return errors.Join(errors.New("failed to load configuration"), err)
	}

	finalCfg := loadResult.Config

	// Log warnings from config loading.
	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}

	// Log loaded configuration files.
	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", "files", loadResult.LoadedFrom)
	}

	logger.Debug("configuration loaded",
		"theme", finalCfg.Theme,
		"lang", finalCfg.Lang,
		"line_numbers", finalCfg.LineNumbers,
		"jobs", finalCfg.Jobs,
	)

	// Build the block options shared by every input.
	renderOpts := render.Options{
		Lang:          finalCfg.Lang,
		Theme:         finalCfg.Theme,
		BlockID:       flags.blockID,
		LineNumbers:   finalCfg.LineNumbers,
		NumberStart:   finalCfg.NumberStart,
		HighlightSpec: flags.highlight,
		FocusLines:    lineset.Parse(flags.focus).Lines(),
		DiffAdded:     lineset.Parse(flags.add).Lines(),
		DiffRemoved:   lineset.Parse(flags.del).Lines(),
	}

	renderer := render.NewRenderer()

	// No inputs: render stdin to stdout.
	if len(args) == 0 {
		return renderStdin(ctx, cmd, renderer, renderOpts, finalCfg.Standalone)
	}

	runOpts := runner.Options{
		Paths:      args,
		WorkingDir: workDir,
		Jobs:       finalCfg.Jobs,
		Render:     renderOpts,
	}

	// Plan the output files up front so colliding inputs fail before any
	// render work happens.
	files, err := runner.ResolvePaths(ctx, runOpts)
	if err != nil {
		return err
	}

	plan, err := planArtifacts(files, finalCfg.OutDir, finalCfg.Standalone)
	if err != nil {
		return err
	}
	runOpts.Paths = files

	if finalCfg.OutDir != "" {
		if err := os.MkdirAll(finalCfg.OutDir, 0755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	logger.Debug("starting render run",
		"paths", runOpts.Paths,
		"working_dir", runOpts.WorkingDir,
		"jobs", runOpts.Jobs,
	)

	renderRunner := runner.New(renderer)

	result, err := renderRunner.Run(ctx, runOpts)
	if err != nil {
		return errors.Join(errors.New("render run failed"), err)
	}

	styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode(cmd), os.Stdout))
	out := cmd.OutOrStdout()

	// Write artifacts and report each outcome.
	for _, outcome := range result.Files {
		if outcome.Error != nil {
			fmt.Fprint(out, styles.FormatOutcome(relOutcome(outcome, workDir), ""))
			continue
		}

		primary, err := writeArtifacts(ctx, plan[outcome.Path], outcome.Result)
		if err != nil {
			return fmt.Errorf("write output for %s: %w", displayPath(outcome.Path, workDir), err)
		}

		fmt.Fprint(out, styles.FormatOutcome(relOutcome(outcome, workDir), displayPath(primary, workDir)))
	}

	if flags.summary {
		fmt.Fprint(out, styles.FormatSummary(result.Stats))
	} else {
		fmt.Fprint(out, styles.FormatSummaryOneLine(result.Stats))
	}

	if ExitCodeFromResult(result) != ExitSuccess {
		return ErrRenderFailed
	}

	return nil
}

// renderStdin renders standard input and writes the block to stdout: the
// embeddable style+markup+script fragment, or a complete document with
// --standalone. The language is detected from the content when not set.
func renderStdin(
	ctx context.Context,
	cmd *cobra.Command,
	renderer *render.Renderer,
	opts render.Options,
	standalone bool,
) error {
	source, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}

	if opts.Lang == "" || opts.Lang == config.LangAuto {
		opts.Lang = langdetect.Detect(source)
	}

	result, err := renderer.Render(ctx, string(source), opts)
	if err != nil {
		return fmt.Errorf("render stdin: %w", err)
	}

	output := embedFragment(result)
	if standalone {
		output = htmlDocument(result.BlockID, output)
	}

	if _, err := cmd.OutOrStdout().Write(output); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	return nil
}

// relOutcome rewrites an outcome's path relative to dir for display.
func relOutcome(outcome runner.FileOutcome, dir string) runner.FileOutcome {
	outcome.Path = displayPath(outcome.Path, dir)
	return outcome
}

// displayPath shortens path relative to dir when that is possible and
// shorter; resolution failures keep the absolute path.
func displayPath(path, dir string) string {
	rel, err := filepath.Rel(dir, path)
	if err != nil || len(rel) >= len(path) {
		return path
	}
	return rel
}

func addRenderFlags(cmd *cobra.Command, cfg *config.Config, flags *renderFlags) {
	cmd.Flags().StringVar(&flags.lang, "lang", config.LangAuto,
		"language of the inputs (auto = detect per file)")
	cmd.Flags().StringVar(&flags.theme, "theme", config.DefaultTheme, "color theme for rendered blocks")
	cmd.Flags().StringVar(&flags.blockID, "block-id", "",
		"element id for the rendered block (single input or stdin only)")
	cmd.Flags().BoolVar(&cfg.LineNumbers, "line-numbers", false, "render a line-number column")
	cmd.Flags().IntVar(&cfg.NumberStart, "number-start", 0, "first line number (0 = 1, implies --line-numbers)")
	cmd.Flags().StringVar(&flags.highlight, "highlight", "", "lines to highlight, range syntax")
	cmd.Flags().StringVar(&flags.focus, "focus", "", "lines to focus; all other lines render blurred")
	cmd.Flags().StringVar(&flags.add, "add", "", "lines to mark as diff additions")
	cmd.Flags().StringVar(&flags.del, "del", "", "lines to mark as diff removals")
	cmd.Flags().StringVar(&cfg.OutDir, "out-dir", "", "directory for output files (default: next to each input)")
	cmd.Flags().IntVar(&cfg.Jobs, "jobs", 0, "number of parallel render workers (0 = auto)")
	cmd.Flags().BoolVar(&cfg.Standalone, "standalone", false, "write one self-contained HTML document per input")
	cmd.Flags().BoolVar(&flags.summary, "summary", false, "print a detailed run summary")
}
