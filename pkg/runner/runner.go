package runner

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/yaklabco/rangelight/pkg/config"
	"github.com/yaklabco/rangelight/pkg/fsutil"
	"github.com/yaklabco/rangelight/pkg/langdetect"
	"github.com/yaklabco/rangelight/pkg/render"
)

// Runner orchestrates multi-file rendering using a render.Renderer.
type Runner struct {
	// Renderer handles per-file rendering. It is safe for concurrent use.
	Renderer *render.Renderer
}

// New creates a new Runner with the given renderer.
func New(renderer *render.Renderer) *Runner {
	return &Runner{Renderer: renderer}
}

// Run resolves opts.Paths and renders each file concurrently.
// It returns a deterministic collection of FileOutcome values and aggregate stats.
//
// The runner:
//   - Resolves and deduplicates the input paths
//   - Renders files concurrently using a worker pool
//   - Aggregates results into a single Result with statistics
//   - Respects context cancellation
//
// A file that fails to render is reported in its outcome; Run only returns
// an error for input resolution failures and cancellation.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	files, err := ResolvePaths(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{Files: make([]FileOutcome, 0, len(files))}
	if len(files) == 0 {
		return result, nil
	}

	// Determine job count.
	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	// Don't use more workers than files.
	if jobs > len(files) {
		jobs = len(files)
	}

	single := len(files) == 1

	// Create channels.
	workCh := make(chan string)
	outCh := make(chan FileOutcome)

	var wg sync.WaitGroup

	// Start workers.
	for range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.worker(ctx, workCh, outCh, opts, single)
		}()
	}

	// Feed work in a separate goroutine.
	go func() {
		defer close(workCh)
		for _, path := range files {
			select {
			case <-ctx.Done():
				return
			case workCh <- path:
			}
		}
	}()

	// Close outCh when all workers are done.
	go func() {
		wg.Wait()
		close(outCh)
	}()

	// Collect results.
	// Use a map to restore order since workers may complete out of order.
	outcomes := make(map[string]FileOutcome, len(files))

	for outcome := range outCh {
		outcomes[outcome.Path] = outcome
	}

	// Build result in input order.
	for _, path := range files {
		if outcome, ok := outcomes[path]; ok {
			result.accumulate(outcome)
		}
	}

	// Check for context error.
	if ctx.Err() != nil {
		return result, fmt.Errorf("run cancelled: %w", ctx.Err())
	}

	return result, nil
}

// worker renders files from workCh and sends outcomes to outCh.
func (r *Runner) worker(
	ctx context.Context,
	workCh <-chan string,
	outCh chan<- FileOutcome,
	opts Options,
	single bool,
) {
	for path := range workCh {
		select {
		case <-ctx.Done():
			return
		default:
		}

		outcome := r.renderFile(ctx, path, opts, single)

		select {
		case <-ctx.Done():
			return
		case outCh <- outcome:
		}
	}
}

// renderFile reads one file, resolves its language, and renders it.
func (r *Runner) renderFile(ctx context.Context, path string, opts Options, single bool) FileOutcome {
	outcome := FileOutcome{Path: path}

	content, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		outcome.Error = err
		return outcome
	}

	renderOpts := opts.Render
	renderOpts.Lang = resolveLang(renderOpts.Lang, path, content)
	if renderOpts.BlockID == "" || !single {
		renderOpts.BlockID = blockIDForPath(path)
	}
	outcome.Lang = renderOpts.Lang

	res, err := r.Renderer.Render(ctx, string(content), renderOpts)
	if err != nil {
		outcome.Error = fmt.Errorf("render %s: %w", path, err)
		return outcome
	}
	outcome.Result = res

	return outcome
}

// resolveLang fills an empty or "auto" language from the file name and content.
func resolveLang(lang, path string, content []byte) string {
	if lang == "" || lang == config.LangAuto {
		return langdetect.DetectFile(filepath.Base(path), content)
	}
	return lang
}

// blockIDForPath derives a stable block id from the file name stem.
func blockIDForPath(path string) string {
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if stem == "" {
		return "block"
	}
	return stem
}
