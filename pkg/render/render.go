// Package render turns source code into the three outputs of a render
// call: per-line HTML markup, a block-scoped stylesheet, and the range
// registration script consumed by the browser-side highlight runtime.
//
// The Renderer orchestrates the pipeline. When no line features are
// requested it takes the fast path (tokenizer only); otherwise it asks
// the engine for an annotated tree, extracts canonical metadata from it,
// and feeds the generators. An annotation failure degrades the call to
// fast-path output rather than failing it.
package render

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/yaklabco/rangelight/pkg/engine"
	"github.com/yaklabco/rangelight/pkg/linemeta"
	"github.com/yaklabco/rangelight/pkg/transform"
)

// Renderer orchestrates the render pipeline. The zero value is not
// usable; construct with NewRenderer or NewRendererWith.
type Renderer struct {
	handle *engine.Handle
	logger *log.Logger
}

// NewRenderer returns a renderer on the shared default engine handle.
func NewRenderer() *Renderer {
	return NewRendererWith(nil, nil)
}

// NewRendererWith returns a renderer on the given engine handle and
// logger. A nil handle selects the shared default engine; a nil logger
// selects the package default.
func NewRendererWith(handle *engine.Handle, logger *log.Logger) *Renderer {
	if handle == nil {
		handle = engine.DefaultHandle
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Renderer{handle: handle, logger: logger}
}

// Render produces the three outputs for code. The language is required
// and an unknown language is a hard error; every other degradation is
// silent. In particular, a failure while annotating (a transformer error
// or panic) is logged as a warning and the call falls back to fast-path
// output.
func (r *Renderer) Render(ctx context.Context, code string, opts Options) (*Result, error) {
	if strings.TrimSpace(opts.Lang) == "" {
		return nil, ErrLanguageRequired
	}

	theme := opts.Theme
	if theme == "" {
		theme = DefaultTheme
	}

	blockID := opts.BlockID
	if blockID == "" {
		blockID = nextBlockID()
	} else {
		blockID = sanitizeBlockID(blockID)
	}

	eng, err := r.handle.Engine(ctx)
	if err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}

	// Color data feeds all three outputs and does not depend on the
	// annotation step, so the tokenizer always runs.
	lines, err := eng.Tokenize(ctx, code, opts.Lang, theme)
	if err != nil {
		return nil, err
	}

	var meta *linemeta.Metadata
	if transformers := transform.Build(opts.features()); len(transformers) > 0 {
		tree, annErr := eng.Annotate(ctx, code, opts.Lang, theme, transformers)
		if annErr != nil {
			r.logger.Warn("annotation failed, rendering without line features",
				"lang", opts.Lang, "block", blockID, "error", annErr)
		} else {
			meta = linemeta.Extract(tree)
		}
	}

	return &Result{
		HTML:    Markup(code, blockID, meta),
		CSS:     Stylesheet(lines, blockID, meta),
		Script:  RangeScript(lines, blockID),
		Stats:   collectStats(code, lines),
		BlockID: blockID,
	}, nil
}
