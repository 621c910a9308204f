// Package markdown converts Markdown documents with fenced code blocks
// rendered through the highlight pipeline. The goldmark extension is
// exposed directly for embedding in an existing goldmark setup; the
// document Renderer covers whole-file conversion.
package markdown

import (
	"bytes"
	"context"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/util"

	"github.com/yaklabco/rangelight/pkg/render"
)

// Flavor identifies the Markdown flavor accepted by the Renderer.
const (
	FlavorCommonMark = "commonmark"
	FlavorGFM        = "gfm"
)

// config collects the options shared by the extension and the document
// renderer.
type config struct {
	flavor      string
	theme       string
	lineNumbers bool
	numberStart int
	blockPrefix string
	renderer    *render.Renderer
}

// Option configures the extension or the document renderer.
type Option func(*config)

// WithFlavor selects the Markdown flavor ("commonmark" or "gfm").
// Invalid flavors fall back to CommonMark.
func WithFlavor(flavor string) Option {
	return func(cfg *config) {
		cfg.flavor = flavor
	}
}

// WithTheme sets the color theme applied to every block.
func WithTheme(theme string) Option {
	return func(cfg *config) {
		cfg.theme = theme
	}
}

// WithLineNumbers enables line numbering on every block. Individual
// fences can still opt in with the "numbers" directive.
func WithLineNumbers(enabled bool) Option {
	return func(cfg *config) {
		cfg.lineNumbers = enabled
	}
}

// WithNumberStart sets the first line number used when numbering is on.
func WithNumberStart(start int) Option {
	return func(cfg *config) {
		cfg.numberStart = start
	}
}

// WithBlockPrefix derives block element ids from prefix and a sequence
// number instead of the generated defaults.
func WithBlockPrefix(prefix string) Option {
	return func(cfg *config) {
		cfg.blockPrefix = prefix
	}
}

// WithRenderer substitutes the block renderer. The default shares the
// process-wide engine handle.
func WithRenderer(r *render.Renderer) Option {
	return func(cfg *config) {
		cfg.renderer = r
	}
}

func newConfig(opts ...Option) config {
	cfg := config{flavor: FlavorCommonMark}
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.flavor = flavorOrDefault(cfg.flavor)
	if cfg.renderer == nil {
		cfg.renderer = render.NewRenderer()
	}
	return cfg
}

// Highlighting is a goldmark extension that replaces fenced code block
// rendering with the pipeline's style, markup and range-script output.
type Highlighting struct {
	cfg config
}

// NewHighlighting creates the extension. Conversions through a bare
// extension are not cancellable; use Renderer to bound the work with a
// context.
func NewHighlighting(opts ...Option) *Highlighting {
	return &Highlighting{cfg: newConfig(opts...)}
}

// Extend registers the fenced-code-block renderer.
func (h *Highlighting) Extend(md goldmark.Markdown) {
	md.Renderer().AddOptions(renderer.WithNodeRenderers(
		util.Prioritized(&codeBlockRenderer{cfg: h.cfg, ctx: context.Background()}, 100),
	))
}

// Renderer converts whole Markdown documents.
type Renderer struct {
	cfg config
}

// New creates a document renderer.
func New(opts ...Option) *Renderer {
	return &Renderer{cfg: newConfig(opts...)}
}

// Flavor returns the configured Markdown flavor.
func (r *Renderer) Flavor() string {
	return r.cfg.flavor
}

// Render converts source to HTML. Each fenced code block becomes a
// <style> element, the annotated markup, and a <script> applying the
// block's color ranges; everything else renders through goldmark's
// defaults.
func (r *Renderer) Render(ctx context.Context, source []byte) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("render cancelled: %w", err)
	}

	// A fresh pipeline per call keeps the conversion context and the
	// block id sequence call-local.
	md := newGoldmarkInstance(ctx, r.cfg)

	var buf bytes.Buffer
	if err := md.Convert(source, &buf); err != nil {
		return nil, fmt.Errorf("convert markdown: %w", err)
	}
	return buf.Bytes(), nil
}

// newGoldmarkInstance creates a goldmark.Markdown wired with the
// fenced-code-block renderer and any flavor extensions.
//
//nolint:ireturn // goldmark.Markdown is an external interface type
func newGoldmarkInstance(ctx context.Context, cfg config) goldmark.Markdown {
	opts := []goldmark.Option{
		goldmark.WithRendererOptions(renderer.WithNodeRenderers(
			util.Prioritized(&codeBlockRenderer{cfg: cfg, ctx: ctx}, 100),
		)),
	}

	switch cfg.flavor {
	case FlavorGFM:
		opts = append(opts, goldmark.WithExtensions(extension.GFM))
	case FlavorCommonMark:
		// No extensions for pure CommonMark.
	}

	return goldmark.New(opts...)
}

// flavorOrDefault returns the flavor if valid, otherwise CommonMark.
func flavorOrDefault(flavor string) string {
	switch flavor {
	case FlavorCommonMark, FlavorGFM:
		return flavor
	default:
		return FlavorCommonMark
	}
}
