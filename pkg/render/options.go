package render

import (
	"errors"

	"github.com/yaklabco/rangelight/pkg/transform"
)

// DefaultTheme is used when Options.Theme is empty.
const DefaultTheme = "github-dark"

// ErrLanguageRequired is returned when Options.Lang is empty. No output
// can be produced without a grammar.
var ErrLanguageRequired = errors.New("language is required")

// Options are the inputs of one render call.
type Options struct {
	// Lang selects the grammar. Required.
	Lang string

	// Theme selects the color theme. DefaultTheme when empty; unknown
	// names fall back to the engine's default style.
	Theme string

	// BlockID scopes element ids, highlight names, and stylesheet rules.
	// Auto-generated when empty; otherwise sanitized to characters safe
	// in CSS identifiers.
	BlockID string

	// Transformers are user-supplied line transformers, applied before
	// the built-in ones.
	Transformers []transform.Transformer

	// LineNumbers renders a line-number column. NumberStart sets the
	// number of the first line; 0 means 1. A positive NumberStart
	// implies LineNumbers.
	LineNumbers bool
	NumberStart int

	// HighlightLines and HighlightSpec select highlighted lines; the
	// union applies when both are set. HighlightSpec uses the lineset
	// range syntax.
	HighlightLines []int
	HighlightSpec  string

	// DiffAdded and DiffRemoved select diff-marked lines.
	DiffAdded   []int
	DiffRemoved []int

	// FocusLines selects focused lines; all other lines render blurred.
	FocusLines []int
}

// features collects the line-feature requests for the descriptor builder.
func (o Options) features() transform.Options {
	var numbering *transform.Numbering
	if o.LineNumbers || o.NumberStart > 0 {
		numbering = &transform.Numbering{Start: o.NumberStart}
	}
	return transform.Options{
		Transformers:   o.Transformers,
		Numbering:      numbering,
		HighlightLines: o.HighlightLines,
		HighlightSpec:  o.HighlightSpec,
		DiffAdded:      o.DiffAdded,
		DiffRemoved:    o.DiffRemoved,
		FocusLines:     o.FocusLines,
	}
}
