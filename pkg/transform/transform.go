// Package transform defines line transformers, the named units of
// behavior that annotate line elements during the slow render path, and
// the builder that turns convenience options into an ordered transformer
// list.
package transform

import (
	"github.com/yaklabco/rangelight/pkg/hast"
	"github.com/yaklabco/rangelight/pkg/lineset"
)

// Transformer annotates one line element at a time. Transform is called
// once per physical line with the 1-based line number; it mutates the
// element's class list and attributes. Transformers run in sequence
// against the same element, so later transformers may read classes set
// by earlier ones.
type Transformer interface {
	// Name identifies the transformer in logs.
	Name() string

	// Transform annotates the line element for the given 1-based line
	// number.
	Transform(line *hast.Node, number int) error
}

// Options are the convenience inputs the builder normalizes into an
// ordered transformer list.
type Options struct {
	// Transformers are user-supplied and run first, in the given order.
	Transformers []Transformer

	// Numbering enables the line-number column. A Start below 1 is
	// treated as 1.
	Numbering *Numbering

	// HighlightLines and HighlightSpec select highlighted lines; when
	// both are given the selections are unioned. HighlightSpec uses the
	// lineset range syntax.
	HighlightLines []int
	HighlightSpec  string

	// DiffAdded and DiffRemoved select diff-marked lines.
	DiffAdded   []int
	DiffRemoved []int

	// FocusLines selects focused lines; every other line renders blurred.
	FocusLines []int
}

// Build normalizes opts into the ordered transformer list: user
// transformers first, then numbering, highlighting, diff, and focus.
// An empty result means no line features were requested; the renderer
// takes the fast path.
func Build(opts Options) []Transformer {
	var transformers []Transformer
	transformers = append(transformers, opts.Transformers...)

	if opts.Numbering != nil {
		numbering := *opts.Numbering
		if numbering.Start < 1 {
			numbering.Start = 1
		}
		transformers = append(transformers, &numbering)
	}

	highlight := lineset.Of(opts.HighlightLines...)
	if opts.HighlightSpec != "" {
		highlight.Merge(lineset.Parse(opts.HighlightSpec))
	}
	if highlight.Len() > 0 {
		transformers = append(transformers, &Highlight{Lines: highlight})
	}

	added := lineset.Of(opts.DiffAdded...)
	removed := lineset.Of(opts.DiffRemoved...)
	if added.Len() > 0 || removed.Len() > 0 {
		transformers = append(transformers, &Diff{Added: added, Removed: removed})
	}

	focus := lineset.Of(opts.FocusLines...)
	if focus.Len() > 0 {
		transformers = append(transformers, &Focus{Lines: focus})
	}

	return transformers
}

// ensureBase guarantees the base line class is present before a feature
// class is appended. Adding is idempotent, so repeated application from
// multiple transformers is safe.
func ensureBase(line *hast.Node) {
	line.Classes.Add(hast.ClassLine)
}
