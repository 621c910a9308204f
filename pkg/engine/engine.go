// Package engine adapts the tokenizer/theming engine behind a small
// interface: a line-grouped color-token stream for the fast path and an
// annotated tree for the slow path. The default implementation is backed
// by chroma; a process-wide Handle shares one lazily-built instance
// across render calls.
package engine

import (
	"context"
	"errors"

	"github.com/yaklabco/rangelight/pkg/hast"
	"github.com/yaklabco/rangelight/pkg/transform"
)

// ErrUnknownLanguage is returned when no grammar matches the requested
// language. It is the one engine failure that surfaces to render callers
// as a hard error; nothing can be produced without a grammar.
var ErrUnknownLanguage = errors.New("unknown language")

// Token is one colored span of source text within a single line.
// Color is empty for spans the theme leaves unstyled.
type Token struct {
	Content string
	Color   string
}

// Engine turns source text into colored tokens and, for the slow path,
// an annotated line tree.
type Engine interface {
	// Tokenize returns one token slice per physical line of code. The
	// outer slice length always equals the physical line count of code,
	// lines without styled content included.
	Tokenize(ctx context.Context, code, lang, theme string) ([][]Token, error)

	// Annotate builds the annotated tree for code and applies the given
	// transformers, in order, to every line element. Transformer errors
	// and panics surface as the returned error.
	Annotate(ctx context.Context, code, lang, theme string, transformers []transform.Transformer) (*hast.Node, error)
}
