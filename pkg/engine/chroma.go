package engine

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/yaklabco/rangelight/pkg/hast"
	"github.com/yaklabco/rangelight/pkg/transform"
)

// Chroma is the default Engine, backed by the chroma lexer and style
// registries.
type Chroma struct{}

// Option configures engine construction.
type Option func(*Chroma)

// WithLexer registers a custom grammar in the lexer registry before the
// engine is used. Registration is a process-wide side effect.
func WithLexer(lexer chroma.Lexer) Option {
	return func(*Chroma) {
		lexers.Register(lexer)
	}
}

// WithStyle registers a custom theme in the style registry before the
// engine is used. Registration is a process-wide side effect.
func WithStyle(style *chroma.Style) Option {
	return func(*Chroma) {
		styles.Register(style)
	}
}

// NewChroma returns a Chroma engine with any custom grammars and themes
// registered.
func NewChroma(opts ...Option) *Chroma {
	engine := &Chroma{}
	for _, opt := range opts {
		opt(engine)
	}
	return engine
}

// Tokenize lexes code and groups the colored tokens by physical line.
func (e *Chroma) Tokenize(ctx context.Context, code, lang, theme string) ([][]Token, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	lexer := lexers.Get(lang)
	if lexer == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLanguage, lang)
	}
	lexer = chroma.Coalesce(lexer)

	// Unknown theme names fall back to chroma's default style.
	style := styles.Get(theme)

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return nil, fmt.Errorf("tokenize %q: %w", lang, err)
	}

	// The output is aligned to the physical line count: lexers may emit
	// a trailing synthetic newline, and blank lines carry no tokens.
	physical := strings.Split(code, "\n")
	lines := make([][]Token, len(physical))

	for i, lineTokens := range chroma.SplitTokensIntoLines(iterator.Tokens()) {
		if i >= len(lines) {
			break
		}
		for _, token := range lineTokens {
			content := strings.TrimSuffix(token.Value, "\n")
			if content == "" {
				continue
			}
			lines[i] = append(lines[i], Token{
				Content: content,
				Color:   tokenColor(style, token.Type),
			})
		}
	}

	return lines, nil
}

// Annotate tokenizes code, assembles the annotated tree with one line
// element per physical line, and applies every transformer to every line
// element in order.
func (e *Chroma) Annotate(ctx context.Context, code, lang, theme string, transformers []transform.Transformer) (root *hast.Node, err error) {
	lines, err := e.Tokenize(ctx, code, lang, theme)
	if err != nil {
		return nil, err
	}

	pre := hast.Element("pre")
	codeEl := hast.Element("code")
	pre.AppendChild(codeEl)

	lineEls := make([]*hast.Node, len(lines))
	for i, tokens := range lines {
		lineEl := hast.Element("span", hast.ClassLine)
		lineEl.SetAttr(hast.AttrLine, strconv.Itoa(i+1))
		for _, token := range tokens {
			span := hast.Element("span")
			if token.Color != "" {
				span.SetAttr("style", "color: "+token.Color)
			}
			span.AppendChild(hast.Text(token.Content))
			lineEl.AppendChild(span)
		}
		codeEl.AppendChild(lineEl)
		lineEls[i] = lineEl
	}

	// User transformers are arbitrary code; a panic is reported as the
	// annotation failure instead of taking the process down.
	defer func() {
		if r := recover(); r != nil {
			root = nil
			err = fmt.Errorf("transformer panic: %v", r)
		}
	}()

	for _, transformer := range transformers {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		for i, lineEl := range lineEls {
			if err := transformer.Transform(lineEl, i+1); err != nil {
				return nil, fmt.Errorf("transformer %s: line %d: %w", transformer.Name(), i+1, err)
			}
		}
	}

	return pre, nil
}

// tokenColor resolves the theme color for a token type. Token types the
// theme leaves uncolored return the empty string.
func tokenColor(style *chroma.Style, tokenType chroma.TokenType) string {
	entry := style.Get(tokenType)
	if !entry.Colour.IsSet() {
		return ""
	}
	return entry.Colour.String()
}
