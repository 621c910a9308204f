package markdown

import (
	"context"
	"fmt"
	"html"
	"strings"
	"sync/atomic"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/util"

	"github.com/yaklabco/rangelight/pkg/langdetect"
	"github.com/yaklabco/rangelight/pkg/render"
)

// codeBlockRenderer replaces goldmark's fenced-code-block output with
// the pipeline artifacts for the block.
type codeBlockRenderer struct {
	cfg config
	// Node renderer funcs carry no context, so the conversion context
	// rides on the renderer instance.
	ctx context.Context
	seq atomic.Uint64
}

// RegisterFuncs registers the renderer for fenced code blocks.
func (r *codeBlockRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(ast.KindFencedCodeBlock, r.renderFencedCodeBlock)
}

func (r *codeBlockRenderer) renderFencedCodeBlock(
	w util.BufWriter, source []byte, node ast.Node, entering bool,
) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}

	n := node.(*ast.FencedCodeBlock) //nolint:forcetypeassert // registered for this kind only

	var info string
	if n.Info != nil {
		info = string(n.Info.Segment.Value(source))
	}
	code := blockSource(n, source)

	directives := parseFenceInfo(info)
	if directives.lang == "" {
		directives.lang = langdetect.DetectString(code)
	}

	opts := render.Options{
		Lang:          directives.lang,
		Theme:         r.cfg.theme,
		LineNumbers:   r.cfg.lineNumbers || directives.numbers,
		NumberStart:   directives.numberStart,
		HighlightSpec: directives.highlight,
		FocusLines:    directives.focus,
		DiffAdded:     directives.added,
		DiffRemoved:   directives.removed,
	}
	if opts.NumberStart == 0 {
		opts.NumberStart = r.cfg.numberStart
	}
	if r.cfg.blockPrefix != "" {
		opts.BlockID = fmt.Sprintf("%s-%d", r.cfg.blockPrefix, r.seq.Add(1))
	}

	result, err := r.cfg.renderer.Render(r.ctx, code, opts)
	if err != nil {
		// An unrenderable block degrades to plain escaped output so
		// the rest of the document still converts.
		writeEscapedBlock(w, code)
		return ast.WalkContinue, nil
	}

	_, _ = w.WriteString("<style>\n")
	_, _ = w.WriteString(result.CSS)
	_, _ = w.WriteString("</style>\n")
	_, _ = w.WriteString(result.HTML)
	_, _ = w.WriteString("\n<script>\n")
	_, _ = w.WriteString(result.Script)
	_, _ = w.WriteString("</script>\n")

	return ast.WalkContinue, nil
}

// blockSource joins the fence's line segments, dropping the final
// newline that terminates the fence.
func blockSource(n *ast.FencedCodeBlock, source []byte) string {
	var sb strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		sb.Write(seg.Value(source))
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

func writeEscapedBlock(w util.BufWriter, code string) {
	_, _ = w.WriteString("<pre><code>")
	_, _ = w.WriteString(html.EscapeString(code))
	_, _ = w.WriteString("</code></pre>\n")
}
