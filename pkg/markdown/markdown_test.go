package markdown_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yuin/goldmark"

	"github.com/yaklabco/rangelight/pkg/markdown"
)

func renderDoc(t *testing.T, source string, opts ...markdown.Option) string {
	t.Helper()

	out, err := markdown.New(opts...).Render(context.Background(), []byte(source))
	require.NoError(t, err)
	return string(out)
}

func TestRenderDocument(t *testing.T) {
	t.Parallel()

	source := "# Title\n\nSome prose.\n\n```go\npackage main\n\nfunc main() {}\n```\n"

	out := renderDoc(t, source)

	assert.Contains(t, out, "<h1")
	assert.Contains(t, out, "Some prose.")
	assert.Contains(t, out, "<style>")
	assert.Contains(t, out, `<pre id="`)
	assert.Contains(t, out, `class="rangelight"`)
	assert.Contains(t, out, "::highlight(")
	assert.Contains(t, out, "</script>")
}

func TestRenderUntaggedFenceDetectsLanguage(t *testing.T) {
	t.Parallel()

	source := "```\npackage main\n\nfunc main() {}\n```\n"

	out := renderDoc(t, source)

	assert.Contains(t, out, `<pre id="`)
	assert.NotContains(t, out, "<pre><code>")
}

func TestRenderFenceDirectives(t *testing.T) {
	t.Parallel()

	source := "```go {1} numbers=5\nx := 1\ny := 2\n```\n"

	out := renderDoc(t, source)

	assert.Contains(t, out, `class="line highlighted"`)
	assert.Contains(t, out, `<span class="line-number">5</span>`)
	assert.Contains(t, out, `<span class="line-number">6</span>`)
}

func TestRenderFenceFocusAndDiff(t *testing.T) {
	t.Parallel()

	source := "```go focus=1 add=2\nx := 1\ny := 2\n```\n"

	out := renderDoc(t, source)

	assert.Contains(t, out, "blurred")
	assert.Contains(t, out, `class="diff-marker"`)
}

func TestRenderUnknownLanguageFallsBack(t *testing.T) {
	t.Parallel()

	source := "```qzxnotalang\na & b\n```\n"

	out := renderDoc(t, source)

	assert.Contains(t, out, "<pre><code>a &amp; b</code></pre>")
	assert.NotContains(t, out, "<style>")
}

func TestRenderFlavorGFM(t *testing.T) {
	t.Parallel()

	source := "| a | b |\n|---|---|\n| 1 | 2 |\n"

	plain := renderDoc(t, source)
	gfm := renderDoc(t, source, markdown.WithFlavor(markdown.FlavorGFM))

	assert.NotContains(t, plain, "<table>")
	assert.Contains(t, gfm, "<table>")
}

func TestRenderBlockPrefix(t *testing.T) {
	t.Parallel()

	source := "```go\nx := 1\n```\n\n```go\ny := 2\n```\n"

	out := renderDoc(t, source, markdown.WithBlockPrefix("doc"))

	assert.Contains(t, out, `id="doc-1"`)
	assert.Contains(t, out, `id="doc-2"`)
}

func TestRenderDropsFenceTerminatorNewline(t *testing.T) {
	t.Parallel()

	source := "```go\nx := 1\ny := 2\n```\n"

	out := renderDoc(t, source, markdown.WithBlockPrefix("t"))

	assert.Contains(t, out, `id="t-1-L0"`)
	assert.Contains(t, out, `id="t-1-L1"`)
	assert.NotContains(t, out, `id="t-1-L2"`)
}

func TestRenderDocumentLineNumbersApplyToAllBlocks(t *testing.T) {
	t.Parallel()

	source := "```go\nx := 1\n```\n\n```go\ny := 2\n```\n"

	out := renderDoc(t, source, markdown.WithLineNumbers(true), markdown.WithNumberStart(3))

	assert.Equal(t, 2, strings.Count(out, `<span class="line-number">3</span>`))
}

func TestRenderCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := markdown.New().Render(ctx, []byte("# hi\n"))

	assert.ErrorIs(t, err, context.Canceled)
}

func TestFlavorFallsBackToCommonMark(t *testing.T) {
	t.Parallel()

	assert.Equal(t, markdown.FlavorCommonMark, markdown.New(markdown.WithFlavor("bogus")).Flavor())
	assert.Equal(t, markdown.FlavorGFM, markdown.New(markdown.WithFlavor(markdown.FlavorGFM)).Flavor())
}

func TestHighlightingExtendsExistingPipeline(t *testing.T) {
	t.Parallel()

	md := goldmark.New(goldmark.WithExtensions(
		markdown.NewHighlighting(markdown.WithBlockPrefix("x")),
	))

	var sb strings.Builder
	err := md.Convert([]byte("```go\nx := 1\n```\n"), &sb)
	require.NoError(t, err)

	out := sb.String()
	assert.Contains(t, out, "<style>")
	assert.Contains(t, out, `id="x-1"`)
}
