package render

import (
	"slices"
	"strconv"
	"strings"

	"github.com/yaklabco/rangelight/pkg/hast"
	"github.com/yaklabco/rangelight/pkg/linemeta"
)

// htmlEscaper rewrites the five characters with markup significance.
//
//nolint:gochecknoglobals // shared replacer, stateless
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// escapeHTML escapes text for embedding in element content or a
// double-quoted attribute value.
func escapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

// Markup renders the per-line HTML for source: one line element per
// physical line, split on "\n" with trailing empty lines preserved
// ("a\n" renders two lines). meta carries the line features and may be
// nil for the fast path. Every line element gets the id
// "{blockID}-L{zeroBasedIndex}".
func Markup(source, blockID string, meta *linemeta.Metadata) string {
	lines := strings.Split(source, "\n")

	var b strings.Builder
	b.WriteString(`<pre id="`)
	b.WriteString(escapeHTML(blockID))
	b.WriteString(`" class="rangelight"><code>`)

	for i, text := range lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		writeLine(&b, blockID, i, text, meta)
	}

	b.WriteString("</code></pre>")
	return b.String()
}

// writeLine emits one line element: optional diff marker, optional line
// number, then the escaped text in a content leaf.
func writeLine(b *strings.Builder, blockID string, index int, text string, meta *linemeta.Metadata) {
	number := index + 1

	b.WriteString(`<span id="`)
	b.WriteString(escapeHTML(blockID))
	b.WriteString("-L")
	b.WriteString(strconv.Itoa(index))
	b.WriteString(`" class="`)
	b.WriteString(escapeHTML(strings.Join(lineClasses(number, meta), " ")))
	b.WriteString(`">`)

	if meta != nil {
		// A line in both diff sets renders the added marker only.
		switch {
		case meta.DiffAdded.Has(number):
			b.WriteString(`<span class="diff-marker">+</span>`)
		case meta.DiffRemoved.Has(number):
			b.WriteString(`<span class="diff-marker">-</span>`)
		}

		if meta.Numbering != nil {
			b.WriteString(`<span class="line-number">`)
			b.WriteString(strconv.Itoa(meta.Numbering.Start + index))
			b.WriteString(`</span>`)
		}
	}

	b.WriteString(`<span class="content">`)
	b.WriteString(escapeHTML(text))
	b.WriteString(`</span></span>`)
}

// lineClasses resolves the rendered class list for a line: the extracted
// classes when present, the base class alone otherwise. The base class is
// force-inserted when a metadata list lacks it, and blurred is appended
// when focus is active and the line is unfocused.
func lineClasses(number int, meta *linemeta.Metadata) []string {
	if meta == nil {
		return []string{hast.ClassLine}
	}

	var classes []string
	if extracted, ok := meta.Classes[number]; ok {
		classes = append(classes, extracted...)
		if !slices.Contains(classes, hast.ClassLine) {
			classes = append([]string{hast.ClassLine}, classes...)
		}
	} else {
		classes = []string{hast.ClassLine}
	}

	if meta.FocusActive() && !meta.Focused.Has(number) {
		classes = append(classes, hast.ClassBlurred)
	}

	return classes
}
