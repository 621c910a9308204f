package render_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/rangelight/pkg/engine"
	"github.com/yaklabco/rangelight/pkg/linemeta"
	"github.com/yaklabco/rangelight/pkg/lineset"
	"github.com/yaklabco/rangelight/pkg/render"
)

func tok(content, color string) engine.Token {
	return engine.Token{Content: content, Color: color}
}

func TestStylesheetColorRulesFirstSeenOrder(t *testing.T) {
	lines := [][]engine.Token{
		{tok("a", "#bbbbbb"), tok("b", "#aaaaaa")},
		{tok("c", "#bbbbbb")},
	}

	css := render.Stylesheet(lines, "b1", nil)

	first := "::highlight(b1-c0) { color: #bbbbbb; }"
	second := "::highlight(b1-c1) { color: #aaaaaa; }"
	assert.Contains(t, css, first)
	assert.Contains(t, css, second)
	assert.Less(t, strings.Index(css, first), strings.Index(css, second))
	assert.Equal(t, 2, strings.Count(css, "::highlight("))
}

func TestStylesheetUncoloredTokensGetNoRule(t *testing.T) {
	lines := [][]engine.Token{{tok("plain", "")}}

	css := render.Stylesheet(lines, "b1", nil)

	assert.NotContains(t, css, "::highlight(")
}

func TestStylesheetBaseGroupAlwaysPresent(t *testing.T) {
	css := render.Stylesheet(nil, "b1", nil)

	assert.Contains(t, css, "#b1 {")
	assert.Contains(t, css, "#b1 .line {")
}

func TestStylesheetFastPathHasNoFeatureGroups(t *testing.T) {
	css := render.Stylesheet([][]engine.Token{{tok("a", "#fff")}}, "b1", nil)

	for _, feature := range []string{"highlighted", ".diff", "blurred", "line-number", "diff-marker"} {
		assert.NotContains(t, css, feature)
	}
}

func TestStylesheetGatedGroups(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(m *linemeta.Metadata)
		present []string
		absent  []string
	}{
		{
			name:    "empty metadata emits no feature groups",
			mutate:  nil,
			absent:  []string{"highlighted", ".diff.", "blurred", "line-number"},
			present: nil,
		},
		{
			name:    "highlighted gate",
			mutate:  func(m *linemeta.Metadata) { m.Highlighted = lineset.Of(1) },
			present: []string{".line.highlighted"},
			absent:  []string{".diff.", "blurred", "line-number"},
		},
		{
			name:    "diff added gate",
			mutate:  func(m *linemeta.Metadata) { m.DiffAdded = lineset.Of(1) },
			present: []string{".line.diff.add", ".diff-marker"},
			absent:  []string{".line.diff.remove", "blurred", "highlighted"},
		},
		{
			name:    "diff removed gate",
			mutate:  func(m *linemeta.Metadata) { m.DiffRemoved = lineset.Of(2) },
			present: []string{".line.diff.remove", ".diff-marker"},
			absent:  []string{".line.diff.add", "blurred"},
		},
		{
			name:    "focus gate",
			mutate:  func(m *linemeta.Metadata) { m.Focused = lineset.Of(1) },
			present: []string{".line.blurred", ":hover .line.blurred"},
			absent:  []string{"highlighted", ".diff."},
		},
		{
			name:    "numbering gate",
			mutate:  func(m *linemeta.Metadata) { m.Numbering = &linemeta.Numbering{Start: 1} },
			present: []string{".line-number"},
			absent:  []string{"highlighted", "blurred"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			css := render.Stylesheet(nil, "b1", metaWith(tt.mutate))
			for _, want := range tt.present {
				assert.Contains(t, css, want)
			}
			for _, unwanted := range tt.absent {
				assert.NotContains(t, css, unwanted)
			}
		})
	}
}

func TestStylesheetBlurRulesAfterDiffRules(t *testing.T) {
	meta := metaWith(func(m *linemeta.Metadata) {
		m.DiffAdded = lineset.Of(1)
		m.DiffRemoved = lineset.Of(2)
		m.Focused = lineset.Of(3)
	})

	css := render.Stylesheet(nil, "b1", meta)

	diffIdx := strings.Index(css, ".line.diff.add")
	blurIdx := strings.Index(css, ".line.blurred")
	require.NotEqual(t, -1, diffIdx)
	require.NotEqual(t, -1, blurIdx)
	assert.Greater(t, blurIdx, diffIdx, "blur rules must win the cascade over diff rules")
}

func TestStylesheetScopedToBlock(t *testing.T) {
	meta := metaWith(func(m *linemeta.Metadata) {
		m.Highlighted = lineset.Of(1)
	})

	css := render.Stylesheet([][]engine.Token{{tok("a", "#fff")}}, "scope42", meta)

	for _, line := range strings.Split(strings.TrimSpace(css), "\n") {
		ok := strings.HasPrefix(line, "#scope42") || strings.HasPrefix(line, "::highlight(scope42-")
		assert.True(t, ok, "rule not scoped to block: %q", line)
	}
}
