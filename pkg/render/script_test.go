package render_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/rangelight/pkg/engine"
	"github.com/yaklabco/rangelight/pkg/render"
)

// scriptData mirrors the embedded payload of the range script.
type scriptData struct {
	BlockID string `json:"blockId"`
	Groups  []struct {
		Name   string   `json:"name"`
		Color  string   `json:"color"`
		Ranges [][3]int `json:"ranges"`
	} `json:"groups"`
}

func decodeScript(t *testing.T, script string) scriptData {
	t.Helper()

	_, after, ok := strings.Cut(script, "const data = ")
	require.True(t, ok, "script carries no data payload")
	raw, _, ok := strings.Cut(after, ";\n")
	require.True(t, ok)

	var data scriptData
	require.NoError(t, json.Unmarshal([]byte(raw), &data))
	return data
}

func TestRangeScriptPayload(t *testing.T) {
	lines := [][]engine.Token{
		{tok("ab", "#ff0000"), tok(" ", ""), tok("cd", "#0000ff")},
		{tok("x", "#ff0000")},
	}

	data := decodeScript(t, render.RangeScript(lines, "b1"))

	assert.Equal(t, "b1", data.BlockID)
	require.Len(t, data.Groups, 2)

	red := data.Groups[0]
	assert.Equal(t, "b1-c0", red.Name)
	assert.Equal(t, "#ff0000", red.Color)
	assert.Equal(t, [][3]int{{1, 0, 2}, {2, 0, 1}}, red.Ranges)

	blue := data.Groups[1]
	assert.Equal(t, "b1-c1", blue.Name)
	assert.Equal(t, "#0000ff", blue.Color)
	assert.Equal(t, [][3]int{{1, 3, 5}}, blue.Ranges)
}

func TestRangeScriptOffsetsResetPerLine(t *testing.T) {
	lines := [][]engine.Token{
		{tok("aaaa", "#111111")},
		{tok("bb", "#111111")},
	}

	data := decodeScript(t, render.RangeScript(lines, "b1"))

	require.Len(t, data.Groups, 1)
	assert.Equal(t, [][3]int{{1, 0, 4}, {2, 0, 2}}, data.Groups[0].Ranges)
}

func TestRangeScriptUTF16Offsets(t *testing.T) {
	// U+1D400 needs two UTF-16 code units, the arrow needs one.
	lines := [][]engine.Token{
		{tok("\U0001D400", "#111111"), tok("→", "#222222"), tok("b", "#333333")},
	}

	data := decodeScript(t, render.RangeScript(lines, "b1"))

	require.Len(t, data.Groups, 3)
	assert.Equal(t, [][3]int{{1, 0, 2}}, data.Groups[0].Ranges)
	assert.Equal(t, [][3]int{{1, 2, 3}}, data.Groups[1].Ranges)
	assert.Equal(t, [][3]int{{1, 3, 4}}, data.Groups[2].Ranges)
}

func TestRangeScriptEmptyStream(t *testing.T) {
	script := render.RangeScript(nil, "b1")

	data := decodeScript(t, script)
	assert.Equal(t, "b1", data.BlockID)
	assert.Empty(t, data.Groups)
}

func TestRangeScriptClientRoutine(t *testing.T) {
	script := render.RangeScript([][]engine.Token{{tok("a", "#fff")}}, "b1")

	assert.Contains(t, script, `typeof CSS === "undefined"`)
	assert.Contains(t, script, "CSS.highlights.set(group.name, new Highlight(...ranges))")
	assert.Contains(t, script, `data.blockId + "-L" + (lineNo - 1)`)
	assert.Contains(t, script, "text.length")
	assert.True(t, strings.HasPrefix(script, "(function () {"))
	assert.True(t, strings.HasSuffix(script, "})();\n"))
}
