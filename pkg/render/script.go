package render

import (
	"encoding/json"
	"strings"

	"github.com/yaklabco/rangelight/pkg/engine"
)

// scriptGroup is one color's registration payload. Ranges are
// [line, start, end] triples; offsets are UTF-16 code units.
type scriptGroup struct {
	Name   string   `json:"name"`
	Color  string   `json:"color"`
	Ranges [][3]int `json:"ranges"`
}

// scriptPayload is the embedded data contract of the range script.
type scriptPayload struct {
	BlockID string        `json:"blockId"`
	Groups  []scriptGroup `json:"groups"`
}

// rangeScriptBody is the fixed client-side routine: it resolves each
// range against the line's content text node, drops ranges that no
// longer fit the live text, and registers one highlight group per color.
const rangeScriptBody = `  if (typeof CSS === "undefined" || !CSS.highlights) {
    return;
  }
  for (const group of data.groups) {
    const ranges = [];
    for (const [lineNo, start, end] of group.ranges) {
      const line = document.getElementById(data.blockId + "-L" + (lineNo - 1));
      const content = line ? line.querySelector(".content") : null;
      const text = content ? content.firstChild : null;
      if (!text || text.nodeType !== 3 || start > text.length || end > text.length) {
        continue;
      }
      const range = new Range();
      range.setStart(text, start);
      range.setEnd(text, end);
      ranges.push(range);
    }
    if (ranges.length > 0) {
      CSS.highlights.set(group.name, new Highlight(...ranges));
    }
  }
`

// RangeScript serializes the token color ranges of a block as a
// self-contained registration script. The generator only serializes the
// data contract; all DOM work happens in the embedded routine at the
// consuming end.
func RangeScript(lines [][]engine.Token, blockID string) string {
	ranges, colors := collectRanges(lines)

	groups := make([]scriptGroup, len(colors))
	index := make(map[string]int, len(colors))
	for i, color := range colors {
		groups[i] = scriptGroup{Name: highlightName(blockID, i), Color: color}
		index[color] = i
	}
	for _, r := range ranges {
		i := index[r.color]
		groups[i].Ranges = append(groups[i].Ranges, [3]int{r.line, r.start, r.end})
	}

	payload, err := json.Marshal(scriptPayload{BlockID: blockID, Groups: groups})
	if err != nil {
		// Ints and strings cannot fail to marshal; keep the script inert
		// if they somehow do.
		payload = []byte(`{"blockId":"","groups":[]}`)
	}

	var b strings.Builder
	b.WriteString("(function () {\n  const data = ")
	b.Write(payload)
	b.WriteString(";\n")
	b.WriteString(rangeScriptBody)
	b.WriteString("})();\n")
	return b.String()
}
