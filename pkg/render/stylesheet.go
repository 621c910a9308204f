package render

import (
	"fmt"
	"strings"

	"github.com/yaklabco/rangelight/pkg/engine"
	"github.com/yaklabco/rangelight/pkg/linemeta"
)

// Rule groups are fixed templates; the only data-driven part of the
// stylesheet is which groups are present. %[1]s receives the block id.
const (
	baseRules = `#%[1]s { margin: 0; padding: 0.75rem 1rem; overflow-x: auto; }
#%[1]s code { display: block; }
#%[1]s .line { display: inline; }
`

	highlightRules = `#%[1]s .line.highlighted { display: inline-block; width: 100%%; background-color: rgba(101, 117, 133, 0.18); }
`

	diffAddRules = `#%[1]s .line.diff.add { display: inline-block; width: 100%%; background-color: rgba(46, 160, 67, 0.16); }
`

	diffRemoveRules = `#%[1]s .line.diff.remove { display: inline-block; width: 100%%; background-color: rgba(248, 81, 73, 0.16); }
`

	diffMarkerRules = `#%[1]s .diff-marker { display: inline-block; width: 1.5ch; user-select: none; opacity: 0.75; }
`

	lineNumberRules = `#%[1]s .line-number { display: inline-block; width: 3ch; margin-right: 1.5ch; text-align: right; user-select: none; opacity: 0.45; }
`

	blurRules = `#%[1]s .line.blurred { filter: blur(0.095rem); opacity: 0.55; transition: filter 0.25s, opacity 0.25s; }
#%[1]s:hover .line.blurred { filter: none; opacity: 1; }
`
)

// Stylesheet emits the block-scoped CSS: one highlight-color rule per
// distinct token color (first-seen order), the base layout group, and the
// feature groups gated on non-empty metadata. Blur rules are emitted
// after the diff rules so blur wins the cascade on lines carrying both.
func Stylesheet(lines [][]engine.Token, blockID string, meta *linemeta.Metadata) string {
	_, colors := collectRanges(lines)

	var b strings.Builder

	for i, color := range colors {
		fmt.Fprintf(&b, "::highlight(%s) { color: %s; }\n", highlightName(blockID, i), color)
	}

	writeRuleGroup(&b, baseRules, blockID)

	if meta == nil {
		return b.String()
	}

	if meta.Highlighted.Len() > 0 {
		writeRuleGroup(&b, highlightRules, blockID)
	}
	if meta.DiffAdded.Len() > 0 {
		writeRuleGroup(&b, diffAddRules, blockID)
	}
	if meta.DiffRemoved.Len() > 0 {
		writeRuleGroup(&b, diffRemoveRules, blockID)
	}
	if meta.DiffAdded.Len() > 0 || meta.DiffRemoved.Len() > 0 {
		writeRuleGroup(&b, diffMarkerRules, blockID)
	}
	if meta.Numbering != nil {
		writeRuleGroup(&b, lineNumberRules, blockID)
	}
	if meta.FocusActive() {
		writeRuleGroup(&b, blurRules, blockID)
	}

	return b.String()
}

// highlightName is the synthetic highlight identifier for the i-th
// distinct color of a block.
func highlightName(blockID string, i int) string {
	return fmt.Sprintf("%s-c%d", blockID, i)
}

func writeRuleGroup(b *strings.Builder, group, blockID string) {
	fmt.Fprintf(b, group, blockID)
}
