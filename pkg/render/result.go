package render

import (
	"strings"

	"github.com/yaklabco/rangelight/pkg/engine"
)

// Result is the output of one render call.
type Result struct {
	// HTML is the per-line markup for the block.
	HTML string

	// CSS is the block-scoped stylesheet: one highlight-color rule per
	// distinct token color plus the feature rule groups in effect.
	CSS string

	// Script registers the token color ranges with the browser's
	// highlight registry.
	Script string

	// Stats summarizes the render.
	Stats Stats

	// BlockID is the identifier all three outputs are scoped to. Useful
	// to callers when it was auto-generated.
	BlockID string
}

// Stats summarizes one render call.
type Stats struct {
	// Tokens is the number of non-empty tokens in the flattened stream.
	Tokens int

	// Lines is the physical line count of the source, which equals the
	// rendered line-element count.
	Lines int

	// UniqueStyles is the number of distinct color values seen.
	UniqueStyles int
}

// collectStats derives the stats for code and its token stream.
func collectStats(code string, lines [][]engine.Token) Stats {
	stats := Stats{Lines: len(strings.Split(code, "\n"))}

	colors := make(map[string]struct{})
	for _, tokens := range lines {
		for _, token := range tokens {
			if token.Content == "" {
				continue
			}
			stats.Tokens++
			if token.Color != "" {
				colors[token.Color] = struct{}{}
			}
		}
	}
	stats.UniqueStyles = len(colors)

	return stats
}
