package render

import (
	"unicode/utf16"

	"github.com/yaklabco/rangelight/pkg/engine"
)

// colorRange is one contiguous colored span within a line. Offsets are
// counted in UTF-16 code units over the raw (unescaped) token content,
// the unit the browser consumer resolves against live text nodes; markup
// escaping never shifts them.
type colorRange struct {
	line  int
	start int
	end   int
	color string
}

// collectRanges flattens the line-grouped token stream into color ranges
// plus the distinct colors in first-seen order. The running offset resets
// per line; uncolored tokens advance it without contributing a range.
func collectRanges(lines [][]engine.Token) ([]colorRange, []string) {
	var ranges []colorRange
	var colors []string
	seen := make(map[string]struct{})

	for i, tokens := range lines {
		offset := 0
		for _, token := range tokens {
			width := utf16Length(token.Content)
			if token.Color != "" && width > 0 {
				if _, ok := seen[token.Color]; !ok {
					seen[token.Color] = struct{}{}
					colors = append(colors, token.Color)
				}
				ranges = append(ranges, colorRange{
					line:  i + 1,
					start: offset,
					end:   offset + width,
					color: token.Color,
				})
			}
			offset += width
		}
	}

	return ranges, colors
}

// utf16Length returns the length of s in UTF-16 code units.
func utf16Length(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}
