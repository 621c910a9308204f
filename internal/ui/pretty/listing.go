package pretty

import (
	"fmt"
	"strings"
)

// Listing layout constants.
const (
	listIndent     = "  "
	listPadding    = 2
	minColumnWidth = 8
)

// FormatListing lays out names row by row in columns sized to the longest
// name, under a styled header and with a count footer. Names render in
// the order given.
func (s *Styles) FormatListing(title string, names []string, termWidth int) string {
	var builder strings.Builder

	builder.WriteString(s.ListHeader.Render(title))
	builder.WriteString("\n")
	builder.WriteString(s.ListSeparator.Render(strings.Repeat("-", len(title))))
	builder.WriteString("\n")

	if len(names) == 0 {
		builder.WriteString(s.Dim.Render(listIndent + "(none)"))
		builder.WriteString("\n")
		return builder.String()
	}

	if termWidth <= 0 {
		termWidth = DefaultTermWidth
	}

	colWidth := minColumnWidth
	for _, name := range names {
		if len(name)+listPadding > colWidth {
			colWidth = len(name) + listPadding
		}
	}

	cols := max((termWidth-len(listIndent))/colWidth, 1)

	for i := 0; i < len(names); i += cols {
		end := min(i+cols, len(names))
		builder.WriteString(listIndent)
		for j := i; j < end; j++ {
			if j == end-1 {
				builder.WriteString(names[j])
			} else {
				builder.WriteString(fmt.Sprintf("%-*s", colWidth, names[j]))
			}
		}
		builder.WriteString("\n")
	}

	builder.WriteString("\n")
	builder.WriteString(s.Dim.Render(fmt.Sprintf("%d total", len(names))))
	builder.WriteString("\n")

	return builder.String()
}
