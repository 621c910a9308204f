package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/rangelight/pkg/runner"
)

const (
	summaryDividerWidth = 40
	wordFile            = "file"
	wordFiles           = "files"
)

// FormatSummaryOneLine formats run statistics as a single line.
// Example: "Rendered 3 files (182 lines, 1204 tokens), 1 failed".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats) string {
	if stats.FilesProcessed == 0 && stats.FilesFailed == 0 {
		return s.Dim.Render("No files rendered") + "\n"
	}

	fileWord := wordFiles
	if stats.FilesProcessed == 1 {
		fileWord = wordFile
	}

	msg := s.Success.Render(fmt.Sprintf("Rendered %d %s", stats.FilesProcessed, fileWord)) +
		s.Dim.Render(fmt.Sprintf(" (%d lines, %d tokens)", stats.Lines, stats.Tokens))

	if stats.FilesFailed > 0 {
		msg += ", " + s.Failure.Render(fmt.Sprintf("%d failed", stats.FilesFailed))
	}

	return msg + "\n"
}

// FormatSummary formats run statistics as a summary block.
func (s *Styles) FormatSummary(stats runner.Stats) string {
	var builder strings.Builder

	builder.WriteString("\n")
	builder.WriteString(s.SummaryTitle.Render("Summary"))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("-", summaryDividerWidth))
	builder.WriteString("\n")

	// Files
	builder.WriteString("  Files rendered:    " +
		s.SummaryValue.Render(strconv.Itoa(stats.FilesProcessed)) + "\n")

	if stats.FilesFailed > 0 {
		builder.WriteString("  Files failed:      " +
			s.Failure.Render(strconv.Itoa(stats.FilesFailed)) + "\n")
	}

	builder.WriteString("\n")

	// Output volume
	builder.WriteString("  Lines:             " +
		s.SummaryValue.Render(strconv.Itoa(stats.Lines)) + "\n")
	builder.WriteString("  Tokens:            " +
		s.SummaryValue.Render(strconv.Itoa(stats.Tokens)) + "\n")

	builder.WriteString("\n")

	// Overall status
	if stats.FilesFailed > 0 {
		builder.WriteString(s.Failure.Render("Render completed with failures"))
	} else {
		builder.WriteString(s.Success.Render("Render complete"))
	}
	builder.WriteString("\n")

	return builder.String()
}
