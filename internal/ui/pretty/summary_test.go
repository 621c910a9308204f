package pretty_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/rangelight/internal/ui/pretty"
	"github.com/yaklabco/rangelight/pkg/render"
	"github.com/yaklabco/rangelight/pkg/runner"
)

func TestFormatSummary_Basic(t *testing.T) {
	styles := pretty.NewStyles(false)

	stats := runner.Stats{
		FilesProcessed: 10,
		Lines:          240,
		Tokens:         1800,
	}

	result := styles.FormatSummary(stats)

	assert.Contains(t, result, "Summary")
	assert.Contains(t, result, "Files rendered:")
	assert.Contains(t, result, "10")
	assert.Contains(t, result, "Lines:")
	assert.Contains(t, result, "240")
	assert.Contains(t, result, "Tokens:")
	assert.Contains(t, result, "1800")
}

func TestFormatSummary_Clean(t *testing.T) {
	styles := pretty.NewStyles(false)

	stats := runner.Stats{FilesProcessed: 5, Lines: 50, Tokens: 300}

	result := styles.FormatSummary(stats)

	assert.Contains(t, result, "Render complete")
	assert.NotContains(t, result, "Files failed:")
}

func TestFormatSummary_WithFailures(t *testing.T) {
	styles := pretty.NewStyles(false)

	stats := runner.Stats{
		FilesProcessed: 8,
		FilesFailed:    2,
		Lines:          100,
		Tokens:         700,
	}

	result := styles.FormatSummary(stats)

	assert.Contains(t, result, "Files failed:")
	assert.Contains(t, result, "2")
	assert.Contains(t, result, "Render completed with failures")
}

func TestFormatSummaryOneLine_Clean(t *testing.T) {
	styles := pretty.NewStyles(false)

	stats := runner.Stats{
		FilesProcessed: 5,
		Lines:          120,
		Tokens:         900,
	}

	result := styles.FormatSummaryOneLine(stats)

	assert.Contains(t, result, "Rendered 5 files")
	assert.Contains(t, result, "120 lines")
	assert.Contains(t, result, "900 tokens")
	assert.NotContains(t, result, "failed")
}

func TestFormatSummaryOneLine_SingleFile(t *testing.T) {
	styles := pretty.NewStyles(false)

	stats := runner.Stats{
		FilesProcessed: 1,
		Lines:          12,
		Tokens:         80,
	}

	result := styles.FormatSummaryOneLine(stats)

	assert.Contains(t, result, "Rendered 1 file")
	assert.NotContains(t, result, "1 files")
}

func TestFormatSummaryOneLine_WithFailures(t *testing.T) {
	styles := pretty.NewStyles(false)

	stats := runner.Stats{
		FilesProcessed: 3,
		FilesFailed:    1,
		Lines:          60,
		Tokens:         400,
	}

	result := styles.FormatSummaryOneLine(stats)

	assert.Contains(t, result, "Rendered 3 files")
	assert.Contains(t, result, "1 failed")
}

func TestFormatSummaryOneLine_Empty(t *testing.T) {
	styles := pretty.NewStyles(false)

	result := styles.FormatSummaryOneLine(runner.Stats{})

	assert.Contains(t, result, "No files rendered")
}

func TestFormatOutcome_Success(t *testing.T) {
	styles := pretty.NewStyles(false)

	outcome := runner.FileOutcome{
		Path: "src/main.go",
		Lang: "go",
		Result: &render.Result{
			Stats:   render.Stats{Lines: 42, Tokens: 300},
			BlockID: "main",
		},
	}

	result := styles.FormatOutcome(outcome, "dist/main.html")

	assert.Contains(t, result, "src/main.go")
	assert.Contains(t, result, "[go]")
	assert.Contains(t, result, "42 lines")
	assert.Contains(t, result, "-> dist/main.html")
}

func TestFormatOutcome_NoOutputPath(t *testing.T) {
	styles := pretty.NewStyles(false)

	outcome := runner.FileOutcome{
		Path:   "main.go",
		Lang:   "go",
		Result: &render.Result{Stats: render.Stats{Lines: 1}},
	}

	result := styles.FormatOutcome(outcome, "")

	assert.NotContains(t, result, "->")
}

func TestFormatOutcome_Error(t *testing.T) {
	styles := pretty.NewStyles(false)

	outcome := runner.FileOutcome{
		Path:  "broken.xyz",
		Error: errors.New("unknown language \"xyz\""),
	}

	result := styles.FormatOutcome(outcome, "")

	assert.Contains(t, result, "broken.xyz")
	assert.Contains(t, result, "error")
	assert.Contains(t, result, "unknown language")
}
