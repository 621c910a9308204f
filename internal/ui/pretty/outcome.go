package pretty

import (
	"fmt"

	"github.com/yaklabco/rangelight/pkg/runner"
)

// FormatOutcome formats a single file outcome for terminal output.
// output names the artifact the file was written to; empty when the
// result went to stdout.
func (s *Styles) FormatOutcome(outcome runner.FileOutcome, output string) string {
	if outcome.Error != nil {
		return fmt.Sprintf("  %s  %s  %s\n",
			s.FilePath.Render(outcome.Path),
			s.Error.Render("error"),
			outcome.Error.Error(),
		)
	}

	line := fmt.Sprintf("  %s  %s  %s",
		s.FilePath.Render(outcome.Path),
		s.Lang.Render("["+outcome.Lang+"]"),
		s.Dim.Render(fmt.Sprintf("%d lines", outcome.Result.Stats.Lines)),
	)

	if output != "" {
		line += "  " + s.Output.Render("-> "+output)
	}

	return line + "\n"
}
