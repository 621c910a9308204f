package cli

import "github.com/yaklabco/rangelight/pkg/runner"

// Exit codes for rangelight.
const (
	// ExitSuccess indicates successful execution with every input rendered.
	ExitSuccess = 0

	// ExitRenderErrors indicates the run completed but some inputs failed.
	ExitRenderErrors = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ExitCodeFromResult determines the exit code for a run result.
func ExitCodeFromResult(result *runner.Result) int {
	if result == nil {
		return ExitSuccess
	}

	if result.Stats.FilesFailed > 0 {
		return ExitRenderErrors
	}

	return ExitSuccess
}
