package runner

import "github.com/yaklabco/rangelight/pkg/render"

// FileOutcome wraps a render result with resolved path metadata.
type FileOutcome struct {
	// Path is the absolute path of the input file.
	Path string

	// Lang is the language the file was rendered with, after detection.
	Lang string

	// Result contains the render result for this file.
	// Nil when the file could not be rendered.
	Result *render.Result

	// Error is set if the file could not be rendered.
	Error error
}

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesProcessed is the number of files successfully rendered.
	FilesProcessed int

	// FilesFailed is the number of files that could not be rendered.
	FilesFailed int

	// Lines is the total rendered line count across all files.
	Lines int

	// Tokens is the total token count across all files.
	Tokens int
}

// Result is the overall runner result.
type Result struct {
	// Files contains the outcome for each input file, in input order.
	Files []FileOutcome

	// Stats contains aggregate statistics for the run.
	Stats Stats
}

// HasFailures reports whether any file failed to render.
func (r *Result) HasFailures() bool {
	if r == nil {
		return false
	}
	return r.Stats.FilesFailed > 0
}

// accumulate updates the result with a file outcome.
func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil || outcome.Result == nil {
		r.Stats.FilesFailed++
		return
	}

	r.Stats.FilesProcessed++
	r.Stats.Lines += outcome.Result.Stats.Lines
	r.Stats.Tokens += outcome.Result.Stats.Tokens
}
