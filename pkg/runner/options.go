// Package runner provides multi-file render orchestration.
package runner

import "github.com/yaklabco/rangelight/pkg/render"

// Options controls a multi-file render run.
type Options struct {
	// Paths are the input files to render, in the order given.
	// Directories are rejected: inputs name the exact files to render.
	Paths []string

	// WorkingDir is the base directory used to resolve relative Paths.
	// If empty, the current process working directory is used.
	WorkingDir string

	// Jobs controls the maximum number of concurrent workers.
	// 0 or negative means "auto" (runtime.NumCPU()).
	Jobs int

	// Render carries the block options shared by every file. An empty or
	// "auto" Lang is resolved per file from the content. BlockID applies
	// only to single-file runs; multi-file runs derive one id per file
	// from the file name so outputs never share identifiers.
	Render render.Options
}
