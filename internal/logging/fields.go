// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldFiles      = "files"
	FieldInput      = "input"
	FieldOutput     = "output"
	FieldWorkingDir = "working_dir"

	// Configuration fields.
	FieldTheme  = "theme"
	FieldLang   = "lang"
	FieldFlavor = "flavor"
	FieldJobs   = "jobs"

	// Render fields.
	FieldBlock    = "block"
	FieldLines    = "lines"
	FieldTokens   = "tokens"
	FieldDuration = "duration"

	// Statistics fields.
	FieldFilesProcessed = "files_processed"
	FieldFilesFailed    = "files_failed"
	FieldBlocksRendered = "blocks_rendered"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
