// Package linemeta defines the canonical per-line metadata derived from
// an annotated tree. It is the shared data contract between the
// extractor and the output generators: engine-independent, built fresh
// per render call, never cached.
package linemeta

import "github.com/yaklabco/rangelight/pkg/lineset"

// Numbering is the line-number column state for a block.
type Numbering struct {
	// Start is the number rendered for the first physical line.
	Start int
}

// Metadata records all line-level feature state for one render call.
// Line numbers are 1-based physical line indices.
type Metadata struct {
	// Numbering is nil when numbering is off or was cancelled by an
	// invalid payload.
	Numbering *Numbering

	// Highlighted, DiffAdded, DiffRemoved, and Focused hold the lines
	// carrying the corresponding markers. A line may legally sit in both
	// diff sets when a custom transformer put it there; the model
	// preserves conflicting input as given.
	Highlighted lineset.Set
	DiffAdded   lineset.Set
	DiffRemoved lineset.Set
	Focused     lineset.Set

	// Classes maps a line to the full class list of its line elements,
	// insertion order preserved, duplicates suppressed.
	Classes map[int][]string

	// Styles maps a line to the inline style declarations of its line
	// elements. A later declaration for the same property wins.
	Styles map[int]map[string]string
}

// New returns an empty Metadata with initialized sets and maps.
func New() *Metadata {
	return &Metadata{
		Highlighted: lineset.Of(),
		DiffAdded:   lineset.Of(),
		DiffRemoved: lineset.Of(),
		Focused:     lineset.Of(),
		Classes:     make(map[int][]string),
		Styles:      make(map[int]map[string]string),
	}
}

// FocusActive reports whether any line is focused. When true, lines
// outside the focused set render blurred.
func (m *Metadata) FocusActive() bool {
	return m != nil && m.Focused.Len() > 0
}
