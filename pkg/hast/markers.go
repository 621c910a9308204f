package hast

// Canonical class markers attached to annotated-tree elements. They are
// the fixed contract between the transformers that set them, the metadata
// extractor that reads them, and the output generators that reproduce
// them in markup and stylesheet rules.
const (
	// ClassLine marks a per-line container element.
	ClassLine = "line"

	// ClassHighlighted marks a highlighted line.
	ClassHighlighted = "highlighted"

	// ClassDiff marks a diff line, paired with ClassDiffAdd or ClassDiffRemove.
	ClassDiff       = "diff"
	ClassDiffAdd    = "add"
	ClassDiffRemove = "remove"

	// ClassFocused marks a focused line. ClassHasFocus is a synonym
	// emitted by some external transformers; the extractor accepts both.
	ClassFocused  = "focused"
	ClassHasFocus = "has-focus"

	// ClassLineNumbered marks an element carrying a numbering payload
	// in AttrLineStart. It may appear on elements other than line
	// containers.
	ClassLineNumbered = "line-numbered"

	// ClassBlurred is applied by the markup generator to unfocused lines
	// when any line is focused. It never appears in the annotated tree.
	ClassBlurred = "blurred"
)

// Canonical attribute markers.
const (
	// AttrLine holds the 1-based physical line number of a line container.
	AttrLine = "data-line"

	// AttrLineStart holds the number rendered for the first line when
	// numbering is active.
	AttrLineStart = "data-line-start"
)
