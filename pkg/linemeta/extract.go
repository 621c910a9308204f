package linemeta

import (
	"slices"
	"strconv"
	"strings"

	"github.com/yaklabco/rangelight/pkg/hast"
)

// Extract walks the annotated tree and derives the canonical metadata.
// It is a total function: malformed attributes, unparsable numbers, and
// unrecognized nodes contribute nothing and never raise an error.
func Extract(root *hast.Node) *Metadata {
	meta := New()
	var numbering numberingState

	//nolint:errcheck,revive // the callback never returns an error
	hast.Walk(root, func(n *hast.Node) error {
		if n.Kind != hast.NodeElement {
			return nil
		}

		// The numbering marker is independent of the line marker and may
		// sit on any element.
		if n.Classes.Has(hast.ClassLineNumbered) {
			numbering.observe(n)
		}

		if !n.Classes.Has(hast.ClassLine) {
			return nil
		}
		line, ok := lineNumberOf(n)
		if !ok {
			return nil
		}

		meta.Classes[line] = mergeClasses(meta.Classes[line], n.Classes.Names())

		if style, ok := n.Attr("style"); ok {
			mergeStyles(meta, line, style)
		}

		if n.Classes.Has(hast.ClassHighlighted) {
			meta.Highlighted.Add(line)
		}
		if n.Classes.Has(hast.ClassDiff) {
			if n.Classes.Has(hast.ClassDiffAdd) {
				meta.DiffAdded.Add(line)
			}
			if n.Classes.Has(hast.ClassDiffRemove) {
				meta.DiffRemoved.Add(line)
			}
		}
		if n.Classes.Has(hast.ClassFocused) || n.Classes.Has(hast.ClassHasFocus) {
			meta.Focused.Add(line)
		}

		return nil
	})

	meta.Numbering = numbering.result()
	return meta
}

// numberingState implements the first-wins-with-hard-cancel rule: the
// first valid start payload wins, but a missing or non-numeric payload on
// any tagged element cancels numbering for the whole block.
type numberingState struct {
	start     *int
	cancelled bool
}

func (s *numberingState) observe(n *hast.Node) {
	raw, ok := n.Attr(hast.AttrLineStart)
	if !ok {
		s.cancelled = true
		return
	}
	start, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		s.cancelled = true
		return
	}
	if s.start == nil {
		s.start = &start
	}
}

func (s *numberingState) result() *Numbering {
	if s.cancelled || s.start == nil {
		return nil
	}
	return &Numbering{Start: *s.start}
}

// lineNumberOf parses the 1-based physical line attribute of a line
// container. ok is false for a missing or malformed value; the element is
// skipped.
func lineNumberOf(n *hast.Node) (int, bool) {
	raw, ok := n.Attr(hast.AttrLine)
	if !ok {
		return 0, false
	}
	line, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || line < 1 {
		return 0, false
	}
	return line, true
}

// mergeClasses appends the incoming class names not already recorded,
// preserving first-insertion order.
func mergeClasses(existing, incoming []string) []string {
	for _, name := range incoming {
		if slices.Contains(existing, name) {
			continue
		}
		existing = append(existing, name)
	}
	return existing
}

// mergeStyles parses an inline style string into declaration pairs (split
// on ";" then ":", both sides trimmed) and records them for the line.
// Declarations without a property or value are dropped.
func mergeStyles(meta *Metadata, line int, style string) {
	for _, decl := range strings.Split(style, ";") {
		prop, value, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		prop = strings.TrimSpace(prop)
		value = strings.TrimSpace(value)
		if prop == "" || value == "" {
			continue
		}
		if meta.Styles[line] == nil {
			meta.Styles[line] = make(map[string]string)
		}
		meta.Styles[line][prop] = value
	}
}
