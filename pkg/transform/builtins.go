package transform

import (
	"strconv"

	"github.com/yaklabco/rangelight/pkg/hast"
	"github.com/yaklabco/rangelight/pkg/lineset"
)

// Numbering tags every line with the numbering marker and carries the
// number rendered for the first line.
type Numbering struct {
	Start int
}

// Name implements Transformer.
func (*Numbering) Name() string { return "line-numbering" }

// Transform implements Transformer.
func (t *Numbering) Transform(line *hast.Node, _ int) error {
	ensureBase(line)
	line.Classes.Add(hast.ClassLineNumbered)
	line.SetAttr(hast.AttrLineStart, strconv.Itoa(t.Start))
	return nil
}

// Highlight tags the selected lines with the highlight marker.
type Highlight struct {
	Lines lineset.Set
}

// Name implements Transformer.
func (*Highlight) Name() string { return "line-highlighting" }

// Transform implements Transformer.
func (t *Highlight) Transform(line *hast.Node, number int) error {
	ensureBase(line)
	if t.Lines.Has(number) {
		line.Classes.Add(hast.ClassHighlighted)
	}
	return nil
}

// Diff tags added and removed lines with the diff markers. A line
// selected as both added and removed is marked added only.
type Diff struct {
	Added   lineset.Set
	Removed lineset.Set
}

// Name implements Transformer.
func (*Diff) Name() string { return "diff-marking" }

// Transform implements Transformer.
func (t *Diff) Transform(line *hast.Node, number int) error {
	ensureBase(line)
	switch {
	case t.Added.Has(number):
		line.Classes.Add(hast.ClassDiff, hast.ClassDiffAdd)
	case t.Removed.Has(number):
		line.Classes.Add(hast.ClassDiff, hast.ClassDiffRemove)
	}
	return nil
}

// Focus tags the selected lines with the focus marker. The markup
// generator blurs every unfocused line once any line is focused.
type Focus struct {
	Lines lineset.Set
}

// Name implements Transformer.
func (*Focus) Name() string { return "focus-marking" }

// Transform implements Transformer.
func (t *Focus) Transform(line *hast.Node, number int) error {
	ensureBase(line)
	if t.Lines.Has(number) {
		line.Classes.Add(hast.ClassFocused)
	}
	return nil
}
