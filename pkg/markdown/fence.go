package markdown

import (
	"strconv"
	"strings"

	"github.com/yaklabco/rangelight/pkg/lineset"
)

// fenceDirectives are the per-block rendering switches carried by a
// fence info string, for example:
//
//	```go {1,3-5} numbers=10 focus=2 add=4 del=5
//
// The brace group selects highlighted lines; focus, add and del take
// the same range syntax.
type fenceDirectives struct {
	lang        string
	highlight   string
	numbers     bool
	numberStart int
	focus       []int
	added       []int
	removed     []int
}

// parseFenceInfo parses an info string. It never fails; malformed or
// unknown directives are dropped.
func parseFenceInfo(info string) fenceDirectives {
	var d fenceDirectives

	// The highlight group may contain spaces ("{1, 3-5}"), so it is
	// cut out before field splitting.
	if open := strings.IndexByte(info, '{'); open >= 0 {
		if size := strings.IndexByte(info[open:], '}'); size > 0 {
			d.highlight = strings.TrimSpace(info[open+1 : open+size])
			info = info[:open] + " " + info[open+size+1:]
		}
	}

	for i, field := range strings.Fields(info) {
		key, value, hasValue := strings.Cut(field, "=")
		switch {
		case hasValue:
			d.apply(key, value)
		case key == "numbers":
			d.numbers = true
		case i == 0:
			d.lang = key
		}
	}
	return d
}

func (d *fenceDirectives) apply(key, value string) {
	switch key {
	case "numbers":
		d.numbers = true
		if start, err := strconv.Atoi(value); err == nil && start > 0 {
			d.numberStart = start
		}
	case "focus":
		d.focus = lineset.Parse(value).Lines()
	case "add":
		d.added = lineset.Parse(value).Lines()
	case "del":
		d.removed = lineset.Parse(value).Lines()
	}
}
