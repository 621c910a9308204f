// Package lineset implements selections of 1-based line numbers and the
// compact range syntax ("1,3,5-7") used to express them in options, fence
// metadata, and CLI flags.
package lineset

import (
	"slices"
	"strconv"
	"strings"
)

// Set is an unordered collection of positive 1-based line numbers.
// The zero value (nil) is a valid empty set for reads; use Of, Parse,
// or a make'd Set before calling Add.
type Set map[int]struct{}

// Of returns a Set containing the given lines.
// Zero and negative values are dropped.
func Of(lines ...int) Set {
	set := make(Set, len(lines))
	for _, n := range lines {
		if n < 1 {
			continue
		}
		set[n] = struct{}{}
	}
	return set
}

// Parse interprets a comma-separated list of line segments, where each
// segment is either a single line number ("3") or an inclusive range
// ("5-7"). Whitespace around segments and range endpoints is ignored.
//
// Parsing never fails: a segment that is empty, non-numeric, non-positive,
// or a reversed range ("5-3") is dropped in its entirety and the remaining
// segments are still honored. An input with no valid segments yields an
// empty set.
func Parse(spec string) Set {
	set := Set{}
	for _, segment := range strings.Split(spec, ",") {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}

		start, end, ok := parseSegment(segment)
		if !ok {
			continue
		}
		for n := start; n <= end; n++ {
			set[n] = struct{}{}
		}
	}
	return set
}

// parseSegment parses one "N" or "A-B" segment. ok is false when the
// segment is malformed, out of range, or reversed.
func parseSegment(segment string) (start, end int, ok bool) {
	before, after, isRange := strings.Cut(segment, "-")
	if !isRange {
		n, err := parseLine(before)
		if err != nil {
			return 0, 0, false
		}
		return n, n, true
	}

	start, err := parseLine(before)
	if err != nil {
		return 0, 0, false
	}
	end, err = parseLine(after)
	if err != nil || end < start {
		return 0, 0, false
	}
	return start, end, true
}

// parseLine parses a single 1-based line number.
func parseLine(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}
	if n < 1 {
		return 0, strconv.ErrRange
	}
	return n, nil
}

// Has reports whether line n is in the set. Safe on a nil Set.
func (s Set) Has(n int) bool {
	_, ok := s[n]
	return ok
}

// Add inserts line n. Zero and negative values are ignored.
// The set must be non-nil.
func (s Set) Add(n int) {
	if n < 1 {
		return
	}
	s[n] = struct{}{}
}

// Merge inserts every line of other into s. The set must be non-nil
// unless other is empty.
func (s Set) Merge(other Set) {
	for n := range other {
		s[n] = struct{}{}
	}
}

// Len returns the number of lines in the set. Safe on a nil Set.
func (s Set) Len() int {
	return len(s)
}

// Lines returns the set's lines in ascending order.
func (s Set) Lines() []int {
	lines := make([]int, 0, len(s))
	for n := range s {
		lines = append(lines, n)
	}
	slices.Sort(lines)
	return lines
}

// String re-serializes the set in the compact range syntax, collapsing
// consecutive runs ("1,3,5-7"). Parse(s.String()) yields a set equal to s.
func (s Set) String() string {
	lines := s.Lines()
	if len(lines) == 0 {
		return ""
	}

	var b strings.Builder
	runStart, runEnd := lines[0], lines[0]

	flush := func() {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(runStart))
		if runEnd > runStart {
			b.WriteByte('-')
			b.WriteString(strconv.Itoa(runEnd))
		}
	}

	for _, n := range lines[1:] {
		if n == runEnd+1 {
			runEnd = n
			continue
		}
		flush()
		runStart, runEnd = n, n
	}
	flush()

	return b.String()
}

// Equal reports whether s and other contain exactly the same lines.
func (s Set) Equal(other Set) bool {
	if len(s) != len(other) {
		return false
	}
	for n := range s {
		if _, ok := other[n]; !ok {
			return false
		}
	}
	return true
}
