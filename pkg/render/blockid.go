package render

import (
	"strconv"
	"strings"
	"sync/atomic"
)

//nolint:gochecknoglobals // process-wide counter keeps generated ids unique
var blockCounter atomic.Uint64

// nextBlockID returns a process-unique block identifier.
func nextBlockID() string {
	return "rl-" + strconv.FormatUint(blockCounter.Add(1), 10)
}

// sanitizeBlockID reduces a caller-provided id to characters safe inside
// CSS identifiers and element ids. An id left empty falls back to a
// generated one; an id not starting with a letter or underscore gets the
// generated prefix.
func sanitizeBlockID(id string) string {
	var b strings.Builder
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		}
	}

	out := b.String()
	if out == "" {
		return nextBlockID()
	}

	first := out[0]
	letter := (first >= 'a' && first <= 'z') || (first >= 'A' && first <= 'Z')
	if !letter && first != '_' {
		out = "rl-" + out
	}
	return out
}
