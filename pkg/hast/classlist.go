package hast

import "strings"

// ClassList is an ordered set of class names: insertion order is
// preserved and duplicates are suppressed. The zero value is an empty
// list. Transformers run in sequence against the same element, so the
// list is never exposed as a raw slice; Names returns a copy.
type ClassList struct {
	names []string
}

// Has reports whether name is in the list.
func (c *ClassList) Has(name string) bool {
	for _, existing := range c.names {
		if existing == name {
			return true
		}
	}
	return false
}

// Add appends each name not already present, in the given order.
// Empty names are ignored.
func (c *ClassList) Add(names ...string) {
	for _, name := range names {
		if name == "" || c.Has(name) {
			continue
		}
		c.names = append(c.names, name)
	}
}

// Len returns the number of classes in the list.
func (c *ClassList) Len() int {
	return len(c.names)
}

// Names returns the class names in insertion order.
func (c *ClassList) Names() []string {
	names := make([]string, len(c.names))
	copy(names, c.names)
	return names
}

// String returns the space-joined class attribute value.
func (c *ClassList) String() string {
	return strings.Join(c.names, " ")
}
