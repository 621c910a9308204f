// Package hast models the annotated element tree produced by the
// highlighting engine's slow path. Nodes form a closed element/text
// variant carrying ordered attributes and an ordered class set; line
// transformers mutate them and the metadata extractor walks them.
package hast

// NodeKind classifies the type of a tree node.
type NodeKind uint8

// Node kinds.
const (
	NodeElement NodeKind = iota
	NodeText
)

// Node represents a single node in the annotated tree. Element nodes
// carry Tag, Attrs, Classes, and Children; text nodes carry only Literal.
// The field set is closed: consumers never probe for properties beyond
// these.
type Node struct {
	// Kind identifies what type of node this is.
	Kind NodeKind

	// Tag is the element name ("pre", "code", "span"). Empty for text nodes.
	Tag string

	// Attrs holds the element's non-class attributes in first-insertion order.
	Attrs []Attribute

	// Classes is the element's ordered class set.
	Classes ClassList

	// Children are the element's child nodes in document order.
	Children []*Node

	// Literal is the text payload of a text node.
	Literal string
}

// Attribute is a single key/value attribute on an element node.
type Attribute struct {
	Key   string
	Value string
}

// Element creates an element node with the given tag and initial classes.
func Element(tag string, classes ...string) *Node {
	n := &Node{Kind: NodeElement, Tag: tag}
	n.Classes.Add(classes...)
	return n
}

// Text creates a text node.
func Text(literal string) *Node {
	return &Node{Kind: NodeText, Literal: literal}
}

// Attr returns the value of the named attribute and whether it is present.
func (n *Node) Attr(key string) (string, bool) {
	for _, attr := range n.Attrs {
		if attr.Key == key {
			return attr.Value, true
		}
	}
	return "", false
}

// SetAttr sets the named attribute. A repeated set overwrites the value
// in place, keeping the position of the first insertion.
func (n *Node) SetAttr(key, value string) {
	for i := range n.Attrs {
		if n.Attrs[i].Key == key {
			n.Attrs[i].Value = value
			return
		}
	}
	n.Attrs = append(n.Attrs, Attribute{Key: key, Value: value})
}

// AppendChild appends child nodes in order.
func (n *Node) AppendChild(children ...*Node) {
	n.Children = append(n.Children, children...)
}

// HasChildren returns true if this node has any children.
func (n *Node) HasChildren() bool {
	return len(n.Children) > 0
}
