package hast

import "errors"

// WalkFunc is the function signature for Walk callbacks.
// Return a non-nil error to stop the walk.
type WalkFunc func(n *Node) error

// Walk performs a pre-order traversal of the tree starting at root.
// The callback fn is called for each node. If fn returns a non-nil error,
// the walk stops immediately and returns that error.
func Walk(root *Node, fn WalkFunc) error {
	if root == nil {
		return nil
	}

	if err := fn(root); err != nil {
		return err
	}

	for _, child := range root.Children {
		if err := Walk(child, fn); err != nil {
			return err
		}
	}

	return nil
}

// errStopWalk terminates a FindFirst walk early.
var errStopWalk = errors.New("stop walk")

// FindAll returns all nodes matching the predicate, in traversal order.
func FindAll(root *Node, predicate func(n *Node) bool) []*Node {
	var result []*Node

	//nolint:errcheck,revive // Walk only returns nil errors in this usage
	Walk(root, func(node *Node) error {
		if predicate(node) {
			result = append(result, node)
		}
		return nil
	})

	return result
}

// FindFirst returns the first node matching the predicate, or nil if none found.
func FindFirst(root *Node, predicate func(n *Node) bool) *Node {
	var found *Node

	//nolint:errcheck,revive // errStopWalk is expected and intentionally ignored
	Walk(root, func(node *Node) error {
		if predicate(node) {
			found = node
			return errStopWalk
		}
		return nil
	})

	return found
}
