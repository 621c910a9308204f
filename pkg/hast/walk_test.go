package hast_test

import (
	"errors"
	"testing"

	"github.com/yaklabco/rangelight/pkg/hast"
)

func buildTestTree() *hast.Node {
	// Build a simple tree:
	// pre
	//   code
	//     span.line (data-line=1)
	//       text "a"
	//     span.line (data-line=2)
	//       text "b"

	pre := hast.Element("pre")
	code := hast.Element("code")
	pre.AppendChild(code)

	for i, literal := range []string{"a", "b"} {
		line := hast.Element("span", hast.ClassLine)
		line.SetAttr(hast.AttrLine, string(rune('1'+i)))
		line.AppendChild(hast.Text(literal))
		code.AppendChild(line)
	}

	return pre
}

func TestWalkPreOrder(t *testing.T) {
	t.Parallel()

	root := buildTestTree()

	var visited []string
	err := hast.Walk(root, func(n *hast.Node) error {
		if n.Kind == hast.NodeText {
			visited = append(visited, "text:"+n.Literal)
			return nil
		}
		visited = append(visited, n.Tag)
		return nil
	})
	if err != nil {
		t.Fatalf("Walk returned error: %v", err)
	}

	expected := []string{"pre", "code", "span", "text:a", "span", "text:b"}
	if len(visited) != len(expected) {
		t.Fatalf("expected %d nodes, got %d: %v", len(expected), len(visited), visited)
	}
	for i, want := range expected {
		if visited[i] != want {
			t.Errorf("node %d: expected %s, got %s", i, want, visited[i])
		}
	}
}

func TestWalkNilRoot(t *testing.T) {
	t.Parallel()

	err := hast.Walk(nil, func(_ *hast.Node) error {
		t.Fatal("callback should not run for nil root")
		return nil
	})
	if err != nil {
		t.Fatalf("Walk returned error: %v", err)
	}
}

func TestWalkStopsOnError(t *testing.T) {
	t.Parallel()

	root := buildTestTree()
	boom := errors.New("boom")

	count := 0
	err := hast.Walk(root, func(n *hast.Node) error {
		count++
		if n.Tag == "code" {
			return boom
		}
		return nil
	})

	if !errors.Is(err, boom) {
		t.Fatalf("expected boom error, got %v", err)
	}
	if count != 2 {
		t.Errorf("expected walk to stop after 2 nodes, visited %d", count)
	}
}

func TestFindAll(t *testing.T) {
	t.Parallel()

	root := buildTestTree()

	lines := hast.FindAll(root, func(n *hast.Node) bool {
		return n.Classes.Has(hast.ClassLine)
	})

	if len(lines) != 2 {
		t.Fatalf("expected 2 line elements, got %d", len(lines))
	}
}

func TestFindFirst(t *testing.T) {
	t.Parallel()

	root := buildTestTree()

	code := hast.FindFirst(root, func(n *hast.Node) bool {
		return n.Tag == "code"
	})
	if code == nil {
		t.Fatal("expected code element")
	}

	missing := hast.FindFirst(root, func(n *hast.Node) bool {
		return n.Tag == "table"
	})
	if missing != nil {
		t.Fatal("expected nil for unmatched predicate")
	}
}
