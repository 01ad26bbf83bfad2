// Package testutil provides scene-building helpers shared by tests.
package testutil

import (
	"testing"

	"github.com/beaki-design/beaki/internal/scene"
)

// Node creates a node under parent (nil means the root), failing the test on
// error.
func Node(t *testing.T, d *scene.Document, parent *scene.Node, id string, typ scene.NodeType) *scene.Node {
	t.Helper()
	n, err := d.NewNode(parent, id, typ)
	if err != nil {
		t.Fatalf("new node %q: %v", id, err)
	}
	return n
}

// Rect creates a rectangle at the root with the given size.
func Rect(t *testing.T, d *scene.Document, id string, w, h float64) *scene.Node {
	t.Helper()
	n := Node(t, d, nil, id, scene.TypeRectangle)
	n.Authored.Width = w
	n.Authored.Height = h
	return n
}

// Text creates a text node at the root.
func Text(t *testing.T, d *scene.Document, id, family string, size float64) *scene.Node {
	t.Helper()
	n := Node(t, d, nil, id, scene.TypeText)
	n.Authored.FontFamily.Value = family
	n.Authored.FontSize = size
	return n
}

// Select sets the document selection, failing the test on error.
func Select(t *testing.T, d *scene.Document, ids ...string) {
	t.Helper()
	if err := d.Select(ids...); err != nil {
		t.Fatalf("select %v: %v", ids, err)
	}
}
