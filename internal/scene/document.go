package scene

import (
	"fmt"

	"github.com/google/uuid"
)

// Document owns a scene graph, its variables, the current selection, and the
// undo/redo journal. It is the engine handle the inspector packages receive.
type Document struct {
	root *Node
	byID map[string]*Node
	vars map[string]*Variable

	selection []string

	undo []*JournalEntry
	redo []*JournalEntry

	active *UpdateScope
}

// NewDocument creates a document with an empty root frame.
func NewDocument() *Document {
	d := &Document{
		byID: make(map[string]*Node),
		vars: make(map[string]*Variable),
	}
	d.root = &Node{
		ID:   "root",
		Type: TypeFrame,
		Authored: defaultProperties("Root"),
	}
	d.byID[d.root.ID] = d.root
	return d
}

// Root returns the document's root frame.
func (d *Document) Root() *Node { return d.root }

// NewNode creates a node of the given type under parent and registers it.
// An empty id mints a fresh UUID. Defaults match a freshly inserted node in
// the editor: opacity 1, fixed sizing, centered stroke, auto text growth.
func (d *Document) NewNode(parent *Node, id string, t NodeType) (*Node, error) {
	if parent == nil {
		parent = d.root
	}
	if !ValidNodeTypes[t] {
		return nil, fmt.Errorf("new node: unknown node type %q", t)
	}
	if d.byID[parent.ID] != parent {
		return nil, fmt.Errorf("new node: parent %q does not belong to this document", parent.ID)
	}
	if id == "" {
		id = uuid.NewString()
	}
	if _, exists := d.byID[id]; exists {
		return nil, fmt.Errorf("new node: duplicate node id %q", id)
	}

	n := &Node{
		ID:       id,
		Type:     t,
		Parent:   parent,
		Authored: defaultProperties(""),
	}
	parent.Children = append(parent.Children, n)
	d.byID[id] = n
	return n, nil
}

// defaultProperties matches a freshly inserted node in the editor.
func defaultProperties(name string) Properties {
	return Properties{
		SizingH:     SizingFixed,
		SizingV:     SizingFixed,
		Opacity:     1,
		Fill:        ColorField{Value: "#cccccc"},
		Stroke:      ColorField{Value: "#000000"},
		StrokeWidth: UniformSides(1),
		StrokeAlign: StrokeCenter,
		Growth:      GrowthAuto,
		Name:        name,
	}
}

// Node looks up a node by id.
func (d *Document) Node(id string) (*Node, bool) {
	n, ok := d.byID[id]
	return n, ok
}

// Contains reports whether n belongs to this document.
func (d *Document) Contains(n *Node) bool {
	return n != nil && d.byID[n.ID] == n
}

// Walk visits every node in the document in depth-first order.
func (d *Document) Walk(visit func(*Node)) {
	d.root.walk(visit)
}

// DefineColorVariable registers (or redefines) a color variable.
func (d *Document) DefineColorVariable(name string, c Color) *Variable {
	v := &Variable{Name: name, Kind: VariableColor, Color: c}
	d.vars[name] = v
	return v
}

// DefineTextVariable registers (or redefines) a text variable.
func (d *Document) DefineTextVariable(name, text string) *Variable {
	v := &Variable{Name: name, Kind: VariableText, Text: text}
	d.vars[name] = v
	return v
}

// Variable looks up a variable by name.
func (d *Document) Variable(name string) (*Variable, bool) {
	v, ok := d.vars[name]
	return v, ok
}

// Select replaces the current selection. Every id must resolve to a node in
// the document; on error the previous selection is kept.
func (d *Document) Select(ids ...string) error {
	for _, id := range ids {
		if _, ok := d.byID[id]; !ok {
			return fmt.Errorf("select: no node with id %q", id)
		}
	}
	d.selection = append([]string(nil), ids...)
	return nil
}

// Selection returns the selected nodes in selection order. The returned
// slice is fresh on every call; callers may not mutate the nodes outside an
// UpdateScope.
func (d *Document) Selection() []*Node {
	nodes := make([]*Node, 0, len(d.selection))
	for _, id := range d.selection {
		if n, ok := d.byID[id]; ok {
			nodes = append(nodes, n)
		}
	}
	return nodes
}
