// Package commit implements the write path of the inspector: planning a
// single property edit into per-node instructions, and executing a batch of
// instructions inside one undoable update scope.
package commit

import "github.com/beaki-design/beaki/internal/scene"

// Value is the sealed set of edit payloads the planner accepts. Which
// variants are meaningful depends on the property being edited; a payload of
// the wrong variant fails planning closed (zero instructions, error-level
// diagnostic), never half-applies.
type Value interface {
	commitValue()
}

// Number is a numeric edit. Rotation arrives in degrees (the panel's unit);
// the planner converts to radians before emitting instructions so unit
// semantics live in exactly one place.
type Number float64

func (Number) commitValue() {}

// Bool is a toggle edit (fit-content / fill sizing).
type Bool bool

func (Bool) commitValue() {}

// ColorLiteral writes a literal color, detaching any variable binding.
type ColorLiteral scene.Color

func (ColorLiteral) commitValue() {}

// Text is a string edit: enum names (axis, stroke align, growth), font
// family, node name, annotation.
type Text string

func (Text) commitValue() {}

// Binding binds a variable-capable field to a variable.
type Binding struct {
	Var *scene.Variable
}

func (Binding) commitValue() {}

// Mixed is the sentinel the panel sends when the user confirmed a field that
// still reads Mixed without actually typing a value. Planning it is a no-op:
// a commit that didn't change anything must never homogenize the selection.
type Mixed struct{}

func (Mixed) commitValue() {}

// Revert detaches the field from any variable binding and writes the node's
// own previously-resolved concrete value as a literal.
type Revert struct{}

func (Revert) commitValue() {}
