package merge

import "github.com/beaki-design/beaki/internal/scene"

// Dual carries a field's resolved value together with its authored
// indirection, when one exists. Var is nil for literally authored fields.
//
// Keeping the variable pointer through aggregation matters for two reasons:
// the panel shows bound fields differently, and a commit against a bound
// field must decide whether to write through the binding or detach it.
type Dual[T any] struct {
	Resolved T
	Var      *scene.Variable
}

// Literal wraps a resolved value with no indirection.
func Literal[T any](v T) Dual[T] {
	return Dual[T]{Resolved: v}
}

// Bound wraps a resolved value authored through a variable.
func Bound[T any](v T, variable *scene.Variable) Dual[T] {
	return Dual[T]{Resolved: v, Var: variable}
}

// DualEqual compares two dual values for aggregation purposes.
//
// Reference identity takes precedence over resolved equality: if either side
// is bound to a variable, the two bindings must be the same Variable object.
// Two different variables that currently resolve to the same value are still
// unequal, and a bound field never equals a literal one, even at the same
// resolved value. Only when both sides are literal does the resolved
// predicate decide.
func DualEqual[T any](a, b Dual[T], resolved Eq[T]) bool {
	if a.Var != nil || b.Var != nil {
		return a.Var == b.Var
	}
	return resolved(a.Resolved, b.Resolved)
}

// DualEq adapts DualEqual into an Eq usable with Fold.
func DualEq[T any](resolved Eq[T]) Eq[Dual[T]] {
	return func(a, b Dual[T]) bool { return DualEqual(a, b, resolved) }
}
