package scene

// Color is a CSS-style hex color string ("#rrggbb" or "#rrggbbaa").
// The inspector never decomposes channels; colors compare as opaque strings.
type Color string

// VariableKind discriminates what a variable resolves to.
type VariableKind string

const (
	VariableColor VariableKind = "color"
	VariableText  VariableKind = "text"
)

// Variable is a named, document-owned indirect value. Authored fields hold a
// pointer to the Variable rather than its current value, so identity (not
// resolved value) decides whether two bindings are "the same" — two distinct
// variables that happen to resolve to the same color are still different for
// editing purposes.
type Variable struct {
	Name string
	Kind VariableKind

	// Exactly one of these is meaningful, per Kind.
	Color Color
	Text  string
}

// ColorField is an authored color: a literal, or a binding to a color
// variable. When Var is non-nil the literal Value is ignored on resolve but
// preserved as the fallback the field returns to if the binding is removed.
type ColorField struct {
	Value Color
	Var   *Variable
}

// Resolve returns the concrete color.
func (f ColorField) Resolve() Color {
	if f.Var != nil {
		return f.Var.Color
	}
	return f.Value
}

// StringField is an authored string with optional variable binding, used for
// font family.
type StringField struct {
	Value string
	Var   *Variable
}

// Resolve returns the concrete string.
func (f StringField) Resolve() string {
	if f.Var != nil {
		return f.Var.Text
	}
	return f.Value
}
