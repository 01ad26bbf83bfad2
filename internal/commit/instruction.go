package commit

import "github.com/beaki-design/beaki/internal/scene"

// Patch is one node's field changes. Nil fields are untouched; a set field
// overwrites the authored value wholesale. Composite fields always arrive
// fully reconstructed (the planner expands whatever shape is currently
// stored before overwriting the targeted indices), so applying a patch never
// resets unedited edges.
type Patch struct {
	X        *float64
	Y        *float64
	Rotation *float64
	Width    *float64
	Height   *float64

	SizingH *scene.SizingMode
	SizingV *scene.SizingMode

	Padding     *scene.Sides
	ItemSpacing *float64
	Axis        *scene.LayoutAxis

	CornerRadius *scene.Sides

	Fill    *scene.ColorField
	Opacity *float64

	Stroke      *scene.ColorField
	StrokeWidth *scene.Sides
	StrokeAlign *scene.StrokeAlign

	FontFamily *scene.StringField
	FontSize   *float64
	LineHeight *float64
	Growth     *scene.TextGrowth

	Name       *string
	Annotation *string
}

// IsEmpty reports whether the patch changes nothing.
func (p Patch) IsEmpty() bool {
	return p == Patch{}
}

// Apply writes the patch onto an authored record.
func (p Patch) Apply(a *scene.Properties) {
	if p.X != nil {
		a.X = *p.X
	}
	if p.Y != nil {
		a.Y = *p.Y
	}
	if p.Rotation != nil {
		a.Rotation = *p.Rotation
	}
	if p.Width != nil {
		a.Width = *p.Width
	}
	if p.Height != nil {
		a.Height = *p.Height
	}
	if p.SizingH != nil {
		a.SizingH = *p.SizingH
	}
	if p.SizingV != nil {
		a.SizingV = *p.SizingV
	}
	if p.Padding != nil {
		a.Padding = *p.Padding
	}
	if p.ItemSpacing != nil {
		a.ItemSpacing = *p.ItemSpacing
	}
	if p.Axis != nil {
		a.Axis = *p.Axis
	}
	if p.CornerRadius != nil {
		a.CornerRadius = *p.CornerRadius
	}
	if p.Fill != nil {
		a.Fill = *p.Fill
	}
	if p.Opacity != nil {
		a.Opacity = *p.Opacity
	}
	if p.Stroke != nil {
		a.Stroke = *p.Stroke
	}
	if p.StrokeWidth != nil {
		a.StrokeWidth = *p.StrokeWidth
	}
	if p.StrokeAlign != nil {
		a.StrokeAlign = *p.StrokeAlign
	}
	if p.FontFamily != nil {
		a.FontFamily = *p.FontFamily
	}
	if p.FontSize != nil {
		a.FontSize = *p.FontSize
	}
	if p.LineHeight != nil {
		a.LineHeight = *p.LineHeight
	}
	if p.Growth != nil {
		a.Growth = *p.Growth
	}
	if p.Name != nil {
		a.Name = *p.Name
	}
	if p.Annotation != nil {
		a.Annotation = *p.Annotation
	}
}

// Instruction is one entity-scoped patch produced by the planner. Nodes the
// edited property does not apply to receive no instruction at all.
//
// Instructions in one batch target disjoint nodes, so execution order does
// not affect the result. Tests rely on this as an invariant, not just an
// implementation convenience.
type Instruction struct {
	Target *scene.Node
	Patch  Patch
}

func ptr[T any](v T) *T { return &v }
