package commit

import (
	"log/slog"
	"math"

	"github.com/beaki-design/beaki/internal/props"
	"github.com/beaki-design/beaki/internal/scene"
)

// Planner turns one property edit into per-node instructions. It is a pure
// function of its inputs (property, payload, selection); the logger is only
// a sink for diagnostics on rejected input.
//
// Failure semantics: bad payloads (NaN, unknown enum name, wrong variant)
// plan to zero instructions and log — fail closed, never default-to-zero.
// Nodes the property does not apply to are skipped silently; a stale
// multi-type selection is expected, not an error.
type Planner struct {
	log *slog.Logger
}

// NewPlanner creates a planner. A nil logger falls back to slog.Default().
func NewPlanner(log *slog.Logger) *Planner {
	if log == nil {
		log = slog.Default()
	}
	return &Planner{log: log}
}

// Plan computes the instruction batch for editing prop to v across the
// selection. The returned batch may be empty: Mixed payloads, rejected
// payloads, and selections with no applicable node all plan to nothing.
func (pl *Planner) Plan(prop props.Property, v Value, selection []*scene.Node) []Instruction {
	// Committing the Mixed sentinel means the user confirmed a disagreeing
	// field without entering a value. Emitting anything here would
	// homogenize a selection the user never meant to touch.
	if _, isMixed := v.(Mixed); isMixed {
		return nil
	}

	switch prop {
	case props.PropX, props.PropY:
		return pl.planPosition(prop, v, selection)
	case props.PropRotation:
		return pl.planRotation(v, selection)
	case props.PropWidth, props.PropHeight:
		return pl.planSize(prop, v, selection)

	case props.PropFitWidth, props.PropFitHeight, props.PropFillWidth, props.PropFillHeight:
		return pl.planSizingToggle(prop, v, selection)

	case props.PropPaddingTop, props.PropPaddingRight, props.PropPaddingBottom,
		props.PropPaddingLeft, props.PropPaddingVertical, props.PropPaddingHorizontal,
		props.PropPaddingAll:
		return pl.planPadding(prop, v, selection)
	case props.PropItemSpacing:
		return pl.planScalar(prop, v, selection, func(n float64) Patch {
			return Patch{ItemSpacing: ptr(n)}
		})
	case props.PropAxis:
		return pl.planAxis(v, selection)

	case props.PropCornerAll, props.PropCornerTopLeft, props.PropCornerTopRight,
		props.PropCornerBottomRight, props.PropCornerBottomLeft:
		return pl.planCorner(prop, v, selection)

	case props.PropFillColor:
		return pl.planColor(prop, v, selection,
			func(n *scene.Node) scene.Color { return n.ResolvedFill() },
			func(f scene.ColorField) Patch { return Patch{Fill: ptr(f)} })
	case props.PropOpacity:
		return pl.planScalar(prop, v, selection, func(n float64) Patch {
			return Patch{Opacity: ptr(math.Min(1, math.Max(0, n)))}
		})

	case props.PropStrokeColor:
		return pl.planColor(prop, v, selection,
			func(n *scene.Node) scene.Color { return n.ResolvedStroke() },
			func(f scene.ColorField) Patch { return Patch{Stroke: ptr(f)} })
	case props.PropStrokeWidthAll, props.PropStrokeWidthTop, props.PropStrokeWidthRight,
		props.PropStrokeWidthBottom, props.PropStrokeWidthLeft:
		return pl.planStrokeWidth(prop, v, selection)
	case props.PropStrokeAlign:
		return pl.planStrokeAlign(v, selection)

	case props.PropFontFamily:
		return pl.planFontFamily(v, selection)
	case props.PropFontSize:
		return pl.planScalar(prop, v, selection, func(n float64) Patch {
			return Patch{FontSize: ptr(n)}
		})
	case props.PropLineHeight:
		return pl.planScalar(prop, v, selection, func(n float64) Patch {
			return Patch{LineHeight: ptr(n)}
		})
	case props.PropGrowth:
		return pl.planGrowth(v, selection)

	case props.PropName, props.PropAnnotation:
		return pl.planMeta(prop, v, selection)
	}

	// Property outside the closed set: a bug in the caller, degraded to a
	// no-op so one unrecognized edit cannot poison the rest of the session.
	pl.log.Error("plan: unhandled property", "property", int(prop))
	return nil
}

// number validates a numeric payload. NaN and infinities fail closed.
func (pl *Planner) number(prop props.Property, v Value) (float64, bool) {
	n, ok := v.(Number)
	if !ok {
		pl.log.Error("plan: payload variant not valid for property",
			"property", prop.String(), "payload", payloadName(v))
		return 0, false
	}
	f := float64(n)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		pl.log.Warn("plan: unparseable numeric input, emitting no instructions",
			"property", prop.String())
		return 0, false
	}
	return f, true
}

// applicable yields the selected nodes prop can be edited on.
func applicable(prop props.Property, selection []*scene.Node) []*scene.Node {
	out := make([]*scene.Node, 0, len(selection))
	for _, n := range selection {
		if props.Applies(prop, n.Type) {
			out = append(out, n)
		}
	}
	return out
}

// planScalar handles plain numeric properties with a uniform patch shape.
func (pl *Planner) planScalar(prop props.Property, v Value, selection []*scene.Node, patch func(float64) Patch) []Instruction {
	n, ok := pl.number(prop, v)
	if !ok {
		return nil
	}
	var out []Instruction
	for _, node := range applicable(prop, selection) {
		out = append(out, Instruction{Target: node, Patch: patch(n)})
	}
	return out
}

// planPosition translates a target derived position back into an authored
// offset. Position is derived from world transforms, so the patch applies
// the delta between the target and the node's current derived position to
// the authored translation.
func (pl *Planner) planPosition(prop props.Property, v Value, selection []*scene.Node) []Instruction {
	target, ok := pl.number(prop, v)
	if !ok {
		return nil
	}
	var out []Instruction
	for _, node := range applicable(prop, selection) {
		curX, curY := props.Position(node)
		var patch Patch
		if prop == props.PropX {
			patch.X = ptr(node.Authored.X + (target - curX))
		} else {
			patch.Y = ptr(node.Authored.Y + (target - curY))
		}
		out = append(out, Instruction{Target: node, Patch: patch})
	}
	return out
}

// planRotation converts the panel's degrees to radians. The conversion is
// the planner's responsibility so the executor and the scene only ever see
// radians.
func (pl *Planner) planRotation(v Value, selection []*scene.Node) []Instruction {
	deg, ok := pl.number(props.PropRotation, v)
	if !ok {
		return nil
	}
	rad := deg * math.Pi / 180
	var out []Instruction
	for _, node := range applicable(props.PropRotation, selection) {
		out = append(out, Instruction{Target: node, Patch: Patch{Rotation: ptr(rad)}})
	}
	return out
}

// planSize sets an explicit width or height. Editing a dimension of a text
// node also pins its growth mode so later content changes don't undo the
// explicit size.
func (pl *Planner) planSize(prop props.Property, v Value, selection []*scene.Node) []Instruction {
	n, ok := pl.number(prop, v)
	if !ok {
		return nil
	}
	var out []Instruction
	for _, node := range applicable(prop, selection) {
		var patch Patch
		if prop == props.PropWidth {
			patch.Width = ptr(n)
		} else {
			patch.Height = ptr(n)
		}
		if node.Type == scene.TypeText {
			patch = pinTextBounds(node, patch, prop == props.PropHeight)
		}
		out = append(out, Instruction{Target: node, Patch: patch})
	}
	return out
}

// planSizingToggle maps a boolean toggle onto a sizing mode for one axis.
func (pl *Planner) planSizingToggle(prop props.Property, v Value, selection []*scene.Node) []Instruction {
	b, ok := v.(Bool)
	if !ok {
		pl.log.Error("plan: payload variant not valid for property",
			"property", prop.String(), "payload", payloadName(v))
		return nil
	}

	mode := scene.SizingFixed
	if bool(b) {
		switch prop {
		case props.PropFitWidth, props.PropFitHeight:
			mode = scene.SizingFitContent
		default:
			mode = scene.SizingFill
		}
	}
	vertical := prop == props.PropFitHeight || prop == props.PropFillHeight

	var out []Instruction
	for _, node := range applicable(prop, selection) {
		var patch Patch
		if vertical {
			patch.SizingV = ptr(mode)
		} else {
			patch.SizingH = ptr(mode)
		}
		if node.Type == scene.TypeText {
			patch = pinTextBounds(node, patch, vertical)
		}
		out = append(out, Instruction{Target: node, Patch: patch})
	}
	return out
}

// pinTextBounds is the text-reflow side effect: before a sizing behavior
// change, capture the node's current rendered bounds as explicit
// width/height and upgrade the growth mode, so the text doesn't visually
// jump when the sizing mode flips.
//
// Auto-growth text is pinned on any axis change; fixed-width text only when
// the vertical axis is affected (its width is already explicit).
func pinTextBounds(node *scene.Node, patch Patch, vertical bool) Patch {
	growth := node.Authored.Growth
	pin := growth == scene.GrowthAuto || (growth == scene.GrowthFixedWidth && vertical)
	if !pin {
		return patch
	}

	b := node.WorldBounds()
	if patch.Width == nil {
		patch.Width = ptr(b.Width())
	}
	if patch.Height == nil {
		patch.Height = ptr(b.Height())
	}
	if vertical {
		patch.Growth = ptr(scene.GrowthFixedSize)
	} else {
		patch.Growth = ptr(scene.GrowthFixedWidth)
	}
	return patch
}

// planPadding reconstructs the full 4-edge array from whatever shape is
// currently stored, overwrites only the edited indices, and writes the
// result back as an explicit quad. The whole-field edit keeps the compact
// uniform shape instead.
func (pl *Planner) planPadding(prop props.Property, v Value, selection []*scene.Node) []Instruction {
	n, ok := pl.number(prop, v)
	if !ok {
		return nil
	}
	var out []Instruction
	for _, node := range applicable(prop, selection) {
		var patch Patch
		if prop == props.PropPaddingAll {
			patch.Padding = ptr(scene.UniformSides(n))
		} else {
			quad := props.PaddingQuad(node)
			for _, i := range paddingIndices(prop) {
				quad[i] = n
			}
			patch.Padding = ptr(scene.Sides{Kind: scene.SidesQuad, Quad: quad})
		}
		out = append(out, Instruction{Target: node, Patch: patch})
	}
	return out
}

// paddingIndices maps an edge/axis padding property to canonical quad
// indices (top, right, bottom, left).
func paddingIndices(prop props.Property) []int {
	switch prop {
	case props.PropPaddingTop:
		return []int{props.EdgeTop}
	case props.PropPaddingRight:
		return []int{props.EdgeRight}
	case props.PropPaddingBottom:
		return []int{props.EdgeBottom}
	case props.PropPaddingLeft:
		return []int{props.EdgeLeft}
	case props.PropPaddingVertical:
		return []int{props.EdgeTop, props.EdgeBottom}
	default: // PropPaddingHorizontal
		return []int{props.EdgeRight, props.EdgeLeft}
	}
}

// planCorner mirrors planPadding for per-corner radii.
func (pl *Planner) planCorner(prop props.Property, v Value, selection []*scene.Node) []Instruction {
	n, ok := pl.number(prop, v)
	if !ok {
		return nil
	}
	var out []Instruction
	for _, node := range applicable(prop, selection) {
		var patch Patch
		if prop == props.PropCornerAll {
			patch.CornerRadius = ptr(scene.UniformSides(n))
		} else {
			quad := props.CornerQuad(node)
			quad[cornerIndex(prop)] = n
			patch.CornerRadius = ptr(scene.Sides{Kind: scene.SidesQuad, Quad: quad})
		}
		out = append(out, Instruction{Target: node, Patch: patch})
	}
	return out
}

func cornerIndex(prop props.Property) int {
	switch prop {
	case props.PropCornerTopLeft:
		return props.CornerTopLeft
	case props.PropCornerTopRight:
		return props.CornerTopRight
	case props.PropCornerBottomRight:
		return props.CornerBottomRight
	default: // PropCornerBottomLeft
		return props.CornerBottomLeft
	}
}

// planStrokeWidth mirrors planPadding for per-edge stroke widths.
func (pl *Planner) planStrokeWidth(prop props.Property, v Value, selection []*scene.Node) []Instruction {
	n, ok := pl.number(prop, v)
	if !ok {
		return nil
	}
	var out []Instruction
	for _, node := range applicable(prop, selection) {
		var patch Patch
		if prop == props.PropStrokeWidthAll {
			patch.StrokeWidth = ptr(scene.UniformSides(n))
		} else {
			quad := props.StrokeWidthQuad(node)
			quad[strokeEdgeIndex(prop)] = n
			patch.StrokeWidth = ptr(scene.Sides{Kind: scene.SidesQuad, Quad: quad})
		}
		out = append(out, Instruction{Target: node, Patch: patch})
	}
	return out
}

func strokeEdgeIndex(prop props.Property) int {
	switch prop {
	case props.PropStrokeWidthTop:
		return props.EdgeTop
	case props.PropStrokeWidthRight:
		return props.EdgeRight
	case props.PropStrokeWidthBottom:
		return props.EdgeBottom
	default: // PropStrokeWidthLeft
		return props.EdgeLeft
	}
}

// planColor handles the three edit shapes of a variable-capable color field:
// a literal (detaches any binding), a binding (resolved value becomes the
// fallback literal), and Revert (write the node's own resolved value as a
// literal).
func (pl *Planner) planColor(
	prop props.Property,
	v Value,
	selection []*scene.Node,
	resolved func(*scene.Node) scene.Color,
	patch func(scene.ColorField) Patch,
) []Instruction {
	var out []Instruction
	for _, node := range applicable(prop, selection) {
		var field scene.ColorField
		switch payload := v.(type) {
		case ColorLiteral:
			field = scene.ColorField{Value: scene.Color(payload)}
		case Binding:
			if payload.Var == nil || payload.Var.Kind != scene.VariableColor {
				pl.log.Error("plan: binding payload is not a color variable",
					"property", prop.String())
				return nil
			}
			field = scene.ColorField{Value: resolved(node), Var: payload.Var}
		case Revert:
			field = scene.ColorField{Value: resolved(node)}
		default:
			pl.log.Error("plan: payload variant not valid for property",
				"property", prop.String(), "payload", payloadName(v))
			return nil
		}
		out = append(out, Instruction{Target: node, Patch: patch(field)})
	}
	return out
}

// planFontFamily mirrors planColor for the text-variable-capable font field.
func (pl *Planner) planFontFamily(v Value, selection []*scene.Node) []Instruction {
	prop := props.PropFontFamily
	var out []Instruction
	for _, node := range applicable(prop, selection) {
		var field scene.StringField
		switch payload := v.(type) {
		case Text:
			field = scene.StringField{Value: string(payload)}
		case Binding:
			if payload.Var == nil || payload.Var.Kind != scene.VariableText {
				pl.log.Error("plan: binding payload is not a text variable",
					"property", prop.String())
				return nil
			}
			field = scene.StringField{Value: node.ResolvedFontFamily(), Var: payload.Var}
		case Revert:
			field = scene.StringField{Value: node.ResolvedFontFamily()}
		default:
			pl.log.Error("plan: payload variant not valid for property",
				"property", prop.String(), "payload", payloadName(v))
			return nil
		}
		out = append(out, Instruction{Target: node, Patch: Patch{FontFamily: ptr(field)}})
	}
	return out
}

func (pl *Planner) planAxis(v Value, selection []*scene.Node) []Instruction {
	t, ok := v.(Text)
	if !ok {
		pl.log.Error("plan: payload variant not valid for property",
			"property", props.PropAxis.String(), "payload", payloadName(v))
		return nil
	}
	axis := scene.LayoutAxis(t)
	if axis != scene.AxisHorizontal && axis != scene.AxisVertical {
		pl.log.Warn("plan: unknown layout axis, emitting no instructions", "axis", string(t))
		return nil
	}
	var out []Instruction
	for _, node := range applicable(props.PropAxis, selection) {
		out = append(out, Instruction{Target: node, Patch: Patch{Axis: ptr(axis)}})
	}
	return out
}

func (pl *Planner) planStrokeAlign(v Value, selection []*scene.Node) []Instruction {
	t, ok := v.(Text)
	if !ok {
		pl.log.Error("plan: payload variant not valid for property",
			"property", props.PropStrokeAlign.String(), "payload", payloadName(v))
		return nil
	}
	align := scene.StrokeAlign(t)
	switch align {
	case scene.StrokeInside, scene.StrokeCenter, scene.StrokeOutside:
	default:
		pl.log.Warn("plan: unknown stroke align, emitting no instructions", "align", string(t))
		return nil
	}
	var out []Instruction
	for _, node := range applicable(props.PropStrokeAlign, selection) {
		out = append(out, Instruction{Target: node, Patch: Patch{StrokeAlign: ptr(align)}})
	}
	return out
}

func (pl *Planner) planGrowth(v Value, selection []*scene.Node) []Instruction {
	t, ok := v.(Text)
	if !ok {
		pl.log.Error("plan: payload variant not valid for property",
			"property", props.PropGrowth.String(), "payload", payloadName(v))
		return nil
	}
	growth := scene.TextGrowth(t)
	switch growth {
	case scene.GrowthAuto, scene.GrowthFixedWidth, scene.GrowthFixedSize:
	default:
		pl.log.Warn("plan: unknown growth mode, emitting no instructions", "growth", string(t))
		return nil
	}
	var out []Instruction
	for _, node := range applicable(props.PropGrowth, selection) {
		out = append(out, Instruction{Target: node, Patch: Patch{Growth: ptr(growth)}})
	}
	return out
}

// planMeta handles name and annotation. Metadata is single-selection only;
// bulk-editing it is rejected rather than silently applied to every node.
func (pl *Planner) planMeta(prop props.Property, v Value, selection []*scene.Node) []Instruction {
	if len(selection) != 1 {
		pl.log.Warn("plan: metadata edits require a single selection",
			"property", prop.String(), "selected", len(selection))
		return nil
	}
	t, ok := v.(Text)
	if !ok {
		pl.log.Error("plan: payload variant not valid for property",
			"property", prop.String(), "payload", payloadName(v))
		return nil
	}
	var patch Patch
	if prop == props.PropName {
		patch.Name = ptr(string(t))
	} else {
		patch.Annotation = ptr(string(t))
	}
	return []Instruction{{Target: selection[0], Patch: patch}}
}

// payloadName names a payload variant for diagnostics.
func payloadName(v Value) string {
	switch v.(type) {
	case Number:
		return "number"
	case Bool:
		return "bool"
	case ColorLiteral:
		return "color"
	case Text:
		return "text"
	case Binding:
		return "binding"
	case Mixed:
		return "mixed"
	case Revert:
		return "revert"
	default:
		return "unknown"
	}
}
