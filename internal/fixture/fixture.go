// Package fixture loads scene documents from YAML. Documents are validated
// against an embedded CUE schema before instantiation, so structural errors
// surface with schema positions instead of as half-built scenes.
package fixture

import (
	_ "embed"
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/errors"
	"gopkg.in/yaml.v3"

	"github.com/beaki-design/beaki/internal/scene"
)

//go:embed schema.cue
var schemaSrc string

// Document is the YAML shape of a scene fixture.
type Document struct {
	Variables []Variable `yaml:"variables"`
	Nodes     []Node     `yaml:"nodes"`
	Selection []string   `yaml:"selection"`
}

// Variable declares a document variable.
type Variable struct {
	Name  string `yaml:"name"`
	Kind  string `yaml:"kind"`
	Color string `yaml:"color"`
	Text  string `yaml:"text"`
}

// Node declares one scene node. Pointer fields distinguish "absent" from
// zero so fixtures only override the defaults they mention.
type Node struct {
	ID         string `yaml:"id"`
	Type       string `yaml:"type"`
	Name       string `yaml:"name"`
	Annotation string `yaml:"annotation"`

	X        *float64 `yaml:"x"`
	Y        *float64 `yaml:"y"`
	Rotation *float64 `yaml:"rotation"`
	Width    *float64 `yaml:"width"`
	Height   *float64 `yaml:"height"`

	SizingH string `yaml:"sizing-horizontal"`
	SizingV string `yaml:"sizing-vertical"`

	Padding     *SidesSpec `yaml:"padding"`
	ItemSpacing *float64   `yaml:"item-spacing"`
	Axis        string     `yaml:"axis"`

	CornerRadius *SidesSpec `yaml:"corner-radius"`

	Fill    string   `yaml:"fill"`
	FillVar string   `yaml:"fill-var"`
	Opacity *float64 `yaml:"opacity"`

	Stroke      string     `yaml:"stroke"`
	StrokeVar   string     `yaml:"stroke-var"`
	StrokeWidth *SidesSpec `yaml:"stroke-width"`
	StrokeAlign string     `yaml:"stroke-align"`

	FontFamily    string   `yaml:"font-family"`
	FontFamilyVar string   `yaml:"font-family-var"`
	FontSize      *float64 `yaml:"font-size"`
	LineHeight    *float64 `yaml:"line-height"`
	Growth        string   `yaml:"growth"`

	Children []Node `yaml:"children"`
}

// SidesSpec decodes the three authored shapes of a composite field from
// YAML: a bare scalar, a 2-element sequence, or a 4-element sequence.
type SidesSpec struct {
	Sides scene.Sides
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *SidesSpec) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var v float64
		if err := node.Decode(&v); err != nil {
			return fmt.Errorf("composite scalar: %w", err)
		}
		s.Sides = scene.UniformSides(v)
		return nil
	case yaml.SequenceNode:
		var vals []float64
		if err := node.Decode(&vals); err != nil {
			return fmt.Errorf("composite sequence: %w", err)
		}
		switch len(vals) {
		case 2:
			s.Sides = scene.PairSides(vals[0], vals[1])
		case 4:
			s.Sides = scene.QuadSides(vals[0], vals[1], vals[2], vals[3])
		default:
			return fmt.Errorf("composite sequence must have 2 or 4 elements, got %d", len(vals))
		}
		return nil
	default:
		return fmt.Errorf("composite field must be a scalar or sequence")
	}
}

// Load reads, validates, and instantiates a fixture file.
func Load(path string) (*scene.Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load fixture: %w", err)
	}
	return Parse(raw)
}

// Parse validates raw YAML against the embedded schema and builds a scene
// document from it.
func Parse(raw []byte) (*scene.Document, error) {
	if err := Validate(raw); err != nil {
		return nil, err
	}

	var doc Document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse fixture: %w", err)
	}
	return Build(&doc)
}

// Validate checks raw YAML against the embedded CUE schema without building
// anything.
func Validate(raw []byte) error {
	var data any
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("parse fixture: %w", err)
	}

	ctx := cuecontext.New()
	schema := ctx.CompileString(schemaSrc)
	if err := schema.Err(); err != nil {
		return fmt.Errorf("fixture schema is broken: %w", err)
	}

	value := ctx.Encode(data)
	if err := value.Err(); err != nil {
		return fmt.Errorf("encode fixture: %w", err)
	}

	unified := schema.Unify(value)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("fixture does not match schema: %s", errors.Details(err, nil))
	}
	return nil
}

// Build instantiates a validated fixture document.
func Build(doc *Document) (*scene.Document, error) {
	d := scene.NewDocument()

	for _, v := range doc.Variables {
		switch v.Kind {
		case "color":
			d.DefineColorVariable(v.Name, scene.Color(v.Color))
		case "text":
			d.DefineTextVariable(v.Name, v.Text)
		default:
			return nil, fmt.Errorf("variable %q: unknown kind %q", v.Name, v.Kind)
		}
	}

	for _, n := range doc.Nodes {
		if err := buildNode(d, d.Root(), &n); err != nil {
			return nil, err
		}
	}

	if len(doc.Selection) > 0 {
		if err := d.Select(doc.Selection...); err != nil {
			return nil, fmt.Errorf("fixture selection: %w", err)
		}
	}
	return d, nil
}

func buildNode(d *scene.Document, parent *scene.Node, spec *Node) error {
	n, err := d.NewNode(parent, spec.ID, scene.NodeType(spec.Type))
	if err != nil {
		return fmt.Errorf("node %q: %w", spec.ID, err)
	}

	a := &n.Authored
	a.Name = spec.Name
	a.Annotation = spec.Annotation

	setNum(&a.X, spec.X)
	setNum(&a.Y, spec.Y)
	setNum(&a.Rotation, spec.Rotation)
	setNum(&a.Width, spec.Width)
	setNum(&a.Height, spec.Height)

	if spec.SizingH != "" {
		a.SizingH = scene.SizingMode(spec.SizingH)
	}
	if spec.SizingV != "" {
		a.SizingV = scene.SizingMode(spec.SizingV)
	}

	if spec.Padding != nil {
		a.Padding = spec.Padding.Sides
	}
	setNum(&a.ItemSpacing, spec.ItemSpacing)
	if spec.Axis != "" {
		a.Axis = scene.LayoutAxis(spec.Axis)
	}

	if spec.CornerRadius != nil {
		a.CornerRadius = spec.CornerRadius.Sides
	}

	if spec.Fill != "" {
		a.Fill.Value = scene.Color(spec.Fill)
	}
	if spec.FillVar != "" {
		v, ok := d.Variable(spec.FillVar)
		if !ok {
			return fmt.Errorf("node %q: fill-var %q is not declared", n.ID, spec.FillVar)
		}
		a.Fill.Var = v
	}
	setNum(&a.Opacity, spec.Opacity)

	if spec.Stroke != "" {
		a.Stroke.Value = scene.Color(spec.Stroke)
	}
	if spec.StrokeVar != "" {
		v, ok := d.Variable(spec.StrokeVar)
		if !ok {
			return fmt.Errorf("node %q: stroke-var %q is not declared", n.ID, spec.StrokeVar)
		}
		a.Stroke.Var = v
	}
	if spec.StrokeWidth != nil {
		a.StrokeWidth = spec.StrokeWidth.Sides
	}
	if spec.StrokeAlign != "" {
		a.StrokeAlign = scene.StrokeAlign(spec.StrokeAlign)
	}

	if spec.FontFamily != "" {
		a.FontFamily.Value = spec.FontFamily
	}
	if spec.FontFamilyVar != "" {
		v, ok := d.Variable(spec.FontFamilyVar)
		if !ok {
			return fmt.Errorf("node %q: font-family-var %q is not declared", n.ID, spec.FontFamilyVar)
		}
		a.FontFamily.Var = v
	}
	setNum(&a.FontSize, spec.FontSize)
	setNum(&a.LineHeight, spec.LineHeight)
	if spec.Growth != "" {
		a.Growth = scene.TextGrowth(spec.Growth)
	}

	for _, child := range spec.Children {
		if err := buildNode(d, n, &child); err != nil {
			return err
		}
	}
	return nil
}

func setNum(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}
