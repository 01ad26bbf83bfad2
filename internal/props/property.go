// Package props defines the closed set of editable properties, which node
// types each property group applies to, and the field extractors that read a
// node's authored+resolved values in canonical form for aggregation.
package props

import "fmt"

// Property identifies one editable property. The set is closed: adding a
// property means extending every switch over Property, and the planner and
// aggregator both treat an unhandled value as a bug, not a runtime fallback.
type Property int

const (
	PropX Property = iota
	PropY
	PropRotation
	PropWidth
	PropHeight

	PropFitWidth
	PropFitHeight
	PropFillWidth
	PropFillHeight

	PropPaddingTop
	PropPaddingRight
	PropPaddingBottom
	PropPaddingLeft
	PropPaddingVertical
	PropPaddingHorizontal
	PropPaddingAll
	PropItemSpacing
	PropAxis

	PropCornerAll
	PropCornerTopLeft
	PropCornerTopRight
	PropCornerBottomRight
	PropCornerBottomLeft

	PropFillColor
	PropOpacity

	PropStrokeColor
	PropStrokeWidthAll
	PropStrokeWidthTop
	PropStrokeWidthRight
	PropStrokeWidthBottom
	PropStrokeWidthLeft
	PropStrokeAlign

	PropFontFamily
	PropFontSize
	PropLineHeight
	PropGrowth

	PropName
	PropAnnotation
)

var propertyNames = map[Property]string{
	PropX:        "x",
	PropY:        "y",
	PropRotation: "rotation",
	PropWidth:    "width",
	PropHeight:   "height",

	PropFitWidth:   "fit-width",
	PropFitHeight:  "fit-height",
	PropFillWidth:  "fill-width",
	PropFillHeight: "fill-height",

	PropPaddingTop:        "padding-top",
	PropPaddingRight:      "padding-right",
	PropPaddingBottom:     "padding-bottom",
	PropPaddingLeft:       "padding-left",
	PropPaddingVertical:   "padding-vertical",
	PropPaddingHorizontal: "padding-horizontal",
	PropPaddingAll:        "padding",
	PropItemSpacing:       "item-spacing",
	PropAxis:              "axis",

	PropCornerAll:         "corner-radius",
	PropCornerTopLeft:     "corner-top-left",
	PropCornerTopRight:    "corner-top-right",
	PropCornerBottomRight: "corner-bottom-right",
	PropCornerBottomLeft:  "corner-bottom-left",

	PropFillColor: "fill",
	PropOpacity:   "opacity",

	PropStrokeColor:       "stroke",
	PropStrokeWidthAll:    "stroke-width",
	PropStrokeWidthTop:    "stroke-width-top",
	PropStrokeWidthRight:  "stroke-width-right",
	PropStrokeWidthBottom: "stroke-width-bottom",
	PropStrokeWidthLeft:   "stroke-width-left",
	PropStrokeAlign:       "stroke-align",

	PropFontFamily: "font-family",
	PropFontSize:   "font-size",
	PropLineHeight: "line-height",
	PropGrowth:     "growth",

	PropName:       "name",
	PropAnnotation: "annotation",
}

var propertiesByName = func() map[string]Property {
	m := make(map[string]Property, len(propertyNames))
	for p, name := range propertyNames {
		m[name] = p
	}
	return m
}()

// String returns the property's stable wire name (used by the CLI and by
// scenario fixtures).
func (p Property) String() string {
	if name, ok := propertyNames[p]; ok {
		return name
	}
	return fmt.Sprintf("Property(%d)", int(p))
}

// ParseProperty resolves a wire name back to its Property.
func ParseProperty(name string) (Property, error) {
	p, ok := propertiesByName[name]
	if !ok {
		return 0, fmt.Errorf("unknown property %q", name)
	}
	return p, nil
}

// All returns every property in declaration order.
func All() []Property {
	out := make([]Property, 0, len(propertyNames))
	for p := PropX; p <= PropAnnotation; p++ {
		out = append(out, p)
	}
	return out
}
