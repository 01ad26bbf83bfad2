package aggregate

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	"golang.org/x/text/unicode/norm"

	"github.com/beaki-design/beaki/internal/merge"
	"github.com/beaki-design/beaki/internal/scene"
)

// MixedToken is how a Mixed field renders in serialized snapshots.
const MixedToken = "mixed"

// CanonicalJSON serializes the snapshot deterministically: object keys
// sorted, strings NFC-normalized, no HTML escaping, floats in shortest
// round-trip form. Unset fields are omitted entirely (the panel hides those
// controls); Mixed fields render as the MixedToken string.
//
// Golden tests and the CLI both consume this encoding, so byte equality of
// two serialized snapshots is the same as snapshot equality.
func (s Snapshot) CanonicalJSON() ([]byte, error) {
	return marshalCanonical(s.canonicalMap())
}

// canonicalMap flattens the snapshot into plain Go values.
func (s Snapshot) canonicalMap() map[string]any {
	m := map[string]any{
		"count": s.Count,
	}

	putNum(m, "x", s.X)
	putNum(m, "y", s.Y)
	putNum(m, "rotation", s.Rotation)
	putNum(m, "width", s.Width)
	putNum(m, "height", s.Height)

	putString(m, "sizing-horizontal", s.SizingH)
	putString(m, "sizing-vertical", s.SizingV)

	putQuad(m, "padding", s.Padding)
	putNum(m, "item-spacing", s.ItemSpacing)
	putString(m, "axis", s.Axis)

	putQuad(m, "corner-radius", s.CornerRadius)

	putDual(m, "fill", s.Fill)
	putNum(m, "opacity", s.Opacity)

	putDual(m, "stroke", s.Stroke)
	putQuad(m, "stroke-width", s.StrokeWidth)
	putString(m, "stroke-align", s.StrokeAlign)

	putDualString(m, "font-family", s.FontFamily)
	putNum(m, "font-size", s.FontSize)
	putNum(m, "line-height", s.LineHeight)
	putString(m, "growth", s.Growth)

	putString(m, "name", s.Name)
	putString(m, "annotation", s.Annotation)

	return m
}

func putNum(m map[string]any, key string, f merge.Field[float64]) {
	if !f.IsSet() {
		return
	}
	if f.IsMixed() {
		m[key] = MixedToken
		return
	}
	v, _ := f.Value()
	m[key] = v
}

func putQuad(m map[string]any, key string, f merge.Field[[4]float64]) {
	if !f.IsSet() {
		return
	}
	if f.IsMixed() {
		m[key] = MixedToken
		return
	}
	q, _ := f.Value()
	m[key] = []any{q[0], q[1], q[2], q[3]}
}

func putString[T ~string](m map[string]any, key string, f merge.Field[T]) {
	if !f.IsSet() {
		return
	}
	if f.IsMixed() {
		m[key] = MixedToken
		return
	}
	v, _ := f.Value()
	m[key] = string(v)
}

func putDual(m map[string]any, key string, f merge.Field[merge.Dual[scene.Color]]) {
	if !f.IsSet() {
		return
	}
	if f.IsMixed() {
		m[key] = MixedToken
		return
	}
	d, _ := f.Value()
	entry := map[string]any{"value": string(d.Resolved)}
	if d.Var != nil {
		entry["var"] = d.Var.Name
	}
	m[key] = entry
}

func putDualString(m map[string]any, key string, f merge.Field[merge.Dual[string]]) {
	if !f.IsSet() {
		return
	}
	if f.IsMixed() {
		m[key] = MixedToken
		return
	}
	d, _ := f.Value()
	entry := map[string]any{"value": d.Resolved}
	if d.Var != nil {
		entry["var"] = d.Var.Name
	}
	m[key] = entry
}

// marshalCanonical renders plain Go values (string, bool, int, float64,
// []any, map[string]any) as deterministic JSON.
func marshalCanonical(v any) ([]byte, error) {
	switch val := v.(type) {
	case string:
		return marshalCanonicalString(val)
	case bool:
		if val {
			return []byte("true"), nil
		}
		return []byte("false"), nil
	case int:
		return []byte(strconv.Itoa(val)), nil
	case float64:
		return []byte(strconv.FormatFloat(val, 'g', -1, 64)), nil
	case []any:
		var buf bytes.Buffer
		buf.WriteByte('[')
		for i, elem := range val {
			if i > 0 {
				buf.WriteByte(',')
			}
			b, err := marshalCanonical(elem)
			if err != nil {
				return nil, fmt.Errorf("array[%d]: %w", i, err)
			}
			buf.Write(b)
		}
		buf.WriteByte(']')
		return buf.Bytes(), nil
	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		var buf bytes.Buffer
		buf.WriteByte('{')
		for i, k := range keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			kb, err := marshalCanonicalString(k)
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", k, err)
			}
			buf.Write(kb)
			buf.WriteByte(':')
			vb, err := marshalCanonical(val[k])
			if err != nil {
				return nil, fmt.Errorf("value for key %q: %w", k, err)
			}
			buf.Write(vb)
		}
		buf.WriteByte('}')
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("unsupported type for canonical JSON: %T", v)
	}
}

// marshalCanonicalString encodes a string NFC-normalized and without HTML
// escaping, so snapshot bytes are stable across Go versions and platforms.
func marshalCanonicalString(s string) ([]byte, error) {
	normalized := norm.NFC.String(s)

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(normalized); err != nil {
		return nil, err
	}
	out := buf.Bytes()
	if len(out) > 0 && out[len(out)-1] == '\n' {
		out = out[:len(out)-1]
	}
	return out, nil
}
