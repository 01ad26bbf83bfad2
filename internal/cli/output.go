package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/beaki-design/beaki/internal/aggregate"
)

// writeSnapshot renders a snapshot in the selected format. JSON output is
// the canonical encoding, indented; text output is one "key: value" line
// per set field, key-sorted.
func writeSnapshot(w io.Writer, snap aggregate.Snapshot, format string) error {
	raw, err := snap.CanonicalJSON()
	if err != nil {
		return fmt.Errorf("serialize snapshot: %w", err)
	}

	if format == "json" {
		var indented bytes.Buffer
		if err := json.Indent(&indented, raw, "", "  "); err != nil {
			return err
		}
		indented.WriteByte('\n')
		_, err = w.Write(indented.Bytes())
		return err
	}

	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return err
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if _, err := fmt.Fprintf(w, "%-18s %v\n", k+":", renderValue(fields[k])); err != nil {
			return err
		}
	}
	return nil
}

func renderValue(v any) string {
	switch val := v.(type) {
	case map[string]any:
		if name, ok := val["var"].(string); ok {
			return fmt.Sprintf("%v (var %s)", val["value"], name)
		}
		return fmt.Sprintf("%v", val["value"])
	case []any:
		return fmt.Sprintf("%v", val)
	default:
		return fmt.Sprintf("%v", v)
	}
}
