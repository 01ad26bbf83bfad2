package harness

import (
	"bytes"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/sebdah/goldie/v2"
)

// RunWithGolden executes a scenario and compares its trace against the
// golden file testdata/golden/{scenario.Name}.golden.
//
// To regenerate golden files:
//
//	go test ./internal/harness -update
//
// The trace uses the aggregator's canonical snapshot encoding, one compact
// JSON document per golden file, so golden equality is snapshot equality,
// field for field.
func RunWithGolden(t *testing.T, scenario *Scenario) error {
	t.Helper()

	result, err := Run(scenario)
	if err != nil {
		return err
	}

	trace, err := traceBytes(scenario, result)
	if err != nil {
		return err
	}

	g := goldie.New(t, goldie.WithFixtureDir("testdata/golden"), goldie.WithNameSuffix(".golden"))
	g.Assert(t, scenario.Name, trace)
	return nil
}

// traceBytes renders the trace as one line of key-stable compact JSON.
func traceBytes(scenario *Scenario, result *Result) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(`{"scenario":`)
	name, err := json.Marshal(scenario.Name)
	if err != nil {
		return nil, err
	}
	buf.Write(name)

	buf.WriteString(`,"before":`)
	before, err := result.Before.CanonicalJSON()
	if err != nil {
		return nil, fmt.Errorf("serialize before-snapshot: %w", err)
	}
	buf.Write(before)

	buf.WriteString(`,"steps":[`)
	for i, step := range result.Steps {
		if i > 0 {
			buf.WriteByte(',')
		}
		after, err := step.After.CanonicalJSON()
		if err != nil {
			return nil, fmt.Errorf("serialize snapshot after %s: %w", step.Property, err)
		}
		fmt.Fprintf(&buf, `{"property":%q,"instructions":%d,"after":%s}`,
			step.Property.String(), step.Instructions, after)
	}
	buf.WriteByte(']')

	if result.AfterUndo != nil {
		buf.WriteString(`,"after-undo":`)
		undone, err := result.AfterUndo.CanonicalJSON()
		if err != nil {
			return nil, fmt.Errorf("serialize after-undo snapshot: %w", err)
		}
		buf.Write(undone)
	}
	buf.WriteByte('}')
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}
