package harness

import (
	"fmt"
	"strings"

	"github.com/beaki-design/beaki/internal/aggregate"
	"github.com/beaki-design/beaki/internal/commit"
	"github.com/beaki-design/beaki/internal/fixture"
	"github.com/beaki-design/beaki/internal/props"
	"github.com/beaki-design/beaki/internal/scene"
)

// StepResult is the outcome of one edit: how many instructions the planner
// emitted and the snapshot after execution.
type StepResult struct {
	Property     props.Property
	Instructions int
	After        aggregate.Snapshot
}

// Result is the full trace of a scenario run.
type Result struct {
	Doc       *scene.Document
	Before    aggregate.Snapshot
	Steps     []StepResult
	AfterUndo *aggregate.Snapshot
}

// Run executes a scenario and returns its trace.
func Run(s *Scenario) (*Result, error) {
	raw, err := s.fixtureBytes()
	if err != nil {
		return nil, err
	}
	doc, err := fixture.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", s.Name, err)
	}
	if len(s.Selection) > 0 {
		if err := doc.Select(s.Selection...); err != nil {
			return nil, fmt.Errorf("scenario %s: %w", s.Name, err)
		}
	}

	res := &Result{
		Doc:    doc,
		Before: aggregate.ComputeAllProperties(doc.Selection()),
	}

	planner := commit.NewPlanner(nil)
	for _, e := range s.Edits {
		prop, err := props.ParseProperty(e.Property)
		if err != nil {
			return nil, fmt.Errorf("scenario %s: %w", s.Name, err)
		}
		payload, err := DecodeValue(doc, e.Value)
		if err != nil {
			return nil, fmt.Errorf("scenario %s, edit %s: %w", s.Name, e.Property, err)
		}

		instructions := planner.Plan(prop, payload, doc.Selection())
		if err := commit.Execute(doc, instructions, fmt.Sprintf("edit %s", prop)); err != nil {
			return nil, fmt.Errorf("scenario %s, edit %s: %w", s.Name, e.Property, err)
		}

		res.Steps = append(res.Steps, StepResult{
			Property:     prop,
			Instructions: len(instructions),
			After:        aggregate.ComputeAllProperties(doc.Selection()),
		})
	}

	if s.Undo {
		for doc.Undo() {
		}
		snap := aggregate.ComputeAllProperties(doc.Selection())
		res.AfterUndo = &snap
	}
	return res, nil
}

// DecodeValue maps a YAML scalar onto a commit payload; see Edit for the
// encoding rules.
func DecodeValue(doc *scene.Document, v any) (commit.Value, error) {
	switch val := v.(type) {
	case bool:
		return commit.Bool(val), nil
	case int:
		return commit.Number(val), nil
	case float64:
		return commit.Number(val), nil
	case string:
		switch {
		case val == "$mixed":
			return commit.Mixed{}, nil
		case val == "$revert":
			return commit.Revert{}, nil
		case strings.HasPrefix(val, "$var:"):
			name := strings.TrimPrefix(val, "$var:")
			variable, ok := doc.Variable(name)
			if !ok {
				return nil, fmt.Errorf("variable %q is not declared", name)
			}
			return commit.Binding{Var: variable}, nil
		case strings.HasPrefix(val, "#"):
			return commit.ColorLiteral(val), nil
		default:
			return commit.Text(val), nil
		}
	default:
		return nil, fmt.Errorf("unsupported edit value %v (%T)", v, v)
	}
}
