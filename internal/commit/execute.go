package commit

import (
	"fmt"

	"github.com/beaki-design/beaki/internal/props"
	"github.com/beaki-design/beaki/internal/scene"
)

// Execute applies an instruction batch inside exactly one update scope with
// undo recording enabled: one user commit, one undo step.
//
// Atomicity is the scope's guarantee, not this function's: staging errors
// abort before anything is applied, and a committed scope applies every
// staged patch. Instructions target disjoint nodes, so their order is
// irrelevant to the result.
//
// An empty batch is a successful no-op; it does not open a scope and leaves
// the undo journal untouched.
func Execute(doc *scene.Document, instructions []Instruction, label string) error {
	if len(instructions) == 0 {
		return nil
	}

	scope, err := doc.OpenUpdate()
	if err != nil {
		return &ExecError{Code: ErrCodeScopeOpen, Label: label, Instructions: len(instructions), Err: err}
	}

	for _, ins := range instructions {
		if ins.Patch.IsEmpty() {
			continue
		}
		patch := ins.Patch
		if err := scope.Update(ins.Target, patch.Apply); err != nil {
			scope.Abort()
			return &ExecError{Code: ErrCodeStage, Label: label, Instructions: len(instructions), Err: err}
		}
	}

	if err := scope.Commit(scene.CommitOptions{RecordUndo: true, Label: label}); err != nil {
		return &ExecError{Code: ErrCodeCommit, Label: label, Instructions: len(instructions), Err: err}
	}
	return nil
}

// CommitProperty is the single-property write path: plan the edit against
// the document's current selection, then execute the batch. Edits that plan
// to nothing (Mixed payload, rejected input, no applicable node) succeed
// without opening a scope.
func (pl *Planner) CommitProperty(doc *scene.Document, prop props.Property, v Value) error {
	instructions := pl.Plan(prop, v, doc.Selection())
	return Execute(doc, instructions, fmt.Sprintf("edit %s", prop))
}

// BlockUpdate is the escape hatch for editors that need several related
// fields changed atomically (e.g. replacing a gradient's stop list): fn is
// called once per selected node inside a single undoable scope.
func BlockUpdate(doc *scene.Document, label string, fn func(*scene.UpdateScope, *scene.Node) error) error {
	scope, err := doc.OpenUpdate()
	if err != nil {
		return &ExecError{Code: ErrCodeScopeOpen, Label: label, Err: err}
	}

	for _, n := range doc.Selection() {
		if err := fn(scope, n); err != nil {
			scope.Abort()
			return &ExecError{Code: ErrCodeStage, Label: label, Err: err}
		}
	}

	if err := scope.Commit(scene.CommitOptions{RecordUndo: true, Label: label}); err != nil {
		return &ExecError{Code: ErrCodeCommit, Label: label, Err: err}
	}
	return nil
}
