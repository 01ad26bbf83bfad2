package scene

import (
	"errors"
	"fmt"
)

// ErrScopeClosed is returned when an UpdateScope is used after Commit.
var ErrScopeClosed = errors.New("update scope already committed")

// ErrScopeActive is returned by OpenUpdate while another scope is open.
// The engine runs at most one update scope at a time; callers must commit
// the previous scope before opening the next.
var ErrScopeActive = errors.New("another update scope is active")

// CommitOptions controls how an UpdateScope closes.
type CommitOptions struct {
	// RecordUndo pushes the committed patch set onto the undo journal as a
	// single entry. A commit without undo recording is invisible to
	// Undo/Redo (used for ephemeral edits like drag previews).
	RecordUndo bool

	// Label names the journal entry for history display.
	Label string
}

// UpdateScope stages mutations against a document and applies them as one
// atomic batch. Staged updates are validated eagerly in Update and applied
// only in Commit, so a failed Update leaves the document untouched.
type UpdateScope struct {
	doc    *Document
	staged []stagedUpdate
	done   bool
}

type stagedUpdate struct {
	node  *Node
	apply func(*Properties)
}

// JournalEntry is one undo step: the before/after authored records of every
// node touched by a committed scope.
type JournalEntry struct {
	Label   string
	Patches []NodePatch
}

// NodePatch captures one node's authored record before and after a commit.
type NodePatch struct {
	NodeID string
	Before Properties
	After  Properties
}

// OpenUpdate opens a new update scope. The scope must be committed before
// another can be opened.
func (d *Document) OpenUpdate() (*UpdateScope, error) {
	if d.active != nil {
		return nil, ErrScopeActive
	}
	s := &UpdateScope{doc: d}
	d.active = s
	return s, nil
}

// Update stages a mutation of n's authored record. The function runs during
// Commit, not here. Staging the same node more than once is allowed; the
// functions run in staging order against the same record.
func (s *UpdateScope) Update(n *Node, apply func(*Properties)) error {
	if s.done {
		return ErrScopeClosed
	}
	if !s.doc.Contains(n) {
		return fmt.Errorf("update: node %q does not belong to this document", n.ID)
	}
	if apply == nil {
		return errors.New("update: nil apply function")
	}
	s.staged = append(s.staged, stagedUpdate{node: n, apply: apply})
	return nil
}

// Abort closes the scope without applying anything. Safe to call on an
// already-closed scope.
func (s *UpdateScope) Abort() {
	if s.done {
		return
	}
	s.done = true
	s.staged = nil
	s.doc.active = nil
}

// Commit applies every staged update and closes the scope. Targets were
// validated in Update, so application cannot fail part-way: either the scope
// errors before touching the document, or every staged update is applied.
func (s *UpdateScope) Commit(opts CommitOptions) error {
	if s.done {
		return ErrScopeClosed
	}
	s.done = true
	s.doc.active = nil

	if len(s.staged) == 0 {
		return nil
	}

	// Snapshot each distinct node's record once, before any mutation.
	before := make(map[string]Properties)
	order := make([]string, 0, len(s.staged))
	for _, u := range s.staged {
		if _, seen := before[u.node.ID]; !seen {
			before[u.node.ID] = u.node.Authored
			order = append(order, u.node.ID)
		}
	}

	for _, u := range s.staged {
		u.apply(&u.node.Authored)
	}

	if !opts.RecordUndo {
		return nil
	}

	entry := &JournalEntry{Label: opts.Label}
	for _, id := range order {
		n := s.doc.byID[id]
		entry.Patches = append(entry.Patches, NodePatch{
			NodeID: id,
			Before: before[id],
			After:  n.Authored,
		})
	}
	s.doc.undo = append(s.doc.undo, entry)
	s.doc.redo = nil
	return nil
}

// Undo reverts the most recent journal entry. Returns false when the journal
// is empty.
func (d *Document) Undo() bool {
	if len(d.undo) == 0 {
		return false
	}
	entry := d.undo[len(d.undo)-1]
	d.undo = d.undo[:len(d.undo)-1]
	for _, p := range entry.Patches {
		if n, ok := d.byID[p.NodeID]; ok {
			n.Authored = p.Before
		}
	}
	d.redo = append(d.redo, entry)
	return true
}

// Redo re-applies the most recently undone entry.
func (d *Document) Redo() bool {
	if len(d.redo) == 0 {
		return false
	}
	entry := d.redo[len(d.redo)-1]
	d.redo = d.redo[:len(d.redo)-1]
	for _, p := range entry.Patches {
		if n, ok := d.byID[p.NodeID]; ok {
			n.Authored = p.After
		}
	}
	d.undo = append(d.undo, entry)
	return true
}

// UndoDepth returns the number of entries on the undo journal.
func (d *Document) UndoDepth() int { return len(d.undo) }

// LastJournalEntry returns the most recent undo entry, or nil.
func (d *Document) LastJournalEntry() *JournalEntry {
	if len(d.undo) == 0 {
		return nil
	}
	return d.undo[len(d.undo)-1]
}
