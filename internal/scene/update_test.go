package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRect(t *testing.T, d *Document, id string) *Node {
	t.Helper()
	n, err := d.NewNode(nil, id, TypeRectangle)
	require.NoError(t, err)
	return n
}

func TestUpdateScope_StagesUntilCommit(t *testing.T) {
	d := NewDocument()
	n := newRect(t, d, "a")

	scope, err := d.OpenUpdate()
	require.NoError(t, err)
	require.NoError(t, scope.Update(n, func(p *Properties) { p.Width = 200 }))

	assert.Equal(t, 0.0, n.Authored.Width, "staged update must not apply before commit")

	require.NoError(t, scope.Commit(CommitOptions{RecordUndo: true, Label: "resize"}))
	assert.Equal(t, 200.0, n.Authored.Width)
	assert.Equal(t, 1, d.UndoDepth())
}

func TestUpdateScope_SingleActiveScope(t *testing.T) {
	d := NewDocument()

	first, err := d.OpenUpdate()
	require.NoError(t, err)

	_, err = d.OpenUpdate()
	assert.ErrorIs(t, err, ErrScopeActive)

	require.NoError(t, first.Commit(CommitOptions{}))

	// Committing releases the document for the next scope.
	second, err := d.OpenUpdate()
	require.NoError(t, err)
	second.Abort()
}

func TestUpdateScope_RejectsForeignNode(t *testing.T) {
	d := NewDocument()
	other := NewDocument()
	foreign := newRect(t, other, "x")

	scope, err := d.OpenUpdate()
	require.NoError(t, err)
	defer scope.Abort()

	err = scope.Update(foreign, func(p *Properties) { p.Width = 1 })
	require.Error(t, err)
}

func TestUpdateScope_CommitTwiceFails(t *testing.T) {
	d := NewDocument()
	scope, err := d.OpenUpdate()
	require.NoError(t, err)

	require.NoError(t, scope.Commit(CommitOptions{}))
	assert.ErrorIs(t, scope.Commit(CommitOptions{}), ErrScopeClosed)
}

func TestUpdateScope_AbortLeavesDocumentUntouched(t *testing.T) {
	d := NewDocument()
	n := newRect(t, d, "a")

	scope, err := d.OpenUpdate()
	require.NoError(t, err)
	require.NoError(t, scope.Update(n, func(p *Properties) { p.Width = 999 }))
	scope.Abort()

	assert.Equal(t, 0.0, n.Authored.Width)
	assert.Equal(t, 0, d.UndoDepth())

	_, err = d.OpenUpdate()
	assert.NoError(t, err, "abort must release the active scope")
}

func TestUpdateScope_MultipleNodesOneUndoStep(t *testing.T) {
	d := NewDocument()
	a := newRect(t, d, "a")
	b := newRect(t, d, "b")

	scope, err := d.OpenUpdate()
	require.NoError(t, err)
	require.NoError(t, scope.Update(a, func(p *Properties) { p.Opacity = 0.5 }))
	require.NoError(t, scope.Update(b, func(p *Properties) { p.Opacity = 0.5 }))
	require.NoError(t, scope.Commit(CommitOptions{RecordUndo: true, Label: "fade"}))

	require.Equal(t, 1, d.UndoDepth(), "one commit is one undo step regardless of node count")
	entry := d.LastJournalEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "fade", entry.Label)
	assert.Len(t, entry.Patches, 2)
}

func TestUndoRedo_RoundTrip(t *testing.T) {
	d := NewDocument()
	n := newRect(t, d, "a")
	n.Authored.Width = 100

	scope, err := d.OpenUpdate()
	require.NoError(t, err)
	require.NoError(t, scope.Update(n, func(p *Properties) { p.Width = 250 }))
	require.NoError(t, scope.Commit(CommitOptions{RecordUndo: true}))

	require.True(t, d.Undo())
	assert.Equal(t, 100.0, n.Authored.Width)

	require.True(t, d.Redo())
	assert.Equal(t, 250.0, n.Authored.Width)

	assert.False(t, d.Redo(), "redo stack is exhausted")
}

func TestUndo_NotRecordedWithoutFlag(t *testing.T) {
	d := NewDocument()
	n := newRect(t, d, "a")

	scope, err := d.OpenUpdate()
	require.NoError(t, err)
	require.NoError(t, scope.Update(n, func(p *Properties) { p.Width = 10 }))
	require.NoError(t, scope.Commit(CommitOptions{RecordUndo: false}))

	assert.Equal(t, 10.0, n.Authored.Width)
	assert.False(t, d.Undo(), "ephemeral commits leave no journal entry")
}

func TestCommit_NewJournalEntryClearsRedo(t *testing.T) {
	d := NewDocument()
	n := newRect(t, d, "a")

	resize := func(w float64) {
		scope, err := d.OpenUpdate()
		require.NoError(t, err)
		require.NoError(t, scope.Update(n, func(p *Properties) { p.Width = w }))
		require.NoError(t, scope.Commit(CommitOptions{RecordUndo: true}))
	}

	resize(10)
	resize(20)
	require.True(t, d.Undo())
	resize(30)

	assert.False(t, d.Redo(), "a new commit invalidates the redo branch")
	assert.Equal(t, 30.0, n.Authored.Width)
}
