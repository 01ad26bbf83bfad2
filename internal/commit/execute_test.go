package commit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beaki-design/beaki/internal/props"
	"github.com/beaki-design/beaki/internal/scene"
	"github.com/beaki-design/beaki/internal/testutil"
)

func TestExecute_OneUndoStepPerBatch(t *testing.T) {
	d := scene.NewDocument()
	a := testutil.Rect(t, d, "a", 100, 50)
	b := testutil.Rect(t, d, "b", 120, 50)

	batch := NewPlanner(nil).Plan(props.PropWidth, Number(200), []*scene.Node{a, b})
	require.Len(t, batch, 2)
	require.NoError(t, Execute(d, batch, "edit width"))

	assert.Equal(t, 200.0, a.Authored.Width)
	assert.Equal(t, 200.0, b.Authored.Width)
	require.Equal(t, 1, d.UndoDepth(), "a multi-node edit is a single undo step")

	require.True(t, d.Undo())
	assert.Equal(t, 100.0, a.Authored.Width)
	assert.Equal(t, 120.0, b.Authored.Width)
}

func TestExecute_EmptyBatchIsNoOp(t *testing.T) {
	d := scene.NewDocument()

	require.NoError(t, Execute(d, nil, "edit nothing"))
	assert.Equal(t, 0, d.UndoDepth())

	// An empty batch must not open (or leak) a scope.
	scope, err := d.OpenUpdate()
	require.NoError(t, err)
	scope.Abort()
}

func TestExecute_StageErrorAppliesNothing(t *testing.T) {
	d := scene.NewDocument()
	ours := testutil.Rect(t, d, "ours", 100, 50)

	other := scene.NewDocument()
	foreign := testutil.Rect(t, other, "foreign", 100, 50)

	batch := []Instruction{
		{Target: ours, Patch: Patch{Width: ptr(999.0)}},
		{Target: foreign, Patch: Patch{Width: ptr(999.0)}},
	}

	err := Execute(d, batch, "edit width")
	require.Error(t, err)

	var ee *ExecError
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, ErrCodeStage, ee.Code)

	assert.Equal(t, 100.0, ours.Authored.Width, "a failed batch applies no instruction at all")
	assert.Equal(t, 0, d.UndoDepth())

	// The aborted scope must not wedge the document.
	scope, err := d.OpenUpdate()
	require.NoError(t, err)
	scope.Abort()
}

func TestExecute_BusyDocument(t *testing.T) {
	d := scene.NewDocument()
	n := testutil.Rect(t, d, "r", 100, 50)

	scope, err := d.OpenUpdate()
	require.NoError(t, err)
	defer scope.Abort()

	err = Execute(d, []Instruction{{Target: n, Patch: Patch{Width: ptr(1.0)}}}, "edit width")
	require.Error(t, err)
	assert.True(t, IsBusy(err))
	assert.ErrorIs(t, err, scene.ErrScopeActive)
}

func TestCommitProperty_UsesDocumentSelection(t *testing.T) {
	d := scene.NewDocument()
	a := testutil.Rect(t, d, "a", 100, 50)
	testutil.Rect(t, d, "b", 120, 50)
	testutil.Select(t, d, "a")

	require.NoError(t, NewPlanner(nil).CommitProperty(d, props.PropOpacity, Number(0.5)))
	assert.Equal(t, 0.5, a.Authored.Opacity)

	entry := d.LastJournalEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "edit opacity", entry.Label)
	require.Len(t, entry.Patches, 1, "only the selected node is touched")
}

func TestCommitProperty_MixedPayloadLeavesJournalUntouched(t *testing.T) {
	d := scene.NewDocument()
	testutil.Rect(t, d, "a", 100, 50)
	testutil.Rect(t, d, "b", 120, 50)
	testutil.Select(t, d, "a", "b")

	require.NoError(t, NewPlanner(nil).CommitProperty(d, props.PropWidth, Mixed{}))
	assert.Equal(t, 0, d.UndoDepth())
}

func TestBlockUpdate_AtomicAcrossSelection(t *testing.T) {
	d := scene.NewDocument()
	a := testutil.Rect(t, d, "a", 10, 10)
	b := testutil.Rect(t, d, "b", 10, 10)
	testutil.Select(t, d, "a", "b")

	err := BlockUpdate(d, "swap fill and stroke", func(s *scene.UpdateScope, n *scene.Node) error {
		return s.Update(n, func(p *scene.Properties) {
			p.Fill, p.Stroke = p.Stroke, p.Fill
		})
	})
	require.NoError(t, err)

	assert.Equal(t, scene.Color("#000000"), a.Authored.Fill.Value)
	assert.Equal(t, scene.Color("#cccccc"), a.Authored.Stroke.Value)
	assert.Equal(t, 1, d.UndoDepth())

	require.True(t, d.Undo())
	assert.Equal(t, scene.Color("#cccccc"), b.Authored.Fill.Value)
}
