package commit

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beaki-design/beaki/internal/props"
	"github.com/beaki-design/beaki/internal/scene"
	"github.com/beaki-design/beaki/internal/testutil"
)

func TestPlan_MixedSentinelIsNoOp(t *testing.T) {
	d := scene.NewDocument()
	a := testutil.Rect(t, d, "a", 100, 50)
	b := testutil.Rect(t, d, "b", 120, 50)

	batch := NewPlanner(nil).Plan(props.PropWidth, Mixed{}, []*scene.Node{a, b})
	assert.Empty(t, batch, "confirming a disagreeing field without typing must change nothing")
}

func TestPlan_CornerReconstructsQuad(t *testing.T) {
	d := scene.NewDocument()
	n := testutil.Rect(t, d, "r", 100, 50)
	n.Authored.CornerRadius = scene.UniformSides(4)

	batch := NewPlanner(nil).Plan(props.PropCornerTopLeft, Number(8), []*scene.Node{n})
	require.Len(t, batch, 1)

	got := batch[0].Patch.CornerRadius
	require.NotNil(t, got)
	assert.Equal(t, scene.SidesQuad, got.Kind)
	assert.Equal(t, [4]float64{8, 4, 4, 4}, got.Quad,
		"only the edited corner changes, the uniform shape expands losslessly")
}

func TestPlan_CornerAllKeepsUniformShape(t *testing.T) {
	d := scene.NewDocument()
	n := testutil.Rect(t, d, "r", 100, 50)
	n.Authored.CornerRadius = scene.QuadSides(1, 2, 3, 4)

	batch := NewPlanner(nil).Plan(props.PropCornerAll, Number(6), []*scene.Node{n})
	require.Len(t, batch, 1)
	assert.Equal(t, scene.UniformSides(6), *batch[0].Patch.CornerRadius)
}

func TestPlan_PaddingEdgeFromPairEncoding(t *testing.T) {
	d := scene.NewDocument()
	n := testutil.Node(t, d, nil, "f", scene.TypeFrame)
	n.Authored.Padding = scene.PairSides(4, 12) // vertical 4, horizontal 12

	batch := NewPlanner(nil).Plan(props.PropPaddingLeft, Number(2), []*scene.Node{n})
	require.Len(t, batch, 1)

	got := batch[0].Patch.Padding
	require.NotNil(t, got)
	assert.Equal(t, [4]float64{4, 12, 4, 2}, got.Quad)
}

func TestPlan_PaddingAxisEditsBothEdges(t *testing.T) {
	d := scene.NewDocument()
	n := testutil.Node(t, d, nil, "f", scene.TypeFrame)
	n.Authored.Padding = scene.QuadSides(1, 2, 3, 4)

	batch := NewPlanner(nil).Plan(props.PropPaddingVertical, Number(9), []*scene.Node{n})
	require.Len(t, batch, 1)
	assert.Equal(t, [4]float64{9, 2, 9, 4}, batch[0].Patch.Padding.Quad)
}

func TestPlan_RotationDegreesToRadians(t *testing.T) {
	d := scene.NewDocument()
	n := testutil.Rect(t, d, "r", 10, 10)

	batch := NewPlanner(nil).Plan(props.PropRotation, Number(45), []*scene.Node{n})
	require.Len(t, batch, 1)
	require.NotNil(t, batch[0].Patch.Rotation)
	assert.InDelta(t, 45*math.Pi/180, *batch[0].Patch.Rotation, 1e-12)
}

func TestPlan_NumericPayloadFailsClosed(t *testing.T) {
	d := scene.NewDocument()
	n := testutil.Rect(t, d, "r", 10, 10)
	sel := []*scene.Node{n}
	pl := NewPlanner(nil)

	assert.Empty(t, pl.Plan(props.PropWidth, Number(math.NaN()), sel))
	assert.Empty(t, pl.Plan(props.PropWidth, Number(math.Inf(1)), sel))
	assert.Empty(t, pl.Plan(props.PropWidth, Text("wide"), sel),
		"wrong payload variant plans to nothing, never to zero")
}

func TestPlan_SkipsInapplicableNodes(t *testing.T) {
	d := scene.NewDocument()
	rect := testutil.Rect(t, d, "r", 100, 50)
	text := testutil.Text(t, d, "t", "Inter", 14)

	batch := NewPlanner(nil).Plan(props.PropFontSize, Number(18), []*scene.Node{rect, text})
	require.Len(t, batch, 1)
	assert.Same(t, text, batch[0].Target)
	assert.Equal(t, 18.0, *batch[0].Patch.FontSize)
}

func TestPlan_PositionAppliesDeltaToAuthoredOffset(t *testing.T) {
	d := scene.NewDocument()
	parent := testutil.Node(t, d, nil, "p", scene.TypeFrame)
	parent.Authored.X = 40
	parent.Authored.Width = 200
	parent.Authored.Height = 100

	child := testutil.Node(t, d, parent, "c", scene.TypeRectangle)
	child.Authored.X = 10
	child.Authored.Width = 20
	child.Authored.Height = 20

	batch := NewPlanner(nil).Plan(props.PropX, Number(25), []*scene.Node{child})
	require.Len(t, batch, 1)
	require.NotNil(t, batch[0].Patch.X)
	assert.InDelta(t, 25.0, *batch[0].Patch.X, 1e-9,
		"the authored offset shifts by the derived-position delta")
}

func TestPlan_SizingToggleOnRectanglesLeavesBoundsAlone(t *testing.T) {
	d := scene.NewDocument()
	a := testutil.Rect(t, d, "a", 100, 50)
	b := testutil.Rect(t, d, "b", 120, 50)

	batch := NewPlanner(nil).Plan(props.PropFitWidth, Bool(true), []*scene.Node{a, b})
	require.Len(t, batch, 2, "one instruction per selected rectangle")

	for _, ins := range batch {
		p := ins.Patch
		require.NotNil(t, p.SizingH)
		assert.Equal(t, scene.SizingFitContent, *p.SizingH)
		assert.Nil(t, p.SizingV, "only the toggled axis changes")
		assert.Nil(t, p.Width, "non-text nodes keep their authored bounds")
		assert.Nil(t, p.Height)
		assert.Nil(t, p.Growth)
	}
}

func TestPlan_SizingToggleOnAutoTextPinsBounds(t *testing.T) {
	d := scene.NewDocument()
	n := testutil.Text(t, d, "t", "Inter", 14)
	n.Authored.Width = 80
	n.Authored.Height = 40
	n.Authored.Growth = scene.GrowthAuto

	batch := NewPlanner(nil).Plan(props.PropFitWidth, Bool(true), []*scene.Node{n})
	require.Len(t, batch, 1)

	p := batch[0].Patch
	require.NotNil(t, p.SizingH)
	assert.Equal(t, scene.SizingFitContent, *p.SizingH)
	require.NotNil(t, p.Width)
	assert.InDelta(t, 80.0, *p.Width, 1e-9)
	require.NotNil(t, p.Height)
	assert.InDelta(t, 40.0, *p.Height, 1e-9)
	require.NotNil(t, p.Growth)
	assert.Equal(t, scene.GrowthFixedWidth, *p.Growth)
}

func TestPlan_SizingToggleOnFixedWidthText(t *testing.T) {
	d := scene.NewDocument()
	n := testutil.Text(t, d, "t", "Inter", 14)
	n.Authored.Width = 80
	n.Authored.Height = 40
	n.Authored.Growth = scene.GrowthFixedWidth

	t.Run("horizontal toggle leaves bounds alone", func(t *testing.T) {
		batch := NewPlanner(nil).Plan(props.PropFitWidth, Bool(true), []*scene.Node{n})
		require.Len(t, batch, 1)
		p := batch[0].Patch
		assert.Nil(t, p.Width, "width is already explicit for fixed-width text")
		assert.Nil(t, p.Height)
		assert.Nil(t, p.Growth)
	})

	t.Run("vertical toggle pins height and upgrades growth", func(t *testing.T) {
		batch := NewPlanner(nil).Plan(props.PropFitHeight, Bool(true), []*scene.Node{n})
		require.Len(t, batch, 1)
		p := batch[0].Patch
		require.NotNil(t, p.Height)
		assert.InDelta(t, 40.0, *p.Height, 1e-9)
		require.NotNil(t, p.Growth)
		assert.Equal(t, scene.GrowthFixedSize, *p.Growth)
	})
}

func TestPlan_ColorPayloads(t *testing.T) {
	d := scene.NewDocument()
	brand := d.DefineColorVariable("brand", "#ff6600")
	n := testutil.Rect(t, d, "r", 10, 10)
	n.Authored.Fill = scene.ColorField{Value: "#112233", Var: brand}
	sel := []*scene.Node{n}
	pl := NewPlanner(nil)

	t.Run("literal detaches the binding", func(t *testing.T) {
		batch := pl.Plan(props.PropFillColor, ColorLiteral("#0000ff"), sel)
		require.Len(t, batch, 1)
		f := batch[0].Patch.Fill
		require.NotNil(t, f)
		assert.Equal(t, scene.Color("#0000ff"), f.Value)
		assert.Nil(t, f.Var)
	})

	t.Run("binding keeps the resolved value as fallback", func(t *testing.T) {
		batch := pl.Plan(props.PropFillColor, Binding{Var: brand}, sel)
		require.Len(t, batch, 1)
		f := batch[0].Patch.Fill
		require.NotNil(t, f)
		assert.Same(t, brand, f.Var)
		assert.Equal(t, scene.Color("#ff6600"), f.Value)
	})

	t.Run("revert freezes the resolved value as a literal", func(t *testing.T) {
		batch := pl.Plan(props.PropFillColor, Revert{}, sel)
		require.Len(t, batch, 1)
		f := batch[0].Patch.Fill
		require.NotNil(t, f)
		assert.Nil(t, f.Var)
		assert.Equal(t, scene.Color("#ff6600"), f.Value,
			"revert writes what the variable currently resolves to")
	})

	t.Run("text variable rejected for a color slot", func(t *testing.T) {
		heading := d.DefineTextVariable("heading", "Inter")
		batch := pl.Plan(props.PropFillColor, Binding{Var: heading}, sel)
		assert.Empty(t, batch)
	})
}

func TestPlan_MetadataRequiresSingleSelection(t *testing.T) {
	d := scene.NewDocument()
	a := testutil.Rect(t, d, "a", 10, 10)
	b := testutil.Rect(t, d, "b", 10, 10)
	pl := NewPlanner(nil)

	assert.Empty(t, pl.Plan(props.PropName, Text("Card"), []*scene.Node{a, b}))

	batch := pl.Plan(props.PropName, Text("Card"), []*scene.Node{a})
	require.Len(t, batch, 1)
	assert.Equal(t, "Card", *batch[0].Patch.Name)
}

func TestPlan_OpacityClampsToUnitRange(t *testing.T) {
	d := scene.NewDocument()
	n := testutil.Rect(t, d, "r", 10, 10)
	pl := NewPlanner(nil)

	batch := pl.Plan(props.PropOpacity, Number(1.4), []*scene.Node{n})
	require.Len(t, batch, 1)
	assert.Equal(t, 1.0, *batch[0].Patch.Opacity)

	batch = pl.Plan(props.PropOpacity, Number(-0.2), []*scene.Node{n})
	require.Len(t, batch, 1)
	assert.Equal(t, 0.0, *batch[0].Patch.Opacity)
}

func TestPlan_EnumPayloadsValidated(t *testing.T) {
	d := scene.NewDocument()
	frame := testutil.Node(t, d, nil, "f", scene.TypeFrame)
	pl := NewPlanner(nil)

	batch := pl.Plan(props.PropAxis, Text("vertical"), []*scene.Node{frame})
	require.Len(t, batch, 1)
	assert.Equal(t, scene.AxisVertical, *batch[0].Patch.Axis)

	assert.Empty(t, pl.Plan(props.PropAxis, Text("diagonal"), []*scene.Node{frame}))
	assert.Empty(t, pl.Plan(props.PropStrokeAlign, Text("everywhere"), []*scene.Node{frame}))
}
