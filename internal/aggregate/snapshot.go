// Package aggregate implements the read path of the inspector: one pass over
// the current selection that collapses every property group into a
// consolidated snapshot of concrete values, Mixed sentinels, and absent
// groups.
package aggregate

import (
	"github.com/beaki-design/beaki/internal/merge"
	"github.com/beaki-design/beaki/internal/scene"
)

// Snapshot is the consolidated view of one selection. Each field is either
// unset (no applicable node in the selection — the panel hides the control),
// Mixed (the selection disagrees), or one concrete agreed value.
//
// Snapshots are immutable: re-running ComputeAllProperties is the only way
// to observe changed selection or node state. There is deliberately no
// incremental update path.
type Snapshot struct {
	Count int

	// Geometry, derived from world transforms.
	X        merge.Field[float64]
	Y        merge.Field[float64]
	Rotation merge.Field[float64]
	Width    merge.Field[float64]
	Height   merge.Field[float64]

	SizingH merge.Field[scene.SizingMode]
	SizingV merge.Field[scene.SizingMode]

	Padding     merge.Field[[4]float64]
	ItemSpacing merge.Field[float64]
	Axis        merge.Field[scene.LayoutAxis]

	CornerRadius merge.Field[[4]float64]

	Fill    merge.Field[merge.Dual[scene.Color]]
	Opacity merge.Field[float64]

	Stroke      merge.Field[merge.Dual[scene.Color]]
	StrokeWidth merge.Field[[4]float64]
	StrokeAlign merge.Field[scene.StrokeAlign]

	FontFamily merge.Field[merge.Dual[string]]
	FontSize   merge.Field[float64]
	LineHeight merge.Field[float64]
	Growth     merge.Field[scene.TextGrowth]

	// Metadata is reported only for single selections; for multi-node
	// selections these stay unset (absent, not Mixed — metadata is not
	// bulk-editable).
	Name       merge.Field[string]
	Annotation merge.Field[string]
}
