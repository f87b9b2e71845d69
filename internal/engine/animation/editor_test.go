package animation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gregoryw3/open-cv-imgui/pkg/math"
)

func TestDragDelta(t *testing.T) {
	d := DragDelta(100, 50, 400, 200)
	assert.InDelta(t, 1, d.X, 1e-6)
	assert.InDelta(t, -1, d.Y, 1e-6)
	assert.Zero(t, d.Z)

	assert.Equal(t, math.Vec3{}, DragDelta(10, 10, 0, 100))
}

func TestEditorSelection(t *testing.T) {
	state := DefaultState()
	var e Editor
	assert.Equal(t, CurveObject, e.Curve)

	for i, n := 0, len(state.Object); i < n; i++ {
		e.Next(state)
	}
	assert.Equal(t, 0, e.Index, "selection wraps around")

	e.Index = 10
	e.ToggleCurve(state)
	assert.Equal(t, CurveCamera, e.Curve)
	assert.Equal(t, 0, e.Index, "index clamps to the shorter camera curve")

	e.Next(state)
	e.ToggleCurve(state)
	assert.Equal(t, CurveObject, e.Curve)
	assert.Equal(t, 1, e.Index)
}

func TestEditorDrag(t *testing.T) {
	store := NewStore(DefaultState())
	before := store.Load().Camera[2]

	e := Editor{Curve: CurveCamera, Index: 2}
	assert.True(t, e.Drag(store, 200, 0, 400, 400))
	after := store.Load().Camera[2]
	assert.InDelta(t, before.X+2, after.X, 1e-5)
	assert.Equal(t, before.Y, after.Y)

	assert.False(t, e.Drag(store, 0, 0, 400, 400), "no motion, no edit")

	e.Index = 99
	assert.False(t, e.Drag(store, 5, 5, 400, 400))
	assert.Equal(t, after, store.Load().Camera[2])
}
