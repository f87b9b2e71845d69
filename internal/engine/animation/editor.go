package animation

import "github.com/gregoryw3/open-cv-imgui/pkg/math"

// dragSpan is the world distance covered by dragging across the whole
// window.
const dragSpan = 4

// Editor tracks which control point a shift-drag moves.
type Editor struct {
	Curve Curve
	Index int
}

// Next selects the following control point on the current curve.
func (e *Editor) Next(state *AnimationState) {
	n := len(state.Points(e.Curve))
	if n == 0 {
		e.Index = 0
		return
	}
	e.Index = (e.Index + 1) % n
}

// ToggleCurve switches between the object and camera paths.
func (e *Editor) ToggleCurve(state *AnimationState) {
	if e.Curve == CurveObject {
		e.Curve = CurveCamera
	} else {
		e.Curve = CurveObject
	}
	if e.Index >= len(state.Points(e.Curve)) {
		e.Index = 0
	}
}

// DragDelta converts a mouse motion in pixels into a world-space offset in the
// XY plane. Screen Y grows downward.
func DragDelta(dx, dy float32, width, height int) math.Vec3 {
	if width <= 0 || height <= 0 {
		return math.Vec3{}
	}
	return math.Vec3{
		X: dx / float32(width) * dragSpan,
		Y: -dy / float32(height) * dragSpan,
	}
}

// Drag moves the selected point by a mouse motion. It reports whether the
// store changed.
func (e *Editor) Drag(store *Store, dx, dy float32, width, height int) bool {
	delta := DragDelta(dx, dy, width, height)
	if delta == (math.Vec3{}) {
		return false
	}
	err := store.Update(func(s *AnimationState) error {
		return s.MovePoint(e.Curve, e.Index, delta)
	})
	return err == nil
}
