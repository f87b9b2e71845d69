package animation

import (
	"fmt"

	"github.com/gregoryw3/open-cv-imgui/pkg/math"
)

// Curve selects one of the position control polygons.
type Curve int

const (
	// CurveObject moves the displayed mesh.
	CurveObject Curve = iota
	// CurveCamera moves the camera.
	CurveCamera
)

func (c Curve) String() string {
	switch c {
	case CurveObject:
		return "object"
	case CurveCamera:
		return "camera"
	default:
		return fmt.Sprintf("curve(%d)", int(c))
	}
}

// AnimationState holds the control polygons edited by the user and read
// by the animator every frame.
type AnimationState struct {
	Object   []math.Vec3
	Camera   []math.Vec3
	Rotation []math.Quat
}

// DefaultState returns the demo control polygons.
func DefaultState() *AnimationState {
	return &AnimationState{
		Object: []math.Vec3{
			{X: 0, Y: 0, Z: 0},
			{X: 0, Y: 0, Z: 0.987},
			{X: 0, Y: 0, Z: 1.922},
			{X: 0, Y: 0, Z: 0},
			{X: 0, Y: 0, Z: 3.948},
			{X: 0, Y: 0, Z: 0},
			{X: 0, Y: 0, Z: 0},
			{X: 0, Y: 0, Z: 0},
			{X: 0, Y: 0, Z: 2.878},
			{X: 0, Y: 0, Z: 0},
			{X: 0, Y: 0, Z: 0},
			{X: 0, Y: 0, Z: 0},
			{X: 0, Y: 0, Z: 0},
			{X: 0, Y: 0, Z: 0},
			{X: 0, Y: 0, Z: 1.299},
			{X: 0, Y: 0, Z: 0},
			{X: 0, Y: 2.129, Z: 0},
			{X: 0, Y: 3.948, Z: 4},
			{X: 0, Y: 2.398, Z: 4},
			{X: 3.105, Y: 0.935, Z: 4},
			{X: 0, Y: 0, Z: 4},
		},
		Camera: []math.Vec3{
			{X: 0, Y: 2.398, Z: 4},
			{X: 0, Y: 0, Z: 4},
			{X: 3.105, Y: 0.935, Z: 4},
			{X: 0, Y: 0, Z: 4},
		},
		Rotation: []math.Quat{
			math.QuatIdentity(),
			math.QuatFromEuler(math.Radians(100), 0.3, 0),
			math.QuatFromEuler(0, math.Radians(-136), 0),
			math.QuatFromEuler(0, 0, math.Radians(172)),
		},
	}
}

// Clone returns a deep copy.
func (s *AnimationState) Clone() *AnimationState {
	return &AnimationState{
		Object:   append([]math.Vec3(nil), s.Object...),
		Camera:   append([]math.Vec3(nil), s.Camera...),
		Rotation: append([]math.Quat(nil), s.Rotation...),
	}
}

// Validate checks that every polygon can be evaluated.
func (s *AnimationState) Validate() error {
	if err := checkPoints(len(s.Object)); err != nil {
		return fmt.Errorf("object: %w", err)
	}
	if err := checkPoints(len(s.Camera)); err != nil {
		return fmt.Errorf("camera: %w", err)
	}
	if err := checkPoints(len(s.Rotation)); err != nil {
		return fmt.Errorf("rotation: %w", err)
	}
	return nil
}

// Points returns the control polygon for c.
func (s *AnimationState) Points(c Curve) []math.Vec3 {
	switch c {
	case CurveObject:
		return s.Object
	case CurveCamera:
		return s.Camera
	default:
		return nil
	}
}

// MovePoint translates control point i of curve c by delta, as done when
// dragging a control handle.
func (s *AnimationState) MovePoint(c Curve, i int, delta math.Vec3) error {
	pts := s.Points(c)
	if i < 0 || i >= len(pts) {
		return fmt.Errorf("%s control point %d out of range [0, %d)", c, i, len(pts))
	}
	pts[i] = pts[i].Add(delta)
	return nil
}
