package camera

import (
	"github.com/chewxy/math32"

	"github.com/gregoryw3/open-cv-imgui/internal/engine/transform"
	"github.com/gregoryw3/open-cv-imgui/pkg/math"
)

// Orbit places a camera transform on a sphere around a center point,
// looking at the center. It is driven by mouse drag and scroll input.
type Orbit struct {
	Center math.Vec3

	// Spherical coordinates
	Distance float32 // Distance from center
	Pitch    float32 // Elevation above the XZ plane (radians)
	Yaw      float32 // Rotation around Y (radians)

	// Constraints
	MinDistance float32
	MaxDistance float32
	MinPitch    float32
	MaxPitch    float32

	// Sensitivity
	DragSensitivity float32
	ZoomSensitivity float32
}

// NewOrbit creates an orbit controller with default settings.
func NewOrbit() *Orbit {
	return &Orbit{
		Distance:        4.0,
		Pitch:           0.3,
		MinDistance:     0.5,
		MaxDistance:     100.0,
		MinPitch:        -1.5,
		MaxPitch:        1.5,
		DragSensitivity: 0.005,
		ZoomSensitivity: 0.1,
	}
}

// Position returns the eye position in world space.
func (o *Orbit) Position() math.Vec3 {
	sp, cp := math32.Sincos(o.Pitch)
	sy, cy := math32.Sincos(o.Yaw)
	return o.Center.Add(math.Vec3{
		X: o.Distance * cp * sy,
		Y: o.Distance * sp,
		Z: o.Distance * cp * cy,
	})
}

// Apply writes the eye position and a rotation facing the center into t.
func (o *Orbit) Apply(t *transform.Transform) {
	t.Position = o.Position()
	t.SetRotation(-math.Degrees(o.Pitch), math.Degrees(o.Yaw), 0)
}

// HandleDrag updates rotation based on mouse drag delta.
func (o *Orbit) HandleDrag(deltaX, deltaY float32) {
	o.Yaw -= deltaX * o.DragSensitivity
	o.Pitch += deltaY * o.DragSensitivity
	o.Pitch = min(max(o.Pitch, o.MinPitch), o.MaxPitch)
}

// HandleZoom updates distance based on scroll wheel delta.
func (o *Orbit) HandleZoom(delta float32) {
	o.Distance -= delta * o.Distance * o.ZoomSensitivity
	o.Distance = min(max(o.Distance, o.MinDistance), o.MaxDistance)
}

// FitToBounds centers the orbit on a bounding box and backs off far
// enough to see all of it.
func (o *Orbit) FitToBounds(lo, hi math.Vec3) {
	o.Center = lo.Add(hi).Scale(0.5)
	o.Distance = min(max(hi.Sub(lo).Length()*1.5, o.MinDistance), o.MaxDistance)
}
