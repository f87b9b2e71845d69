// Package lighting provides point lights and the CPU-side Phong
// illumination model used to shade mesh vertices.
package lighting

import (
	"github.com/gregoryw3/open-cv-imgui/internal/engine/transform"
	"github.com/gregoryw3/open-cv-imgui/pkg/math"
)

// PointLight is an omnidirectional light. Only the position of its
// transform is used.
type PointLight struct {
	Transform transform.Transform
	Intensity float32
	Color     math.Vec3 // RGB, not clamped
}

// NewPointLight creates a white light of the given intensity at pos.
func NewPointLight(pos math.Vec3, intensity float32) PointLight {
	l := PointLight{
		Transform: transform.New(),
		Intensity: intensity,
		Color:     math.Vec3{X: 1, Y: 1, Z: 1},
	}
	l.Transform.Position = pos
	return l
}

// Position returns the light position in world space.
func (l PointLight) Position() math.Vec3 {
	return l.Transform.Position
}
