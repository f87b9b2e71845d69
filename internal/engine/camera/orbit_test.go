package camera

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gregoryw3/open-cv-imgui/internal/engine/transform"
	"github.com/gregoryw3/open-cv-imgui/pkg/math"
)

func TestOrbitLooksAtCenter(t *testing.T) {
	o := NewOrbit()
	o.Center = math.Vec3{X: 1, Y: 2, Z: 3}
	o.Yaw = 0.8
	o.Pitch = 0.4

	tr := transform.New()
	o.Apply(&tr)

	toCenter := o.Center.Sub(tr.Position).Normalize()
	nearVec(t, toCenter, tr.Forward(), 1e-5)
	assert.InDelta(t, o.Distance, tr.Position.Distance(o.Center), 1e-4)
}

func TestOrbitClamps(t *testing.T) {
	o := NewOrbit()

	o.HandleDrag(0, 1e6)
	assert.Equal(t, o.MaxPitch, o.Pitch)
	o.HandleDrag(0, -1e6)
	assert.Equal(t, o.MinPitch, o.Pitch)

	o.HandleZoom(1000)
	assert.Equal(t, o.MinDistance, o.Distance)
	o.HandleZoom(-1e6)
	assert.Equal(t, o.MaxDistance, o.Distance)
}

func TestOrbitFitToBounds(t *testing.T) {
	o := NewOrbit()
	o.FitToBounds(math.Vec3{X: -1, Y: -1, Z: -1}, math.Vec3{X: 3, Y: 1, Z: 1})

	assert.Equal(t, math.Vec3{X: 1}, o.Center)
	assert.Greater(t, o.Distance, float32(0))
}
