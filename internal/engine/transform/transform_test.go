package transform

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gregoryw3/open-cv-imgui/pkg/math"
)

func assertVecNear(t *testing.T, want, got math.Vec3, tol float32) {
	t.Helper()
	if !want.ApproxEqual(got, tol) {
		t.Errorf("want %v, got %v (tol %g)", want, got, tol)
	}
}

func TestIdentityTransform(t *testing.T) {
	tr := New()
	p := math.Vec3{X: 1, Y: 2, Z: 3}

	assert.Equal(t, p, tr.ApplyToPoint(p))
	assert.Equal(t, math.Identity(), tr.Matrix())
}

func TestRotationOrderZYX(t *testing.T) {
	tr := New()
	tr.SetRotation(90, 90, 0)

	// Rx(90) takes +Y to +Z, then Ry(90) takes +Z to +X.
	assertVecNear(t, math.Vec3{X: 1}, tr.ApplyToPoint(math.Vec3{Y: 1}), 1e-6)
}

func TestTranslationAfterRotation(t *testing.T) {
	tr := New()
	tr.SetPosition(10, 0, 0)
	tr.SetRotation(0, 0, 90)

	assertVecNear(t, math.Vec3{X: 10, Y: 1}, tr.ApplyToPoint(math.Vec3{X: 1}), 1e-5)
}

func TestInverseRoundTrip(t *testing.T) {
	points := []math.Vec3{
		{},
		{X: 1, Y: -2, Z: 3},
		{X: -50, Y: 12.5, Z: 0.25},
	}
	transforms := []struct{ pos, rot math.Vec3 }{
		{math.Vec3{}, math.Vec3{}},
		{math.Vec3{X: 3, Y: -1, Z: 7}, math.Vec3{}},
		{math.Vec3{}, math.Vec3{X: 30, Y: 45, Z: 60}},
		{math.Vec3{X: -4, Y: 2, Z: 9}, math.Vec3{X: -170, Y: 89, Z: 12}},
	}

	for i, tc := range transforms {
		t.Run(fmt.Sprintf("transform %d", i), func(t *testing.T) {
			tr := Transform{Position: tc.pos, Rotation: tc.rot}
			for _, p := range points {
				world := tr.ApplyToPoint(p)
				back, err := tr.ApplyInverseToPoint(world)
				require.NoError(t, err)
				assertVecNear(t, p, back, 5e-4)
			}
		})
	}
}

func TestApplyToNormalIgnoresTranslation(t *testing.T) {
	tr := New()
	tr.SetPosition(100, 200, 300)
	tr.SetRotation(0, 90, 0)

	got := tr.ApplyToNormal(math.Vec3{Z: 2})
	assertVecNear(t, math.Vec3{X: 1}, got, 1e-6)
	assert.InDelta(t, 1, got.Length(), 1e-6)
}

func TestSetAxisRotationComposes(t *testing.T) {
	tr := New()
	tr.SetRotation(0, 0, 30)
	tr.SetAxisRotation(math.Vec3{Z: 5}, 45)

	assertVecNear(t, math.Vec3{Z: 75}, tr.Rotation, 1e-3)
}

func TestSetAxisRotationMatchesMatrix(t *testing.T) {
	tr := New()
	tr.SetRotation(10, 20, 30)
	before := tr.RotationMatrix()

	axis := math.Vec3{X: 1, Y: 1, Z: 0}.Normalize()
	tr.SetAxisRotation(axis, 40)

	want := math.RotateAxis(axis, math.Radians(40)).Mul(before)
	assert.True(t, tr.RotationMatrix().ApproxEqual(want, 1e-4), "got %v want %v", tr.RotationMatrix(), want)
}

func TestSetAxisRotationZeroAxisIsNoop(t *testing.T) {
	tr := New()
	tr.SetRotation(1, 2, 3)
	tr.SetAxisRotation(math.Vec3{}, 90)
	assert.Equal(t, math.Vec3{X: 1, Y: 2, Z: 3}, tr.Rotation)
}

func TestSetOrientation(t *testing.T) {
	q := math.QuatFromEuler(0.2, -0.4, 1.1)

	tr := New()
	tr.SetRotation(50, 50, 50)
	tr.SetOrientation(q)

	assert.True(t, tr.RotationMatrix().ApproxEqual(q.ToMat4(), 1e-4))
	assertVecNear(t, math.Vec3{X: math.Degrees(0.2), Y: math.Degrees(-0.4), Z: math.Degrees(1.1)}, tr.Rotation, 1e-2)
}

func TestOrientationMatchesRotationMatrix(t *testing.T) {
	tr := Transform{Rotation: math.Vec3{X: 15, Y: -70, Z: 200}}
	assert.True(t, tr.Orientation().ToMat4().ApproxEqual(tr.RotationMatrix(), 1e-5))
}

func TestForward(t *testing.T) {
	tr := New()
	assertVecNear(t, math.Vec3{Z: -1}, tr.Forward(), 1e-6)

	tr.SetRotation(0, 90, 0)
	assertVecNear(t, math.Vec3{X: -1}, tr.Forward(), 1e-6)
}
