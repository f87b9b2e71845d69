// Package transform places meshes, cameras and lights in world space.
package transform

import (
	"errors"

	"github.com/gregoryw3/open-cv-imgui/pkg/math"
)

// ErrSingularMatrix is returned when a transformation cannot be inverted.
var ErrSingularMatrix = errors.New("transformation matrix is singular")

// Transform is a position plus Euler rotation in degrees.
// Matrices are derived on every call and never cached.
type Transform struct {
	Position math.Vec3
	Rotation math.Vec3 // degrees about X, Y, Z
}

// New returns the identity transform.
func New() Transform {
	return Transform{}
}

// SetPosition sets the translation.
func (t *Transform) SetPosition(x, y, z float32) {
	t.Position = math.Vec3{X: x, Y: y, Z: z}
}

// SetRotation sets the Euler angles in degrees.
func (t *Transform) SetRotation(x, y, z float32) {
	t.Rotation = math.Vec3{X: x, Y: y, Z: z}
}

// SetAxisRotation applies a rotation of angleDeg about axis on top of the
// current rotation, then stores the result back as Euler angles.
//
// The Euler round trip is lossy near gimbal lock (Y = +-90 degrees) and
// repeated calls can drift.
func (t *Transform) SetAxisRotation(axis math.Vec3, angleDeg float32) {
	n := axis.Normalize()
	if n == (math.Vec3{}) {
		return
	}
	q := math.QuatFromAxisAngle(n, math.Radians(angleDeg))
	m := q.ToMat4().Mul(t.RotationMatrix())

	x, y, z := m.EulerXYZ()
	t.Rotation = math.Vec3{X: math.Degrees(x), Y: math.Degrees(y), Z: math.Degrees(z)}
}

// SetOrientation replaces the rotation with the one described by q.
func (t *Transform) SetOrientation(q math.Quat) {
	t.Rotation = math.Vec3{}
	angle, axis := q.Normalize().AxisAngle()
	t.SetAxisRotation(axis, math.Degrees(angle))
}

// Orientation returns the rotation as a quaternion.
func (t Transform) Orientation() math.Quat {
	return math.QuatFromEuler(
		math.Radians(t.Rotation.X),
		math.Radians(t.Rotation.Y),
		math.Radians(t.Rotation.Z),
	)
}

// RotationMatrix returns Rz * Ry * Rx.
func (t Transform) RotationMatrix() math.Mat4 {
	rx := math.RotateX(math.Radians(t.Rotation.X))
	ry := math.RotateY(math.Radians(t.Rotation.Y))
	rz := math.RotateZ(math.Radians(t.Rotation.Z))
	return rz.Mul(ry).Mul(rx)
}

// Matrix returns translation * rotation.
func (t Transform) Matrix() math.Mat4 {
	return math.Translate(t.Position.X, t.Position.Y, t.Position.Z).Mul(t.RotationMatrix())
}

// InverseMatrix returns the inverse of Matrix.
func (t Transform) InverseMatrix() (math.Mat4, error) {
	inv, ok := t.Matrix().InverseChecked()
	if !ok {
		return math.Mat4{}, ErrSingularMatrix
	}
	return inv, nil
}

// ApplyToPoint maps a local point to world space.
func (t Transform) ApplyToPoint(p math.Vec3) math.Vec3 {
	return t.Matrix().TransformPoint(p)
}

// ApplyInverseToPoint maps a world point to local space.
func (t Transform) ApplyInverseToPoint(p math.Vec3) (math.Vec3, error) {
	inv, err := t.InverseMatrix()
	if err != nil {
		return math.Vec3{}, err
	}
	return inv.TransformPoint(p), nil
}

// ApplyToNormal rotates a normal into world space. Translation does not
// affect normals and scale is not supported.
func (t Transform) ApplyToNormal(n math.Vec3) math.Vec3 {
	return t.RotationMatrix().TransformDirection(n).Normalize()
}

// Forward returns the world-space direction of local -Z.
func (t Transform) Forward() math.Vec3 {
	return t.ApplyToNormal(math.Vec3{Z: -1})
}
