// Package camera projects world-space points to normalized device
// coordinates and back, for orthographic and perspective cameras.
package camera

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"

	"github.com/gregoryw3/open-cv-imgui/internal/engine/transform"
	"github.com/gregoryw3/open-cv-imgui/pkg/math"
)

// Camera errors.
var (
	ErrInvalidFrustum     = errors.New("invalid frustum")
	ErrSingularProjection = errors.New("singular projection")
	ErrBehindCamera       = errors.New("point is behind the camera")
)

// minW is the smallest homogeneous w accepted by a perspective divide.
const minW = 1e-7

// Camera is implemented by OrthoCamera and PerspectiveCamera.
type Camera interface {
	// Ratio returns width / height of the frustum.
	Ratio() float32
	// ProjectPoint maps a world-space point to NDC.
	ProjectPoint(p math.Vec3) (math.Vec3, error)
	// InverseProjectPoint maps an NDC point back to world space.
	InverseProjectPoint(p math.Vec3) (math.Vec3, error)
	// Projection returns the projection matrix.
	Projection() math.Mat4
	// Transform returns the camera placement, mutable by the caller.
	Transform() *transform.Transform
}

// Bounds are the six planes of a view volume in camera space.
type Bounds struct {
	Left, Right float32
	Bottom, Top float32
	Near, Far   float32
}

// Width returns right - left.
func (b Bounds) Width() float32 { return b.Right - b.Left }

// Height returns top - bottom.
func (b Bounds) Height() float32 { return b.Top - b.Bottom }

// Ratio returns width / height.
func (b Bounds) Ratio() float32 { return b.Width() / b.Height() }

func (b Bounds) validate(perspective bool) error {
	switch {
	case b.Width() == 0:
		return fmt.Errorf("%w: zero width", ErrInvalidFrustum)
	case b.Height() == 0:
		return fmt.Errorf("%w: zero height", ErrInvalidFrustum)
	case b.Near >= b.Far:
		return fmt.Errorf("%w: near %v >= far %v", ErrInvalidFrustum, b.Near, b.Far)
	case perspective && b.Near <= 0:
		return fmt.Errorf("%w: perspective near %v <= 0", ErrInvalidFrustum, b.Near)
	}
	return nil
}

// base holds what both camera variants share.
type base struct {
	Bounds
	transform  transform.Transform
	projection math.Mat4
	inverse    math.Mat4
}

func newBase(b Bounds, projection math.Mat4) (base, error) {
	inv, ok := projection.InverseChecked()
	if !ok {
		return base{}, ErrSingularProjection
	}
	return base{
		Bounds:     b,
		transform:  transform.New(),
		projection: projection,
		inverse:    inv,
	}, nil
}

// Projection implements Camera.
func (c *base) Projection() math.Mat4 { return c.projection }

// Transform implements Camera.
func (c *base) Transform() *transform.Transform { return &c.transform }

// View returns the world-to-camera matrix.
func (c *base) View() (math.Mat4, error) {
	return c.transform.InverseMatrix()
}

// toCamera maps a world point into camera space.
func (c *base) toCamera(p math.Vec3) (math.Vec3, error) {
	cp, err := c.transform.ApplyInverseToPoint(p)
	if err != nil {
		return math.Vec3{}, fmt.Errorf("%w: %w", ErrSingularProjection, err)
	}
	return cp, nil
}

// OrthoCamera is a parallel projection camera.
type OrthoCamera struct {
	base
}

// NewOrtho creates an orthographic camera from six bounds.
func NewOrtho(b Bounds) (*OrthoCamera, error) {
	if err := b.validate(false); err != nil {
		return nil, err
	}
	c, err := newBase(b, math.Ortho(b.Left, b.Right, b.Bottom, b.Top, b.Near, b.Far))
	if err != nil {
		return nil, err
	}
	return &OrthoCamera{base: c}, nil
}

// ProjectPoint implements Camera. The ortho matrix is affine, so there
// is no perspective divide.
func (c *OrthoCamera) ProjectPoint(p math.Vec3) (math.Vec3, error) {
	cp, err := c.toCamera(p)
	if err != nil {
		return math.Vec3{}, err
	}
	return c.projection.TransformPoint(cp), nil
}

// InverseProjectPoint implements Camera.
func (c *OrthoCamera) InverseProjectPoint(p math.Vec3) (math.Vec3, error) {
	cp := c.inverse.TransformPoint(p)
	return c.transform.ApplyToPoint(cp), nil
}

// PerspectiveCamera is a pinhole camera looking down its local -Z axis.
type PerspectiveCamera struct {
	base
}

// NewPerspective creates a perspective camera from six frustum bounds.
func NewPerspective(b Bounds) (*PerspectiveCamera, error) {
	if err := b.validate(true); err != nil {
		return nil, err
	}
	c, err := newBase(b, math.Frustum(b.Left, b.Right, b.Bottom, b.Top, b.Near, b.Far))
	if err != nil {
		return nil, err
	}
	return &PerspectiveCamera{base: c}, nil
}

// FromFOV creates a symmetric perspective camera. fovDeg is the vertical
// field of view in degrees and ratio is width / height.
func FromFOV(fovDeg, near, far, ratio float32) (*PerspectiveCamera, error) {
	if fovDeg <= 0 || fovDeg >= 180 {
		return nil, fmt.Errorf("%w: fov %v out of (0, 180)", ErrInvalidFrustum, fovDeg)
	}
	if ratio <= 0 {
		return nil, fmt.Errorf("%w: ratio %v <= 0", ErrInvalidFrustum, ratio)
	}
	height := near * math32.Tan(math.Radians(fovDeg)/2)
	width := height * ratio
	return NewPerspective(Bounds{
		Left: -width, Right: width,
		Bottom: -height, Top: height,
		Near: near, Far: far,
	})
}

// ProjectPoint implements Camera. Points on the eye plane fail with
// ErrSingularProjection and points behind it with ErrBehindCamera.
func (c *PerspectiveCamera) ProjectPoint(p math.Vec3) (math.Vec3, error) {
	cp, err := c.toCamera(p)
	if err != nil {
		return math.Vec3{}, err
	}
	clip := c.projection.MulPoint(cp)
	w := clip[3]
	if math32.Abs(w) < minW {
		return math.Vec3{}, fmt.Errorf("%w: w = %v", ErrSingularProjection, w)
	}
	if w < 0 {
		return math.Vec3{}, ErrBehindCamera
	}
	return clip.XYZ().Scale(1 / w), nil
}

// InverseProjectPoint implements Camera.
func (c *PerspectiveCamera) InverseProjectPoint(p math.Vec3) (math.Vec3, error) {
	h := c.inverse.MulPoint(p)
	w := h[3]
	if math32.Abs(w) < minW {
		return math.Vec3{}, fmt.Errorf("%w: w = %v", ErrSingularProjection, w)
	}
	return c.transform.ApplyToPoint(h.XYZ().Scale(1 / w)), nil
}

// ViewDirection returns the world-space direction the camera looks along.
func ViewDirection(c Camera) math.Vec3 {
	return c.Transform().Forward()
}

// IsBackFacing reports whether a surface with the given normal faces away
// from a viewer looking along viewDir.
func IsBackFacing(viewDir, normal math.Vec3) bool {
	return normal.Dot(viewDir) > 0
}
