package animation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gregoryw3/open-cv-imgui/internal/engine/transform"
	"github.com/gregoryw3/open-cv-imgui/pkg/math"
)

func TestAnimatorLifecycle(t *testing.T) {
	a := NewAnimator(NewStore(DefaultState()), 0.5, nil)
	assert.Equal(t, Idle, a.State())

	_, err := a.Tick()
	assert.ErrorIs(t, err, ErrNotRunning)

	a.Start()
	assert.Equal(t, Running, a.State())

	f, err := a.Tick()
	require.NoError(t, err)
	assert.Equal(t, float32(0), f.T)
	assert.False(t, f.Wrapped)
	assert.Equal(t, Advancing, a.State())

	f, err = a.Tick() // t = 0.5
	require.NoError(t, err)
	assert.Equal(t, float32(0.5), f.T)

	f, err = a.Tick() // t = 1, advancing to 1.5 wraps
	require.NoError(t, err)
	assert.Equal(t, float32(1), f.T)
	assert.True(t, f.Wrapped)
	assert.Equal(t, WrapReset, a.State())
	assert.Equal(t, float32(0), a.T())

	_, err = a.Tick()
	require.NoError(t, err)
	assert.Equal(t, Advancing, a.State())

	a.Stop()
	assert.Equal(t, Idle, a.State())
	pos := a.T()
	a.Start()
	assert.Equal(t, pos, a.T(), "start resumes from current t")
}

func TestAnimatorFrameMatchesCurves(t *testing.T) {
	state := DefaultState()
	a := NewAnimator(NewStore(state), 0.25, nil)
	a.Start()
	_, err := a.Tick()
	require.NoError(t, err)

	f, err := a.Tick()
	require.NoError(t, err)
	require.Equal(t, float32(0.25), f.T)

	obj, _ := BezierPoint(0.25, state.Object)
	cam, _ := BezierPoint(0.25, state.Camera)
	rot, _ := SlerpChain(0.25, state.Rotation)
	assert.Equal(t, obj, f.ObjectPosition)
	assert.Equal(t, cam, f.CameraPosition)
	assert.Equal(t, rot, f.Orientation)
}

func TestAnimatorSeesStoreEdits(t *testing.T) {
	store := NewStore(DefaultState())
	a := NewAnimator(store, 0.1, nil)
	a.Start()

	require.NoError(t, store.Update(func(s *AnimationState) error {
		return s.MovePoint(CurveCamera, 0, math.Vec3{X: 1})
	}))

	f, err := a.Tick()
	require.NoError(t, err)
	assert.InDelta(t, 1, f.CameraPosition.X, 1e-6)
}

func TestAnimatorInvalidStateDoesNotAdvance(t *testing.T) {
	state := DefaultState()
	state.Rotation = state.Rotation[:1]
	a := NewAnimator(NewStore(state), 0.1, nil)
	a.Start()

	_, err := a.Tick()
	assert.ErrorIs(t, err, ErrInvalidCurve)
	assert.Equal(t, float32(0), a.T())
}

func TestApply(t *testing.T) {
	q := math.QuatFromAxisAngle(math.Vec3{X: 1, Y: 1}.Normalize(), math.Radians(60))
	f := Frame{
		ObjectPosition: math.Vec3{X: 1, Y: 2, Z: 3},
		CameraPosition: math.Vec3{Z: 4},
		Orientation:    q,
	}

	obj := transform.New()
	obj.SetRotation(10, 20, 30) // replaced, not composed
	cam := transform.New()
	Apply(f, &obj, &cam)

	assert.Equal(t, f.ObjectPosition, obj.Position)
	assert.Equal(t, f.CameraPosition, cam.Position)
	assert.True(t, obj.RotationMatrix().ApproxEqual(q.ToMat4(), 1e-4))
	assert.Equal(t, math.Vec3{}, cam.Rotation)

	// Nil transforms are skipped.
	Apply(f, nil, nil)
}
