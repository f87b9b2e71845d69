package animation

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gregoryw3/open-cv-imgui/pkg/math"
)

func TestDefaultStateValid(t *testing.T) {
	s := DefaultState()
	require.NoError(t, s.Validate())
	assert.Len(t, s.Object, 21)
	assert.Len(t, s.Camera, 4)
	assert.Len(t, s.Rotation, 4)

	for i, q := range s.Rotation {
		assert.InDelta(t, 1, q.Length(), 1e-5, "rotation %d", i)
	}
}

func TestValidateNamesCurve(t *testing.T) {
	s := DefaultState()
	s.Camera = s.Camera[:1]

	err := s.Validate()
	assert.ErrorIs(t, err, ErrInvalidCurve)
	assert.Contains(t, err.Error(), "camera")
}

func TestMovePoint(t *testing.T) {
	s := DefaultState()
	before := s.Camera[2]

	require.NoError(t, s.MovePoint(CurveCamera, 2, math.Vec3{X: 0.1, Y: -0.2}))
	assert.True(t, before.Add(math.Vec3{X: 0.1, Y: -0.2}).ApproxEqual(s.Camera[2], 1e-6))

	assert.Error(t, s.MovePoint(CurveObject, len(s.Object), math.Vec3{}))
	assert.Error(t, s.MovePoint(CurveObject, -1, math.Vec3{}))
	assert.Error(t, s.MovePoint(Curve(7), 0, math.Vec3{}))
}

func TestCloneIsDeep(t *testing.T) {
	s := DefaultState()
	c := s.Clone()
	c.Object[0] = math.Vec3{X: 9}
	c.Rotation[0] = math.Quat{}

	assert.Equal(t, math.Vec3{}, s.Object[0])
	assert.Equal(t, math.QuatIdentity(), s.Rotation[0])
}

func TestStoreSnapshotIsolation(t *testing.T) {
	store := NewStore(DefaultState())
	snap := store.Load()

	require.NoError(t, store.Update(func(s *AnimationState) error {
		return s.MovePoint(CurveObject, 0, math.Vec3{X: 1})
	}))

	assert.Equal(t, math.Vec3{}, snap.Object[0], "earlier snapshot must not change")
	assert.Equal(t, math.Vec3{X: 1}, store.Load().Object[0])
}

func TestStoreUpdateErrorKeepsState(t *testing.T) {
	store := NewStore(DefaultState())

	err := store.Update(func(s *AnimationState) error {
		s.Object[0] = math.Vec3{X: 5}
		return s.MovePoint(CurveObject, 99, math.Vec3{})
	})
	require.Error(t, err)
	assert.Equal(t, math.Vec3{}, store.Load().Object[0])
}

func TestStoreReplaceCopies(t *testing.T) {
	store := NewStore(DefaultState())
	next := DefaultState()
	next.Camera[0] = math.Vec3{Z: 7}
	store.Replace(next)
	next.Camera[0] = math.Vec3{}

	assert.Equal(t, math.Vec3{Z: 7}, store.Load().Camera[0])
}

func TestStoreConcurrentAccess(t *testing.T) {
	store := NewStore(DefaultState())

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			_ = store.Update(func(s *AnimationState) error {
				return s.MovePoint(CurveCamera, i%4, math.Vec3{X: 0.001})
			})
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			_, err := Evaluate(store.Load(), float32(i)/200)
			assert.NoError(t, err)
		}
	}()
	wg.Wait()
}
