package render

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gregoryw3/open-cv-imgui/internal/engine/animation"
	"github.com/gregoryw3/open-cv-imgui/internal/engine/camera"
	"github.com/gregoryw3/open-cv-imgui/internal/engine/lighting"
	"github.com/gregoryw3/open-cv-imgui/internal/engine/model"
	"github.com/gregoryw3/open-cv-imgui/pkg/math"
)

type fakeSink struct {
	positions, normals []float32
	indices            []uint32
	err                error
}

func (s *fakeSink) UploadMesh(positions, normals []float32, indices []uint32) error {
	s.positions, s.normals, s.indices = positions, normals, indices
	return s.err
}

type fakeUniforms struct {
	mats   map[string]math.Mat4
	vecs   map[string]math.Vec3
	floats map[string]float32
}

func newFakeUniforms() *fakeUniforms {
	return &fakeUniforms{
		mats:   map[string]math.Mat4{},
		vecs:   map[string]math.Vec3{},
		floats: map[string]float32{},
	}
}

func (u *fakeUniforms) SetMat4(name string, m math.Mat4) { u.mats[name] = m }
func (u *fakeUniforms) SetVec3(name string, v math.Vec3) { u.vecs[name] = v }
func (u *fakeUniforms) SetFloat(name string, f float32) { u.floats[name] = f }

type fakeCurves map[string][]math.Vec3

func (c fakeCurves) SetCurve(name string, samples []math.Vec3) error {
	c[name] = samples
	return nil
}

func cubeScene(t *testing.T) Scene {
	t.Helper()
	mesh, err := model.FromTriangles(model.Cube(), nil, model.DefaultMaterial())
	require.NoError(t, err)

	cam, err := camera.FromFOV(60, 0.1, 100, 1)
	require.NoError(t, err)
	cam.Transform().SetPosition(0, 0, 5)

	return Scene{
		Mesh:         mesh,
		Camera:       cam,
		Light:        lighting.NewPointLight(math.Vec3{X: 2, Y: 2, Z: 2}, 10),
		AmbientLight: math.Vec3{X: 1, Y: 1, Z: 1},
	}
}

func TestShadeVertices(t *testing.T) {
	s := cubeScene(t)
	out, err := ShadeVertices(s)
	require.NoError(t, err)

	require.Len(t, out.Colors, 8)
	assert.Equal(t, 0, out.NumFailed)

	for i, v := range s.Mesh.Vertices {
		assert.Equal(t, v, out.World[i])
		assert.True(t, out.Colors[i].IsFinite())

		eye := s.Camera.Transform().Position
		n := s.Mesh.VertexNormals[i]
		want := lighting.Phong(s.Light, v, n, eye.Sub(v), s.AmbientLight, s.Mesh.Material)
		assert.True(t, want.ApproxEqual(out.Colors[i], 1e-5), "vertex %d", i)

		ndc, err := s.Camera.ProjectPoint(v)
		require.NoError(t, err)
		assert.Equal(t, ndc, out.NDC[i])
	}
}

func TestShadeVerticesFlagsFailedProjection(t *testing.T) {
	s := cubeScene(t)
	// Camera inside the cube: the far side is behind it.
	s.Camera.Transform().SetPosition(0, 0, 0)

	out, err := ShadeVertices(s)
	require.NoError(t, err)

	assert.Equal(t, 4, out.NumFailed)
	for i, v := range s.Mesh.Vertices {
		assert.Equal(t, v.Z > 0, out.Failed[i], "vertex %v", v)
		assert.True(t, out.Colors[i].IsFinite())
	}
}

func TestShadeFacesBackFacing(t *testing.T) {
	s := cubeScene(t)
	faces, err := ShadeFaces(s)
	require.NoError(t, err)
	require.Len(t, faces, 12)

	back := 0
	for i, f := range faces {
		n := s.Mesh.FaceNormals[i]
		// Camera looks down -Z.
		assert.Equal(t, n.Z < -0.5, f.BackFacing, "face %d normal %v", i, n)
		if f.BackFacing {
			back++
		}
	}
	assert.Equal(t, 2, back)
}

func TestIncompleteScene(t *testing.T) {
	_, err := ShadeVertices(Scene{})
	assert.ErrorIs(t, err, ErrIncompleteScene)
	_, err = ShadeFaces(Scene{})
	assert.ErrorIs(t, err, ErrIncompleteScene)
	assert.ErrorIs(t, SetFrameUniforms(newFakeUniforms(), Scene{}), ErrIncompleteScene)
}

func TestUploadMesh(t *testing.T) {
	s := cubeScene(t)
	sink := &fakeSink{}
	require.NoError(t, UploadMesh(sink, s.Mesh))

	assert.Len(t, sink.positions, 24)
	assert.Len(t, sink.normals, 24)
	assert.Equal(t, s.Mesh.Faces, sink.indices)
	assert.Equal(t, s.Mesh.Vertices[3].X, sink.positions[9])
	assert.Equal(t, s.Mesh.VertexNormals[3].Z, sink.normals[11])

	sink.err = errors.New("out of memory")
	assert.ErrorIs(t, UploadMesh(sink, s.Mesh), sink.err)
}

func TestSetFrameUniforms(t *testing.T) {
	s := cubeScene(t)
	u := newFakeUniforms()
	require.NoError(t, SetFrameUniforms(u, s))

	assert.Equal(t, s.Camera.Projection(), u.mats[UniformProjection])
	assert.Equal(t, math.Identity(), u.mats[UniformModel])
	view := u.mats[UniformView]
	assert.True(t, math.Vec3{}.ApproxEqual(view.TransformPoint(math.Vec3{Z: 5}), 1e-6))

	assert.Equal(t, math.Vec3{Z: 5}, u.vecs[UniformCameraPos])
	assert.Equal(t, s.Light.Position(), u.vecs[UniformLightPos])
	assert.Equal(t, s.Mesh.Material.DiffuseColor, u.vecs[UniformObjectColor])
	assert.Equal(t, float32(10), u.floats[UniformLightIntensity])
	assert.Equal(t, s.Mesh.Material.Ke, u.floats[UniformKe])
}

func TestSendCurves(t *testing.T) {
	c := fakeCurves{}
	state := animation.DefaultState()
	require.NoError(t, SendCurves(c, state, 10))

	require.Len(t, c[CurveObject], 11)
	require.Len(t, c[CurveCamera], 11)
	assert.Equal(t, state.Camera[0], c[CurveCamera][0])

	state.Object = state.Object[:1]
	assert.ErrorIs(t, SendCurves(c, state, 10), animation.ErrInvalidCurve)
}
