package render

import (
	"errors"
	"fmt"

	"github.com/gregoryw3/open-cv-imgui/internal/engine/animation"
	"github.com/gregoryw3/open-cv-imgui/internal/engine/camera"
	"github.com/gregoryw3/open-cv-imgui/internal/engine/lighting"
	"github.com/gregoryw3/open-cv-imgui/internal/engine/model"
	"github.com/gregoryw3/open-cv-imgui/pkg/math"
)

// ErrIncompleteScene is returned when a scene has no mesh or camera.
var ErrIncompleteScene = errors.New("scene needs a mesh and a camera")

// Scene is everything needed to shade one frame.
type Scene struct {
	Mesh         *model.Mesh
	Camera       camera.Camera
	Light        lighting.PointLight
	AmbientLight math.Vec3
}

func (s Scene) validate() error {
	if s.Mesh == nil || s.Camera == nil {
		return ErrIncompleteScene
	}
	return nil
}

// Shaded is the per-vertex result of ShadeVertices. All slices are
// indexed like Mesh.Vertices.
type Shaded struct {
	World  []math.Vec3
	NDC    []math.Vec3
	Colors []math.Vec3
	// Failed marks vertices whose projection failed; their NDC entry is
	// zero and the caller decides whether to draw them.
	Failed    []bool
	NumFailed int
}

// ShadeVertices transforms every mesh vertex to world space, projects it
// and computes its Phong color, viewing from the camera position.
func ShadeVertices(s Scene) (*Shaded, error) {
	if err := s.validate(); err != nil {
		return nil, err
	}

	m := s.Mesh
	n := len(m.Vertices)
	out := &Shaded{
		World:  make([]math.Vec3, n),
		NDC:    make([]math.Vec3, n),
		Colors: make([]math.Vec3, n),
		Failed: make([]bool, n),
	}
	eye := s.Camera.Transform().Position

	for i, v := range m.Vertices {
		world := m.Transform.ApplyToPoint(v)
		normal := m.Transform.ApplyToNormal(m.VertexNormals[i])

		out.World[i] = world
		out.Colors[i] = lighting.Phong(s.Light, world, normal, eye.Sub(world), s.AmbientLight, m.Material)

		ndc, err := s.Camera.ProjectPoint(world)
		if err != nil {
			out.Failed[i] = true
			out.NumFailed++
			continue
		}
		out.NDC[i] = ndc
	}
	return out, nil
}

// FaceShade is the flat-shaded result for one face.
type FaceShade struct {
	Color      math.Vec3
	BackFacing bool
}

// ShadeFaces computes one flat color per face at the face centroid and
// marks faces pointing away from the camera.
func ShadeFaces(s Scene) ([]FaceShade, error) {
	if err := s.validate(); err != nil {
		return nil, err
	}

	m := s.Mesh
	view := camera.ViewDirection(s.Camera)
	out := make([]FaceShade, m.FaceCount())

	for i := range out {
		f := m.Face(i)
		centroid := m.Vertices[f[0]].Add(m.Vertices[f[1]]).Add(m.Vertices[f[2]]).Scale(1.0 / 3)
		world := m.Transform.ApplyToPoint(centroid)
		normal := m.Transform.ApplyToNormal(m.FaceNormals[i])

		out[i] = FaceShade{
			Color:      lighting.Flat(s.Light, world, normal, s.AmbientLight, m.Material),
			BackFacing: camera.IsBackFacing(view, normal),
		}
	}
	return out, nil
}

// UploadMesh flattens a mesh into the sink.
func UploadMesh(sink VertexSink, m *model.Mesh) error {
	positions := make([]float32, 0, len(m.Vertices)*3)
	normals := make([]float32, 0, len(m.VertexNormals)*3)
	for i, v := range m.Vertices {
		n := m.VertexNormals[i]
		positions = append(positions, v.X, v.Y, v.Z)
		normals = append(normals, n.X, n.Y, n.Z)
	}
	if err := sink.UploadMesh(positions, normals, m.Faces); err != nil {
		return fmt.Errorf("upload mesh: %w", err)
	}
	return nil
}

// SetFrameUniforms sends the matrices, light and material of s.
func SetFrameUniforms(u UniformSetter, s Scene) error {
	if err := s.validate(); err != nil {
		return err
	}
	view, err := s.Camera.Transform().InverseMatrix()
	if err != nil {
		return fmt.Errorf("view matrix: %w", err)
	}

	mat := s.Mesh.Material
	u.SetMat4(UniformModel, s.Mesh.Transform.Matrix())
	u.SetMat4(UniformView, view)
	u.SetMat4(UniformProjection, s.Camera.Projection())
	u.SetVec3(UniformCameraPos, s.Camera.Transform().Position)
	u.SetVec3(UniformLightPos, s.Light.Position())
	u.SetVec3(UniformLightColor, s.Light.Color)
	u.SetFloat(UniformLightIntensity, s.Light.Intensity)
	u.SetVec3(UniformAmbient, s.AmbientLight)
	u.SetVec3(UniformObjectColor, mat.DiffuseColor)
	u.SetVec3(UniformSpecularColor, mat.SpecularColor)
	u.SetFloat(UniformKa, mat.Ka)
	u.SetFloat(UniformKd, mat.Kd)
	u.SetFloat(UniformKs, mat.Ks)
	u.SetFloat(UniformKe, mat.Ke)
	return nil
}

// Curve names passed to CurveSampleConsumer.
const (
	CurveObject = "object"
	CurveCamera = "camera"
)

// SendCurves samples the object and camera paths of state with the
// given number of segments.
func SendCurves(c CurveSampleConsumer, state *animation.AnimationState, segments int) error {
	for _, curve := range []struct {
		name string
		pts  []math.Vec3
	}{
		{CurveObject, state.Object},
		{CurveCamera, state.Camera},
	} {
		samples, err := animation.SampleCurve(curve.pts, segments)
		if err != nil {
			return fmt.Errorf("%s curve: %w", curve.name, err)
		}
		if err := c.SetCurve(curve.name, samples); err != nil {
			return fmt.Errorf("%s curve: %w", curve.name, err)
		}
	}
	return nil
}
