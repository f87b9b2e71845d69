// Package model builds indexed triangle meshes and their face and vertex normals.
package model

import (
	"errors"
	"fmt"

	"github.com/gregoryw3/open-cv-imgui/internal/engine/transform"
	"github.com/gregoryw3/open-cv-imgui/pkg/math"
)

// Mesh validation errors.
var (
	ErrFaceCount           = errors.New("face index count is not a multiple of 3")
	ErrFaceIndexOutOfRange = errors.New("face index out of range")
)

// Triangle is a triangle given by its three corner positions.
type Triangle [3]math.Vec3

// Material holds the Phong reflectance coefficients of a mesh.
type Material struct {
	DiffuseColor  math.Vec3 `yaml:"diffuse_color"`
	SpecularColor math.Vec3 `yaml:"specular_color"`
	Ka            float32   `yaml:"ka"` // ambient
	Kd            float32   `yaml:"kd"` // diffuse
	Ks            float32   `yaml:"ks"` // specular
	Ke            float32   `yaml:"ke"` // specular exponent
}

// DefaultMaterial returns an orange plastic-like material.
func DefaultMaterial() Material {
	return Material{
		DiffuseColor:  math.Vec3{X: 0.9, Y: 0.5, Z: 0.0},
		SpecularColor: math.Vec3{X: 1, Y: 1, Z: 1},
		Ka:            0.1,
		Kd:            1.0,
		Ks:            0.5,
		Ke:            32,
	}
}

// Mesh is an indexed triangle mesh with precomputed normals.
// Normals are derived once at construction and never updated.
type Mesh struct {
	Vertices      []math.Vec3
	Faces         []uint32 // three indices per triangle
	FaceNormals   []math.Vec3
	VertexNormals []math.Vec3

	// Degenerate is the number of zero-area faces skipped during
	// vertex normal accumulation.
	Degenerate int

	Material  Material
	Transform transform.Transform
}

// NewMesh validates the index buffer and computes normals.
func NewMesh(vertices []math.Vec3, faces []uint32, mat Material) (*Mesh, error) {
	if err := Validate(vertices, faces); err != nil {
		return nil, err
	}

	n := ComputeNormals(vertices, faces)
	return &Mesh{
		Vertices:      vertices,
		Faces:         faces,
		FaceNormals:   n.Face,
		VertexNormals: n.Vertex,
		Degenerate:    n.Degenerate,
		Material:      mat,
		Transform:     transform.New(),
	}, nil
}

// FromTriangles deduplicates a triangle soup with keyer and builds a Mesh.
// A nil keyer compares positions exactly.
func FromTriangles(tris []Triangle, keyer VertexKeyer, mat Material) (*Mesh, error) {
	verts, faces := DedupeVertices(tris, keyer)
	return NewMesh(verts, faces, mat)
}

// Validate checks the face buffer against the vertex table.
func Validate(vertices []math.Vec3, faces []uint32) error {
	if len(faces)%3 != 0 {
		return fmt.Errorf("%w: %d", ErrFaceCount, len(faces))
	}
	for i, idx := range faces {
		if int(idx) >= len(vertices) {
			return fmt.Errorf("%w: faces[%d] = %d, %d vertices", ErrFaceIndexOutOfRange, i, idx, len(vertices))
		}
	}
	return nil
}

// FaceCount returns the number of triangles.
func (m *Mesh) FaceCount() int {
	return len(m.Faces) / 3
}

// Face returns the vertex indices of triangle i.
func (m *Mesh) Face(i int) [3]uint32 {
	return [3]uint32{m.Faces[i*3], m.Faces[i*3+1], m.Faces[i*3+2]}
}

// Bounds returns the axis-aligned bounding box of the vertices.
func (m *Mesh) Bounds() (lo, hi math.Vec3) {
	if len(m.Vertices) == 0 {
		return lo, hi
	}
	lo, hi = m.Vertices[0], m.Vertices[0]
	for _, v := range m.Vertices[1:] {
		lo = math.Vec3{X: min(lo.X, v.X), Y: min(lo.Y, v.Y), Z: min(lo.Z, v.Z)}
		hi = math.Vec3{X: max(hi.X, v.X), Y: max(hi.Y, v.Y), Z: max(hi.Z, v.Z)}
	}
	return lo, hi
}
