package model

import "github.com/gregoryw3/open-cv-imgui/pkg/math"

// minDoubleArea is the smallest |cross(e1, e2)| treated as a real triangle.
const minDoubleArea = 1e-12

// Normals is the output of ComputeNormals.
type Normals struct {
	Face       []math.Vec3 // one per triangle, zero for degenerate faces
	Vertex     []math.Vec3 // one per vertex, area weighted
	Degenerate int
}

// ComputeNormals derives unit face normals and area-weighted vertex normals.
// Zero-area faces get a zero face normal and contribute nothing to their
// vertices; a vertex touched only by such faces keeps a zero normal.
// faces must already be validated against vertices.
func ComputeNormals(vertices []math.Vec3, faces []uint32) Normals {
	n := Normals{
		Face:   make([]math.Vec3, len(faces)/3),
		Vertex: make([]math.Vec3, len(vertices)),
	}

	for f := range n.Face {
		i0, i1, i2 := faces[f*3], faces[f*3+1], faces[f*3+2]
		v0 := vertices[i0]
		e1 := vertices[i1].Sub(v0)
		e2 := vertices[i2].Sub(v0)

		cross := e1.Cross(e2)
		doubleArea := cross.Length()
		if doubleArea <= minDoubleArea || !cross.IsFinite() {
			n.Degenerate++
			continue
		}

		normal := cross.Scale(1 / doubleArea)
		n.Face[f] = normal

		weighted := normal.Scale(0.5 * doubleArea)
		n.Vertex[i0] = n.Vertex[i0].Add(weighted)
		n.Vertex[i1] = n.Vertex[i1].Add(weighted)
		n.Vertex[i2] = n.Vertex[i2].Add(weighted)
	}

	for i, v := range n.Vertex {
		n.Vertex[i] = v.Normalize()
	}

	return n
}
