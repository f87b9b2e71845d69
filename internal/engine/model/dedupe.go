package model

import (
	"github.com/chewxy/math32"

	"github.com/gregoryw3/open-cv-imgui/pkg/math"
)

// VertexKey is the identity of a position for deduplication.
type VertexKey [3]float32

// VertexKeyer maps positions to deduplication keys. Positions with equal
// keys are merged into one vertex.
type VertexKeyer interface {
	VertexKey(v math.Vec3) VertexKey
}

// ExactKey merges positions whose components compare equal.
// +0 and -0 merge; NaN components never merge.
type ExactKey struct{}

// VertexKey implements VertexKeyer.
func (ExactKey) VertexKey(v math.Vec3) VertexKey {
	return VertexKey{v.X, v.Y, v.Z}
}

// QuantizedKey merges positions that round to the same grid cell of
// size Epsilon.
type QuantizedKey struct {
	Epsilon float32
}

// VertexKey implements VertexKeyer.
func (q QuantizedKey) VertexKey(v math.Vec3) VertexKey {
	if q.Epsilon <= 0 {
		return ExactKey{}.VertexKey(v)
	}
	return VertexKey{
		math32.Round(v.X / q.Epsilon),
		math32.Round(v.Y / q.Epsilon),
		math32.Round(v.Z / q.Epsilon),
	}
}

// DedupeVertices converts a triangle soup into a unique vertex table and a
// flat index buffer. The first occurrence of a key wins its index and
// indices follow order of first appearance.
func DedupeVertices(tris []Triangle, keyer VertexKeyer) ([]math.Vec3, []uint32) {
	if keyer == nil {
		keyer = ExactKey{}
	}

	seen := make(map[VertexKey]uint32, len(tris))
	verts := make([]math.Vec3, 0, len(tris))
	faces := make([]uint32, 0, len(tris)*3)

	for _, tri := range tris {
		for _, v := range tri {
			key := keyer.VertexKey(v)
			idx, ok := seen[key]
			if !ok {
				idx = uint32(len(verts))
				seen[key] = idx
				verts = append(verts, v)
			}
			faces = append(faces, idx)
		}
	}

	return verts, faces
}
