package model

import "github.com/gregoryw3/open-cv-imgui/pkg/math"

// Cube returns the 12 triangles of an axis-aligned unit cube centered at
// the origin, wound counter-clockwise when seen from outside.
func Cube() []Triangle {
	p := [8]math.Vec3{
		{X: -0.5, Y: -0.5, Z: -0.5},
		{X: 0.5, Y: -0.5, Z: -0.5},
		{X: 0.5, Y: 0.5, Z: -0.5},
		{X: -0.5, Y: 0.5, Z: -0.5},
		{X: -0.5, Y: -0.5, Z: 0.5},
		{X: 0.5, Y: -0.5, Z: 0.5},
		{X: 0.5, Y: 0.5, Z: 0.5},
		{X: -0.5, Y: 0.5, Z: 0.5},
	}

	quads := [6][4]int{
		{4, 5, 6, 7}, // +Z
		{1, 0, 3, 2}, // -Z
		{5, 1, 2, 6}, // +X
		{0, 4, 7, 3}, // -X
		{7, 6, 2, 3}, // +Y
		{0, 1, 5, 4}, // -Y
	}

	tris := make([]Triangle, 0, 12)
	for _, q := range quads {
		tris = append(tris,
			Triangle{p[q[0]], p[q[1]], p[q[2]]},
			Triangle{p[q[0]], p[q[2]], p[q[3]]},
		)
	}
	return tris
}
