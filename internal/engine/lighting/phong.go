package lighting

import (
	"github.com/chewxy/math32"

	"github.com/gregoryw3/open-cv-imgui/internal/engine/model"
	"github.com/gregoryw3/open-cv-imgui/pkg/math"
)

// MinLightDistance is the smallest light distance used in the falloff
// term. Points closer to the light than this are shaded as if they were
// this far away.
const MinLightDistance = 1e-4

// lightVector returns the unit direction from p to the light and the
// clamped distance.
func lightVector(l PointLight, p math.Vec3) (math.Vec3, float32) {
	d := l.Position().Sub(p)
	dist := d.Length()
	if dist < MinLightDistance {
		// Coincident point: any direction is as good as another.
		if dist == 0 {
			return math.Vec3{}, MinLightDistance
		}
		return d.Scale(1 / dist), MinLightDistance
	}
	return d.Scale(1 / dist), dist
}

// falloff returns intensity / (pi * d^2).
func falloff(intensity, dist float32) float32 {
	return intensity / (math32.Pi * dist * dist)
}

// Ambient returns ambientLight * ka * diffuseColor.
func Ambient(ambientLight math.Vec3, mat model.Material) math.Vec3 {
	return ambientLight.Scale(mat.Ka).Mul(mat.DiffuseColor)
}

// Diffuse returns the Lambertian term with inverse-square falloff:
// max(n.l, 0) * kd / (pi d^2) * intensity * lightColor * diffuseColor.
func Diffuse(l PointLight, p, normal math.Vec3, mat model.Material) math.Vec3 {
	dir, dist := lightVector(l, p)
	lambert := max(normal.Dot(dir), 0)
	return l.Color.Mul(mat.DiffuseColor).Scale(lambert * mat.Kd * falloff(l.Intensity, dist))
}

// Reflect mirrors the unit light direction about the unit normal:
// -l + 2 (l.n) n.
func Reflect(lightDir, normal math.Vec3) math.Vec3 {
	return lightDir.Neg().Add(normal.Scale(2 * lightDir.Dot(normal)))
}

// Specular returns max(v.r, 0)^ke * ks * intensity / (pi d^2) *
// lightColor * specularColor. viewDir points from p toward the viewer.
func Specular(l PointLight, p, normal, viewDir math.Vec3, mat model.Material) math.Vec3 {
	dir, dist := lightVector(l, p)
	r := Reflect(dir, normal)
	strength := math32.Pow(max(viewDir.Dot(r), 0), mat.Ke)
	return l.Color.Mul(mat.SpecularColor).Scale(strength * mat.Ks * falloff(l.Intensity, dist))
}

// Phong returns ambient + diffuse + specular for a point. normal and
// viewDir need not be normalized. The result is not clamped.
func Phong(l PointLight, p, normal, viewDir, ambientLight math.Vec3, mat model.Material) math.Vec3 {
	n := normal.Normalize()
	v := viewDir.Normalize()
	return Ambient(ambientLight, mat).
		Add(Diffuse(l, p, n, mat)).
		Add(Specular(l, p, n, v, mat))
}

// Flat returns ambient + diffuse, used with a per-face normal.
func Flat(l PointLight, p, faceNormal, ambientLight math.Vec3, mat model.Material) math.Vec3 {
	return Ambient(ambientLight, mat).Add(Diffuse(l, p, faceNormal, mat))
}
