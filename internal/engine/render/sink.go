// Package render evaluates a scene on the CPU and hands the results to
// GPU-side sinks. It does not issue draw calls itself.
package render

import "github.com/gregoryw3/open-cv-imgui/pkg/math"

// Uniform names shared with the shaders in internal/engine/gpu.
const (
	UniformModel          = "u_model"
	UniformView           = "u_view"
	UniformProjection     = "u_proj"
	UniformObjectColor    = "u_objColor"
	UniformSpecularColor  = "u_specColor"
	UniformLightPos       = "u_lightPos"
	UniformLightColor     = "u_lightColor"
	UniformLightIntensity = "u_lightIntensity"
	UniformAmbient        = "u_ambient"
	UniformCameraPos      = "u_camPos"
	UniformKa             = "u_ka"
	UniformKd             = "u_kd"
	UniformKs             = "u_ks"
	UniformKe             = "u_ke"
)

// VertexSink accepts indexed triangle geometry. positions and normals
// hold three floats per vertex.
type VertexSink interface {
	UploadMesh(positions, normals []float32, indices []uint32) error
}

// UniformSetter sets named shader uniforms on the active program.
type UniformSetter interface {
	SetMat4(name string, m math.Mat4)
	SetVec3(name string, v math.Vec3)
	SetFloat(name string, f float32)
}

// CurveSampleConsumer receives sampled curve polylines for drawing.
type CurveSampleConsumer interface {
	SetCurve(name string, samples []math.Vec3) error
}
