package gpu

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/gregoryw3/open-cv-imgui/internal/engine/render"
	"github.com/gregoryw3/open-cv-imgui/internal/logger"
	"github.com/gregoryw3/open-cv-imgui/pkg/math"
)

// curveColor is the polyline color.
var curveColor = math.Vec3{X: 0.2, Y: 0.9, Z: 0.3}

// Renderer owns the GL programs and buffers for one scene.
type Renderer struct {
	width, height int

	phong  *Program
	lines  *Program
	mesh   *MeshBuffer
	curves *CurveBuffers
}

// New initializes OpenGL and compiles the shaders.
// Must be called after the GL context is created.
func New(width, height int) (*Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.ClearColor(0.1, 0.1, 0.1, 1.0)

	phong, err := CompileProgram(phongVertexShader, phongFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("phong program: %w", err)
	}
	lines, err := CompileProgram(lineVertexShader, lineFragmentShader)
	if err != nil {
		phong.Delete()
		return nil, fmt.Errorf("line program: %w", err)
	}

	r := &Renderer{
		phong:  phong,
		lines:  lines,
		mesh:   NewMeshBuffer(),
		curves: NewCurveBuffers(),
	}
	r.Resize(width, height)
	return r, nil
}

// Mesh returns the mesh sink.
func (r *Renderer) Mesh() render.VertexSink { return r.mesh }

// Curves returns the curve sink.
func (r *Renderer) Curves() render.CurveSampleConsumer { return r.curves }

// Resize updates the viewport.
func (r *Renderer) Resize(width, height int) {
	r.width, r.height = width, height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Draw clears the frame and draws the mesh and curves of s.
func (r *Renderer) Draw(s render.Scene) error {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	r.phong.Use()
	if err := render.SetFrameUniforms(r.phong, s); err != nil {
		return err
	}
	r.mesh.Draw()

	view, err := s.Camera.Transform().InverseMatrix()
	if err != nil {
		return fmt.Errorf("view matrix: %w", err)
	}
	r.lines.Use()
	r.lines.SetMat4(render.UniformView, view)
	r.lines.SetMat4(render.UniformProjection, s.Camera.Projection())
	r.lines.SetVec3("u_color", curveColor)
	r.curves.Draw()

	gl.UseProgram(0)
	return nil
}

// Close frees GL resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	r.curves.Delete()
	r.mesh.Delete()
	r.lines.Delete()
	r.phong.Delete()
}
