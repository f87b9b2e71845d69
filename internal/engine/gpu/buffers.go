package gpu

import (
	"errors"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/gregoryw3/open-cv-imgui/internal/logger"
	"github.com/gregoryw3/open-cv-imgui/pkg/math"
)

// ErrMismatchedBuffers is returned when positions and normals differ in
// length or are not whole vertices.
var ErrMismatchedBuffers = errors.New("position and normal buffers do not match")

// MeshBuffer holds one indexed mesh on the GPU. It implements
// render.VertexSink: attribute 0 is position, attribute 1 is normal.
type MeshBuffer struct {
	vao, posVBO, normVBO, ebo uint32
	indexCount                int32
}

// NewMeshBuffer allocates the GL objects.
func NewMeshBuffer() *MeshBuffer {
	b := &MeshBuffer{}
	gl.GenVertexArrays(1, &b.vao)
	gl.GenBuffers(1, &b.posVBO)
	gl.GenBuffers(1, &b.normVBO)
	gl.GenBuffers(1, &b.ebo)
	return b
}

// UploadMesh implements render.VertexSink.
func (b *MeshBuffer) UploadMesh(positions, normals []float32, indices []uint32) error {
	if len(positions) != len(normals) || len(positions)%3 != 0 {
		return ErrMismatchedBuffers
	}
	if len(positions) == 0 || len(indices) == 0 {
		b.indexCount = 0
		return nil
	}

	gl.BindVertexArray(b.vao)

	gl.BindBuffer(gl.ARRAY_BUFFER, b.posVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(positions)*4, gl.Ptr(positions), gl.STATIC_DRAW)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 3*4, nil)
	gl.EnableVertexAttribArray(0)

	gl.BindBuffer(gl.ARRAY_BUFFER, b.normVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(normals)*4, gl.Ptr(normals), gl.STATIC_DRAW)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, 3*4, nil)
	gl.EnableVertexAttribArray(1)

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, b.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	b.indexCount = int32(len(indices))
	logger.Debug("mesh uploaded",
		zap.Uint32("vao", b.vao),
		zap.Int("vertices", len(positions)/3),
		zap.Int("indices", len(indices)),
	)
	return nil
}

// Draw issues the indexed draw call with the current program.
func (b *MeshBuffer) Draw() {
	if b.indexCount == 0 {
		return
	}
	gl.BindVertexArray(b.vao)
	gl.DrawElements(gl.TRIANGLES, b.indexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

// Delete frees the GL objects.
func (b *MeshBuffer) Delete() {
	gl.DeleteBuffers(1, &b.ebo)
	gl.DeleteBuffers(1, &b.normVBO)
	gl.DeleteBuffers(1, &b.posVBO)
	gl.DeleteVertexArrays(1, &b.vao)
}

type lineStrip struct {
	vao, vbo uint32
	count    int32
}

// CurveBuffers draws named polylines. It implements
// render.CurveSampleConsumer.
type CurveBuffers struct {
	strips map[string]*lineStrip
}

// NewCurveBuffers creates an empty set of polylines.
func NewCurveBuffers() *CurveBuffers {
	return &CurveBuffers{strips: make(map[string]*lineStrip)}
}

// SetCurve implements render.CurveSampleConsumer.
func (c *CurveBuffers) SetCurve(name string, samples []math.Vec3) error {
	s, ok := c.strips[name]
	if !ok {
		s = &lineStrip{}
		gl.GenVertexArrays(1, &s.vao)
		gl.GenBuffers(1, &s.vbo)
		c.strips[name] = s
	}

	data := make([]float32, 0, len(samples)*3)
	for _, p := range samples {
		data = append(data, p.X, p.Y, p.Z)
	}
	s.count = int32(len(samples))
	if len(data) == 0 {
		return nil
	}

	gl.BindVertexArray(s.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, s.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.DYNAMIC_DRAW)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 3*4, nil)
	gl.EnableVertexAttribArray(0)
	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return nil
}

// Draw draws every polyline as a line strip with the current program.
func (c *CurveBuffers) Draw() {
	for _, s := range c.strips {
		if s.count < 2 {
			continue
		}
		gl.BindVertexArray(s.vao)
		gl.DrawArrays(gl.LINE_STRIP, 0, s.count)
	}
	gl.BindVertexArray(0)
}

// Delete frees every polyline.
func (c *CurveBuffers) Delete() {
	for name, s := range c.strips {
		gl.DeleteBuffers(1, &s.vbo)
		gl.DeleteVertexArrays(1, &s.vao)
		delete(c.strips, name)
	}
}
