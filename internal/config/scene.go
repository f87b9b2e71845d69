package config

import (
	"fmt"

	"github.com/gregoryw3/open-cv-imgui/internal/engine/camera"
	"github.com/gregoryw3/open-cv-imgui/internal/engine/lighting"
	"github.com/gregoryw3/open-cv-imgui/internal/engine/model"
)

// NewCamera builds the configured camera for a viewport of the given
// width / height ratio.
func (c CameraConfig) NewCamera(ratio float32) (camera.Camera, error) {
	var (
		cam camera.Camera
		err error
	)
	switch c.Projection {
	case ProjectionOrtho:
		h := c.OrthoHeight
		cam, err = camera.NewOrtho(camera.Bounds{
			Left: -h * ratio, Right: h * ratio,
			Bottom: -h, Top: h,
			Near: c.Near, Far: c.Far,
		})
	case ProjectionPerspective:
		cam, err = camera.FromFOV(c.FOV, c.Near, c.Far, ratio)
	default:
		return nil, fmt.Errorf("%w: unknown projection %q", ErrInvalidConfig, c.Projection)
	}
	if err != nil {
		return nil, err
	}
	cam.Transform().Position = c.Position
	return cam, nil
}

// NewLight builds the configured point light.
func (l LightConfig) NewLight() lighting.PointLight {
	light := lighting.NewPointLight(l.Position, l.Intensity)
	light.Color = l.Color
	return light
}

// Keyer returns the vertex keyer for STL deduplication.
func (s SceneConfig) Keyer() model.VertexKeyer {
	if s.DedupeEpsilon > 0 {
		return model.QuantizedKey{Epsilon: s.DedupeEpsilon}
	}
	return model.ExactKey{}
}
