// Package config handles playground configuration loading and management.
package config

import (
	"errors"
	"fmt"

	"github.com/gregoryw3/open-cv-imgui/internal/engine/animation"
	"github.com/gregoryw3/open-cv-imgui/internal/engine/model"
	"github.com/gregoryw3/open-cv-imgui/pkg/math"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Projection names accepted in CameraConfig.
const (
	ProjectionPerspective = "perspective"
	ProjectionOrtho       = "ortho"
)

// Config holds all playground settings.
type Config struct {
	Window    WindowConfig    `yaml:"window"`
	Scene     SceneConfig     `yaml:"scene"`
	Animation AnimationConfig `yaml:"animation"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
}

// SceneConfig describes what is shown and how it is lit.
type SceneConfig struct {
	MeshPath     string         `yaml:"mesh_path"` // STL file, empty for the built-in cube
	AmbientLight math.Vec3      `yaml:"ambient_light"`
	Material     model.Material `yaml:"material"`
	Light        LightConfig    `yaml:"light"`
	Camera       CameraConfig   `yaml:"camera"`
	// DedupeEpsilon > 0 merges STL vertices closer than this per
	// component instead of requiring exact equality.
	DedupeEpsilon float32 `yaml:"dedupe_epsilon"`
}

// LightConfig places the point light.
type LightConfig struct {
	Position  math.Vec3 `yaml:"position"`
	Color     math.Vec3 `yaml:"color"`
	Intensity float32   `yaml:"intensity"`
}

// CameraConfig selects and sizes the projection.
type CameraConfig struct {
	Projection  string    `yaml:"projection"` // "perspective" or "ortho"
	FOV         float32   `yaml:"fov"`        // vertical, degrees
	Near        float32   `yaml:"near"`
	Far         float32   `yaml:"far"`
	OrthoHeight float32   `yaml:"ortho_height"` // half height of the ortho volume
	Position    math.Vec3 `yaml:"position"`
}

// AnimationConfig holds curve playback settings.
type AnimationConfig struct {
	TimeStep      float32 `yaml:"time_step"`
	CurveSamples  int     `yaml:"curve_samples"`
	ControlPoints string  `yaml:"control_points"` // YAML file, empty for the built-in curves
	Watch         bool    `yaml:"watch"`          // reload control points on change
	Autostart     bool    `yaml:"autostart"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:      "open-cv-imgui",
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
		},
		Scene: SceneConfig{
			AmbientLight: math.Vec3{X: 1, Y: 1, Z: 1},
			Material:     model.DefaultMaterial(),
			Light: LightConfig{
				Position:  math.Vec3{X: 5, Y: 3, Z: 0},
				Color:     math.Vec3{X: 1, Y: 1, Z: 1},
				Intensity: 60,
			},
			Camera: CameraConfig{
				Projection:  ProjectionPerspective,
				FOV:         45,
				Near:        0.1,
				Far:         100,
				OrthoHeight: 3,
				Position:    math.Vec3{X: 0, Y: 0, Z: 4},
			},
		},
		Animation: AnimationConfig{
			TimeStep:     animation.DefaultTimeStep,
			CurveSamples: 1000,
			Autostart:    true,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate reports settings that cannot produce a scene.
func (c *Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.Window.Width, c.Window.Height)
	case c.Scene.Camera.Projection != ProjectionPerspective && c.Scene.Camera.Projection != ProjectionOrtho:
		return fmt.Errorf("%w: unknown projection %q", ErrInvalidConfig, c.Scene.Camera.Projection)
	case c.Scene.Camera.Near >= c.Scene.Camera.Far:
		return fmt.Errorf("%w: camera near %v >= far %v", ErrInvalidConfig, c.Scene.Camera.Near, c.Scene.Camera.Far)
	case c.Animation.TimeStep <= 0 || c.Animation.TimeStep > 1:
		return fmt.Errorf("%w: time step %v outside (0, 1]", ErrInvalidConfig, c.Animation.TimeStep)
	case c.Animation.CurveSamples < 1:
		return fmt.Errorf("%w: curve samples %d", ErrInvalidConfig, c.Animation.CurveSamples)
	}
	return nil
}
