package animation

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gregoryw3/open-cv-imgui/pkg/math"
)

// controlPointFile is the YAML layout of a control point file. Rotation
// entries are Euler angles in degrees.
type controlPointFile struct {
	Position [][3]float32 `yaml:"position"`
	Camera   [][3]float32 `yaml:"camera"`
	Rotation [][3]float32 `yaml:"rotation"`
}

// LoadControlPoints reads a control point file.
func LoadControlPoints(path string) (*AnimationState, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read control points: %w", err)
	}
	s, err := ParseControlPoints(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// ParseControlPoints decodes and validates control point YAML.
func ParseControlPoints(data []byte) (*AnimationState, error) {
	var f controlPointFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse control points: %w", err)
	}

	s := &AnimationState{
		Object:   make([]math.Vec3, len(f.Position)),
		Camera:   make([]math.Vec3, len(f.Camera)),
		Rotation: make([]math.Quat, len(f.Rotation)),
	}
	for i, p := range f.Position {
		s.Object[i] = math.Vec3FromArray(p)
	}
	for i, p := range f.Camera {
		s.Camera[i] = math.Vec3FromArray(p)
	}
	for i, r := range f.Rotation {
		s.Rotation[i] = math.QuatFromEuler(math.Radians(r[0]), math.Radians(r[1]), math.Radians(r[2]))
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

