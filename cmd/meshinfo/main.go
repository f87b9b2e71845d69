// meshinfo is a headless CLI for inspecting meshes, lighting and curves.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/chewxy/math32"

	"github.com/gregoryw3/open-cv-imgui/internal/assets"
	"github.com/gregoryw3/open-cv-imgui/internal/config"
	"github.com/gregoryw3/open-cv-imgui/internal/engine/animation"
	"github.com/gregoryw3/open-cv-imgui/internal/engine/camera"
	"github.com/gregoryw3/open-cv-imgui/internal/engine/model"
	"github.com/gregoryw3/open-cv-imgui/internal/engine/render"
	"github.com/gregoryw3/open-cv-imgui/pkg/math"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "info":
		cmdInfo(args)
	case "shade":
		cmdShade(args)
	case "curve":
		cmdCurve(args)
	case "frame":
		cmdFrame(args)
	case "config":
		cmdConfig(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`meshinfo - mesh, lighting and curve inspector

Usage:
  meshinfo <command> [options]

Commands:
  info [file.stl]             Show vertex, face and normal statistics
  shade [file.stl]            Shade every vertex and report the results
  curve [points.yaml]         Print samples of an animation curve
  frame [points.yaml]         Evaluate the animation at one t
  config [path]               Write a default config (user config dir if no path)

A missing mesh argument uses the built-in unit cube; a missing control
point file uses the built-in curves.

Examples:
  meshinfo info bunny.stl
  meshinfo shade -ortho -eps 0.001 bunny.stl
  meshinfo curve -curve camera -n 20
  meshinfo frame -t 0.25 path.yaml
  meshinfo config ./config.yaml`)
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func loadMesh(path string, eps float32) *model.Mesh {
	scene := config.Default().Scene
	scene.DedupeEpsilon = eps

	m := assets.NewManager()
	defer m.Close()

	mesh, err := m.Mesh(path, scene.Keyer(), scene.Material)
	if err != nil {
		fail(err)
	}
	return mesh
}

func loadState(path string) *animation.AnimationState {
	if path == "" {
		return animation.DefaultState()
	}
	state, err := animation.LoadControlPoints(path)
	if err != nil {
		fail(err)
	}
	return state
}

func cmdInfo(args []string) {
	fs := flag.NewFlagSet("info", flag.ExitOnError)
	eps := fs.Float64("eps", 0, "Merge vertices closer than this (0 = exact)")
	fs.Parse(args)

	mesh := loadMesh(fs.Arg(0), float32(*eps))
	lo, hi := mesh.Bounds()

	var zeroNormals int
	for _, n := range mesh.VertexNormals {
		if n == (math.Vec3{}) {
			zeroNormals++
		}
	}

	name := fs.Arg(0)
	if name == "" {
		name = assets.CubeName
	}
	fmt.Printf("Mesh: %s\n", name)
	fmt.Printf("Vertices: %d\n", len(mesh.Vertices))
	fmt.Printf("Faces: %d\n", mesh.FaceCount())
	fmt.Printf("Degenerate faces: %d\n", mesh.Degenerate)
	fmt.Printf("Vertices without normal: %d\n", zeroNormals)
	fmt.Printf("Bounds: %s .. %s\n", formatVec(lo), formatVec(hi))
}

func cmdShade(args []string) {
	fs := flag.NewFlagSet("shade", flag.ExitOnError)
	eps := fs.Float64("eps", 0, "Merge vertices closer than this (0 = exact)")
	ortho := fs.Bool("ortho", false, "Use an orthographic camera")
	ratio := fs.Float64("ratio", 16.0/9.0, "Viewport width / height")
	fs.Parse(args)

	cfg := config.Default()
	if *ortho {
		cfg.Scene.Camera.Projection = config.ProjectionOrtho
	}

	mesh := loadMesh(fs.Arg(0), float32(*eps))
	cam, err := cfg.Scene.Camera.NewCamera(float32(*ratio))
	if err != nil {
		fail(err)
	}
	orbit := camera.NewOrbit()
	orbit.FitToBounds(mesh.Bounds())
	orbit.Apply(cam.Transform())

	scene := render.Scene{
		Mesh:         mesh,
		Camera:       cam,
		Light:        cfg.Scene.Light.NewLight(),
		AmbientLight: cfg.Scene.AmbientLight,
	}
	shaded, err := render.ShadeVertices(scene)
	if err != nil {
		fail(err)
	}
	faces, err := render.ShadeFaces(scene)
	if err != nil {
		fail(err)
	}

	lo := math.Vec3{X: math32.MaxFloat32, Y: math32.MaxFloat32, Z: math32.MaxFloat32}
	hi := lo.Neg()
	for i, c := range shaded.Colors {
		if shaded.Failed[i] {
			continue
		}
		lo = math.Vec3{X: min(lo.X, c.X), Y: min(lo.Y, c.Y), Z: min(lo.Z, c.Z)}
		hi = math.Vec3{X: max(hi.X, c.X), Y: max(hi.Y, c.Y), Z: max(hi.Z, c.Z)}
	}

	var back int
	for _, f := range faces {
		if f.BackFacing {
			back++
		}
	}

	fmt.Printf("Camera: %s at %s\n", cfg.Scene.Camera.Projection, formatVec(cam.Transform().Position))
	fmt.Printf("Vertices: %d (%d failed projection)\n", len(shaded.Colors), shaded.NumFailed)
	if shaded.NumFailed < len(shaded.Colors) {
		fmt.Printf("Color range: %s .. %s\n", formatVec(lo), formatVec(hi))
	}
	fmt.Printf("Faces: %d (%d back-facing)\n", len(faces), back)
}

func cmdCurve(args []string) {
	fs := flag.NewFlagSet("curve", flag.ExitOnError)
	n := fs.Int("n", 10, "Number of segments")
	which := fs.String("curve", "object", "Curve to sample (object, camera)")
	fs.Parse(args)

	state := loadState(fs.Arg(0))

	var pts []math.Vec3
	switch *which {
	case "object":
		pts = state.Points(animation.CurveObject)
	case "camera":
		pts = state.Points(animation.CurveCamera)
	default:
		fail(fmt.Errorf("unknown curve %q", *which))
	}

	samples, err := animation.SampleCurve(pts, *n)
	if err != nil {
		fail(err)
	}
	for i, p := range samples {
		t := float32(i) / float32(*n)
		fmt.Printf("%.4f  %8.4f %8.4f %8.4f\n", t, p.X, p.Y, p.Z)
	}
}

func cmdFrame(args []string) {
	fs := flag.NewFlagSet("frame", flag.ExitOnError)
	t := fs.Float64("t", 0, "Curve parameter in [0, 1]")
	fs.Parse(args)

	f, err := animation.Evaluate(loadState(fs.Arg(0)), float32(*t))
	if err != nil {
		fail(err)
	}
	angle, axis := f.Orientation.AxisAngle()

	fmt.Printf("t: %.4f\n", f.T)
	fmt.Printf("Object: %s\n", formatVec(f.ObjectPosition))
	fmt.Printf("Camera: %s\n", formatVec(f.CameraPosition))
	fmt.Printf("Rotation: %.2f deg about %s\n", math.Degrees(angle), formatVec(axis))
}

func cmdConfig(args []string) {
	fs := flag.NewFlagSet("config", flag.ExitOnError)
	fs.Parse(args)

	cfg := config.Default()
	var err error
	if fs.NArg() > 0 {
		err = cfg.SaveTo(fs.Arg(0))
	} else {
		err = cfg.Save()
	}
	if err != nil {
		fail(err)
	}
	fmt.Println("Config written")
}

func formatVec(v math.Vec3) string {
	return fmt.Sprintf("(%.4f, %.4f, %.4f)", v.X, v.Y, v.Z)
}
