// Package playground implements the interactive frame loop: window, input,
// animation and drawing.
package playground

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sqweek/dialog"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/gregoryw3/open-cv-imgui/internal/assets"
	"github.com/gregoryw3/open-cv-imgui/internal/config"
	"github.com/gregoryw3/open-cv-imgui/internal/engine/animation"
	"github.com/gregoryw3/open-cv-imgui/internal/engine/camera"
	"github.com/gregoryw3/open-cv-imgui/internal/engine/gpu"
	"github.com/gregoryw3/open-cv-imgui/internal/engine/input"
	"github.com/gregoryw3/open-cv-imgui/internal/engine/render"
	"github.com/gregoryw3/open-cv-imgui/internal/engine/window"
	"github.com/gregoryw3/open-cv-imgui/internal/logger"
	"github.com/gregoryw3/open-cv-imgui/internal/watch"
)

// Playground is the main application instance.
type Playground struct {
	cfg     *config.Config
	running bool
	log     *zap.Logger

	window   *window.Window
	renderer *gpu.Renderer
	input    *input.Input
	assets   *assets.Manager

	scene    render.Scene
	orbit    *camera.Orbit
	store    *animation.Store
	animator *animation.Animator
	editor   animation.Editor

	watcher     *watch.ControlPoints
	cancelWatch context.CancelFunc
	watchDone   sync.WaitGroup
	curvesDirty atomic.Bool

	// pendingMesh receives paths picked in the file dialog. GL uploads
	// must happen on the main thread, so update drains it.
	pendingMesh chan string
}

// New creates the window, GL renderer and scene described by cfg.
func New(cfg *config.Config) (*Playground, error) {
	p := &Playground{
		cfg:    cfg,
		log:    logger.Named("playground"),
		assets: assets.NewManager(),
		orbit:  camera.NewOrbit(),

		pendingMesh: make(chan string, 1),
	}
	p.log.Info("initializing playground",
		zap.String("title", cfg.Window.Title),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
	)

	state, err := loadState(cfg.Animation.ControlPoints)
	if err != nil {
		return nil, err
	}
	p.store = animation.NewStore(state)
	p.animator = animation.NewAnimator(p.store, cfg.Animation.TimeStep, logger.Named("animation"))

	mesh, err := p.assets.Mesh(cfg.Scene.MeshPath, cfg.Scene.Keyer(), cfg.Scene.Material)
	if err != nil {
		return nil, err
	}

	// Create window (this also creates OpenGL context)
	p.window, err = window.New(window.Config{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	cam, err := cfg.Scene.Camera.NewCamera(p.window.Ratio())
	if err != nil {
		p.window.Close()
		return nil, fmt.Errorf("failed to create camera: %w", err)
	}
	p.log.Info("camera created",
		zap.String("projection", cfg.Scene.Camera.Projection),
		zap.Float32("ratio", cam.Ratio()),
	)

	// Create renderer (AFTER window, since OpenGL context must exist)
	w, h := p.window.Size()
	p.renderer, err = gpu.New(w, h)
	if err != nil {
		p.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	p.scene = render.Scene{
		Mesh:         mesh,
		Camera:       cam,
		Light:        cfg.Scene.Light.NewLight(),
		AmbientLight: cfg.Scene.AmbientLight,
	}
	if err := render.UploadMesh(p.renderer.Mesh(), mesh); err != nil {
		p.Close()
		return nil, err
	}
	p.curvesDirty.Store(true)

	p.orbit.FitToBounds(mesh.Bounds())
	p.orbit.Apply(cam.Transform())

	if cfg.Animation.ControlPoints != "" && cfg.Animation.Watch {
		if err := p.startWatcher(cfg.Animation.ControlPoints); err != nil {
			p.log.Warn("control point watcher disabled", zap.Error(err))
		}
	}

	if cfg.Animation.Autostart {
		p.animator.Start()
	}

	p.input = input.New()

	p.log.Info("playground initialized successfully")
	return p, nil
}

func loadState(path string) (*animation.AnimationState, error) {
	if path == "" {
		return animation.DefaultState(), nil
	}
	state, err := animation.LoadControlPoints(path)
	if err != nil {
		return nil, fmt.Errorf("loading control points: %w", err)
	}
	return state, nil
}

func (p *Playground) startWatcher(path string) error {
	w, err := watch.NewControlPoints(path, p.store)
	if err != nil {
		return err
	}
	w.OnReload = func(err error) {
		if err == nil {
			p.curvesDirty.Store(true)
		}
	}
	p.watcher = w

	ctx, cancel := context.WithCancel(context.Background())
	p.cancelWatch = cancel
	p.watchDone.Add(1)
	go func() {
		defer p.watchDone.Done()
		if err := w.Run(ctx); err != nil {
			p.log.Error("control point watcher stopped", zap.Error(err))
		}
	}()
	return nil
}

// Run starts the main loop.
func (p *Playground) Run() error {
	p.running = true

	// Timing
	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	p.log.Info("starting frame loop")

	for p.running {
		// Calculate delta time
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		// 1. Process input
		if p.input.Update() {
			// Quit event received
			p.running = false
			break
		}
		// ESC to quit
		if p.input.IsKeyPressed(sdl.SCANCODE_ESCAPE) {
			p.running = false
			break
		}
		if err := p.handleEvents(); err != nil {
			return fmt.Errorf("input error: %w", err)
		}

		// 2. Update scene state
		if err := p.update(); err != nil {
			return fmt.Errorf("update error: %w", err)
		}

		// 3. Render
		if err := p.renderer.Draw(p.scene); err != nil {
			return fmt.Errorf("render error: %w", err)
		}

		// 4. Present (swap buffers)
		p.window.SwapBuffers()

		// FPS counter
		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			p.log.Debug("fps",
				zap.Int("count", frameCount),
				zap.String("dt", fmt.Sprintf("%.2fms", dt*1000)),
				zap.Float32("t", p.animator.T()),
				zap.Stringer("state", p.animator.State()),
			)
			p.window.SetTitle(fmt.Sprintf("%s - %d fps - t %.3f (%s)",
				p.cfg.Window.Title, frameCount, p.animator.T(), p.animator.State()))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

func (p *Playground) handleEvents() error {
	for _, event := range p.input.Events() {
		switch event.Type {
		case input.EventWindowResize:
			if err := p.resize(event.Width, event.Height); err != nil {
				return err
			}
		case input.EventKeyDown:
			p.handleKey(event.Key)
		case input.EventDrag:
			if event.Shift {
				w, h := p.window.Size()
				if p.editor.Drag(p.store, event.DX, event.DY, w, h) {
					p.curvesDirty.Store(true)
				}
				continue
			}
			if p.animator.State() == animation.Idle {
				p.orbit.HandleDrag(event.DX, event.DY)
			}
		case input.EventScroll:
			if p.animator.State() == animation.Idle {
				p.orbit.HandleZoom(event.DY)
			}
		}
	}
	return nil
}

func (p *Playground) handleKey(key sdl.Scancode) {
	switch key {
	case sdl.SCANCODE_SPACE:
		if p.animator.State() == animation.Idle {
			p.animator.Start()
		} else {
			p.animator.Stop()
		}
	case sdl.SCANCODE_R:
		p.animator.Reset()
	case sdl.SCANCODE_TAB:
		p.editor.Next(p.store.Load())
	case sdl.SCANCODE_C:
		p.editor.ToggleCurve(p.store.Load())
	case sdl.SCANCODE_O:
		p.openMeshDialog()
	}
}

// openMeshDialog shows a native file dialog to pick an STL mesh.
func (p *Playground) openMeshDialog() {
	// Run in goroutine to not block the frame loop
	go func() {
		filename, err := dialog.File().
			Filter("STL Meshes", "stl").
			Filter("All Files", "*").
			Title("Open Mesh").
			Load()
		if err != nil {
			if !errors.Is(err, dialog.ErrCancelled) {
				p.log.Warn("file dialog error", zap.Error(err))
			}
			return
		}

		select {
		case p.pendingMesh <- filename:
		default:
			p.log.Debug("mesh load already pending", zap.String("path", filename))
		}
	}()
}

// swapMesh loads path and replaces the scene mesh, keeping the old one on
// error.
func (p *Playground) swapMesh(path string) {
	mesh, err := p.assets.Mesh(path, p.cfg.Scene.Keyer(), p.cfg.Scene.Material)
	if err != nil {
		p.log.Error("mesh load failed", zap.String("path", path), zap.Error(err))
		return
	}
	if err := render.UploadMesh(p.renderer.Mesh(), mesh); err != nil {
		p.log.Error("mesh upload failed", zap.String("path", path), zap.Error(err))
		return
	}
	mesh.Transform = p.scene.Mesh.Transform
	p.scene.Mesh = mesh
	p.orbit.FitToBounds(mesh.Bounds())
}

// resize rebuilds the camera for the new ratio, keeping its placement.
func (p *Playground) resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return nil
	}
	p.renderer.Resize(width, height)

	placement := *p.scene.Camera.Transform()
	cam, err := p.cfg.Scene.Camera.NewCamera(float32(width) / float32(height))
	if err != nil {
		return err
	}
	*cam.Transform() = placement
	p.scene.Camera = cam
	return nil
}

// update swaps in picked meshes, advances the animation and re-sends
// curves after edits.
func (p *Playground) update() error {
	select {
	case path := <-p.pendingMesh:
		p.swapMesh(path)
	default:
	}

	if p.curvesDirty.Swap(false) {
		if err := render.SendCurves(p.renderer.Curves(), p.store.Load(), p.cfg.Animation.CurveSamples); err != nil {
			p.log.Warn("curve upload failed", zap.Error(err))
		}
	}

	if p.animator.State() == animation.Idle {
		p.orbit.Apply(p.scene.Camera.Transform())
		return nil
	}

	f, err := p.animator.Tick()
	if err != nil {
		return err
	}
	animation.Apply(f, &p.scene.Mesh.Transform, p.scene.Camera.Transform())
	return nil
}

// Close cleans up resources.
func (p *Playground) Close() {
	p.log.Info("closing playground")

	if p.cancelWatch != nil {
		p.cancelWatch()
		p.watchDone.Wait()
	}
	if p.renderer != nil {
		p.renderer.Close()
	}
	if p.window != nil {
		p.window.Close()
	}
	p.assets.Close()
}
