package animation

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/gregoryw3/open-cv-imgui/internal/engine/transform"
	"github.com/gregoryw3/open-cv-imgui/pkg/math"
)

// ErrNotRunning is returned by Tick before Start or after Stop.
var ErrNotRunning = errors.New("animator is not running")

// State is the animator lifecycle state.
type State int

const (
	// Idle: not started, or stopped.
	Idle State = iota
	// Running: started, no frame evaluated yet.
	Running
	// Advancing: evaluating one frame per tick.
	Advancing
	// WrapReset: the last tick pushed t past 1 and it restarted at 0.
	WrapReset
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Advancing:
		return "advancing"
	case WrapReset:
		return "wrap-reset"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Frame is the curve output for one value of t.
type Frame struct {
	T              float32
	ObjectPosition math.Vec3
	CameraPosition math.Vec3
	Orientation    math.Quat
	// Wrapped is set when advancing past this frame restarted the clock.
	Wrapped bool
}

// Evaluate computes a frame from state at t.
func Evaluate(state *AnimationState, t float32) (Frame, error) {
	obj, err := BezierPoint(t, state.Object)
	if err != nil {
		return Frame{}, fmt.Errorf("object curve: %w", err)
	}
	cam, err := BezierPoint(t, state.Camera)
	if err != nil {
		return Frame{}, fmt.Errorf("camera curve: %w", err)
	}
	rot, err := SlerpChain(t, state.Rotation)
	if err != nil {
		return Frame{}, fmt.Errorf("rotation curve: %w", err)
	}
	return Frame{T: t, ObjectPosition: obj, CameraPosition: cam, Orientation: rot}, nil
}

// Animator advances a Clock and evaluates the curves held in a Store
// once per tick.
type Animator struct {
	store *Store
	clock Clock
	state State
	log   *zap.Logger
}

// NewAnimator creates an idle animator. A nil logger discards output.
func NewAnimator(store *Store, step float32, log *zap.Logger) *Animator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Animator{
		store: store,
		clock: NewClock(step),
		state: Idle,
		log:   log,
	}
}

// State returns the current lifecycle state.
func (a *Animator) State() State { return a.state }

// T returns the curve parameter the next tick will evaluate.
func (a *Animator) T() float32 { return a.clock.T }

// Start moves an idle animator to Running. It resumes from the current t.
func (a *Animator) Start() {
	if a.state == Idle {
		a.state = Running
		a.log.Debug("animation started", zap.Float32("t", a.clock.T))
	}
}

// Stop returns the animator to Idle, keeping t.
func (a *Animator) Stop() {
	a.state = Idle
}

// Reset rewinds t to 0 without changing the state.
func (a *Animator) Reset() {
	a.clock.Reset()
}

// Tick evaluates the curves at the current t on a fresh snapshot of the
// store, then advances t. On error t is not advanced.
func (a *Animator) Tick() (Frame, error) {
	if a.state == Idle {
		return Frame{}, ErrNotRunning
	}

	f, err := Evaluate(a.store.Load(), a.clock.T)
	if err != nil {
		return Frame{}, err
	}

	if a.clock.Advance() {
		f.Wrapped = true
		a.state = WrapReset
		a.log.Debug("animation wrapped")
	} else {
		a.state = Advancing
	}
	return f, nil
}

// Apply pushes a frame into the object and camera transforms. Either may
// be nil. The object's rotation is replaced by the frame orientation.
func Apply(f Frame, object, camera *transform.Transform) {
	if object != nil {
		object.Position = f.ObjectPosition
		object.SetOrientation(f.Orientation)
	}
	if camera != nil {
		camera.Position = f.CameraPosition
	}
}
