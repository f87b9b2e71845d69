package animation

// DefaultTimeStep is the per-frame increment of the curve parameter.
const DefaultTimeStep = 1.0 / 2000.0

// Clock is a curve parameter in [0, 1] advanced by a fixed step per frame.
// Once t passes 1 it restarts at 0; the overshoot is discarded.
type Clock struct {
	T    float32
	Step float32
}

// NewClock returns a clock at t = 0. A non-positive step selects
// DefaultTimeStep.
func NewClock(step float32) Clock {
	if step <= 0 {
		step = DefaultTimeStep
	}
	return Clock{Step: step}
}

// Advance moves t forward one step and reports whether it wrapped.
func (c *Clock) Advance() bool {
	c.T += c.Step
	if c.T > 1 {
		c.T = 0
		return true
	}
	return false
}

// Reset rewinds to t = 0.
func (c *Clock) Reset() {
	c.T = 0
}
