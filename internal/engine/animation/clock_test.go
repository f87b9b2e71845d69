package animation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClockWrapDiscardsOvershoot(t *testing.T) {
	c := NewClock(0.4)

	assert.False(t, c.Advance())
	assert.InDelta(t, 0.4, c.T, 1e-6)
	assert.False(t, c.Advance())
	assert.InDelta(t, 0.8, c.T, 1e-6)

	// 1.2 is past the end: restart at exactly 0, not 0.2.
	assert.True(t, c.Advance())
	assert.Equal(t, float32(0), c.T)
}

func TestClockExactOneDoesNotWrap(t *testing.T) {
	c := Clock{T: 0.5, Step: 0.5}
	assert.False(t, c.Advance())
	assert.Equal(t, float32(1), c.T)
	assert.True(t, c.Advance())
}

func TestClockDefaultStep(t *testing.T) {
	c := NewClock(0)
	assert.Equal(t, float32(DefaultTimeStep), c.Step)

	c = NewClock(-1)
	assert.Equal(t, float32(DefaultTimeStep), c.Step)
}

func TestClockReset(t *testing.T) {
	c := NewClock(0.1)
	c.Advance()
	c.Reset()
	assert.Equal(t, float32(0), c.T)
}
