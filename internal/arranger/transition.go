package arranger

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// Transition is a running slide. It is advanced one frame at a time by the
// owner's render loop and never touches a clock itself.
type Transition struct {
	From int
	To   int

	axis     Orientation
	distance float64
	sign     float64
	spring   harmonica.Spring
	pos      float64
	vel      float64
	frames   int
	done     bool
}

// Step advances the spring by one frame and returns the new frame.
func (t *Transition) Step() Frame {
	if t.done {
		return t.Frame()
	}
	t.frames++
	t.pos, t.vel = t.spring.Update(t.pos, t.vel, 1.0)
	if (math.Abs(1.0-t.pos) < settleEpsilon && math.Abs(t.vel) < settleEpsilon) || t.frames >= maxFrames {
		t.Finish()
	}
	return t.Frame()
}

// Finish jumps to the settled state.
func (t *Transition) Finish() {
	t.pos = 1.0
	t.vel = 0
	t.done = true
}

// Done reports whether the slide has settled.
func (t *Transition) Done() bool {
	return t.done
}

// Frames returns how many frames have been stepped.
func (t *Transition) Frames() int {
	return t.frames
}

// Frame returns the current offsets without advancing.
func (t *Transition) Frame() Frame {
	progress := math.Max(0, math.Min(1, t.pos))
	enter := int(math.Round((1 - progress) * t.distance * t.sign))
	leave := int(math.Round(-progress * t.distance * t.sign))

	f := Frame{Progress: progress}
	if t.axis == Vertical {
		f.Enter = Offset{Y: enter}
		f.Leave = Offset{Y: leave}
	} else {
		f.Enter = Offset{X: enter}
		f.Leave = Offset{X: leave}
	}
	return f
}
