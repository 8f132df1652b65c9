// Package arranger computes enter/leave offsets for panel transitions.
package arranger

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/harmonica"
)

// FrameRate is the number of animation frames per second.
const FrameRate = 60

// FrameInterval is the delay between two animation frames.
const FrameInterval = time.Second / FrameRate

const (
	angularFrequency = 9.0
	dampingRatio     = 1.0
	settleEpsilon    = 0.002
	maxFrames        = FrameRate * 3
)

// Orientation selects the built-in slide strategy.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// ParseOrientation accepts "horizontal", "vertical" or an empty string.
func ParseOrientation(value string) (Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "horizontal":
		return Horizontal, nil
	case "vertical":
		return Vertical, nil
	default:
		return Horizontal, fmt.Errorf("unknown orientation %q", value)
	}
}

// Size is the viewport a transition slides across.
type Size struct {
	Width  int
	Height int
}

// Offset is a cell displacement.
type Offset struct {
	X int
	Y int
}

// Frame is one animation step.
type Frame struct {
	Enter    Offset
	Leave    Offset
	Progress float64
}

// Arranger produces transitions between two view indices.
type Arranger interface {
	Name() string
	Transition(from, to int, size Size) *Transition
}

// SlideArranger slides the entering view in along one axis while the leaving
// view slides out the other way.
type SlideArranger struct {
	name string
	axis Orientation
}

var (
	// SlideLeft is the horizontal strategy.
	SlideLeft Arranger = SlideArranger{name: "horizontal", axis: Horizontal}
	// SlideTop is the vertical strategy.
	SlideTop Arranger = SlideArranger{name: "vertical", axis: Vertical}
)

// Name returns the strategy token.
func (a SlideArranger) Name() string {
	return a.name
}

// Transition starts a new spring-driven slide from one index to another.
// Moving to a higher index enters from the right (or bottom).
func (a SlideArranger) Transition(from, to int, size Size) *Transition {
	distance := size.Width
	if a.axis == Vertical {
		distance = size.Height
	}
	sign := 1.0
	if to < from {
		sign = -1.0
	}
	return &Transition{
		From:     from,
		To:       to,
		axis:     a.axis,
		distance: float64(distance),
		sign:     sign,
		spring:   harmonica.NewSpring(harmonica.FPS(FrameRate), angularFrequency, dampingRatio),
	}
}

// ByName returns the built-in arranger for a token.
func ByName(token string) (Arranger, bool) {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case SlideLeft.Name():
		return SlideLeft, true
	case SlideTop.Name():
		return SlideTop, true
	default:
		return nil, false
	}
}

// Select picks the arranger for a view manager: an explicit arranger always
// wins, otherwise the orientation decides.
func Select(explicit Arranger, o Orientation) Arranger {
	if explicit != nil {
		return explicit
	}
	if o == Vertical {
		return SlideTop
	}
	return SlideLeft
}
