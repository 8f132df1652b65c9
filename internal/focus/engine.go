// Package focus provides the directional focus engine that panels and
// spottable widgets cooperate with. Panels treat it as a black box through
// the Engine interface; Spotlight is the in-memory implementation used by the
// showcase and tests.
package focus

import (
	"errors"
	"strings"
)

// ErrNoFocusable is returned when a container has nothing that can take focus.
// Callers treat it as a best-effort miss, not a failure.
var ErrNoFocusable = errors.New("focus: no focusable element")

// ErrUnknownElement is returned when focusing an element that was never registered.
var ErrUnknownElement = errors.New("focus: unknown element")

// EntryRule decides which descendant a container focuses when it is entered.
type EntryRule int

const (
	EnterLastFocused EntryRule = iota
	EnterDefaultElement
)

func (r EntryRule) String() string {
	switch r {
	case EnterLastFocused:
		return "last-focused"
	case EnterDefaultElement:
		return "default-element"
	default:
		return "unknown"
	}
}

// Policy is the per-container entry configuration.
type Policy struct {
	EntryRule        EntryRule
	FallbackSelector string
}

// Engine is the contract panels consume.
type Engine interface {
	SetContainerPolicy(containerID string, p Policy)
	FocusContainer(containerID string) error
	Current() (elementID string, ok bool)
}

// Element is a focus target registered inside a container.
type Element struct {
	ID      string
	Classes []string
}

// HasClass reports whether the element carries the class name.
func (e Element) HasClass(name string) bool {
	for _, c := range e.Classes {
		if c == name {
			return true
		}
	}
	return false
}

// Matches reports whether the element satisfies selector. Supported forms are
// "#id", ".class", a bare class name and "*"; a comma separated list matches
// when any entry does.
func Matches(selector string, el Element) bool {
	for _, part := range strings.Split(selector, ",") {
		part = strings.TrimSpace(part)
		switch {
		case part == "":
			continue
		case part == "*":
			return true
		case strings.HasPrefix(part, "#"):
			if el.ID == part[1:] {
				return true
			}
		case strings.HasPrefix(part, "."):
			if el.HasClass(part[1:]) {
				return true
			}
		default:
			if el.HasClass(part) {
				return true
			}
		}
	}
	return false
}

// Direction is a 5-way navigation direction.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

func (d Direction) backward() bool {
	return d == Up || d == Left
}

// Registrar is the narrow view of an engine that spottable components need
// while rendering: register themselves and ask what is current.
type Registrar interface {
	Register(containerID string, el Element)
	Current() (elementID string, ok bool)
}
