// Package ui holds the minimal rendering contract shared by every component package.
package ui

// Renderable is anything that can draw itself to a terminal string.
type Renderable interface {
	View() string
}

// Text is a Renderable for a literal string.
type Text string

// View returns the string unchanged.
func (t Text) View() string {
	return string(t)
}
