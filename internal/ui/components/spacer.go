package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Spacer renders fixed empty space.
type Spacer struct {
	width  int
	height int
}

// NewSpacer creates a spacer with the given dimensions.
func NewSpacer(width, height int) *Spacer {
	return &Spacer{width: width, height: height}
}

// HorizontalSpacer creates a one-line spacer of the given width.
func HorizontalSpacer(width int) *Spacer {
	return NewSpacer(width, 1)
}

// VerticalSpacer creates a zero-width spacer of the given height.
func VerticalSpacer(height int) *Spacer {
	return NewSpacer(0, height)
}

// View renders the spacer as blank cells.
func (s *Spacer) View() string {
	w := max(s.width, 0)
	h := max(s.height, 0)
	if w == 0 && h == 0 {
		return ""
	}

	line := strings.Repeat(" ", w)
	if h > 1 {
		lines := make([]string, h)
		for i := range lines {
			lines[i] = line
		}
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}
	return line
}

// Width returns the spacer width.
func (s *Spacer) Width() int {
	return s.width
}

// Height returns the spacer height.
func (s *Spacer) Height() int {
	return s.height
}
