package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const defaultDividerWidth = 40

// Divider renders a separator line. Without an explicit width it spans the
// width constraint, or defaultDividerWidth when unconstrained.
type Divider struct {
	BaseComponent
	char      string
	width     int
	direction Direction
	classes   Classes
}

// NewDivider creates a horizontal divider.
func NewDivider() *Divider {
	return &Divider{
		BaseComponent: NewBaseComponent(),
		char:          "─",
		direction:     DirectionHorizontal,
		classes:       NewClasses(ClassDivider),
	}
}

// HorizontalDivider creates a horizontal divider.
func HorizontalDivider() *Divider {
	return NewDivider()
}

// VerticalDivider creates a vertical divider; its width is its height.
func VerticalDivider() *Divider {
	return NewDivider().WithChar("│").WithDirection(DirectionVertical)
}

// DashedDivider creates a dashed divider.
func DashedDivider() *Divider {
	return NewDivider().WithChar("-")
}

// ThickDivider creates a thick divider.
func ThickDivider() *Divider {
	return NewDivider().WithChar("━")
}

// View renders the divider with the default context.
func (d *Divider) View() string {
	return d.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the divider sized by its width or the context.
func (d *Divider) ViewWithContext(ctx RenderContext) string {
	length := d.width
	if length <= 0 {
		if d.direction == DirectionVertical && ctx.Constraints.HasHeight() {
			length = ctx.Constraints.MaxHeight
		} else if d.direction == DirectionHorizontal && ctx.Constraints.HasWidth() {
			length = ctx.Constraints.MaxWidth
		} else {
			length = defaultDividerWidth
		}
	}
	if length <= 0 {
		return ""
	}

	style := d.ComputeStyle(ctx.Theme).Inherit(ctx.Theme.Style(d.classes))
	if d.direction == DirectionVertical {
		lines := make([]string, length)
		for i := range lines {
			lines[i] = d.char
		}
		return style.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
	}
	return style.Render(strings.Repeat(d.char, length))
}

// WithChar sets the character the line is drawn with.
func (d *Divider) WithChar(char string) *Divider {
	if char != "" {
		d.char = char
	}
	return d
}

// WithWidth sets an explicit length.
func (d *Divider) WithWidth(width int) *Divider {
	d.width = width
	return d
}

// WithDirection sets the divider direction.
func (d *Divider) WithDirection(dir Direction) *Divider {
	d.direction = dir
	return d
}

// WithClasses attaches theme classes.
func (d *Divider) WithClasses(names ...string) *Divider {
	d.classes = d.classes.Append(names...)
	return d
}

// WithAppliers applies theme-based style modifiers.
func (d *Divider) WithAppliers(appliers ...StyleFunc) *Divider {
	d.AddAppliers(appliers...)
	return d
}

// Width returns the explicit width, 0 when it follows the context.
func (d *Divider) Width() int {
	return d.width
}
