package components

import (
	"github.com/alexisbeaulieu97/panelkit/internal/ui"
)

// Spacing is a four-sided cell count used for padding.
type Spacing struct {
	Top    int
	Right  int
	Bottom int
	Left   int
}

// UniformSpacing returns the same spacing on every side.
func UniformSpacing(n int) Spacing {
	return Spacing{Top: n, Right: n, Bottom: n, Left: n}
}

// SymmetricSpacing returns vertical spacing top and bottom, horizontal left and right.
func SymmetricSpacing(vertical, horizontal int) Spacing {
	return Spacing{Top: vertical, Right: horizontal, Bottom: vertical, Left: horizontal}
}

// IsZero reports whether no side has spacing.
func (s Spacing) IsZero() bool {
	return s == Spacing{}
}

// Container is a box around a stack of children with padding, an optional
// themed border and classes. Children see the constraints left inside it.
type Container struct {
	BaseComponent
	layout  *Stack
	padding Spacing
	border  BorderVariant
	classes Classes
}

// NewContainer creates a container stacking children vertically.
func NewContainer(children ...ui.Renderable) *Container {
	return &Container{
		BaseComponent: NewBaseComponent(),
		layout:        VStack(children...),
	}
}

// View renders the container with the default context.
func (c *Container) View() string {
	return c.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the children inside the container's frame.
func (c *Container) ViewWithContext(ctx RenderContext) string {
	style := c.ComputeStyle(ctx.Theme)
	if len(c.classes) > 0 {
		style = style.Inherit(ctx.Theme.Style(c.classes))
	}
	if c.border != BorderVariantNone {
		style = style.Border(BorderForVariant(ctx.Theme, c.border))
	}
	if !c.padding.IsZero() {
		style = style.Padding(c.padding.Top, c.padding.Right, c.padding.Bottom, c.padding.Left)
	}

	constraints := ctx.Constraints
	if constraints.HasWidth() {
		constraints.MaxWidth = max(constraints.MaxWidth-style.GetHorizontalFrameSize(), 0)
	}
	if constraints.HasHeight() {
		constraints.MaxHeight = max(constraints.MaxHeight-style.GetVerticalFrameSize(), 0)
	}
	return style.Render(c.layout.ViewWithContext(ctx.WithConstraints(constraints)))
}

// WithPadding sets the padding.
func (c *Container) WithPadding(padding Spacing) *Container {
	c.padding = padding
	return c
}

// WithBorder draws a border from the theme's border set.
func (c *Container) WithBorder(variant BorderVariant) *Container {
	c.border = variant
	return c
}

// WithGap sets the gap between children.
func (c *Container) WithGap(gap int) *Container {
	c.layout.WithGap(gap)
	return c
}

// WithClasses attaches theme classes.
func (c *Container) WithClasses(names ...string) *Container {
	c.classes = c.classes.Append(names...)
	return c
}

// WithAppliers applies theme-based style modifiers.
func (c *Container) WithAppliers(appliers ...StyleFunc) *Container {
	c.AddAppliers(appliers...)
	return c
}

// Add appends children.
func (c *Container) Add(children ...ui.Renderable) *Container {
	c.layout.Add(children...)
	return c
}

// Children returns the child renderables.
func (c *Container) Children() []ui.Renderable {
	return c.layout.Children()
}
