package components

import (
	"github.com/alexisbeaulieu97/panelkit/internal/focus"
	"github.com/alexisbeaulieu97/panelkit/internal/ui"
	"github.com/charmbracelet/lipgloss"
)

// BaseComponent provides common styling behavior for layout primitives.
// Embed this in component structs to get standard behavior.
type BaseComponent struct {
	style    lipgloss.Style
	appliers []StyleFunc
}

// StyleFunc is a function that applies styling transformations to a lipgloss.Style
// using data from a Theme. This is the core abstraction for theme-aware styling.
type StyleFunc func(lipgloss.Style, Theme) lipgloss.Style

// Chain combines style functions into one, applied in order.
func Chain(funcs ...StyleFunc) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		for _, fn := range funcs {
			if fn != nil {
				base = fn(base, theme)
			}
		}
		return base
	}
}

// NewBaseComponent creates a new base component with default styling.
func NewBaseComponent() BaseComponent {
	return BaseComponent{style: lipgloss.NewStyle()}
}

// ComputeStyle returns the computed style for this component using the provided theme.
func (b *BaseComponent) ComputeStyle(theme Theme) lipgloss.Style {
	return Chain(b.appliers...)(b.style, theme)
}

// SetStyle replaces the raw lipgloss style.
func (b *BaseComponent) SetStyle(style lipgloss.Style) {
	b.style = style
}

// AddAppliers appends theme-aware style functions. The slice is copied so
// components sharing a base never alias each other's appliers.
func (b *BaseComponent) AddAppliers(appliers ...StyleFunc) {
	next := make([]StyleFunc, len(b.appliers), len(b.appliers)+len(appliers))
	copy(next, b.appliers)
	b.appliers = append(next, appliers...)
}

// Constraints defines sizing constraints for layout calculations.
// A negative maximum means unlimited.
type Constraints struct {
	MinWidth  int
	MaxWidth  int
	MinHeight int
	MaxHeight int
}

// Unconstrained returns constraints with no limits.
func Unconstrained() Constraints {
	return Constraints{MaxWidth: -1, MaxHeight: -1}
}

// Bounded returns constraints with fixed maximum width and height.
func Bounded(width, height int) Constraints {
	return Constraints{MaxWidth: width, MaxHeight: height}
}

// HasWidth returns true if there's a width constraint.
func (c Constraints) HasWidth() bool {
	return c.MaxWidth >= 0
}

// HasHeight returns true if there's a height constraint.
func (c Constraints) HasHeight() bool {
	return c.MaxHeight >= 0
}

// RenderContext carries the theme, the selected skin, layout limits and the
// focus registry down the render tree. It is passed by value; With* helpers
// return modified copies.
type RenderContext struct {
	Theme       Theme
	Skin        string
	Constraints Constraints
	Focus       focus.Registrar
	Container   string
}

// DefaultContext returns a render context with the default theme and skin.
func DefaultContext() RenderContext {
	theme := DefaultTheme()
	return RenderContext{
		Theme:       theme,
		Skin:        theme.DefaultSkin,
		Constraints: Unconstrained(),
	}
}

// WithTheme returns a new context with the specified theme.
func (r RenderContext) WithTheme(theme Theme) RenderContext {
	r.Theme = theme
	return r
}

// WithSkin returns a new context rendering with the named skin.
func (r RenderContext) WithSkin(skin string) RenderContext {
	r.Skin = skin
	return r
}

// WithConstraints returns a new context with the given constraints.
func (r RenderContext) WithConstraints(c Constraints) RenderContext {
	r.Constraints = c
	return r
}

// WithFocus returns a context whose spottable descendants register into
// containerID on the given registry.
func (r RenderContext) WithFocus(registry focus.Registrar, containerID string) RenderContext {
	r.Focus = registry
	r.Container = containerID
	return r
}

// ContextualRenderable is a component that can receive render context.
type ContextualRenderable interface {
	ui.Renderable
	ViewWithContext(ctx RenderContext) string
}

// RenderChild renders a child with context when it supports it.
func RenderChild(child ui.Renderable, ctx RenderContext) string {
	if child == nil {
		return ""
	}
	if contextual, ok := child.(ContextualRenderable); ok {
		return contextual.ViewWithContext(ctx)
	}
	return child.View()
}
