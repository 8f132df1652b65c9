package decorate

import (
	"fmt"
	"regexp"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/panelkit/internal/focus"
	"github.com/alexisbeaulieu97/panelkit/internal/ui/components"
)

var (
	spotSeq       atomic.Uint64
	autoIDPattern = regexp.MustCompile(`^spottable_\d+$`)
)

// IsGeneratedID reports whether id has the shape of the ids assigned to
// spottable components rendered without one.
func IsGeneratedID(id string) bool {
	return autoIDPattern.MatchString(id)
}

// Definition is a validated layer chain. It is immutable and safe to share;
// state lives in the Components it creates.
type Definition struct {
	name        string
	base        components.Kind
	layers      []Layer
	composition components.Composition
}

// Name returns the component name.
func (d *Definition) Name() string { return d.name }

// Layers returns the layers outermost first.
func (d *Definition) Layers() []Layer {
	out := make([]Layer, len(d.layers))
	copy(out, d.layers)
	return out
}

// Composition reports which layers are present.
func (d *Definition) Composition() components.Composition { return d.composition }

// New creates an instance with fresh layer state.
func (d *Definition) New() *Component {
	return &Component{def: d}
}

// renderKey is what the Pure layer compares between renders.
type renderKey struct {
	props       components.Props
	skin        string
	constraints components.Constraints
	container   string
	current     string
	revision    uint64
}

// Component is one live instance of a Definition.
type Component struct {
	def *Definition

	// Pure
	cached   string
	key      renderKey
	hasCache bool
	mounted  *focus.Element

	// Toggleable
	selected    bool
	initialized bool
	revision    uint64

	// Spottable
	autoID string

	last    components.Props
	renders int
}

// Definition returns the definition the component was created from.
func (c *Component) Definition() *Definition { return c.def }

// Revision changes whenever internal state that affects output changes.
func (c *Component) Revision() uint64 { return c.revision }

// Selected reports the toggle state. It is false for components without a
// Toggleable layer.
func (c *Component) Selected() bool { return c.selected }

// Renders counts how many times the base actually rendered.
func (c *Component) Renders() int { return c.renders }

// ID returns the focus element id, assigning one when props carry none.
func (c *Component) ID() string {
	if c.last.ID != "" {
		return c.last.ID
	}
	return c.elementID(components.Props{})
}

func (c *Component) elementID(p components.Props) string {
	if p.ID != "" {
		return p.ID
	}
	if c.autoID == "" {
		c.autoID = fmt.Sprintf("spottable_%d", spotSeq.Add(1))
	}
	return c.autoID
}

// Render runs props through the layers and renders the base.
func (c *Component) Render(ctx components.RenderContext, p components.Props) string {
	c.last = p
	return c.renderLayer(0, ctx, p)
}

// View renders with the default context and the last props.
func (c *Component) View() string {
	return c.Render(components.DefaultContext(), c.last)
}

func (c *Component) renderLayer(i int, ctx components.RenderContext, p components.Props) string {
	if i == len(c.def.layers) {
		c.renders++
		return c.def.base.Render(ctx, p)
	}
	next := func(ctx components.RenderContext, p components.Props) string {
		return c.renderLayer(i+1, ctx, p)
	}
	switch c.def.layers[i] {
	case Pure:
		return c.pure(ctx, p, next)
	case Toggleable:
		return c.toggleable(ctx, p, next)
	case Spottable:
		return c.spottable(ctx, p, next)
	case Skinnable:
		return c.skinnable(ctx, p, next)
	}
	return next(ctx, p)
}

type renderFunc func(components.RenderContext, components.Props) string

func (c *Component) pure(ctx components.RenderContext, p components.Props, next renderFunc) string {
	key := renderKey{
		props:       p,
		skin:        ctx.Skin,
		constraints: ctx.Constraints,
		container:   ctx.Container,
		revision:    c.revision,
	}
	if ctx.Focus != nil {
		key.current, _ = ctx.Focus.Current()
	}
	if c.hasCache && c.key.props.Equal(key.props) && c.key.sameContext(key) {
		// Output is reused but the element stays mounted.
		if c.mounted != nil && ctx.Focus != nil {
			ctx.Focus.Register(ctx.Container, *c.mounted)
		}
		return c.cached
	}
	c.mounted = nil
	c.cached = next(ctx, p)
	c.key = key
	c.hasCache = true
	return c.cached
}

func (k renderKey) sameContext(other renderKey) bool {
	return k.skin == other.skin &&
		k.constraints == other.constraints &&
		k.container == other.container &&
		k.current == other.current &&
		k.revision == other.revision
}

func (c *Component) toggleable(ctx components.RenderContext, p components.Props, next renderFunc) string {
	if !c.initialized {
		c.selected = p.Selected
		c.initialized = true
	}
	p.Selected = c.selected
	return next(ctx, p)
}

func (c *Component) spottable(ctx components.RenderContext, p components.Props, next renderFunc) string {
	id := c.elementID(p)
	p.ID = id
	p.Classes = p.Classes.Append(components.ClassSpottable).If(focus.DefaultClass, p.Default)

	if ctx.Focus != nil && !p.Disabled {
		el := focus.Element{ID: id, Classes: p.Classes}
		ctx.Focus.Register(ctx.Container, el)
		c.mounted = &el
		if current, ok := ctx.Focus.Current(); ok && current == id {
			p.Focused = true
		}
	}
	p.Classes = p.Classes.If(components.ClassFocused, p.Focused)
	return next(ctx, p)
}

func (c *Component) skinnable(ctx components.RenderContext, p components.Props, next renderFunc) string {
	class, ok := ctx.Theme.SkinClass(ctx.Skin)
	if !ok {
		class, _ = ctx.Theme.SkinClass(ctx.Theme.DefaultSkin)
	}
	p.Classes = p.Classes.Append(class)
	return next(ctx, p)
}

// Activate runs the activation path: toggle state flips first, then the
// activation handler fires. It reports whether anything handled it.
func (c *Component) Activate() bool {
	if c.last.Disabled {
		return false
	}
	handled := false
	if c.def.composition.Toggleable {
		if !c.initialized {
			c.selected = c.last.Selected
			c.initialized = true
		}
		c.selected = !c.selected
		c.revision++
		if c.last.OnToggle != nil {
			c.last.OnToggle(c.selected)
		}
		handled = true
	}
	if c.last.OnActivate != nil {
		c.last.OnActivate()
		handled = true
	}
	return handled
}

// HandleKey maps enter and space to activation on spottable components.
func (c *Component) HandleKey(msg tea.KeyMsg) bool {
	if !c.def.composition.Spottable {
		return false
	}
	switch msg.Type {
	case tea.KeyEnter, tea.KeySpace:
		return c.Activate()
	}
	return false
}

// Bound pairs a component with the props it renders with, so it can sit in
// a layout tree like any other renderable.
type Bound struct {
	Component *Component
	Props     components.Props
}

// Bind returns the component bound to p.
func (c *Component) Bind(p components.Props) Bound {
	return Bound{Component: c, Props: p}
}

// View renders with the default context.
func (b Bound) View() string {
	return b.Component.Render(components.DefaultContext(), b.Props)
}

// ViewWithContext renders with ctx.
func (b Bound) ViewWithContext(ctx components.RenderContext) string {
	return b.Component.Render(ctx, b.Props)
}
