package panels

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	oteltrace "go.opentelemetry.io/otel/trace"

	"github.com/alexisbeaulieu97/panelkit/internal/focus"
	"github.com/alexisbeaulieu97/panelkit/internal/logger"
	"github.com/alexisbeaulieu97/panelkit/internal/telemetry"
	"github.com/alexisbeaulieu97/panelkit/internal/ui"
	"github.com/alexisbeaulieu97/panelkit/internal/ui/components"
)

// RoleRegion is the accessibility role every panel exposes.
const RoleRegion = "region"

// HideMode is the application's explicit say over a panel's body.
type HideMode int

const (
	// HideAuto lets the view manager decide.
	HideAuto HideMode = iota
	// HideAlways withholds the body regardless of navigation.
	HideAlways
	// HideNever shows the body even while the panel is inactive.
	HideNever
)

// Mounter is implemented by engines that track which elements are on screen.
// Panels use it to declare their container defaults and to unmount their
// elements when the body is withheld.
type Mounter interface {
	RegisterContainer(id string, defaults ...string)
	ClearElements(containerID string)
}

// containerDefaults are tried, in order, when entering with the
// default-element rule and no fallback matched.
var containerDefaults = []string{"." + focus.DefaultClass, "*"}

// Panel is a single navigable view with header, body and footer regions.
type Panel struct {
	// ID names the panel's focus container. Empty means "panel-<index>".
	ID        string
	AriaLabel string
	AutoFocus AutoFocus
	Hide      HideMode

	Header Region
	Body   Region
	Footer Region

	index    int
	hidden   bool
	shown    bool
	restored bool
	headerID string

	log    *logger.Logger
	tracer oteltrace.Tracer
}

// NewPanel creates a panel with the given body and default policies.
func NewPanel(body ui.Renderable) *Panel {
	return &Panel{Body: Visible(body)}
}

// WithHeader sets the header region.
func (p *Panel) WithHeader(content ui.Renderable) *Panel {
	p.Header = Visible(content)
	return p
}

// WithFooter sets the footer region.
func (p *Panel) WithFooter(content ui.Renderable) *Panel {
	p.Footer = Visible(content)
	return p
}

// Index is the panel's position in its view manager. It is re-stamped on
// every SetViews.
func (p *Panel) Index() int {
	return p.index
}

// HideChildren reports whether the body is currently withheld.
func (p *Panel) HideChildren() bool {
	return p.hidden
}

// SetHideChildren sets the effective hidden state directly. The view manager
// calls it on every pass; standalone panels may call it themselves.
func (p *Panel) SetHideChildren(hidden bool) {
	p.hidden = hidden
}

// ContainerID is the focus container the panel registers and focuses.
func (p *Panel) ContainerID() string {
	if p.ID != "" {
		return p.ID
	}
	return fmt.Sprintf("panel-%d", p.index)
}

// HeaderID returns the generated header id, allocating it on first use.
// Panels with an explicit label never need one and get "".
func (p *Panel) HeaderID() string {
	if p.AriaLabel != "" {
		return ""
	}
	if p.headerID == "" {
		p.headerID = nextHeaderID()
	}
	return p.headerID
}

// Layout is the resolved structure of a panel for one render.
type Layout struct {
	Role       string
	AriaLabel  string
	LabelledBy string
	Classes    components.Classes

	// Header, Body and Footer are nil when the region does not render.
	Header *components.Cell
	Body   *components.Cell
	Footer *components.Cell
}

// Cells lists the rendering cells top to bottom.
func (l Layout) Cells() []*components.Cell {
	cells := make([]*components.Cell, 0, 3)
	for _, cell := range []*components.Cell{l.Header, l.Body, l.Footer} {
		if cell != nil {
			cells = append(cells, cell)
		}
	}
	return cells
}

// Layout resolves the panel's regions. The body cell is always present so
// the panel keeps its size, but its content is dropped while hidden. Header
// and footer are ruled off from the body by a divider.
func (p *Panel) Layout() Layout {
	headerID := p.HeaderID()
	l := Layout{
		Role:       RoleRegion,
		AriaLabel:  p.AriaLabel,
		LabelledBy: headerID,
		Classes:    components.NewClasses(components.ClassPanel),
	}

	if content, ok := p.Header.Content(); ok {
		l.Header = &components.Cell{
			ID:      headerID,
			Classes: components.NewClasses(components.ClassHeader),
			Shrink:  true,
			Content: components.VStack(content, components.HorizontalDivider()),
		}
	}

	body := &components.Cell{
		Classes: components.NewClasses(components.ClassBody).
			If(components.ClassNoHeader, !p.Header.IsVisible()).
			If(components.ClassNoFooter, !p.Footer.IsVisible()).
			If(components.ClassVisible, !p.hidden),
	}
	if content, ok := p.Body.Content(); ok && !p.hidden {
		body.Content = content
	}
	l.Body = body

	if content, ok := p.Footer.Content(); ok {
		l.Footer = &components.Cell{
			Classes: components.NewClasses(components.ClassFooter),
			Shrink:  true,
			Content: components.VStack(components.HorizontalDivider(), content),
		}
	}
	return l
}

// View renders the panel. Spottable descendants register into the panel's
// container when ctx carries a focus registrar.
func (p *Panel) View(ctx components.RenderContext) string {
	if ctx.Focus != nil {
		ctx = ctx.WithFocus(ctx.Focus, p.ContainerID())
	}
	l := p.Layout()
	col := components.NewColumn(l.Cells()...)
	return col.ViewWithContext(ctx)
}

// Intent resolves the focus policy the panel would register right now. It
// yields nothing while the body is hidden, when the policy is none, or when
// any element anywhere already holds focus.
func (p *Panel) Intent(engine focus.Engine) (focus.Policy, bool) {
	if p.hidden {
		return focus.Policy{}, false
	}
	policy, ok := p.AutoFocus.Policy()
	if !ok {
		return focus.Policy{}, false
	}
	if _, focused := engine.Current(); focused {
		return focus.Policy{}, false
	}
	return policy, true
}

// Commit runs after the panel's content has rendered. The first commit of an
// activation that finds nothing focused restores focus into the panel; later
// commits of the same activation do nothing. Hiding the body ends the
// activation.
func (p *Panel) Commit(engine focus.Engine) {
	if engine == nil {
		return
	}
	if p.hidden {
		p.deactivate(engine)
		return
	}

	id := p.ContainerID()
	if !p.shown {
		p.shown = true
		if m, ok := engine.(Mounter); ok {
			m.RegisterContainer(id, containerDefaults...)
		}
	}
	if p.restored {
		return
	}

	policy, ok := p.Intent(engine)
	if !ok {
		return
	}
	p.restored = true

	_, span := p.tracerOrNoop().Start(context.Background(), "panel.restore_focus",
		oteltrace.WithAttributes(
			attribute.String("panel.container", id),
			attribute.Int("panel.index", p.index),
			attribute.String("focus.entry_rule", policy.EntryRule.String()),
		))
	defer span.End()

	engine.SetContainerPolicy(id, policy)
	if err := engine.FocusContainer(id); err != nil {
		span.RecordError(err)
		if errors.Is(err, focus.ErrNoFocusable) {
			p.log.WithField("container", id).Debug("focus restore found nothing focusable")
			return
		}
		p.log.WithFields(map[string]any{"container": id, "error": err.Error()}).Warn("focus restore failed")
	}
}

func (p *Panel) deactivate(engine focus.Engine) {
	p.restored = false
	if !p.shown {
		return
	}
	p.shown = false
	if m, ok := engine.(Mounter); ok {
		m.ClearElements(p.ContainerID())
	}
}

func (p *Panel) tracerOrNoop() oteltrace.Tracer {
	if p.tracer == nil {
		return telemetry.Noop()
	}
	return p.tracer
}
