package panels

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"go.opentelemetry.io/otel/attribute"
	oteltrace "go.opentelemetry.io/otel/trace"

	"github.com/alexisbeaulieu97/panelkit/internal/arranger"
	"github.com/alexisbeaulieu97/panelkit/internal/focus"
	"github.com/alexisbeaulieu97/panelkit/internal/logger"
	"github.com/alexisbeaulieu97/panelkit/internal/telemetry"
	"github.com/alexisbeaulieu97/panelkit/internal/ui/components"
	apperrors "github.com/alexisbeaulieu97/panelkit/pkg/errors"
)

// Options configures a view manager.
type Options struct {
	// Arranger overrides the orientation-based choice when set.
	Arranger    arranger.Arranger
	Orientation arranger.Orientation
	// NoAnimation switches views instantly. Bodies are then hidden only when
	// a panel's HideMode says so.
	NoAnimation bool
	// Index is the initially active view. It is shown without a transition.
	Index int

	Logger *logger.Logger
	Tracer oteltrace.Tracer
}

// Panels hosts an ordered list of panels and the active index.
type Panels struct {
	engine      focus.Engine
	arranger    arranger.Arranger
	noAnimation bool

	views         []*Panel
	index         int
	previous      int
	hasPrevious   bool
	transitioning bool
	transition    *arranger.Transition
	seq           uint64
	size          arranger.Size

	span   oteltrace.Span
	log    *logger.Logger
	tracer oteltrace.Tracer
}

// New creates a view manager bound to a focus engine.
func New(engine focus.Engine, opts Options) *Panels {
	tracer := opts.Tracer
	if tracer == nil {
		tracer = telemetry.Noop()
	}
	return &Panels{
		engine:      engine,
		arranger:    arranger.Select(opts.Arranger, opts.Orientation),
		noAnimation: opts.NoAnimation,
		index:       opts.Index,
		log:         opts.Logger.WithField("component", "panels"),
		tracer:      tracer,
	}
}

// SetViews replaces the view list. Every panel is re-stamped with its
// position before anything else looks at it. Two panels resolving to the
// same focus container are rejected and the previous list is kept.
func (m *Panels) SetViews(views ...*Panel) error {
	for i, v := range views {
		v.index = i
	}
	owners := make(map[string]int, len(views))
	for i, v := range views {
		id := v.ContainerID()
		if first, exists := owners[id]; exists {
			for j, prev := range m.views {
				prev.index = j
			}
			return apperrors.NewValidationError("views",
				fmt.Sprintf("views %d and %d share focus container %q", first, i, id), nil)
		}
		owners[id] = i
	}

	m.views = views
	for i, v := range views {
		v.log = m.log.WithField("panel", i)
		v.tracer = m.tracer
	}
	m.stamp()
	return nil
}

// Views returns the current view list.
func (m *Panels) Views() []*Panel {
	return m.views
}

// Len returns the number of views.
func (m *Panels) Len() int {
	return len(m.views)
}

// Index returns the active index.
func (m *Panels) Index() int {
	return m.index
}

// Previous returns the index the last transition left from.
func (m *Panels) Previous() (int, bool) {
	return m.previous, m.hasPrevious
}

// Active returns the active panel, or nil when the index has no view.
func (m *Panels) Active() *Panel {
	if m.index < 0 || m.index >= len(m.views) {
		return nil
	}
	return m.views[m.index]
}

// Arranger returns the arranger in use.
func (m *Panels) Arranger() arranger.Arranger {
	return m.arranger
}

// Transitioning reports whether a transition is waiting for completion.
func (m *Panels) Transitioning() bool {
	return m.transitioning
}

// Progress returns how far the running transition has moved, from 0 to 1.
func (m *Panels) Progress() (float64, bool) {
	if !m.transitioning || m.transition == nil {
		return 0, false
	}
	return m.transition.Frame().Progress, true
}

// Seq returns the sequence number of the latest index change.
func (m *Panels) Seq() uint64 {
	return m.seq
}

// SetSize sets the viewport the panels fill and slide across.
func (m *Panels) SetSize(width, height int) {
	m.size = arranger.Size{Width: width, Height: height}
}

// HideChildren reports whether view i currently withholds its body.
func (m *Panels) HideChildren(i int) bool {
	if i < 0 || i >= len(m.views) {
		return true
	}
	return m.views[i].hidden
}

func (m *Panels) hideChildren(i int) bool {
	switch m.views[i].Hide {
	case HideAlways:
		return true
	case HideNever:
		return false
	}
	if m.noAnimation {
		return false
	}
	return i != m.index || m.transitioning
}

func (m *Panels) stamp() {
	for i, v := range m.views {
		v.hidden = m.hideChildren(i)
	}
}

// SetIndex makes view i active. With animation it starts a transition and
// returns the command driving its frames; the entering body stays hidden
// until that transition completes. Setting the current index is a no-op.
func (m *Panels) SetIndex(i int) (tea.Cmd, error) {
	if i < 0 || i >= len(m.views) {
		return nil, apperrors.NewValidationError("index", fmt.Sprintf("%d is outside 0..%d", i, len(m.views)-1), nil)
	}
	if i == m.index {
		return nil, nil
	}

	from := m.index
	m.previous, m.hasPrevious = from, true
	m.index = i
	m.seq++

	if m.transitioning {
		m.log.WithFields(map[string]any{"seq": m.seq - 1, "to": from}).Debug("transition superseded")
		m.endSpan("superseded")
	}

	if m.noAnimation {
		m.transitioning = false
		m.transition = nil
		m.stamp()
		return nil, nil
	}

	m.transition = m.arranger.Transition(from, i, m.size)
	m.transitioning = true
	_, m.span = m.tracer.Start(context.Background(), "panels.transition",
		oteltrace.WithAttributes(
			attribute.Int("panels.from", from),
			attribute.Int("panels.to", i),
			attribute.Int64("panels.seq", int64(m.seq)),
			attribute.String("panels.arranger", m.arranger.Name()),
		))
	m.log.WithFields(map[string]any{"from": from, "to": i, "seq": m.seq}).Debug("transition started")
	m.stamp()
	return m.tick(), nil
}

// Back activates the previous view, if any.
func (m *Panels) Back() (tea.Cmd, error) {
	if m.index <= 0 {
		return nil, nil
	}
	return m.SetIndex(m.index - 1)
}

// Forward activates the next view, if any.
func (m *Panels) Forward() (tea.Cmd, error) {
	if m.index >= len(m.views)-1 {
		return nil, nil
	}
	return m.SetIndex(m.index + 1)
}

func (m *Panels) tick() tea.Cmd {
	seq := m.seq
	return tea.Tick(arranger.FrameInterval, func(time.Time) tea.Msg {
		return FrameMsg{Seq: seq}
	})
}

// Update consumes frame and completion messages.
func (m *Panels) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case FrameMsg:
		if msg.Seq != m.seq || m.transition == nil {
			return nil
		}
		m.transition.Step()
		if !m.transition.Done() {
			return m.tick()
		}
		done := TransitionCompleteMsg{Seq: m.seq, From: m.transition.From, To: m.transition.To}
		return func() tea.Msg { return done }
	case TransitionCompleteMsg:
		m.complete(msg.Seq)
	}
	return nil
}

// Settle completes the running transition immediately.
func (m *Panels) Settle() bool {
	if !m.transitioning {
		return false
	}
	if m.transition != nil {
		m.transition.Finish()
	}
	return m.complete(m.seq)
}

func (m *Panels) complete(seq uint64) bool {
	if seq != m.seq || !m.transitioning {
		m.log.WithFields(map[string]any{"seq": seq, "current": m.seq}).Debug("stale transition completion discarded")
		return false
	}
	m.transitioning = false
	m.transition = nil
	m.endSpan("completed")
	m.stamp()
	return true
}

func (m *Panels) endSpan(outcome string) {
	if m.span == nil {
		return
	}
	m.span.SetAttributes(attribute.String("panels.outcome", outcome))
	m.span.End()
	m.span = nil
}

func (m *Panels) mounted(i int) bool {
	if i == m.index {
		return true
	}
	return m.transitioning && m.hasPrevious && i == m.previous
}

// Commit runs each panel's post-render hook. Panels that left the screen or
// hid their body unmount first, so a focused element they held no longer
// blocks restoration in the entering panel.
func (m *Panels) Commit() {
	for i, v := range m.views {
		if !m.mounted(i) || v.hidden {
			v.deactivate(m.engine)
		}
	}
	for i, v := range m.views {
		if m.mounted(i) && !v.hidden {
			v.Commit(m.engine)
		}
	}
}

// View renders the active panel and, mid-transition, the leaving one offset
// by the current arranger frame.
func (m *Panels) View(ctx components.RenderContext) string {
	active := m.Active()
	if active == nil {
		return ""
	}
	if m.size.Width > 0 {
		height := -1
		if m.size.Height > 0 {
			height = m.size.Height
		}
		ctx = ctx.WithConstraints(components.Bounded(m.size.Width, height))
	}

	enter := m.place(active.View(ctx))
	if !m.transitioning || m.transition == nil || !m.hasPrevious || m.previous >= len(m.views) || m.size.Width <= 0 || m.size.Height <= 0 {
		return enter
	}
	leave := m.place(m.views[m.previous].View(ctx))
	forward := m.index > m.previous
	return slide(enter, leave, m.transition.Frame(), m.size, forward)
}

func (m *Panels) place(view string) string {
	if m.size.Width <= 0 || m.size.Height <= 0 {
		return view
	}
	return lipgloss.Place(m.size.Width, m.size.Height, lipgloss.Left, lipgloss.Top, view)
}

// slide lays the two views side by side (or stacked) on a strip and cuts the
// viewport window out of it.
func slide(enter, leave string, f arranger.Frame, size arranger.Size, forward bool) string {
	first, second := leave, enter
	if !forward {
		first, second = enter, leave
	}
	vertical := f.Enter.Y != 0 || f.Leave.Y != 0

	if vertical {
		start := -f.Leave.Y
		if !forward {
			start = size.Height - f.Leave.Y
		}
		lines := append(fitLines(first, size), fitLines(second, size)...)
		start = clamp(start, 0, size.Height)
		return strings.Join(lines[start:start+size.Height], "\n")
	}

	start := -f.Leave.X
	if !forward {
		start = size.Width - f.Leave.X
	}
	start = clamp(start, 0, size.Width)
	a, b := fitLines(first, size), fitLines(second, size)
	out := make([]string, size.Height)
	for i := range out {
		strip := a[i] + b[i]
		out[i] = ansi.Truncate(ansi.TruncateLeft(strip, start, ""), size.Width, "")
	}
	return strings.Join(out, "\n")
}

// fitLines cuts or pads a view to exactly size.Height lines of
// size.Width cells.
func fitLines(view string, size arranger.Size) []string {
	lines := strings.Split(view, "\n")
	if len(lines) > size.Height {
		lines = lines[:size.Height]
	}
	for len(lines) < size.Height {
		lines = append(lines, "")
	}
	for i, line := range lines {
		line = ansi.Truncate(line, size.Width, "")
		if pad := size.Width - ansi.StringWidth(line); pad > 0 {
			line += strings.Repeat(" ", pad)
		}
		lines[i] = line
	}
	return lines
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
