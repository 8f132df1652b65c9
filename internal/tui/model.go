// Package tui is the showcase host: it owns the focus engine, the active
// skin and the view manager, and maps keys onto them.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	oteltrace "go.opentelemetry.io/otel/trace"

	"github.com/alexisbeaulieu97/panelkit/internal/arranger"
	"github.com/alexisbeaulieu97/panelkit/internal/config"
	"github.com/alexisbeaulieu97/panelkit/internal/focus"
	"github.com/alexisbeaulieu97/panelkit/internal/logger"
	"github.com/alexisbeaulieu97/panelkit/internal/panels"
	"github.com/alexisbeaulieu97/panelkit/internal/ui/components"
)

// chromeHeight is the rows taken by the title, status and help lines.
const chromeHeight = 3

// Options carries the ambient dependencies of a Model.
type Options struct {
	Logger *logger.Logger
	Tracer oteltrace.Tracer
	// NoAnimation overrides the configuration when true.
	NoAnimation bool
}

// Model is the Bubbletea state for the showcase.
type Model struct {
	cfg     *config.Config
	engine  *focus.Spotlight
	panels  *panels.Panels
	widgets []*widget

	theme components.Theme
	skin  string

	keys KeyMap
	help help.Model
	bar  progress.Model

	status   string
	width    int
	height   int
	quitting bool

	log *logger.Logger
}

// NewModel builds the showcase for a validated configuration.
func NewModel(cfg *config.Config, opts Options) (Model, error) {
	if err := config.ValidateConfig(cfg); err != nil {
		return Model{}, err
	}

	orientation, err := arranger.ParseOrientation(cfg.Settings.Orientation)
	if err != nil {
		return Model{}, err
	}
	var explicit arranger.Arranger
	if cfg.Settings.Arranger != "" {
		explicit, _ = arranger.ByName(cfg.Settings.Arranger)
	}

	views, ws, err := buildPanels(cfg)
	if err != nil {
		return Model{}, err
	}

	log := opts.Logger.WithField("component", "tui")
	engine := focus.NewSpotlight(opts.Logger)
	manager := panels.New(engine, panels.Options{
		Arranger:    explicit,
		Orientation: orientation,
		NoAnimation: cfg.Settings.NoAnimation || opts.NoAnimation,
		Index:       cfg.Settings.Index,
		Logger:      opts.Logger,
		Tracer:      opts.Tracer,
	})
	if err := manager.SetViews(views...); err != nil {
		return Model{}, err
	}

	theme := components.DefaultTheme()
	skin := cfg.Settings.Skin
	if skin == "" {
		skin = theme.DefaultSkin
	}

	m := Model{
		cfg:     cfg,
		engine:  engine,
		panels:  manager,
		widgets: ws,
		theme:   theme,
		skin:    skin,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		bar:     newTransitionBar(),
		width:   80,
		height:  24,
		log:     log,
	}
	m.resize()
	m.sync()
	return m, nil
}

// newTransitionBar sizes the bar to stand in for the pager while panels slide.
func newTransitionBar() progress.Model {
	bar := progress.New(progress.WithSolidFill("205"), progress.WithoutPercentage())
	bar.Width = 12
	return bar
}

// Init has nothing to start; transitions begin on input.
func (m Model) Init() tea.Cmd {
	return nil
}

// Skin returns the active skin name.
func (m Model) Skin() string {
	return m.skin
}

// Index returns the active panel index.
func (m Model) Index() int {
	return m.panels.Index()
}

// Panels exposes the view manager.
func (m Model) Panels() *panels.Panels {
	return m.panels
}

// Focused returns the focused element id.
func (m Model) Focused() (string, bool) {
	return m.engine.Current()
}

// Status returns the last status line message.
func (m Model) Status() string {
	return m.status
}

// Quitting reports whether quit was requested.
func (m Model) Quitting() bool {
	return m.quitting
}

func (m Model) renderContext() components.RenderContext {
	return components.DefaultContext().
		WithTheme(m.theme).
		WithSkin(m.skin).
		WithFocus(m.engine, "")
}

func (m *Model) resize() {
	m.help.Width = m.width
	m.panels.SetSize(m.width, max(m.height-chromeHeight, 1))
}

// sync mounts the visible panels and lets them restore focus.
func (m Model) sync() {
	m.panels.View(m.renderContext())
	m.panels.Commit()
}

func (m Model) widgetByID(id string) *widget {
	for _, w := range m.widgets {
		if w.component.ID() == id {
			return w
		}
	}
	return nil
}

func (m *Model) nextSkin() {
	names := m.theme.SkinNames()
	if len(names) == 0 {
		return
	}
	next := names[0]
	for i, name := range names {
		if name == m.skin {
			next = names[(i+1)%len(names)]
			break
		}
	}
	m.skin = next
}
