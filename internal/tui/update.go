package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/panelkit/internal/focus"
	"github.com/alexisbeaulieu97/panelkit/internal/panels"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
	case panels.FrameMsg, panels.TransitionCompleteMsg:
		cmd = m.panels.Update(msg)
	case tea.KeyMsg:
		cmd = m.handleKey(msg)
	}

	if !m.quitting {
		m.sync()
	}
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Skin):
		m.nextSkin()
		m.status = fmt.Sprintf("skin: %s", m.skin)
	case key.Matches(msg, m.keys.Left), key.Matches(msg, m.keys.Back):
		return m.navigate(m.panels.Back())
	case key.Matches(msg, m.keys.Right):
		return m.navigate(m.panels.Forward())
	case key.Matches(msg, m.keys.Up):
		m.moveFocus(focus.Up)
	case key.Matches(msg, m.keys.Down):
		m.moveFocus(focus.Down)
	case key.Matches(msg, m.keys.Activate):
		return m.activate(msg)
	}
	return nil
}

func (m *Model) navigate(cmd tea.Cmd, err error) tea.Cmd {
	if err != nil {
		m.log.Error(err, "navigation failed")
		m.status = err.Error()
		return nil
	}
	return cmd
}

// moveFocus moves within the active panel, entering it first when nothing
// is focused.
func (m *Model) moveFocus(dir focus.Direction) {
	if _, ok := m.engine.Current(); ok {
		m.engine.Move(dir)
		return
	}
	active := m.panels.Active()
	if active == nil || active.HideChildren() {
		return
	}
	if err := m.engine.FocusContainer(active.ContainerID()); err != nil {
		m.log.WithField("container", active.ContainerID()).Debug("nothing to focus")
	}
}

func (m *Model) activate(msg tea.KeyMsg) tea.Cmd {
	id, ok := m.engine.Current()
	if !ok {
		return m.navigate(m.panels.Forward())
	}
	w := m.widgetByID(id)
	if w == nil || !w.component.HandleKey(msg) {
		return nil
	}

	label := w.item.Label
	if label == "" {
		label = id
	}
	if w.component.Definition().Composition().Toggleable {
		m.status = fmt.Sprintf("%s: %s", label, onOff(w.component.Selected()))
	} else if w.activations > 1 {
		m.status = fmt.Sprintf("%s activated ×%d", label, w.activations)
	} else {
		m.status = fmt.Sprintf("%s activated", label)
	}

	switch w.item.Action {
	case "back":
		return m.navigate(m.panels.Back())
	case "forward":
		return m.navigate(m.panels.Forward())
	case "quit":
		m.quitting = true
		return tea.Quit
	}
	return nil
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
