package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/panelkit/internal/config"
	"github.com/alexisbeaulieu97/panelkit/internal/ui/components"
)

// View renders the current state of the model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	header := lipgloss.JoinHorizontal(lipgloss.Top,
		titleStyle.Render(m.title()),
		components.HorizontalSpacer(2).View(),
		m.pager(),
		components.HorizontalSpacer(2).View(),
		skinStyle.Render("skin: "+m.skin),
	)

	sections := []string{
		header,
		m.panels.View(m.renderContext()),
		statusStyle.Render(m.status),
		m.help.View(m.keys),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// pager draws one dot per panel with the active one highlighted. While a
// transition runs it shows the transition's progress instead.
func (m Model) pager() string {
	if p, ok := m.panels.Progress(); ok {
		return m.bar.ViewAs(p)
	}
	dots := make([]string, m.panels.Len())
	for i := range dots {
		if i == m.panels.Index() {
			dots[i] = activeDot.Render("●")
		} else {
			dots[i] = dotStyle.Render("○")
		}
	}
	return strings.Join(dots, " ")
}

func (m Model) title() string {
	if m.cfg != nil && strings.TrimSpace(m.cfg.Name) != "" {
		return m.cfg.Name
	}
	return "panelkit"
}

// Render builds the showcase and returns a single settled frame of the given
// size, for non-interactive output.
func Render(cfg *config.Config, width, height int, opts Options) (string, error) {
	if width <= 0 || height <= chromeHeight {
		return "", fmt.Errorf("frame %dx%d is too small", width, height)
	}
	opts.NoAnimation = true
	m, err := NewModel(cfg, opts)
	if err != nil {
		return "", err
	}
	m.width, m.height = width, height
	m.resize()
	m.sync()
	return m.View(), nil
}
