package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	skinStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	dotStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	activeDot   = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
)
