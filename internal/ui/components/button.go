package components

import "github.com/charmbracelet/lipgloss"

// ButtonBase renders a skinned button without any behavior. A button with no
// label gets the minWidth class so icon-only buttons keep a usable size.
type ButtonBase struct{}

// Name identifies the base in composition errors.
func (ButtonBase) Name() string { return "Button" }

// Classes returns the class set the button renders with.
func (ButtonBase) Classes(p Props) Classes {
	return p.Classes.
		Append(ClassButton).
		If(ClassSelected, p.Selected).
		If(ClassMinWidth, p.Label == "").
		If(ClassDisabled, p.Disabled)
}

// Render draws the optional icon followed by the label.
func (b ButtonBase) Render(ctx RenderContext, p Props) string {
	content := p.Label
	if p.Icon != "" {
		icon := IconBase{}.Render(ctx, Props{Icon: p.Icon})
		if content == "" {
			content = icon
		} else {
			content = lipgloss.JoinHorizontal(lipgloss.Center, icon, " ", content)
		}
	}
	return ctx.Theme.Style(b.Classes(p)).Render(content)
}
