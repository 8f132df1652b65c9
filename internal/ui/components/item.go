package components

import "github.com/charmbracelet/lipgloss"

// ItemBase renders a single-line list entry.
type ItemBase struct{}

// Name identifies the base in composition errors.
func (ItemBase) Name() string { return "Item" }

// Render draws the label.
func (ItemBase) Render(ctx RenderContext, p Props) string {
	classes := p.Classes.
		Append(ClassItem).
		If(ClassSelected, p.Selected).
		If(ClassDisabled, p.Disabled)
	style := ctx.Theme.Style(classes)
	if ctx.Constraints.HasWidth() && ctx.Constraints.MaxWidth > 0 {
		style = style.Width(ctx.Constraints.MaxWidth)
	}
	return style.Render(p.Label)
}

// HeadingBase renders a section heading, optionally underlined.
type HeadingBase struct{}

// Name identifies the base in composition errors.
func (HeadingBase) Name() string { return "Heading" }

// Render draws the label with the heading classes. A shown line is a
// divider as wide as the constraint, or the label when unconstrained.
func (HeadingBase) Render(ctx RenderContext, p Props) string {
	label := ctx.Theme.Style(p.Classes.Append(ClassHeading).If(ClassShowLine, p.ShowLine)).Render(p.Label)
	if !p.ShowLine {
		return label
	}
	line := NewDivider()
	if !ctx.Constraints.HasWidth() {
		line.WithWidth(max(lipgloss.Width(label), 1))
	}
	return lipgloss.JoinVertical(lipgloss.Left, label, line.ViewWithContext(ctx))
}
