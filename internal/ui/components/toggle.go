package components

import "errors"

// ErrIconRequired is returned when a toggle item is composed with toggle
// state but without an icon to show that state.
var ErrIconRequired = errors.New("icon override is required when toggle state is managed")

// ToggleIconBase shows Glyph between Open and Close while selected and a
// blank of the same width otherwise.
type ToggleIconBase struct {
	Glyph string
	Open  string
	Close string
}

// CheckboxIcon is the square check toggle icon.
var CheckboxIcon = ToggleIconBase{Glyph: "check", Open: "[", Close: "]"}

// RadioIcon is the round dot toggle icon.
var RadioIcon = ToggleIconBase{Glyph: "dot", Open: "(", Close: ")"}

// Name identifies the base in composition errors.
func (ToggleIconBase) Name() string { return "ToggleIcon" }

// Render draws the framed glyph.
func (t ToggleIconBase) Render(ctx RenderContext, p Props) string {
	glyph := " "
	if p.Selected {
		glyph = Glyph(t.Glyph)
	}
	classes := p.Classes.Append(ClassToggleIcon).If(ClassSelected, p.Selected)
	return ctx.Theme.Style(classes).Render(t.Open + glyph + t.Close)
}

// ToggleItemBase is an item with a leading toggle icon. The icon is an
// override every composition with toggle state must supply.
type ToggleItemBase struct {
	Icon Kind
}

// Name identifies the base in composition errors.
func (ToggleItemBase) Name() string { return "ToggleItem" }

// CheckComposition rejects toggle state without an icon.
func (t ToggleItemBase) CheckComposition(c Composition) error {
	if c.Toggleable && t.Icon == nil {
		return ErrIconRequired
	}
	return nil
}

// Render draws the icon then the label.
func (t ToggleItemBase) Render(ctx RenderContext, p Props) string {
	label := p.Label
	if t.Icon != nil {
		label = t.Icon.Render(ctx, Props{Selected: p.Selected}) + " " + label
	}
	classes := p.Classes.
		Append(ClassToggleItem).
		If(ClassSelected, p.Selected).
		If(ClassDisabled, p.Disabled)
	return ctx.Theme.Style(classes).Render(label)
}
