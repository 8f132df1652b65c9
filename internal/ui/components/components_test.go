package components

import (
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/panelkit/internal/ui"
)

func TestClasses(t *testing.T) {
	c := NewClasses("body", "", "body", " visible ")
	assert.Equal(t, Classes{"body", "visible"}, c)
	assert.True(t, c.Has("visible"))

	c2 := c.If("noHeader", true).If("noFooter", false)
	assert.Equal(t, "body visible noHeader", c2.String())
	assert.Equal(t, Classes{"body", "visible"}, c, "Append never mutates the receiver")

	assert.Equal(t, Classes{"visible", "noHeader"}, c2.Without("body"))
	assert.True(t, c.Equal(Classes{"body", "visible"}))
	assert.False(t, c.Equal(Classes{"visible", "body"}))
}

func TestPropsEqualIgnoresHandlers(t *testing.T) {
	a := Props{Label: "OK", Classes: NewClasses("button"), OnActivate: func() {}}
	b := Props{Label: "OK", Classes: NewClasses("button")}
	assert.True(t, a.Equal(b))

	b.Selected = true
	assert.False(t, a.Equal(b))
}

func TestButtonClasses(t *testing.T) {
	b := ButtonBase{}

	assert.Equal(t, Classes{"button", "selected"}, b.Classes(Props{Label: "OK", Selected: true}))
	assert.Equal(t, Classes{"spottable", "button", "minWidth"}, b.Classes(Props{Icon: "plus", Classes: NewClasses("spottable")}))
	assert.Equal(t, Classes{"button", "disabled"}, b.Classes(Props{Label: "x", Disabled: true}))
}

func TestButtonRendersIconAndLabel(t *testing.T) {
	out := ButtonBase{}.Render(DefaultContext(), Props{Label: "Add", Icon: "plus"})
	assert.Contains(t, out, "+")
	assert.Contains(t, out, "Add")
}

func TestIconFallsBackToLiteral(t *testing.T) {
	ctx := DefaultContext()
	assert.Contains(t, IconBase{}.Render(ctx, Props{Icon: "check"}), "✓")
	assert.Contains(t, IconBase{}.Render(ctx, Props{Label: "★"}), "★")
}

func TestHeadingShowLine(t *testing.T) {
	ctx := DefaultContext()
	plain := HeadingBase{}.Render(ctx, Props{Label: "Audio"})
	lined := HeadingBase{}.Render(ctx, Props{Label: "Audio", ShowLine: true})

	assert.Equal(t, 1, lipgloss.Height(plain))
	assert.Equal(t, 2, lipgloss.Height(lined))
}

func TestToggleIcon(t *testing.T) {
	ctx := DefaultContext()
	assert.Contains(t, CheckboxIcon.Render(ctx, Props{Selected: true}), "[✓]")
	assert.Contains(t, CheckboxIcon.Render(ctx, Props{}), "[ ]")
	assert.Contains(t, RadioIcon.Render(ctx, Props{Selected: true}), "(●)")
}

func TestToggleItemRequiresIconWithToggleState(t *testing.T) {
	err := ToggleItemBase{}.CheckComposition(Composition{Toggleable: true, Spottable: true})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrIconRequired))

	assert.NoError(t, ToggleItemBase{}.CheckComposition(Composition{Skinnable: true}))
	assert.NoError(t, ToggleItemBase{Icon: CheckboxIcon}.CheckComposition(Composition{Toggleable: true}))
}

func TestToggleItemRender(t *testing.T) {
	out := ToggleItemBase{Icon: CheckboxIcon}.Render(DefaultContext(), Props{Label: "Subtitles", Selected: true})
	assert.Contains(t, out, "[✓] Subtitles")
}

func TestThemeSkins(t *testing.T) {
	theme := DefaultTheme()

	class, ok := theme.SkinClass(SkinMyKitchen)
	require.True(t, ok)
	assert.Equal(t, "mykitchen", class)

	_, ok = theme.SkinClass("my-skin")
	assert.False(t, ok)

	assert.Equal(t, []string{"mykitchen", "myroom"}, theme.SkinNames())
	assert.Equal(t, SkinMyRoom, theme.DefaultSkin)
}

func TestClassRegistryPrecedence(t *testing.T) {
	theme := DefaultTheme()
	theme.Classes = NewClassRegistry()
	theme.Classes.Register("a", func(s lipgloss.Style, _ Theme) lipgloss.Style { return s.SetString("a") })
	theme.Classes.Register("b", func(s lipgloss.Style, _ Theme) lipgloss.Style { return s.SetString("b") })

	assert.Equal(t, "b", theme.Style(NewClasses("b", "a")).String())
	assert.Equal(t, "a", theme.Style(NewClasses("a")).String())
	assert.Nil(t, theme.Classes.Get("missing"))
}

func TestColumnFillsBoundedHeight(t *testing.T) {
	col := NewColumn(
		&Cell{ID: "h", Classes: NewClasses("header"), Shrink: true, Content: ui.Text("Title")},
		&Cell{Classes: NewClasses("body"), Content: ui.Text("one\ntwo")},
		&Cell{Classes: NewClasses("footer"), Shrink: true, Content: ui.Text("Footer")},
	)

	ctx := DefaultContext().WithConstraints(Bounded(30, 10))
	out := col.ViewWithContext(ctx)

	assert.Equal(t, 10, lipgloss.Height(out))
	lines := strings.Split(out, "\n")
	assert.Contains(t, lines[0], "Title")
	assert.Contains(t, lines[9], "Footer")
	assert.LessOrEqual(t, lipgloss.Width(out), 30)
}

func TestColumnUnbounded(t *testing.T) {
	col := NewColumn(&Cell{Content: ui.Text("a")}, &Cell{Content: nil})
	out := col.View()
	assert.Contains(t, out, "a")
}

func TestStackGap(t *testing.T) {
	out := VStack(ui.Text("a"), ui.Text("b")).WithGap(1).View()
	assert.Equal(t, 3, lipgloss.Height(out))

	row := HStack(ui.Text("a"), ui.Text("b")).WithGap(2).View()
	assert.Equal(t, "a  b", row)
}

func TestDividerWidth(t *testing.T) {
	assert.Equal(t, defaultDividerWidth, lipgloss.Width(HorizontalDivider().View()))

	bounded := DefaultContext().WithConstraints(Bounded(12, 5))
	assert.Equal(t, 12, lipgloss.Width(HorizontalDivider().ViewWithContext(bounded)))
	assert.Equal(t, 3, lipgloss.Width(HorizontalDivider().WithWidth(3).ViewWithContext(bounded)), "explicit width wins")
	assert.Empty(t, HorizontalDivider().ViewWithContext(DefaultContext().WithConstraints(Bounded(0, 5))))

	vertical := VerticalDivider().ViewWithContext(bounded)
	assert.Equal(t, 5, lipgloss.Height(vertical))
	assert.Equal(t, 1, lipgloss.Width(vertical))
}

func TestDividerChars(t *testing.T) {
	assert.Contains(t, DashedDivider().WithWidth(2).View(), "--")
	assert.Contains(t, ThickDivider().WithWidth(2).View(), "━━")
	assert.Contains(t, NewDivider().WithChar("").WithWidth(1).View(), "─", "empty chars are ignored")
}

func TestSpacer(t *testing.T) {
	assert.Equal(t, "   ", HorizontalSpacer(3).View())
	assert.Equal(t, 4, lipgloss.Height(VerticalSpacer(4).View()))
	assert.Empty(t, NewSpacer(0, 0).View())

	box := NewSpacer(2, 3).View()
	assert.Equal(t, 2, lipgloss.Width(box))
	assert.Equal(t, 3, lipgloss.Height(box))
}

func TestContainerPadding(t *testing.T) {
	plain := NewContainer(ui.Text("a"), ui.Text("b")).View()
	assert.Equal(t, 2, lipgloss.Height(plain))

	padded := NewContainer(ui.Text("a")).WithPadding(Spacing{Top: 2, Left: 3}).View()
	lines := strings.Split(padded, "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "   a", lines[2])

	assert.True(t, Spacing{}.IsZero())
	assert.False(t, UniformSpacing(1).IsZero())
	assert.Equal(t, Spacing{Top: 1, Right: 2, Bottom: 1, Left: 2}, SymmetricSpacing(1, 2))
}

func TestContainerShrinksChildConstraints(t *testing.T) {
	ctx := DefaultContext().WithConstraints(Bounded(20, 10))
	c := NewContainer(HorizontalDivider()).
		WithPadding(SymmetricSpacing(0, 2)).
		WithBorder(BorderVariantNormal)

	out := c.ViewWithContext(ctx)
	assert.Equal(t, 20, lipgloss.Width(out))
	assert.Equal(t, 3, lipgloss.Height(out))
	assert.Len(t, c.Children(), 1)
}

func TestHeadingLineFollowsConstraint(t *testing.T) {
	ctx := DefaultContext().WithConstraints(Bounded(16, 4))
	lined := HeadingBase{}.Render(ctx, Props{Label: "Audio", ShowLine: true})
	lines := strings.Split(lined, "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, 16, lipgloss.Width(lines[1]))
	assert.Contains(t, lines[1], "─")
}
