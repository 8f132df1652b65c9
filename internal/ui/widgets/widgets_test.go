package widgets

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/panelkit/internal/focus"
	"github.com/alexisbeaulieu97/panelkit/internal/logger"
	"github.com/alexisbeaulieu97/panelkit/internal/ui/components"
	"github.com/alexisbeaulieu97/panelkit/internal/ui/decorate"
)

func TestDefinitionsCarryExpectedLayers(t *testing.T) {
	cases := map[string]struct {
		def    *decorate.Definition
		layers []decorate.Layer
	}{
		"button":     {Button, []decorate.Layer{decorate.Pure, decorate.Spottable, decorate.Skinnable}},
		"item":       {Item, []decorate.Layer{decorate.Spottable, decorate.Skinnable}},
		"heading":    {Heading, []decorate.Layer{decorate.Skinnable}},
		"icon":       {Icon, []decorate.Layer{decorate.Skinnable}},
		"toggleicon": {ToggleIcon, []decorate.Layer{decorate.Skinnable}},
		"toggleitem": {ToggleItem, []decorate.Layer{decorate.Toggleable, decorate.Spottable, decorate.Skinnable}},
		"checkbox":   {Checkbox, []decorate.Layer{decorate.Toggleable, decorate.Spottable, decorate.Skinnable}},
		"radioitem":  {RadioItem, []decorate.Layer{decorate.Toggleable, decorate.Spottable, decorate.Skinnable}},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.layers, tc.def.Layers())
			got, ok := ByKind(name)
			require.True(t, ok)
			assert.Same(t, tc.def, got)
		})
	}
	assert.Len(t, Kinds(), len(cases))
}

func TestByKindUnknown(t *testing.T) {
	_, ok := ByKind("slider")
	assert.False(t, ok)
}

func TestCheckboxTogglesOnEnter(t *testing.T) {
	spot := focus.NewSpotlight(logger.Nop())
	ctx := components.DefaultContext().WithFocus(spot, "settings")
	box := Checkbox.New()
	props := components.Props{ID: "subs", Label: "Subtitles"}

	assert.Contains(t, box.Render(ctx, props), "[ ] Subtitles")
	require.True(t, box.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}))
	assert.Contains(t, box.Render(ctx, props), "[✓] Subtitles")
}

func TestRadioItemUsesDot(t *testing.T) {
	radio := RadioItem.New()
	out := radio.Render(components.DefaultContext(), components.Props{Label: "Stereo", Selected: true})
	assert.Contains(t, out, "(●) Stereo")
}

func TestButtonRegistersWithFocus(t *testing.T) {
	spot := focus.NewSpotlight(logger.Nop())
	btn := Button.New()
	btn.Render(components.DefaultContext().WithFocus(spot, "home"), components.Props{ID: "play", Label: "Play"})

	owner, ok := spot.ContainerOf("play")
	require.True(t, ok)
	assert.Equal(t, "home", owner)
}
