package config

import "github.com/alexisbeaulieu97/panelkit/internal/ui/components"

// DefaultShowcase is the built-in demo: a home panel, a settings panel with
// toggles and a panel that opts out of automatic focus.
func DefaultShowcase() *Config {
	return &Config{
		Version:     "1.0",
		Name:        "panelkit showcase",
		Description: "Skinned widgets across three sliding panels",
		Settings: Settings{
			Skin:        components.SkinMyRoom,
			Orientation: "horizontal",
		},
		Panels: []PanelConfig{
			{
				ID:    "home",
				Title: "Home",
				Items: []ItemConfig{
					{Kind: "heading", Label: "Now playing", ShowLine: true},
					{ID: "play", Kind: "button", Label: "Play", Icon: "arrowright"},
					{ID: "queue", Kind: "button", Label: "Queue", Icon: "plus"},
					{ID: "library", Kind: "item", Label: "Library", Action: "forward"},
				},
				Footer: "enter: activate",
			},
			{
				ID:        "settings",
				Title:     "Settings",
				AutoFocus: "default-element",
				Items: []ItemConfig{
					{Kind: "heading", Label: "Playback"},
					{ID: "subtitles", Kind: "checkbox", Label: "Subtitles"},
					{ID: "autoplay", Kind: "checkbox", Label: "Autoplay", Selected: true, Default: true},
					{ID: "stereo", Kind: "radioitem", Label: "Stereo", Selected: true},
					{ID: "surround", Kind: "radioitem", Label: "Surround"},
				},
			},
			{
				ID:        "about",
				AriaLabel: "About panelkit",
				AutoFocus: "none",
				Items: []ItemConfig{
					{Kind: "icon", Icon: "dot"},
					{Kind: "heading", Label: "panelkit"},
					{ID: "back", Kind: "button", Icon: "arrowleft", Action: "back"},
				},
				Footer: "this panel never takes focus on its own",
			},
		},
	}
}
