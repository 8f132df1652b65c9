package tui

import (
	"fmt"

	"github.com/alexisbeaulieu97/panelkit/internal/config"
	"github.com/alexisbeaulieu97/panelkit/internal/panels"
	"github.com/alexisbeaulieu97/panelkit/internal/ui"
	"github.com/alexisbeaulieu97/panelkit/internal/ui/components"
	"github.com/alexisbeaulieu97/panelkit/internal/ui/decorate"
	"github.com/alexisbeaulieu97/panelkit/internal/ui/widgets"
)

// headerRows is the height of a titled panel's header and its divider.
// Untitled panels pad their body by as much so content lines up.
const headerRows = 2

// widget is one live component with the configuration it came from.
type widget struct {
	component   *decorate.Component
	item        config.ItemConfig
	activations int
}

// buildPanels turns the configured views into panels. Widgets are returned
// in display order so key handling can find them by focus id.
func buildPanels(cfg *config.Config) ([]*panels.Panel, []*widget, error) {
	views := make([]*panels.Panel, 0, len(cfg.Panels))
	var all []*widget

	for i, pc := range cfg.Panels {
		children := make([]ui.Renderable, 0, len(pc.Items))
		for j, item := range pc.Items {
			def, ok := widgets.ByKind(item.Kind)
			if !ok {
				return nil, nil, fmt.Errorf("panels[%d].items[%d]: unknown widget kind %q", i, j, item.Kind)
			}
			w := &widget{component: def.New(), item: item}
			all = append(all, w)
			children = append(children, w.component.Bind(components.Props{
				ID:         item.ID,
				Label:      item.Label,
				Icon:       item.Icon,
				Selected:   item.Selected,
				Default:    item.Default,
				Disabled:   item.Disabled,
				ShowLine:   item.ShowLine,
				OnActivate: func() { w.activations++ },
			}))
		}

		body := components.NewContainer(children...)
		if pc.Title == "" {
			body.WithPadding(components.Spacing{Top: headerRows})
		}
		p := panels.NewPanel(body)
		p.ID = pc.ID
		p.AriaLabel = pc.AriaLabel
		p.AutoFocus = panels.ParseAutoFocus(pc.AutoFocus)
		p.Hide = hideMode(pc.Hide)
		if pc.Title != "" {
			p.WithHeader(components.TitleText(pc.Title))
		}
		if pc.Footer != "" {
			p.WithFooter(components.MutedText(pc.Footer))
		}
		views = append(views, p)
	}

	return views, all, nil
}

func hideMode(value string) panels.HideMode {
	switch value {
	case "always":
		return panels.HideAlways
	case "never":
		return panels.HideNever
	default:
		return panels.HideAuto
	}
}
