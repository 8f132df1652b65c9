package panels

import "github.com/alexisbeaulieu97/panelkit/internal/ui"

// Region is one of a panel's header, body or footer slots. It is either
// Hidden or Visible with content.
type Region struct {
	content ui.Renderable
	visible bool
}

// Hidden is the empty region.
func Hidden() Region {
	return Region{}
}

// Visible wraps content. A nil content is still a visible, empty region.
func Visible(content ui.Renderable) Region {
	return Region{content: content, visible: true}
}

// Content returns the wrapped content and whether the region is visible.
func (r Region) Content() (ui.Renderable, bool) {
	return r.content, r.visible
}

// IsVisible reports whether the region renders.
func (r Region) IsVisible() bool {
	return r.visible
}
