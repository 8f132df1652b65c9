// Package widgets defines the composed, ready-to-use components. Each
// definition is validated at program start.
package widgets

import (
	"github.com/alexisbeaulieu97/panelkit/internal/ui/components"
	"github.com/alexisbeaulieu97/panelkit/internal/ui/decorate"
)

var (
	// Button is a focusable, skinned button that skips unchanged renders.
	Button = decorate.Must(decorate.New(components.ButtonBase{}).Pure().Spottable().Skinnable().Build())

	// Item is a focusable list entry.
	Item = decorate.Must(decorate.New(components.ItemBase{}).Spottable().Skinnable().Build())

	Heading    = decorate.Must(decorate.New(components.HeadingBase{}).Skinnable().Build())
	Icon       = decorate.Must(decorate.New(components.IconBase{}).Skinnable().Build())
	ToggleIcon = decorate.Must(decorate.New(components.CheckboxIcon).Skinnable().Build())

	// ToggleItem is an item whose selected state is shown by a check icon.
	ToggleItem = decorate.Must(decorate.New(components.ToggleItemBase{Icon: components.CheckboxIcon}).
			Toggleable().Spottable().Skinnable().Build())

	Checkbox = decorate.Must(decorate.New(components.ToggleItemBase{Icon: components.CheckboxIcon}).
			Named("Checkbox").Toggleable().Spottable().Skinnable().Build())

	RadioItem = decorate.Must(decorate.New(components.ToggleItemBase{Icon: components.RadioIcon}).
			Named("RadioItem").Toggleable().Spottable().Skinnable().Build())
)

// ByKind looks a definition up by the name used in configuration files.
func ByKind(kind string) (*decorate.Definition, bool) {
	def, ok := kinds[kind]
	return def, ok
}

// Kinds lists the names ByKind accepts.
func Kinds() []string {
	return []string{"button", "item", "heading", "icon", "toggleicon", "toggleitem", "checkbox", "radioitem"}
}

var kinds = map[string]*decorate.Definition{
	"button":     Button,
	"item":       Item,
	"heading":    Heading,
	"icon":       Icon,
	"toggleicon": ToggleIcon,
	"toggleitem": ToggleItem,
	"checkbox":   Checkbox,
	"radioitem":  RadioItem,
}
