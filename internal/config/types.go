package config

// Config is a showcase document: global settings plus the ordered panels.
type Config struct {
	Version     string        `yaml:"version" toml:"version" validate:"required,semver"`
	Name        string        `yaml:"name" toml:"name" validate:"required,min=1,max=100"`
	Description string        `yaml:"description,omitempty" toml:"description,omitempty"`
	Settings    Settings      `yaml:"settings,omitempty" toml:"settings"`
	Panels      []PanelConfig `yaml:"panels" toml:"panels" validate:"required,min=1,dive"`
}

// Settings holds view manager and theme options.
type Settings struct {
	Skin        string `yaml:"skin,omitempty" toml:"skin,omitempty" validate:"omitempty,skin"`
	Orientation string `yaml:"orientation,omitempty" toml:"orientation,omitempty" validate:"omitempty,oneof=horizontal vertical"`
	Arranger    string `yaml:"arranger,omitempty" toml:"arranger,omitempty" validate:"omitempty,oneof=horizontal vertical"`
	NoAnimation bool   `yaml:"no_animation,omitempty" toml:"no_animation,omitempty"`
	Index       int    `yaml:"index,omitempty" toml:"index,omitempty" validate:"min=0"`
}

// PanelConfig describes one view.
type PanelConfig struct {
	ID        string       `yaml:"id,omitempty" toml:"id,omitempty" validate:"omitempty,element_id"`
	Title     string       `yaml:"title,omitempty" toml:"title,omitempty"`
	AriaLabel string       `yaml:"aria_label,omitempty" toml:"aria_label,omitempty"`
	AutoFocus string       `yaml:"autofocus,omitempty" toml:"autofocus,omitempty" validate:"omitempty,autofocus"`
	Hide      string       `yaml:"hide,omitempty" toml:"hide,omitempty" validate:"omitempty,oneof=auto always never"`
	Footer    string       `yaml:"footer,omitempty" toml:"footer,omitempty"`
	Items     []ItemConfig `yaml:"items,omitempty" toml:"items,omitempty" validate:"omitempty,dive"`
}

// ItemConfig describes one widget inside a panel body. Action names what
// happens after activation: back, forward or quit.
type ItemConfig struct {
	ID       string `yaml:"id,omitempty" toml:"id,omitempty" validate:"omitempty,element_id"`
	Kind     string `yaml:"kind" toml:"kind" validate:"required,widget"`
	Label    string `yaml:"label,omitempty" toml:"label,omitempty"`
	Icon     string `yaml:"icon,omitempty" toml:"icon,omitempty"`
	Selected bool   `yaml:"selected,omitempty" toml:"selected,omitempty"`
	Default  bool   `yaml:"default,omitempty" toml:"default,omitempty"`
	Disabled bool   `yaml:"disabled,omitempty" toml:"disabled,omitempty"`
	ShowLine bool   `yaml:"show_line,omitempty" toml:"show_line,omitempty"`
	Action   string `yaml:"action,omitempty" toml:"action,omitempty" validate:"omitempty,oneof=back forward quit"`
}
