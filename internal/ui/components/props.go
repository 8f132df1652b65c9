package components

// Props are the inputs every visual base and behavior layer shares. Layers
// read and enrich a copy before passing it inward.
type Props struct {
	ID       string
	Label    string
	Icon     string
	Classes  Classes
	Selected bool
	Disabled bool
	Focused  bool
	Default  bool
	ShowLine bool

	OnActivate func()
	OnToggle   func(selected bool)
}

// Equal compares the data fields of two Props. Handlers are ignored since
// functions are not comparable.
func (p Props) Equal(other Props) bool {
	return p.ID == other.ID &&
		p.Label == other.Label &&
		p.Icon == other.Icon &&
		p.Selected == other.Selected &&
		p.Disabled == other.Disabled &&
		p.Focused == other.Focused &&
		p.Default == other.Default &&
		p.ShowLine == other.ShowLine &&
		p.Classes.Equal(other.Classes)
}

// Kind is a visual base: it turns props into a rendered string and has no
// behavior of its own.
type Kind interface {
	Name() string
	Render(ctx RenderContext, p Props) string
}

// Composition describes which behavior layers surround a base.
type Composition struct {
	Pure       bool
	Toggleable bool
	Spottable  bool
	Skinnable  bool
}

// CompositionChecker is implemented by bases that need something from the
// layers wrapping them. The check runs once, when a component is defined.
type CompositionChecker interface {
	CheckComposition(c Composition) error
}
