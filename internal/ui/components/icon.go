package components

// glyphs maps the handful of named icons the toggles need to their runes.
// Anything else renders literally.
var glyphs = map[string]string{
	"check":      "✓",
	"dot":        "●",
	"plus":       "+",
	"minus":      "−",
	"arrowleft":  "◂",
	"arrowright": "▸",
}

// Glyph resolves an icon name.
func Glyph(name string) string {
	if g, ok := glyphs[name]; ok {
		return g
	}
	return name
}

// IconBase renders a single icon from Props.Icon, falling back to the label.
type IconBase struct{}

// Name identifies the base in composition errors.
func (IconBase) Name() string { return "Icon" }

// Render draws the resolved glyph.
func (IconBase) Render(ctx RenderContext, p Props) string {
	name := p.Icon
	if name == "" {
		name = p.Label
	}
	return ctx.Theme.Style(p.Classes.Append(ClassIcon)).Render(Glyph(name))
}
