package components

// Text is a primitive component for rendering styled text content.
type Text struct {
	BaseComponent
	content string
	classes Classes
}

// NewText creates a new text component with the given content.
func NewText(content string) *Text {
	return &Text{
		BaseComponent: NewBaseComponent(),
		content:       content,
	}
}

// View renders the text with the default context.
func (t *Text) View() string {
	return t.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the text styled by its classes and appliers.
func (t *Text) ViewWithContext(ctx RenderContext) string {
	style := t.ComputeStyle(ctx.Theme)
	if len(t.classes) > 0 {
		style = style.Inherit(ctx.Theme.Style(t.classes))
	}
	if ctx.Constraints.HasWidth() && ctx.Constraints.MaxWidth > 0 {
		style = style.MaxWidth(ctx.Constraints.MaxWidth)
	}
	return style.Render(t.content)
}

// Content returns the text content.
func (t *Text) Content() string {
	return t.content
}

// WithClasses attaches theme classes.
func (t *Text) WithClasses(names ...string) *Text {
	t.classes = t.classes.Append(names...)
	return t
}

// WithAppliers applies theme-based style modifiers.
func (t *Text) WithAppliers(appliers ...StyleFunc) *Text {
	t.AddAppliers(appliers...)
	return t
}

// TitleText creates title text using theme typography.
func TitleText(content string) *Text {
	return NewText(content).WithAppliers(Typography(TypographyVariantTitle))
}

// MutedText creates de-emphasized text.
func MutedText(content string) *Text {
	return NewText(content).WithAppliers(Typography(TypographyVariantMuted))
}
