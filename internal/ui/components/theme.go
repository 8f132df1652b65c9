package components

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// Class names shared by the visual bases, the behavior layers and panels.
const (
	ClassSpottable = "spottable"
	ClassFocused   = "focused"
	ClassDisabled  = "disabled"
	ClassSelected  = "selected"

	ClassButton     = "button"
	ClassMinWidth   = "minWidth"
	ClassIcon       = "icon"
	ClassItem       = "item"
	ClassHeading    = "heading"
	ClassShowLine   = "showLine"
	ClassToggleIcon = "toggleIcon"
	ClassToggleItem = "toggleItem"
	ClassDivider    = "divider"

	ClassPanels   = "panels"
	ClassPanel    = "panel"
	ClassHeader   = "header"
	ClassBody     = "body"
	ClassFooter   = "footer"
	ClassNoHeader = "noHeader"
	ClassNoFooter = "noFooter"
	ClassVisible  = "visible"
)

// Built-in skin names. Each maps to a class name of the same spelling.
const (
	SkinMyRoom    = "myroom"
	SkinMyKitchen = "mykitchen"
)

// ColourSet represents a semantic color set with base, on-base, muted, and contrast colors.
// All colors are adaptive, providing both light and dark mode variants.
type ColourSet struct {
	Base     lipgloss.AdaptiveColor
	OnBase   lipgloss.AdaptiveColor
	Muted    lipgloss.AdaptiveColor
	Contrast lipgloss.AdaptiveColor
}

// Palette describes semantic colour slots used by components.
type Palette struct {
	Primary   ColourSet
	Secondary ColourSet
	Surface   ColourSet
	Warm      ColourSet
	Cool      ColourSet
	Neutral   ColourSet
}

// PaletteSlot provides access to a semantic colour slot from a Palette.
type PaletteSlot func(Palette) ColourSet

var (
	PalettePrimary   PaletteSlot = func(p Palette) ColourSet { return p.Primary }
	PaletteSecondary PaletteSlot = func(p Palette) ColourSet { return p.Secondary }
	PaletteSurface   PaletteSlot = func(p Palette) ColourSet { return p.Surface }
	PaletteWarm      PaletteSlot = func(p Palette) ColourSet { return p.Warm }
	PaletteCool      PaletteSlot = func(p Palette) ColourSet { return p.Cool }
	PaletteNeutral   PaletteSlot = func(p Palette) ColourSet { return p.Neutral }
)

// BorderVariant names a border from the theme's BorderSet.
type BorderVariant int

const (
	BorderVariantNone BorderVariant = iota
	BorderVariantNormal
	BorderVariantRounded
	BorderVariantThick
)

// BorderSet groups reusable border definitions.
type BorderSet struct {
	None    lipgloss.Border
	Normal  lipgloss.Border
	Rounded lipgloss.Border
	Thick   lipgloss.Border
}

// TypographyVariant represents a strongly-typed typography token.
type TypographyVariant int

const (
	TypographyVariantBase TypographyVariant = iota
	TypographyVariantTitle
	TypographyVariantSubtitle
	TypographyVariantEmphasis
	TypographyVariantMuted
)

// TypographyScale contains semantic typography presets.
type TypographyScale struct {
	Base     lipgloss.Style
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Emphasis lipgloss.Style
	Muted    lipgloss.Style
}

// ClassRegistry maps class names to style functions. Registration order is
// precedence order: later classes override earlier ones when both apply.
type ClassRegistry struct {
	order  []string
	styles map[string]StyleFunc
}

// NewClassRegistry creates an empty registry.
func NewClassRegistry() *ClassRegistry {
	return &ClassRegistry{styles: make(map[string]StyleFunc)}
}

// Register adds or replaces the style for a class. Replacing keeps the
// original precedence slot.
func (r *ClassRegistry) Register(class string, fns ...StyleFunc) {
	if _, exists := r.styles[class]; !exists {
		r.order = append(r.order, class)
	}
	r.styles[class] = Chain(fns...)
}

// Get returns the style function for a class, or nil.
func (r *ClassRegistry) Get(class string) StyleFunc {
	if r == nil {
		return nil
	}
	return r.styles[class]
}

// Theme represents a styling theme for components. Skins map a skin name to
// the class that carries its look.
type Theme struct {
	Palette     Palette
	Borders     BorderSet
	Typography  TypographyScale
	Skins       map[string]string
	DefaultSkin string
	Classes     *ClassRegistry
}

// SkinClass translates a skin name into its class name.
func (t Theme) SkinClass(skin string) (string, bool) {
	class, ok := t.Skins[skin]
	return class, ok && class != ""
}

// SkinNames lists the configured skins in a stable order.
func (t Theme) SkinNames() []string {
	names := make([]string, 0, len(t.Skins))
	for name := range t.Skins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Style resolves a class set into a lipgloss style. Registered classes apply
// in precedence order and the base typography fills whatever they left unset.
func (t Theme) Style(classes Classes) lipgloss.Style {
	style := lipgloss.NewStyle()
	if t.Classes != nil {
		for _, class := range t.Classes.order {
			if classes.Has(class) {
				style = t.Classes.styles[class](style, t)
			}
		}
	}
	return style.Inherit(t.Typography.Base)
}

// DefaultTheme returns the default theme with both built-in skins.
func DefaultTheme() Theme {
	ac := func(light, dark string) lipgloss.AdaptiveColor {
		return lipgloss.AdaptiveColor{Light: light, Dark: dark}
	}

	palette := Palette{
		Primary: ColourSet{
			Base:     ac("#3b82f6", "#60a5fa"),
			OnBase:   ac("#f8fafc", "#0b1120"),
			Muted:    ac("#2563eb", "#1d4ed8"),
			Contrast: ac("#facc15", "#ca8a04"),
		},
		Secondary: ColourSet{
			Base:     ac("#a855f7", "#c084fc"),
			OnBase:   ac("#f8fafc", "#1f2937"),
			Muted:    ac("#7c3aed", "#6b21a8"),
			Contrast: ac("#f472b6", "#f472b6"),
		},
		Surface: ColourSet{
			Base:     ac("#f9fafb", "#111827"),
			OnBase:   ac("#111827", "#f9fafb"),
			Muted:    ac("#e2e8f0", "#1f2937"),
			Contrast: ac("#3b82f6", "#60a5fa"),
		},
		Warm: ColourSet{
			Base:     ac("#ea580c", "#fb923c"),
			OnBase:   ac("#fff7ed", "#1c0a00"),
			Muted:    ac("#c2410c", "#9a3412"),
			Contrast: ac("#fde68a", "#fde68a"),
		},
		Cool: ColourSet{
			Base:     ac("#0891b2", "#22d3ee"),
			OnBase:   ac("#ecfeff", "#04121a"),
			Muted:    ac("#0e7490", "#155e75"),
			Contrast: ac("#a5f3fc", "#a5f3fc"),
		},
		Neutral: ColourSet{
			Base:     ac("#64748b", "#94a3b8"),
			OnBase:   ac("#f1f5f9", "#0f172a"),
			Muted:    ac("#475569", "#334155"),
			Contrast: ac("#f8fafc", "#f8fafc"),
		},
	}

	theme := Theme{
		Palette: palette,
		Borders: BorderSet{
			None:    lipgloss.HiddenBorder(),
			Normal:  lipgloss.NormalBorder(),
			Rounded: lipgloss.RoundedBorder(),
			Thick:   lipgloss.ThickBorder(),
		},
		Typography: defaultTypography(palette),
		Skins: map[string]string{
			SkinMyRoom:    SkinMyRoom,
			SkinMyKitchen: SkinMyKitchen,
		},
		DefaultSkin: SkinMyRoom,
		Classes:     NewClassRegistry(),
	}
	registerClassStyles(theme.Classes)
	return theme
}

func defaultTypography(p Palette) TypographyScale {
	base := lipgloss.NewStyle().Foreground(p.Surface.OnBase)

	return TypographyScale{
		Base:     base,
		Title:    base.Bold(true).Foreground(p.Primary.Base),
		Subtitle: base.Foreground(p.Secondary.Muted).Faint(true),
		Emphasis: base.Bold(true),
		Muted:    base.Foreground(p.Neutral.Base),
	}
}

// registerClassStyles defines precedence: structural classes, then skins,
// then interaction state, so a focused element always looks focused.
func registerClassStyles(r *ClassRegistry) {
	r.Register(ClassButton, Border(BorderVariantRounded), PaddingX(1))
	r.Register(ClassMinWidth, MinWidth(8))
	r.Register(ClassIcon)
	r.Register(ClassItem, PaddingX(1))
	r.Register(ClassToggleItem, PaddingX(1))
	r.Register(ClassToggleIcon)
	r.Register(ClassHeading, Typography(TypographyVariantSubtitle))
	r.Register(ClassDivider, Foreground(PaletteNeutral))
	r.Register(ClassShowLine)

	r.Register(ClassPanels)
	r.Register(ClassPanel)
	r.Register(ClassHeader, Typography(TypographyVariantTitle), PaddingX(1))
	r.Register(ClassBody, PaddingX(1))
	r.Register(ClassFooter, Typography(TypographyVariantMuted), PaddingX(1))

	r.Register(SkinMyRoom, BorderColor(PaletteWarm))
	r.Register(SkinMyKitchen, BorderColor(PaletteCool))

	r.Register(ClassSelected, Typography(TypographyVariantEmphasis))
	r.Register(ClassDisabled, Faint())
	r.Register(ClassFocused, Background(PalettePrimary))
}

// Background applies a semantic background colour and matching foreground.
func Background(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		cs := slot(theme.Palette)
		return base.Background(cs.Base).Foreground(cs.OnBase)
	}
}

// Foreground applies a semantic foreground colour without changing the background.
func Foreground(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Foreground(slot(theme.Palette).Base)
	}
}

// BorderColor tints any border already on the style.
func BorderColor(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.BorderForeground(slot(theme.Palette).Base)
	}
}

// Border applies a border style from the theme.
func Border(variant BorderVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Border(BorderForVariant(theme, variant))
	}
}

// PaddingX pads left and right by n cells.
func PaddingX(n int) StyleFunc {
	return func(base lipgloss.Style, _ Theme) lipgloss.Style {
		return base.PaddingLeft(n).PaddingRight(n)
	}
}

// MinWidth keeps content at least n cells wide.
func MinWidth(n int) StyleFunc {
	return func(base lipgloss.Style, _ Theme) lipgloss.Style {
		return base.Width(n).Align(lipgloss.Center)
	}
}

// Faint dims the style.
func Faint() StyleFunc {
	return func(base lipgloss.Style, _ Theme) lipgloss.Style {
		return base.Faint(true)
	}
}

// Typography applies typography styling.
func Typography(variant TypographyVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Inherit(TypographyStyle(theme, variant))
	}
}

// BorderForVariant returns the border style for the given variant.
func BorderForVariant(theme Theme, variant BorderVariant) lipgloss.Border {
	switch variant {
	case BorderVariantNormal:
		return theme.Borders.Normal
	case BorderVariantRounded:
		return theme.Borders.Rounded
	case BorderVariantThick:
		return theme.Borders.Thick
	default:
		return theme.Borders.None
	}
}

// TypographyStyle returns the specified typography style from the given theme.
func TypographyStyle(theme Theme, variant TypographyVariant) lipgloss.Style {
	typo := theme.Typography
	switch variant {
	case TypographyVariantTitle:
		return typo.Title
	case TypographyVariantSubtitle:
		return typo.Subtitle
	case TypographyVariantEmphasis:
		return typo.Emphasis
	case TypographyVariantMuted:
		return typo.Muted
	default:
		return typo.Base
	}
}
