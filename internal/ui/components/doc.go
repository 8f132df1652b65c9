// Package components provides the skinned visual layer for panelkit.
//
// # Overview
//
// The package offers theme-aware visual bases (buttons, icons, items,
// headings, toggles) and the layout primitives panels are built from. Bases
// carry no behavior: focusability, toggle state, skin selection and render
// short-circuiting are layered on by the decorate package.
//
// # Classes
//
// Every base computes a Classes set from its Props. Class names are the
// stable hooks the theme styles and tests assert on:
//
//	classes := ButtonBase{}.Classes(Props{Label: "OK", Selected: true})
//	// button selected
//
// # Theme and skins
//
// Themes are passed explicitly through RenderContext. A skin is a named
// variant translated to a class through Theme.Skins:
//
//	ctx := components.DefaultContext().WithSkin(components.SkinMyKitchen)
//	out := components.ButtonBase{}.Render(ctx, components.Props{Label: "OK", Classes: components.NewClasses("mykitchen")})
//
// Class styles resolve in registration order: structural classes, then
// skins, then interaction state.
//
// # Layout
//
// Column and Cell mirror the header/body/footer regions of a panel. Shrink
// cells take their content height; the others share the remaining height
// when the context bounds it.
package components
