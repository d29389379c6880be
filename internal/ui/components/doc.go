// Package components is a small, theme-aware lipgloss component library in the
// style of shadcn/ui: cards, buttons, badges, alerts, tab lists and form
// controls that render to strings.
//
// Themes are immutable values passed through RenderContext together with the
// width available to the component:
//
//	ctx := components.NewContext(components.DarkTheme(), 80)
//	out := components.Render(card, ctx)
//
// View() renders with DefaultContext, which uses adaptive colours and no
// width constraint.
//
// Components accept theme-aware modifiers through WithAppliers:
//
//	badge := components.NewBadge("New").WithAppliers(
//		components.Background(components.PaletteAccent),
//	)
//
// Layout is built from Stack, Container, Split, Grid and Prefixed. Card,
// Panel and Alert are Containers with a fixed header arrangement.
package components
