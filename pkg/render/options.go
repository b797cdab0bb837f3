package render

// RenderOptions describe per-request data that renderers can use to customise
// their output without touching the fragment itself.
type RenderOptions struct {
	// Document asks the renderer to wrap the fragment in a standalone page.
	// Renderers without a page layout ignore it.
	Document bool
	// Theme carries resolved theme tokens and assets for page output. Fragment
	// markup never changes with the theme; only the surrounding page does.
	Theme *ThemeConfig
}
