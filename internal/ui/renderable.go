// Package ui holds the contracts shared by the component library and the
// screens that compose it.
package ui

// Renderable is anything that can produce a terminal string.
type Renderable interface {
	View() string
}

// RenderFunc adapts a plain function to Renderable.
type RenderFunc func() string

// View implements Renderable.
func (f RenderFunc) View() string {
	if f == nil {
		return ""
	}
	return f()
}
