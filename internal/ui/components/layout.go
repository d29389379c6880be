package components

import (
	"strings"

	"github.com/alexisbeaulieu97/showcase/internal/ui"
	"github.com/charmbracelet/lipgloss"
)

// Split renders a leading and a trailing child on the same row, pushed to
// opposite edges of the available width.
type Split struct {
	leading  ui.Renderable
	trailing ui.Renderable
}

// NewSplit creates a split row.
func NewSplit(leading, trailing ui.Renderable) *Split {
	return &Split{leading: leading, trailing: trailing}
}

// View renders the split with the default theme.
func (s *Split) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the split row.
func (s *Split) ViewWithContext(ctx RenderContext) string {
	right := Render(s.trailing, ctx)
	rightWidth := lipgloss.Width(right)

	leftCtx := ctx
	if ctx.Constraints.HasWidth() {
		leftCtx = ctx.WithConstraints(ctx.Constraints.Shrink(rightWidth + 1))
	}
	left := Render(s.leading, leftCtx)

	gap := 1
	if ctx.Constraints.HasWidth() {
		gap = max(ctx.Constraints.MaxWidth-lipgloss.Width(left)-rightWidth, 1)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, left, strings.Repeat(" ", gap), right)
}

// Grid lays children out in rows of equal-width columns. The column count
// shrinks until each column is at least MinColumnWidth wide.
type Grid struct {
	BaseComponent
	children       []ui.Renderable
	columns        int
	minColumnWidth int
	gap            int
	rowGap         int
}

// NewGrid creates a grid with at most columns columns.
func NewGrid(columns int, children ...ui.Renderable) *Grid {
	if columns < 1 {
		columns = 1
	}
	return &Grid{
		BaseComponent:  NewBaseComponent(),
		children:       children,
		columns:        columns,
		minColumnWidth: 20,
		gap:            2,
	}
}

// View renders the grid with the default theme.
func (g *Grid) View() string {
	return g.ViewWithContext(DefaultContext())
}

// Columns returns how many columns fit in width.
func (g *Grid) Columns(width int) int {
	cols := g.columns
	if width < 0 {
		return cols
	}
	for cols > 1 && (width-g.gap*(cols-1))/cols < g.minColumnWidth {
		cols--
	}
	return cols
}

// ViewWithContext renders the grid.
func (g *Grid) ViewWithContext(ctx RenderContext) string {
	if len(g.children) == 0 {
		return ""
	}

	width := -1
	if ctx.Constraints.HasWidth() {
		width = ctx.Constraints.MaxWidth
	}
	cols := g.Columns(width)

	cellCtx := ctx
	cellWidth := 0
	if width >= 0 {
		cellWidth = max((width-g.gap*(cols-1))/cols, 1)
		cellCtx = ctx.WithConstraints(WithMaxWidth(cellWidth))
	}

	var rows []string
	for start := 0; start < len(g.children); start += cols {
		end := min(start+cols, len(g.children))
		cells := make([]string, 0, (end-start)*2)
		for i := start; i < end; i++ {
			if i > start {
				cells = append(cells, strings.Repeat(" ", g.gap))
			}
			cell := Render(g.children[i], cellCtx)
			if cellWidth > 0 {
				cell = lipgloss.NewStyle().Width(cellWidth).Render(cell)
			}
			cells = append(cells, cell)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	if g.rowGap > 0 {
		spaced := make([]string, 0, len(rows)*2)
		for i, row := range rows {
			if i > 0 {
				spaced = append(spaced, strings.Repeat("\n", g.rowGap-1))
			}
			spaced = append(spaced, row)
		}
		rows = spaced
	}
	return g.ComputeStyle(ctx.Theme).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// WithGap sets the column gap.
func (g *Grid) WithGap(gap int) *Grid {
	g.gap = max(gap, 0)
	return g
}

// WithRowGap sets blank lines between rows.
func (g *Grid) WithRowGap(gap int) *Grid {
	g.rowGap = max(gap, 0)
	return g
}

// WithMinColumnWidth sets the narrowest column allowed before wrapping.
func (g *Grid) WithMinColumnWidth(width int) *Grid {
	g.minColumnWidth = max(width, 1)
	return g
}

// Spacer renders blank space.
type Spacer struct {
	width  int
	height int
}

// NewSpacer creates a spacer with the given dimensions.
func NewSpacer(width, height int) *Spacer {
	return &Spacer{width: max(width, 0), height: max(height, 0)}
}

// VerticalSpacer creates a spacer height lines tall.
func VerticalSpacer(height int) *Spacer {
	return NewSpacer(0, height)
}

// View renders the spacer.
func (s *Spacer) View() string {
	if s.height == 0 {
		return strings.Repeat(" ", s.width)
	}
	lines := make([]string, s.height)
	for i := range lines {
		lines[i] = strings.Repeat(" ", s.width)
	}
	return strings.Join(lines, "\n")
}

// Prefixed renders a fixed-width prefix followed by a body that takes the
// remaining width, as used for icons and list bullets.
type Prefixed struct {
	prefix ui.Renderable
	body   ui.Renderable
}

// NewPrefixed creates a prefixed row.
func NewPrefixed(prefix, body ui.Renderable) *Prefixed {
	return &Prefixed{prefix: prefix, body: body}
}

// View renders the row with the default theme.
func (p *Prefixed) View() string {
	return p.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the row.
func (p *Prefixed) ViewWithContext(ctx RenderContext) string {
	head := Render(p.prefix, ctx) + " "
	bodyCtx := ctx
	if ctx.Constraints.HasWidth() {
		bodyCtx = ctx.WithConstraints(ctx.Constraints.Shrink(lipgloss.Width(head)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, head, Render(p.body, bodyCtx))
}

// Center renders its child at natural width and centers it in the context
// width.
type Center struct {
	child ui.Renderable
}

// NewCenter creates a centering wrapper.
func NewCenter(child ui.Renderable) *Center {
	return &Center{child: child}
}

// View renders the child unchanged.
func (c *Center) View() string {
	return Render(c.child, DefaultContext())
}

// ViewWithContext renders the child centered.
func (c *Center) ViewWithContext(ctx RenderContext) string {
	out := Render(c.child, ctx.WithConstraints(Unconstrained()))
	if !ctx.Constraints.HasWidth() {
		return out
	}
	return lipgloss.PlaceHorizontal(ctx.Constraints.MaxWidth, lipgloss.Center, out)
}
