package components

import (
	"strconv"

	"github.com/alexisbeaulieu97/showcase/internal/ui"
)

// List renders items with a bullet or an ordinal prefix.
type List struct {
	BaseComponent
	items   []ui.Renderable
	bullet  string
	ordered bool
}

// NewList creates a bulleted list.
func NewList(items ...ui.Renderable) *List {
	return &List{
		BaseComponent: NewBaseComponent(),
		items:         items,
		bullet:        "•",
	}
}

// NewTextList creates a bulleted list of plain strings.
func NewTextList(items ...string) *List {
	rs := make([]ui.Renderable, len(items))
	for i, item := range items {
		rs[i] = NewText(item).Wrapped()
	}
	return NewList(rs...)
}

// View renders the list.
func (l *List) View() string {
	return l.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the list.
func (l *List) ViewWithContext(ctx RenderContext) string {
	rows := make([]ui.Renderable, len(l.items))
	for i, item := range l.items {
		marker := l.bullet
		if l.ordered {
			marker = strconv.Itoa(i+1) + "."
		}
		rows[i] = NewPrefixed(MutedText(marker), item)
	}
	return l.ComputeStyle(ctx.Theme).Render(VStack(rows...).ViewWithContext(ctx))
}

// Ordered numbers the items instead of bulleting them.
func (l *List) Ordered() *List {
	l.ordered = true
	return l
}

// WithBullet sets the bullet glyph.
func (l *List) WithBullet(bullet string) *List {
	l.bullet = bullet
	return l
}

// Len returns the number of items.
func (l *List) Len() int {
	return len(l.items)
}
