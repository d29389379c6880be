package site

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/showcase/internal/content"
	"github.com/alexisbeaulieu97/showcase/internal/gallery"
	"github.com/alexisbeaulieu97/showcase/internal/ui"
	"github.com/alexisbeaulieu97/showcase/internal/ui/components"
)

// focusTarget names the widget that receives widget keys.
type focusTarget int

const (
	focusQuickStart focusTarget = iota
	focusPreview
	focusNone
)

const focusTargets = 2

// page owns one instance of each widget built from a content document.
type page struct {
	content *content.Content
	quick   *quickStart
	preview *preview
}

// anchors are the first line of each widget section in the rendered page.
type anchors struct {
	quickStart int
	preview    int
}

func (a anchors) of(f focusTarget) int {
	if f == focusPreview {
		return a.preview
	}
	return a.quickStart
}

func buildPage(c *content.Content, quick gallery.QuickStartSection, show gallery.ShowcaseSection, deps widgetDeps) (*page, error) {
	q, err := newQuickStart(c.QuickStart, c.Sections.QuickStart, quick, deps)
	if err != nil {
		return nil, err
	}
	p, err := newPreview(c.Showcase, c.Sections.Preview, show)
	if err != nil {
		q.close()
		return nil, err
	}
	return &page{content: c, quick: q, preview: p}, nil
}

func (p *page) close() {
	p.quick.close()
}

func (p *page) render(ctx components.RenderContext, focus focusTarget) (string, anchors) {
	var a anchors
	var b strings.Builder
	rule := components.NewDivider().ViewWithContext(ctx)

	write := func(block string) {
		if b.Len() > 0 {
			b.WriteString("\n\n" + rule + "\n\n")
		}
		b.WriteString(block)
	}
	line := func() int {
		if b.Len() == 0 {
			return 0
		}
		// The next block starts after the separator written by write.
		return lipgloss.Height(b.String()) + 3
	}

	write(p.hero(ctx))
	write(p.features(ctx))

	a.quickStart = line()
	write(p.section(ctx, p.quick.heading, p.quick.render(ctx, focus == focusQuickStart)))

	a.preview = line()
	write(p.section(ctx, p.preview.heading, p.preview.render(ctx, focus == focusPreview)))

	write(p.cta(ctx))
	return b.String(), a
}

func (p *page) section(ctx components.RenderContext, h content.Heading, body string) string {
	heading := components.NewHeading(h.Title).WithDescription(h.Description).Centered()
	return components.VStack(heading, ui.RenderFunc(func() string { return body })).
		WithGap(1).
		ViewWithContext(ctx)
}

func (p *page) hero(ctx components.RenderContext) string {
	hero := p.content.Hero
	actions := []ui.Renderable{components.NewButton(hero.PrimaryAction).WithSize(components.ButtonSizeLarge)}
	if hero.SecondaryAction != "" {
		actions = append(actions, components.NewButton(hero.SecondaryAction).
			WithVariant(components.ButtonVariantOutline).
			WithSize(components.ButtonSizeLarge))
	}

	heading := components.NewHeading(hero.Title).
		WithLevel(1).
		WithBadge(hero.Badge).
		WithDescription(hero.Description).
		Centered()

	return components.VStack(
		heading,
		components.NewCenter(components.HStack(actions...).WithGap(2)),
	).WithGap(1).ViewWithContext(ctx)
}

func (p *page) features(ctx components.RenderContext) string {
	cards := make([]ui.Renderable, 0, len(p.content.Features))
	for _, f := range p.content.Features {
		card := components.NewCard(components.MutedText(f.Description).Wrapped()).WithTitle(f.Title)
		if f.Badge != "" {
			card.WithAction(components.SecondaryBadge(f.Badge))
		}
		cards = append(cards, card)
	}

	h := p.content.Sections.Features
	return p.section(ctx, h, components.NewGrid(3, cards...).WithMinColumnWidth(30).WithRowGap(1).ViewWithContext(ctx))
}

func (p *page) cta(ctx components.RenderContext) string {
	cta := p.content.CTA
	actions := []ui.Renderable{components.NewButton(cta.PrimaryAction).WithSize(components.ButtonSizeLarge)}
	if cta.SecondaryAction != "" {
		actions = append(actions, components.NewButton(cta.SecondaryAction).
			WithVariant(components.ButtonVariantOutline).
			WithSize(components.ButtonSizeLarge))
	}
	return components.VStack(
		components.NewHeading(cta.Title).WithDescription(cta.Description).Centered(),
		components.NewCenter(components.HStack(actions...).WithGap(2)),
	).WithGap(1).ViewWithContext(ctx)
}
