package site

import (
	"context"
	"errors"

	"github.com/alexisbeaulieu97/showcase/internal/content"
	"github.com/alexisbeaulieu97/showcase/internal/gallery"
	"github.com/alexisbeaulieu97/showcase/internal/ui/components"
)

// DefaultRenderWidth is used by Render when no width is given.
const DefaultRenderWidth = 100

// RenderOptions configures a one-shot render of the page.
type RenderOptions struct {
	Content    *content.Content
	Theme      components.Theme
	Width      int
	QuickStart gallery.QuickStartSection
	Preview    gallery.ShowcaseSection
}

// Render draws the whole page once with no widget focused, for output that
// is not an interactive terminal.
func Render(opts RenderOptions) (string, error) {
	if opts.Content == nil {
		return "", errors.New("site: content is required")
	}
	if opts.Theme.Variants == nil {
		opts.Theme = components.DefaultTheme()
	}
	if opts.Width <= 0 {
		opts.Width = DefaultRenderWidth
	}

	deps := widgetDeps{
		clipboard: gallery.ClipboardFunc(func(context.Context, string) error {
			return gallery.ErrClipboardUnavailable
		}),
		dispatcher: gallery.DispatcherFunc(func(fn func()) { fn() }),
		scheduler:  gallery.SystemScheduler{},
	}
	p, err := buildPage(opts.Content, opts.QuickStart, opts.Preview, deps)
	if err != nil {
		return "", err
	}
	defer p.close()

	out, _ := p.render(components.NewContext(opts.Theme, opts.Width), focusNone)
	return out, nil
}
