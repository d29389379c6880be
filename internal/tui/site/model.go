// Package site is the interactive terminal rendition of the component
// showcase: a scrollable page with a quick start widget and a component
// preview widget, each with its own tabs.
package site

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/showcase/internal/content"
	"github.com/alexisbeaulieu97/showcase/internal/gallery"
	"github.com/alexisbeaulieu97/showcase/internal/logger"
	"github.com/alexisbeaulieu97/showcase/internal/ui/components"
	"github.com/alexisbeaulieu97/showcase/internal/watch"
)

// maxPageWidth caps the page so cards stay readable on wide terminals.
const maxPageWidth = 120

// Options configures the interactive site.
type Options struct {
	Content *content.Content
	// ContentPath is reloaded when Watch is set. Empty means the embedded
	// document, which is never watched.
	ContentPath string
	Watch       bool

	Theme     components.Theme
	Clipboard gallery.Clipboard
	Scheduler gallery.Scheduler
	AckWindow time.Duration
	// Width fixes the page width. Zero follows the terminal.
	Width int

	QuickStart gallery.QuickStartSection
	Preview    gallery.ShowcaseSection

	Logger *logger.Logger
}

// Model is the bubbletea model of the site.
type Model struct {
	opts  Options
	log   *logger.Logger
	loop  *eventLoop
	page  *page
	theme components.Theme

	keys     KeyMap
	help     help.Model
	viewport viewport.Model
	ready    bool

	focus   focusTarget
	anchors anchors
	status  string

	width  int
	height int

	watcher     *watch.Watcher
	stopWatcher context.CancelFunc
}

// New builds the widgets for opts.Content and, when asked to, starts
// watching the content file.
func New(opts Options) (Model, error) {
	if opts.Content == nil {
		return Model{}, errors.New("site: content is required")
	}
	if opts.Theme.Variants == nil {
		opts.Theme = components.DefaultTheme()
	}
	log := opts.Logger
	if log == nil {
		log = logger.Discard()
	}

	m := Model{
		opts:  opts,
		log:   log.WithComponent("site"),
		loop:  newEventLoop(),
		theme: opts.Theme,
		keys:  DefaultKeyMap(),
		help:  help.New(),
	}

	p, err := buildPage(opts.Content, opts.QuickStart, opts.Preview, m.deps())
	if err != nil {
		m.loop.stop()
		return Model{}, err
	}
	m.page = p

	if opts.Watch && opts.ContentPath != "" {
		if err := m.startWatcher(); err != nil {
			m.Close()
			return Model{}, err
		}
	}
	return m, nil
}

func (m Model) deps() widgetDeps {
	return widgetDeps{
		clipboard:  m.opts.Clipboard,
		dispatcher: m.loop,
		scheduler:  m.opts.Scheduler,
		window:     m.opts.AckWindow,
		log:        m.log,
	}
}

func (m *Model) startWatcher() error {
	loop := m.loop
	w, err := watch.New(watch.Options{Path: m.opts.ContentPath, Logger: m.log}, func(e watch.ChangeEvent) {
		loop.send(contentChangedMsg{event: e})
	})
	if err != nil {
		return err
	}
	ctx, cancel := context.WithCancel(context.Background())
	if err := w.Start(ctx); err != nil {
		cancel()
		return err
	}
	m.watcher = w
	m.stopWatcher = cancel
	return nil
}

// Init starts listening for work dispatched from timers, clipboard writes
// and the file watcher.
func (m Model) Init() tea.Cmd {
	return m.loop.wait()
}

// Close releases the widgets, the watcher and the event loop. It is safe to
// call more than once and after the program exits.
func (m Model) Close() {
	if m.stopWatcher != nil {
		m.stopWatcher()
	}
	if m.watcher != nil {
		_ = m.watcher.Close()
	}
	if m.page != nil {
		m.page.close()
	}
	m.loop.stop()
}

// Focused returns the title of the widget receiving widget keys.
func (m Model) Focused() string {
	if m.focus == focusPreview {
		return m.page.preview.heading.Title
	}
	return m.page.quick.heading.Title
}

// QuickStartSection returns the active quick start tab.
func (m Model) QuickStartSection() gallery.QuickStartSection {
	return m.page.quick.tabs.Current()
}

// PreviewSection returns the active component preview tab.
func (m Model) PreviewSection() gallery.ShowcaseSection {
	return m.page.preview.tabs.Current()
}

// Theme returns the theme in use.
func (m Model) Theme() components.Theme {
	return m.theme
}

func (m Model) pageWidth() int {
	if m.opts.Width > 0 {
		return m.opts.Width
	}
	return min(m.width, maxPageWidth)
}

func (m Model) renderContext() components.RenderContext {
	return components.NewContext(m.theme, m.pageWidth())
}

// refresh re-renders the page into the viewport.
func (m *Model) refresh() {
	if !m.ready {
		return
	}
	body, a := m.page.render(m.renderContext(), m.focus)
	m.anchors = a
	m.viewport.SetContent(body)
}

func (m *Model) scrollToFocus() {
	if m.ready {
		m.viewport.SetYOffset(m.anchors.of(m.focus))
	}
}
