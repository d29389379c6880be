package site

import (
	"fmt"
	"time"

	"github.com/alexisbeaulieu97/showcase/internal/content"
	"github.com/alexisbeaulieu97/showcase/internal/gallery"
	"github.com/alexisbeaulieu97/showcase/internal/logger"
	"github.com/alexisbeaulieu97/showcase/internal/ui"
	"github.com/alexisbeaulieu97/showcase/internal/ui/components"
)

// widgetDeps are the host capabilities shared by both widgets.
type widgetDeps struct {
	clipboard  gallery.Clipboard
	dispatcher gallery.Dispatcher
	scheduler  gallery.Scheduler
	window     time.Duration
	log        *logger.Logger
}

// quickStart is the Setup / Installation / Usage widget. Copy buttons on
// the first two tabs share one acknowledgement controller.
type quickStart struct {
	data    content.QuickStart
	heading content.Heading
	tabs    *gallery.TabGroup[gallery.QuickStartSection]
	copy    *gallery.CopyFeedbackController
	cursor  int
	notice  string
}

func newQuickStart(data content.QuickStart, heading content.Heading, initial gallery.QuickStartSection, deps widgetDeps) (*quickStart, error) {
	tabs, err := gallery.NewTabGroup(initial, gallery.QuickStartSections()...)
	if err != nil {
		return nil, err
	}

	q := &quickStart{data: data, heading: heading, tabs: tabs}
	ctrl, err := gallery.NewCopyFeedbackController(data.CopyItems(), gallery.CopyOptions{
		Clipboard:  deps.clipboard,
		Dispatcher: deps.dispatcher,
		Scheduler:  deps.scheduler,
		Window:     deps.window,
		Logger:     deps.log,
		OnResult:   q.onResult,
	})
	if err != nil {
		return nil, fmt.Errorf("quick start: %w", err)
	}
	q.copy = ctrl
	return q, nil
}

func (q *quickStart) onResult(res gallery.CopyResult) {
	switch {
	case res.Stale:
	case res.Err != nil:
		q.notice = res.Err.Error()
	default:
		q.notice = fmt.Sprintf("Copied %q to the clipboard", res.Item.Label)
	}
}

// targets lists the copy indices reachable with the cursor on the current tab.
func (q *quickStart) targets() []int {
	switch q.tabs.Current() {
	case gallery.SectionSetup:
		out := make([]int, len(q.data.PackageManagers))
		for i := range out {
			out[i] = content.PackageManagerIndex(i)
		}
		return out
	case gallery.SectionInstall:
		out := make([]int, len(q.data.InstallSteps))
		for i := range out {
			out[i] = content.InstallStepIndex(i)
		}
		return out
	default:
		return nil
	}
}

func (q *quickStart) next() {
	q.tabs.Next()
	q.cursor = 0
}

func (q *quickStart) prev() {
	q.tabs.Prev()
	q.cursor = 0
}

func (q *quickStart) selectIndex(i int) {
	if q.tabs.SelectIndex(i) {
		q.cursor = 0
	}
}

func (q *quickStart) moveCursor(delta int) {
	n := len(q.targets())
	if n == 0 {
		return
	}
	q.cursor = min(max(q.cursor+delta, 0), n-1)
}

// copySelected copies the command under the cursor. It reports false when
// the current tab has nothing to copy.
func (q *quickStart) copySelected() (bool, error) {
	targets := q.targets()
	if len(targets) == 0 {
		return false, nil
	}
	return true, q.copy.RequestCopyIndex(targets[min(q.cursor, len(targets)-1)])
}

// status is the footer line for this widget.
func (q *quickStart) status() string {
	if err := q.copy.LastError(); err != nil {
		return q.notice
	}
	if _, ok := q.copy.Active(); ok {
		return q.notice
	}
	return ""
}

func (q *quickStart) close() {
	q.copy.Close()
}

func (q *quickStart) render(ctx components.RenderContext, focused bool) string {
	labels := make([]string, 0, 3)
	for _, s := range q.tabs.Sections() {
		labels = append(labels, s.Title())
	}

	var body ui.Renderable
	switch q.tabs.Current() {
	case gallery.SectionSetup:
		body = q.setupTab(focused)
	case gallery.SectionInstall:
		body = q.installTab(focused)
	default:
		body = q.usageTab()
	}

	// Copy failures only reach the status line; the page itself stays as it was.
	return components.VStack(
		components.NewTabList(labels...).WithActive(q.tabs.Index()).WithFocus(focused).WithNumbers(),
		body,
	).WithGap(1).ViewWithContext(ctx)
}

func (q *quickStart) copyButton(index int, selected bool) *components.Button {
	variant := components.ButtonVariantGhost
	if q.copy.IsActive(index) {
		variant = components.ButtonVariantDefault
	}
	return components.NewButton(q.copy.ButtonLabel(index)).
		WithVariant(variant).
		WithSize(components.ButtonSizeSmall).
		WithFocus(selected)
}

func (q *quickStart) setupTab(focused bool) ui.Renderable {
	cells := make([]ui.Renderable, 0, len(q.data.PackageManagers))
	for i, pm := range q.data.PackageManagers {
		index := content.PackageManagerIndex(i)
		cells = append(cells, components.VStack(
			components.NewSplit(components.OutlineBadge(pm.Name), q.copyButton(index, focused && q.cursor == i)),
			components.NewCodeBlock(pm.Install),
		))
	}

	card := components.NewCard(components.NewGrid(2, cells...).WithRowGap(1).WithMinColumnWidth(36)).
		WithTitle("Create a New Next.js Project").
		WithDescription("Choose your preferred package manager to get started").
		WithFocus(focused)
	if q.data.SetupNote != "" {
		card.WithFooter(components.MutedText(q.data.SetupNote).Wrapped())
	}
	return card
}

func (q *quickStart) installTab(focused bool) ui.Renderable {
	cards := make([]ui.Renderable, 0, len(q.data.InstallSteps))
	for i, step := range q.data.InstallSteps {
		index := content.InstallStepIndex(i)
		selected := focused && q.cursor == i
		button := q.copyButton(index, selected).WithVariant(components.ButtonVariantOutline)
		if q.copy.IsActive(index) {
			button.WithVariant(components.ButtonVariantDefault)
		}
		cards = append(cards, components.NewCard(components.NewCodeBlock(step.Code)).
			WithTitle(fmt.Sprintf("Step %d: %s", i+1, step.Title)).
			WithDescription(step.Description).
			WithAction(button).
			WithFocus(selected))
	}
	return components.VStack(cards...).WithGap(1)
}

func (q *quickStart) usageTab() ui.Renderable {
	badges := make([]ui.Renderable, len(q.data.Components))
	for i, name := range q.data.Components {
		badges[i] = components.OutlineBadge(name)
	}
	available := components.NewCard(components.NewGrid(6, badges...).WithMinColumnWidth(12).WithGap(1)).
		WithTitle("Available Components").
		WithDescription("All components are ready to use in your project")

	steps := make([]ui.Renderable, len(q.data.NextSteps))
	for i, step := range q.data.NextSteps {
		steps[i] = components.VStack(
			components.EmphasisText(step.Title),
			components.MutedText(step.Description).Wrapped(),
		)
	}
	next := components.NewCard(components.NewList(steps...).Ordered()).
		WithTitle("Next Steps").
		WithDescription("What to do after installation")

	return components.VStack(available, next).WithGap(1)
}
