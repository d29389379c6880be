package site

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"

	"github.com/alexisbeaulieu97/showcase/internal/content"
	"github.com/alexisbeaulieu97/showcase/internal/gallery"
	"github.com/alexisbeaulieu97/showcase/internal/ui"
	"github.com/alexisbeaulieu97/showcase/internal/ui/components"
)

// preview is the Form / Data / Feedback / Layout component gallery. The
// slider and switch on the Form tab keep their values across tab changes.
type preview struct {
	data     content.Showcase
	heading  content.Heading
	tabs     *gallery.TabGroup[gallery.ShowcaseSection]
	slider   *gallery.Slider
	toggle   *gallery.Toggle
	progress progress.Model
}

func newPreview(data content.Showcase, heading content.Heading, initial gallery.ShowcaseSection) (*preview, error) {
	tabs, err := gallery.NewTabGroup(initial, gallery.ShowcaseSections()...)
	if err != nil {
		return nil, err
	}
	slider, err := gallery.NewSlider(data.SliderOptions())
	if err != nil {
		return nil, fmt.Errorf("component preview: %w", err)
	}
	return &preview{
		data:     data,
		heading:  heading,
		tabs:     tabs,
		slider:   slider,
		toggle:   gallery.NewToggle(data.Switch.Initial, data.ToggleLabels()),
		progress: progress.New(progress.WithDefaultGradient()),
	}, nil
}

func (p *preview) onForm() bool {
	return p.tabs.IsActive(gallery.SectionForm)
}

// adjust moves the slider by steps when the Form tab is showing.
func (p *preview) adjust(steps int) bool {
	if !p.onForm() {
		return false
	}
	for ; steps > 0; steps-- {
		p.slider.Increment()
	}
	for ; steps < 0; steps++ {
		p.slider.Decrement()
	}
	return true
}

// flip toggles the switch when the Form tab is showing.
func (p *preview) flip() bool {
	if !p.onForm() {
		return false
	}
	p.toggle.Toggle()
	return true
}

func (p *preview) render(ctx components.RenderContext, focused bool) string {
	labels := make([]string, 0, 4)
	for _, s := range p.tabs.Sections() {
		labels = append(labels, s.Title())
	}

	var body ui.Renderable
	switch p.tabs.Current() {
	case gallery.SectionForm:
		body = p.formTab(focused)
	case gallery.SectionData:
		body = p.dataTab(ctx)
	case gallery.SectionFeedback:
		body = p.feedbackTab()
	default:
		body = p.layoutTab()
	}

	return components.VStack(
		components.NewTabList(labels...).WithActive(p.tabs.Index()).WithFocus(focused).WithNumbers(),
		body,
	).WithGap(1).ViewWithContext(ctx)
}

func (p *preview) formTab(focused bool) ui.Renderable {
	country := components.NewSelectTrigger("", "Select a country")
	contact := 0
	for i, opt := range p.data.ContactMethods {
		if opt.Value == p.data.DefaultContact {
			contact = i
		}
	}
	methods := make([]string, len(p.data.ContactMethods))
	for i, opt := range p.data.ContactMethods {
		methods[i] = opt.Label
	}

	_, label := p.slider.Get()

	left := components.VStack(
		components.VStack(components.LabelText("Email"), components.NewInput("Enter your email")),
		components.VStack(components.LabelText("Country"), country),
		components.VStack(components.LabelText("Message"), components.NewTextarea("Type your message here...", 3)),
	).WithGap(1)

	right := components.VStack(
		components.VStack(
			components.LabelText("Preferences"),
			components.NewCheckbox("Email notifications", false),
			components.NewCheckbox("Marketing emails", false),
		),
		components.VStack(components.LabelText("Contact Method"), components.NewRadioGroup(contact, methods...)),
		components.NewSwitch(p.toggle.Label(), p.toggle.Checked()).WithFocus(focused),
	).WithGap(1)

	volume := components.NewPanel(label, components.NewSlider(p.slider.Fraction()).WithFocus(focused)).
		WithHint("+/- adjust · space switch").
		WithFocus(focused)

	return components.NewCard(
		components.NewGrid(2, left, right).WithMinColumnWidth(30).WithRowGap(1),
		volume,
		components.NewButton("Submit Form").FullWidth(),
	).
		WithTitle("Form Components").
		WithDescription("Interactive form elements with validation and styling").
		WithFocus(focused)
}

func (p *preview) dataTab(ctx components.RenderContext) ui.Renderable {
	badges := make([]ui.Renderable, 0, 4)
	for _, v := range components.BadgeVariants() {
		badges = append(badges, components.NewBadge(badgeCaption(v)).WithVariant(v))
	}

	// Card border and padding take four columns.
	bar := p.progress
	bar.Width = max(ctx.Width(60)-4, 10)
	percent := float64(p.data.Progress) / 100

	profile := p.data.Profile
	return components.NewCard(
		components.HStack(badges...).WithGap(1),
		components.VStack(
			components.LabelText("Loading Progress"),
			ui.RenderFunc(func() string { return bar.ViewAs(percent) }),
			components.MutedText(fmt.Sprintf("%d%% complete", p.data.Progress)),
		),
		components.NewPrefixed(
			components.NewAvatar(profile.Initials, profile.Name),
			components.VStack(components.EmphasisText(profile.Name), components.MutedText(profile.Email)),
		),
	).
		WithTitle("Data Display").
		WithDescription("Components for displaying and organizing data")
}

func badgeCaption(v components.BadgeVariant) string {
	switch v {
	case components.BadgeVariantSecondary:
		return "Secondary"
	case components.BadgeVariantDestructive:
		return "Destructive"
	case components.BadgeVariantOutline:
		return "Outline"
	default:
		return "Default"
	}
}

func (p *preview) feedbackTab() ui.Renderable {
	buttons := make([]ui.Renderable, 0, 6)
	captions := []string{"Primary", "Secondary", "Destructive", "Outline", "Ghost", "Link"}
	for i, v := range components.ButtonVariants() {
		buttons = append(buttons, components.NewButton(captions[i]).WithVariant(v))
	}

	return components.NewCard(
		components.NewAlert("This is a default alert message to inform users about something important.").
			WithTitle("Information"),
		components.DestructiveAlert("Error", "Something went wrong. Please check your input and try again."),
		components.HStack(buttons...).WithGap(1),
	).
		WithTitle("Feedback Components").
		WithDescription("Alerts, notifications, and status indicators")
}

func (p *preview) layoutTab() ui.Renderable {
	imageArea := components.NewContainer(components.MutedText("Image Area").Centered()).
		WithPadding(components.SymmetricSpacing(1, 0)).
		WithAppliers(components.Background(components.PaletteMuted))

	cards := []ui.Renderable{
		components.NewCard(components.BodyText("This is the card content area where you can put any information.").Wrapped()).
			WithTitle("Card Example 1").
			WithDescription("A simple card with header and content"),
		components.NewCard(
			components.NewButton("Action").WithSize(components.ButtonSizeSmall).FullWidth(),
			components.MutedText("Cards can contain any type of content").Wrapped(),
		).
			WithTitle("Card Example 2").
			WithDescription("Another card with different content"),
		components.NewCard(imageArea).
			WithTitle("Card Example 3").
			WithDescription("Card with image placeholder"),
	}

	return components.NewCard(components.NewGrid(3, cards...).WithMinColumnWidth(24).WithRowGap(1)).
		WithTitle("Layout Components").
		WithDescription("Cards, separators, and other layout elements")
}
