package content

import (
	"github.com/alexisbeaulieu97/showcase/internal/gallery"
)

// InstallStepIndexOffset separates install step copy indices from package
// manager indices.
const InstallStepIndexOffset = 10

// PackageManagerIndex is the copy index of the i-th package manager command.
func PackageManagerIndex(i int) int {
	return i
}

// InstallStepIndex is the copy index of the i-th install step.
func InstallStepIndex(i int) int {
	return InstallStepIndexOffset + i
}

// CopyItems lists every copyable command of the quick start widget, package
// managers first.
func (q QuickStart) CopyItems() []gallery.CopyableItem {
	items := make([]gallery.CopyableItem, 0, len(q.PackageManagers)+len(q.InstallSteps))
	for i, pm := range q.PackageManagers {
		items = append(items, gallery.CopyableItem{Index: PackageManagerIndex(i), Payload: pm.Install, Label: pm.Name})
	}
	for i, step := range q.InstallSteps {
		items = append(items, gallery.CopyableItem{Index: InstallStepIndex(i), Payload: step.Code, Label: step.Title})
	}
	return items
}

// SliderOptions converts the slider settings for gallery.NewSlider.
func (s Showcase) SliderOptions() gallery.SliderOptions {
	return gallery.SliderOptions{
		Min:     s.Slider.Min,
		Max:     s.Slider.Max,
		Step:    s.Slider.Step,
		Initial: s.Slider.Initial,
		Format:  s.Slider.Label,
	}
}

// ToggleLabels converts the switch settings for gallery.NewToggle.
func (s Showcase) ToggleLabels() gallery.ToggleLabels {
	return gallery.ToggleLabels{On: s.Switch.On, Off: s.Switch.Off}
}

// OptionLabel returns the label for value, or value itself when unknown.
func OptionLabel(options []Option, value string) string {
	for _, opt := range options {
		if opt.Value == value {
			return opt.Label
		}
	}
	return value
}
