package gallery_test

import (
	"strconv"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/alexisbeaulieu97/showcase/internal/gallery"
)

// TestTabGroupProperties checks selection sequences against the last selection.
func TestTabGroupProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("current is always the last selected section", prop.ForAll(
		func(picks []int) bool {
			tabs, err := gallery.NewTabGroup(gallery.SectionForm, gallery.ShowcaseSections()...)
			if err != nil {
				return false
			}

			want := gallery.SectionForm
			for _, p := range picks {
				want = gallery.ShowcaseSections()[p]
				tabs.Select(want)
			}
			return tabs.Current() == want && tabs.IsActive(want)
		},
		gen.SliceOf(gen.IntRange(0, 3)),
	))

	properties.Property("exactly one section is active", prop.ForAll(
		func(moves []int) bool {
			tabs, err := gallery.NewTabGroup(gallery.SectionSetup, gallery.QuickStartSections()...)
			if err != nil {
				return false
			}

			for _, m := range moves {
				switch m {
				case 0:
					tabs.Next()
				case 1:
					tabs.Prev()
				default:
					tabs.SelectIndex(m - 2)
				}
			}

			active := 0
			for _, s := range tabs.Sections() {
				if tabs.IsActive(s) {
					active++
				}
			}
			return active == 1
		},
		gen.SliceOf(gen.IntRange(0, 6)),
	))

	properties.TestingRun(t)
}

// TestSliderProperties checks clamping invariants over arbitrary ranges.
func TestSliderProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("value stays within range and on a step or max", prop.ForAll(
		func(lo, span, step, input int) bool {
			slider, err := gallery.NewSlider(gallery.SliderOptions{Min: lo, Max: lo + span, Step: step, Initial: lo})
			if err != nil {
				return false
			}

			slider.Set(input)
			v := slider.Value()
			if v < lo || v > lo+span {
				return false
			}
			return v == lo+span || (v-lo)%step == 0
		},
		gen.IntRange(-500, 500),
		gen.IntRange(1, 1000),
		gen.IntRange(1, 50),
		gen.IntRange(-3000, 3000),
	))

	properties.Property("label always matches value", prop.ForAll(
		func(inputs []int) bool {
			slider, err := gallery.NewSlider(gallery.SliderOptions{Min: 0, Max: 100, Step: 5, Initial: 50})
			if err != nil {
				return false
			}
			for _, in := range inputs {
				slider.Set(in)
				value, label := slider.Get()
				if label != slider.Label() || label != formatVolume(value) {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.IntRange(-200, 300)),
	))

	properties.Property("set is idempotent", prop.ForAll(
		func(input int) bool {
			slider, err := gallery.NewSlider(gallery.SliderOptions{Min: 0, Max: 100, Step: 3, Initial: 0})
			if err != nil {
				return false
			}
			slider.Set(input)
			first := slider.Value()
			slider.Set(first)
			return slider.Value() == first
		},
		gen.IntRange(-100, 200),
	))

	properties.TestingRun(t)
}

func formatVolume(v int) string {
	return "Volume: " + strconv.Itoa(v)
}
