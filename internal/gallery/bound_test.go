package gallery_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/showcase/internal/gallery"
)

func TestSliderDefaultLabel(t *testing.T) {
	t.Parallel()

	slider, err := gallery.NewSlider(gallery.SliderOptions{Min: 0, Max: 100, Step: 1, Initial: 50})
	require.NoError(t, err)

	value, label := slider.Get()
	assert.Equal(t, 50, value)
	assert.Equal(t, "Volume: 50", label)
}

func TestSliderSetUpdatesValueAndLabelTogether(t *testing.T) {
	t.Parallel()

	slider, err := gallery.NewSlider(gallery.SliderOptions{Min: 0, Max: 100, Step: 1, Initial: 50})
	require.NoError(t, err)

	slider.Set(73)
	value, label := slider.Get()
	assert.Equal(t, 73, value)
	assert.Equal(t, "Volume: 73", label)
}

func TestSliderClamping(t *testing.T) {
	t.Parallel()

	slider, err := gallery.NewSlider(gallery.SliderOptions{Min: 0, Max: 100, Step: 10, Initial: 0})
	require.NoError(t, err)

	tests := []struct {
		in   int
		want int
	}{
		{in: -5, want: 0},
		{in: 150, want: 100},
		{in: 100, want: 100},
		{in: 14, want: 10},
		{in: 15, want: 20},
		{in: 96, want: 100},
	}
	for _, tt := range tests {
		slider.Set(tt.in)
		assert.Equal(t, tt.want, slider.Value(), "input %d", tt.in)
		assert.Equal(t, "Volume: "+strconv.Itoa(tt.want), slider.Label())
	}
}

func TestSliderStepCannotPassMax(t *testing.T) {
	t.Parallel()

	slider, err := gallery.NewSlider(gallery.SliderOptions{Min: 0, Max: 10, Step: 4, Initial: 0})
	require.NoError(t, err)

	slider.Set(9)
	assert.Equal(t, 8, slider.Value())
	slider.Set(10)
	assert.Equal(t, 10, slider.Value())
}

func TestSliderIncrementDecrement(t *testing.T) {
	t.Parallel()

	slider, err := gallery.NewSlider(gallery.SliderOptions{Min: 0, Max: 10, Step: 5, Initial: 5, Format: "Level %d"})
	require.NoError(t, err)

	slider.Increment()
	assert.Equal(t, 10, slider.Value())
	slider.Increment()
	assert.Equal(t, 10, slider.Value())
	slider.Decrement()
	slider.Decrement()
	slider.Decrement()
	assert.Equal(t, 0, slider.Value())
	assert.Equal(t, "Level 0", slider.Label())
	assert.InDelta(t, 0.0, slider.Fraction(), 1e-9)
}

func TestSliderFraction(t *testing.T) {
	t.Parallel()

	slider, err := gallery.NewSlider(gallery.SliderOptions{Min: 20, Max: 120, Step: 1, Initial: 95})
	require.NoError(t, err)
	assert.InDelta(t, 0.75, slider.Fraction(), 1e-9)
}

func TestSliderRejectsInvalidOptions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opts gallery.SliderOptions
	}{
		{name: "min equals max", opts: gallery.SliderOptions{Min: 5, Max: 5, Step: 1}},
		{name: "min above max", opts: gallery.SliderOptions{Min: 10, Max: 0, Step: 1}},
		{name: "zero step", opts: gallery.SliderOptions{Min: 0, Max: 10, Step: 0}},
		{name: "negative step", opts: gallery.SliderOptions{Min: 0, Max: 10, Step: -2}},
		{name: "format without verb", opts: gallery.SliderOptions{Min: 0, Max: 10, Step: 1, Format: "Volume"}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := gallery.NewSlider(tt.opts)
			require.ErrorIs(t, err, gallery.ErrInvalidRange)
		})
	}
}

func TestToggleLabels(t *testing.T) {
	t.Parallel()

	toggle := gallery.NewToggle(false, gallery.ToggleLabels{On: "Dark mode enabled", Off: "Enable dark mode"})
	assert.False(t, toggle.Checked())
	assert.Equal(t, "Enable dark mode", toggle.Label())

	toggle.Toggle()
	checked, label := toggle.Get()
	assert.True(t, checked)
	assert.Equal(t, "Dark mode enabled", label)

	toggle.Set(false)
	assert.Equal(t, "Enable dark mode", toggle.Label())
}

func TestToggleDefaultLabels(t *testing.T) {
	t.Parallel()

	toggle := gallery.NewToggle(true, gallery.ToggleLabels{})
	assert.Equal(t, "On", toggle.Label())
}

func TestBoundValueWithoutNormalizer(t *testing.T) {
	t.Parallel()

	bound := gallery.NewBoundValue("draft", func(s string) string { return "Status: " + s }, nil)
	bound.Set("published")

	value, label := bound.Get()
	assert.Equal(t, "published", value)
	assert.Equal(t, "Status: published", label)
}
