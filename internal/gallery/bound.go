package gallery

import (
	"fmt"
	"strings"
)

type snapshot[T any] struct {
	value T
	label string
}

// BoundValue keeps a control's value and its display label together. Both are
// replaced in one assignment so readers never see a label for another value.
type BoundValue[T any] struct {
	snap      snapshot[T]
	normalize func(T) T
	format    func(T) string
}

// NewBoundValue creates a bound value. normalize may be nil.
func NewBoundValue[T any](initial T, format func(T) string, normalize func(T) T) *BoundValue[T] {
	if format == nil {
		format = func(v T) string { return fmt.Sprint(v) }
	}
	b := &BoundValue[T]{normalize: normalize, format: format}
	b.Set(initial)
	return b
}

// Set stores v (after normalisation) and recomputes the label.
func (b *BoundValue[T]) Set(v T) {
	if b.normalize != nil {
		v = b.normalize(v)
	}
	b.snap = snapshot[T]{value: v, label: b.format(v)}
}

// Get returns the value and the label derived from it.
func (b *BoundValue[T]) Get() (T, string) {
	s := b.snap
	return s.value, s.label
}

func (b *BoundValue[T]) Value() T {
	return b.snap.value
}

func (b *BoundValue[T]) Label() string {
	return b.snap.label
}

// DefaultSliderFormat renders the showcase volume label.
const DefaultSliderFormat = "Volume: %d"

// SliderOptions describes an integer range control.
type SliderOptions struct {
	Min     int
	Max     int
	Step    int
	Initial int
	Format  string
}

// Slider is an integer BoundValue constrained to a stepped range.
type Slider struct {
	*BoundValue[int]
	opts SliderOptions
}

// NewSlider validates opts and returns a slider holding the clamped initial value.
func NewSlider(opts SliderOptions) (*Slider, error) {
	if opts.Min >= opts.Max {
		return nil, fmt.Errorf("%w: min %d must be below max %d", ErrInvalidRange, opts.Min, opts.Max)
	}
	if opts.Step <= 0 {
		return nil, fmt.Errorf("%w: step %d must be positive", ErrInvalidRange, opts.Step)
	}
	if opts.Format == "" {
		opts.Format = DefaultSliderFormat
	}
	if !strings.Contains(opts.Format, "%d") {
		return nil, fmt.Errorf("%w: label format %q has no %%d verb", ErrInvalidRange, opts.Format)
	}

	s := &Slider{opts: opts}
	s.BoundValue = NewBoundValue(opts.Initial, func(v int) string {
		return fmt.Sprintf(opts.Format, v)
	}, s.Clamp)
	return s, nil
}

// Clamp maps v onto the nearest reachable slider value. Ties snap upward.
func (s *Slider) Clamp(v int) int {
	o := s.opts
	if v <= o.Min {
		return o.Min
	}
	if v >= o.Max {
		return o.Max
	}
	snapped := o.Min + ((v-o.Min)+o.Step/2)/o.Step*o.Step
	if snapped > o.Max {
		return o.Max
	}
	return snapped
}

// Increment moves one step up.
func (s *Slider) Increment() {
	s.Set(s.Value() + s.opts.Step)
}

// Decrement moves one step down.
func (s *Slider) Decrement() {
	s.Set(s.Value() - s.opts.Step)
}

// Fraction is the value's position in the range, from 0 to 1.
func (s *Slider) Fraction() float64 {
	return float64(s.Value()-s.opts.Min) / float64(s.opts.Max-s.opts.Min)
}

// Options returns the validated slider options.
func (s *Slider) Options() SliderOptions {
	return s.opts
}

// ToggleLabels are the switch captions for each state.
type ToggleLabels struct {
	On  string
	Off string
}

// Toggle is a boolean BoundValue.
type Toggle struct {
	*BoundValue[bool]
}

// NewToggle creates a switch. Empty labels fall back to "On" and "Off".
func NewToggle(initial bool, labels ToggleLabels) *Toggle {
	if labels.On == "" {
		labels.On = "On"
	}
	if labels.Off == "" {
		labels.Off = "Off"
	}
	return &Toggle{BoundValue: NewBoundValue(initial, func(v bool) string {
		if v {
			return labels.On
		}
		return labels.Off
	}, nil)}
}

// Toggle flips the switch.
func (t *Toggle) Toggle() {
	t.Set(!t.Value())
}

// Checked reports whether the switch is on.
func (t *Toggle) Checked() bool {
	return t.Value()
}
