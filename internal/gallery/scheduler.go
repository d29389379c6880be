package gallery

import (
	"context"
	"time"
)

// Clipboard writes text to whatever clipboard the host offers.
type Clipboard interface {
	WriteText(ctx context.Context, text string) error
}

// ClipboardFunc adapts a function to Clipboard.
type ClipboardFunc func(ctx context.Context, text string) error

// WriteText implements Clipboard.
func (f ClipboardFunc) WriteText(ctx context.Context, text string) error {
	return f(ctx, text)
}

// Timer is a cancellable scheduled callback.
type Timer interface {
	// Stop prevents the callback from firing. It reports false when the timer
	// already fired or was stopped.
	Stop() bool
}

// Scheduler runs fn once after d elapses.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Timer
}

// SystemScheduler schedules on the wall clock.
type SystemScheduler struct{}

// AfterFunc implements Scheduler using time.AfterFunc.
func (SystemScheduler) AfterFunc(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, fn)
}

// Dispatcher hands a function to the goroutine that owns widget state. Timer
// callbacks and clipboard completions never touch a controller directly; they
// are dispatched.
type Dispatcher interface {
	Dispatch(fn func())
}

// DispatcherFunc adapts a function to Dispatcher.
type DispatcherFunc func(fn func())

// Dispatch implements Dispatcher.
func (f DispatcherFunc) Dispatch(fn func()) {
	f(fn)
}
