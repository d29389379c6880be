// Package gallerytest provides deterministic stand-ins for the host
// capabilities the gallery controllers depend on.
package gallerytest

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/alexisbeaulieu97/showcase/internal/gallery"
)

// Scheduler is a manual clock. Timers fire only when Advance moves time past
// their deadline.
type Scheduler struct {
	mu     sync.Mutex
	now    time.Duration
	timers []*fakeTimer
}

type fakeTimer struct {
	s       *Scheduler
	at      time.Duration
	fn      func()
	stopped bool
	fired   bool
}

// NewScheduler returns a scheduler at time zero.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// AfterFunc implements gallery.Scheduler.
func (s *Scheduler) AfterFunc(d time.Duration, fn func()) gallery.Timer {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := &fakeTimer{s: s, at: s.now + d, fn: fn}
	s.timers = append(s.timers, t)
	return t
}

// Stop implements gallery.Timer.
func (t *fakeTimer) Stop() bool {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()

	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

// Advance moves the clock forward and runs every due callback in deadline
// order on the calling goroutine.
func (s *Scheduler) Advance(d time.Duration) {
	s.mu.Lock()
	s.now += d
	var due []*fakeTimer
	remaining := s.timers[:0]
	for _, t := range s.timers {
		switch {
		case t.stopped:
		case t.at <= s.now:
			t.fired = true
			due = append(due, t)
		default:
			remaining = append(remaining, t)
		}
	}
	s.timers = remaining
	s.mu.Unlock()

	sort.SliceStable(due, func(i, j int) bool { return due[i].at < due[j].at })
	for _, t := range due {
		t.fn()
	}
}

// Pending counts timers that have neither fired nor been stopped.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, t := range s.timers {
		if !t.stopped && !t.fired {
			n++
		}
	}
	return n
}

// Clipboard records writes. Writes can be made to fail or held until released.
type Clipboard struct {
	mu     sync.Mutex
	err    error
	holds  map[string]chan struct{}
	writes []string
}

// NewClipboard returns a clipboard that accepts every write.
func NewClipboard() *Clipboard {
	return &Clipboard{holds: make(map[string]chan struct{})}
}

// Fail makes subsequent writes return err. Pass nil to succeed again.
func (c *Clipboard) Fail(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.err = err
}

// Hold blocks writes of text until the returned release func is called.
func (c *Clipboard) Hold(text string) (release func()) {
	gate := make(chan struct{})
	c.mu.Lock()
	c.holds[text] = gate
	c.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { close(gate) })
	}
}

// WriteText implements gallery.Clipboard.
func (c *Clipboard) WriteText(ctx context.Context, text string) error {
	c.mu.Lock()
	gate := c.holds[text]
	c.mu.Unlock()

	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return c.err
	}
	c.writes = append(c.writes, text)
	return nil
}

// Writes returns the successfully written texts in completion order.
func (c *Clipboard) Writes() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, len(c.writes))
	copy(out, c.writes)
	return out
}

// Loop is a single-goroutine dispatcher driven explicitly by the test.
type Loop struct {
	queue chan func()
}

// NewLoop returns an empty loop.
func NewLoop() *Loop {
	return &Loop{queue: make(chan func(), 64)}
}

// Dispatch implements gallery.Dispatcher.
func (l *Loop) Dispatch(fn func()) {
	l.queue <- fn
}

// RunNext waits for the next dispatched function and runs it.
func (l *Loop) RunNext(t testing.TB) {
	t.Helper()
	select {
	case fn := <-l.queue:
		fn()
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for dispatched work")
	}
}

// Drain runs everything already queued and returns how many functions ran.
func (l *Loop) Drain() int {
	n := 0
	for {
		select {
		case fn := <-l.queue:
			fn()
			n++
		default:
			return n
		}
	}
}
