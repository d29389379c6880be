package site

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// loopMsg carries a function that must run on the Update goroutine.
type loopMsg struct {
	run func()
}

// eventLoop marshals timer callbacks, clipboard completions and file change
// notifications onto the bubbletea Update goroutine. Producers block until
// the program takes the message or the loop stops.
type eventLoop struct {
	ch   chan tea.Msg
	done chan struct{}
	once sync.Once
}

func newEventLoop() *eventLoop {
	return &eventLoop{
		ch:   make(chan tea.Msg, 16),
		done: make(chan struct{}),
	}
}

// Dispatch implements gallery.Dispatcher.
func (l *eventLoop) Dispatch(fn func()) {
	l.send(loopMsg{run: fn})
}

func (l *eventLoop) send(msg tea.Msg) {
	select {
	case l.ch <- msg:
	case <-l.done:
	}
}

// wait returns a command that delivers the next queued message. Update must
// issue it again after handling each one.
func (l *eventLoop) wait() tea.Cmd {
	return func() tea.Msg {
		select {
		case msg := <-l.ch:
			return msg
		case <-l.done:
			return nil
		}
	}
}

func (l *eventLoop) stop() {
	l.once.Do(func() { close(l.done) })
}
