package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/showcase/internal/gallery/gallerytest"
)

type recorder struct {
	mu     sync.Mutex
	events []ChangeEvent
}

func (r *recorder) record(e ChangeEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *recorder) snapshot() []ChangeEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]ChangeEvent(nil), r.events...)
}

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func newFakeWatcher(t *testing.T) (*Watcher, *gallerytest.Scheduler, *recorder) {
	t.Helper()
	path := writeFile(t, t.TempDir(), "content.yaml", "hero: {}\n")
	sched := gallerytest.NewScheduler()
	rec := &recorder{}
	w, err := New(Options{Path: path, Delay: 100 * time.Millisecond, Scheduler: sched}, rec.record)
	require.NoError(t, err)
	return w, sched, rec
}

func TestEventTypeString(t *testing.T) {
	assert.Equal(t, "modified", EventTypeModified.String())
	assert.Equal(t, "created", EventTypeCreated.String())
	assert.Equal(t, "removed", EventTypeRemoved.String())
}

func TestNewValidatesOptions(t *testing.T) {
	_, err := New(Options{}, func(ChangeEvent) {})
	assert.Error(t, err)

	_, err = New(Options{Path: filepath.Join(t.TempDir(), "missing.yaml")}, func(ChangeEvent) {})
	assert.Error(t, err)

	path := writeFile(t, t.TempDir(), "c.yaml", "")
	_, err = New(Options{Path: path}, nil)
	assert.Error(t, err)

	w, err := New(Options{Path: path}, func(ChangeEvent) {})
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(w.Path()))
	assert.Equal(t, DefaultDelay, w.delay)
}

func TestDebounceCoalescesBurst(t *testing.T) {
	w, sched, rec := newFakeWatcher(t)

	for i := 0; i < 3; i++ {
		w.handle(fsnotify.Event{Name: w.Path(), Op: fsnotify.Write})
		sched.Advance(50 * time.Millisecond)
	}
	assert.Empty(t, rec.snapshot())

	sched.Advance(100 * time.Millisecond)
	events := rec.snapshot()
	require.Len(t, events, 1)
	assert.Equal(t, EventTypeModified, events[0].Type)
	assert.Equal(t, 3, events[0].Count)
	assert.Equal(t, w.Path(), events[0].Path)
}

func TestIgnoresOtherFilesAndChmod(t *testing.T) {
	w, sched, rec := newFakeWatcher(t)

	w.handle(fsnotify.Event{Name: filepath.Join(filepath.Dir(w.Path()), "other.yaml"), Op: fsnotify.Write})
	w.handle(fsnotify.Event{Name: w.Path(), Op: fsnotify.Chmod})
	sched.Advance(time.Second)

	assert.Empty(t, rec.snapshot())
	assert.Zero(t, sched.Pending())
}

func TestLastEventTypeWins(t *testing.T) {
	w, sched, rec := newFakeWatcher(t)

	w.handle(fsnotify.Event{Name: w.Path(), Op: fsnotify.Rename})
	w.handle(fsnotify.Event{Name: w.Path(), Op: fsnotify.Create})
	sched.Advance(100 * time.Millisecond)

	events := rec.snapshot()
	require.Len(t, events, 1)
	assert.Equal(t, EventTypeCreated, events[0].Type)
}

func TestSeparateBurstsReportSeparately(t *testing.T) {
	w, sched, rec := newFakeWatcher(t)

	w.handle(fsnotify.Event{Name: w.Path(), Op: fsnotify.Write})
	sched.Advance(100 * time.Millisecond)
	w.handle(fsnotify.Event{Name: w.Path(), Op: fsnotify.Remove})
	sched.Advance(100 * time.Millisecond)

	events := rec.snapshot()
	require.Len(t, events, 2)
	assert.Equal(t, 1, events[0].Count)
	assert.Equal(t, EventTypeRemoved, events[1].Type)
}

func TestCloseDropsPending(t *testing.T) {
	w, sched, rec := newFakeWatcher(t)

	w.handle(fsnotify.Event{Name: w.Path(), Op: fsnotify.Write})
	require.NoError(t, w.Close())
	require.NoError(t, w.Close())
	sched.Advance(time.Second)
	w.handle(fsnotify.Event{Name: w.Path(), Op: fsnotify.Write})
	sched.Advance(time.Second)

	assert.Empty(t, rec.snapshot())
}

func TestWatcherSeesRealWrites(t *testing.T) {
	path := writeFile(t, t.TempDir(), "content.yaml", "a: 1\n")
	rec := &recorder{}
	w, err := New(Options{Path: path, Delay: 20 * time.Millisecond}, rec.record)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, w.Start(ctx))
	defer w.Close()

	require.NoError(t, os.WriteFile(path, []byte("a: 2\n"), 0o644))

	assert.Eventually(t, func() bool {
		return len(rec.snapshot()) > 0
	}, 2*time.Second, 10*time.Millisecond)
}
