package gallery_test

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/showcase/internal/gallery"
	"github.com/alexisbeaulieu97/showcase/internal/gallery/gallerytest"
	"github.com/alexisbeaulieu97/showcase/internal/logger"
	apperrors "github.com/alexisbeaulieu97/showcase/pkg/errors"
)

var (
	npmItem  = gallery.CopyableItem{Index: 0, Payload: "npm create next-app@latest my-app", Label: "npm"}
	pnpmItem = gallery.CopyableItem{Index: 1, Payload: "pnpm create next-app@latest my-app", Label: "pnpm"}
	initItem = gallery.CopyableItem{Index: 10, Payload: "npx shadcn@latest init", Label: "Initialize shadcn/ui"}
)

type harness struct {
	ctrl      *gallery.CopyFeedbackController
	clipboard *gallerytest.Clipboard
	scheduler *gallerytest.Scheduler
	loop      *gallerytest.Loop
	results   []gallery.CopyResult
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	h := &harness{
		clipboard: gallerytest.NewClipboard(),
		scheduler: gallerytest.NewScheduler(),
		loop:      gallerytest.NewLoop(),
	}
	ctrl, err := gallery.NewCopyFeedbackController(
		[]gallery.CopyableItem{npmItem, pnpmItem, initItem},
		gallery.CopyOptions{
			Clipboard:  h.clipboard,
			Dispatcher: h.loop,
			Scheduler:  h.scheduler,
			OnResult:   func(r gallery.CopyResult) { h.results = append(h.results, r) },
		},
	)
	require.NoError(t, err)
	h.ctrl = ctrl
	t.Cleanup(ctrl.Close)
	return h
}

func TestCopySuccessShowsAcknowledgement(t *testing.T) {
	t.Parallel()
	h := newHarness(t)

	require.NoError(t, h.ctrl.RequestCopy(npmItem))
	_, active := h.ctrl.Active()
	assert.False(t, active, "acknowledgement waits for the clipboard")

	h.loop.RunNext(t)

	index, active := h.ctrl.Active()
	require.True(t, active)
	assert.Equal(t, 0, index)
	assert.Equal(t, "Copied!", h.ctrl.ButtonLabel(0))
	assert.Equal(t, "Copy", h.ctrl.ButtonLabel(1))
	assert.Equal(t, []string{npmItem.Payload}, h.clipboard.Writes())
	assert.Equal(t, 1, h.scheduler.Pending())
	require.Len(t, h.results, 1)
	assert.NoError(t, h.results[0].Err)
}

func TestAcknowledgementClearsAfterWindow(t *testing.T) {
	t.Parallel()
	h := newHarness(t)

	require.NoError(t, h.ctrl.RequestCopy(initItem))
	h.loop.RunNext(t)

	h.scheduler.Advance(1999 * time.Millisecond)
	assert.Zero(t, h.loop.Drain())
	assert.True(t, h.ctrl.IsActive(10))

	h.scheduler.Advance(time.Millisecond)
	h.loop.RunNext(t)
	_, active := h.ctrl.Active()
	assert.False(t, active)
	assert.Equal(t, "Copy", h.ctrl.ButtonLabel(10))
}

func TestSameIndexRestartsWindow(t *testing.T) {
	t.Parallel()
	h := newHarness(t)

	require.NoError(t, h.ctrl.RequestCopy(npmItem))
	h.loop.RunNext(t)

	h.scheduler.Advance(1500 * time.Millisecond)
	require.NoError(t, h.ctrl.RequestCopy(npmItem))
	assert.True(t, h.ctrl.IsActive(0), "same-index request keeps the acknowledgement")
	h.loop.RunNext(t)
	assert.Equal(t, 1, h.scheduler.Pending(), "old timer was stopped")

	// The first window would have ended here.
	h.scheduler.Advance(600 * time.Millisecond)
	assert.Zero(t, h.loop.Drain())
	assert.True(t, h.ctrl.IsActive(0))

	h.scheduler.Advance(1400 * time.Millisecond)
	h.loop.RunNext(t)
	assert.False(t, h.ctrl.IsActive(0))
}

func TestOtherIndexReplacesAcknowledgement(t *testing.T) {
	t.Parallel()
	h := newHarness(t)

	require.NoError(t, h.ctrl.RequestCopy(npmItem))
	h.loop.RunNext(t)

	require.NoError(t, h.ctrl.RequestCopy(pnpmItem))
	_, active := h.ctrl.Active()
	assert.False(t, active, "previous acknowledgement is dropped immediately")
	assert.Zero(t, h.scheduler.Pending())

	h.loop.RunNext(t)
	index, active := h.ctrl.Active()
	require.True(t, active)
	assert.Equal(t, 1, index)
}

func TestStaleCompletionIsDiscarded(t *testing.T) {
	t.Parallel()
	h := newHarness(t)

	release := h.clipboard.Hold(npmItem.Payload)
	require.NoError(t, h.ctrl.RequestCopy(npmItem))
	require.NoError(t, h.ctrl.RequestCopy(pnpmItem))

	h.loop.RunNext(t)
	index, active := h.ctrl.Active()
	require.True(t, active)
	assert.Equal(t, 1, index)

	release()
	h.loop.RunNext(t)

	index, active = h.ctrl.Active()
	require.True(t, active)
	assert.Equal(t, 1, index, "older write resolving late must not steal the acknowledgement")
	require.Len(t, h.results, 2)
	assert.True(t, h.results[1].Stale)
	assert.Equal(t, 0, h.results[1].Item.Index)
}

func TestClipboardFailureLeavesStateUntouched(t *testing.T) {
	t.Parallel()
	h := newHarness(t)

	require.NoError(t, h.ctrl.RequestCopy(initItem))
	h.loop.RunNext(t)

	h.clipboard.Fail(errors.New("no clipboard utility"))
	require.NoError(t, h.ctrl.RequestCopy(initItem))
	h.loop.RunNext(t)

	assert.True(t, h.ctrl.IsActive(10), "failed copy does not touch the existing acknowledgement")
	assert.Equal(t, 1, h.scheduler.Pending(), "no timer is scheduled on failure")

	err := h.ctrl.LastError()
	require.Error(t, err)
	assert.ErrorIs(t, err, gallery.ErrClipboardUnavailable)
	var copyErr *apperrors.CopyError
	require.ErrorAs(t, err, &copyErr)
	assert.Equal(t, 10, copyErr.Index)

	h.clipboard.Fail(nil)
	require.NoError(t, h.ctrl.RequestCopy(initItem))
	h.loop.RunNext(t)
	assert.NoError(t, h.ctrl.LastError())
}

func TestClipboardFailureOnFreshControllerShowsNothing(t *testing.T) {
	t.Parallel()
	h := newHarness(t)

	h.clipboard.Fail(errors.New("denied"))
	require.NoError(t, h.ctrl.RequestCopy(npmItem))
	h.loop.RunNext(t)

	_, active := h.ctrl.Active()
	assert.False(t, active)
	assert.Zero(t, h.scheduler.Pending())
	assert.Equal(t, "Copy", h.ctrl.ButtonLabel(0))
}

func TestUnknownItemIsRejected(t *testing.T) {
	t.Parallel()
	h := newHarness(t)

	err := h.ctrl.RequestCopy(gallery.CopyableItem{Index: 42, Payload: "rm -rf /"})
	require.ErrorIs(t, err, gallery.ErrUnknownItem)
	assert.Zero(t, h.loop.Drain())
}

func TestRequestCopyIndexUsesRegisteredPayload(t *testing.T) {
	t.Parallel()
	h := newHarness(t)

	require.NoError(t, h.ctrl.RequestCopyIndex(10))
	h.loop.RunNext(t)
	assert.Equal(t, []string{initItem.Payload}, h.clipboard.Writes())
}

func TestDuplicateIndexFailsConstruction(t *testing.T) {
	t.Parallel()

	_, err := gallery.NewCopyFeedbackController(
		[]gallery.CopyableItem{npmItem, {Index: 0, Payload: "yarn create next-app my-app"}},
		gallery.CopyOptions{Clipboard: gallerytest.NewClipboard(), Dispatcher: gallerytest.NewLoop()},
	)
	require.ErrorIs(t, err, gallery.ErrDuplicateIndex)
}

func TestConstructionRequiresCapabilities(t *testing.T) {
	t.Parallel()

	_, err := gallery.NewCopyFeedbackController(nil, gallery.CopyOptions{Dispatcher: gallerytest.NewLoop()})
	var validationErr *apperrors.ValidationError
	require.ErrorAs(t, err, &validationErr)

	_, err = gallery.NewCopyFeedbackController(nil, gallery.CopyOptions{Clipboard: gallerytest.NewClipboard()})
	require.ErrorAs(t, err, &validationErr)

	_, err = gallery.NewCopyFeedbackController(
		[]gallery.CopyableItem{{Index: 3}},
		gallery.CopyOptions{Clipboard: gallerytest.NewClipboard(), Dispatcher: gallerytest.NewLoop()},
	)
	require.ErrorAs(t, err, &validationErr)
}

func TestDefaultWindow(t *testing.T) {
	t.Parallel()

	ctrl, err := gallery.NewCopyFeedbackController(nil, gallery.CopyOptions{
		Clipboard:  gallerytest.NewClipboard(),
		Dispatcher: gallerytest.NewLoop(),
	})
	require.NoError(t, err)
	defer ctrl.Close()
	assert.Equal(t, gallery.DefaultAckWindow, ctrl.Window())
	assert.Empty(t, ctrl.Items())
}

func TestCloseStopsTimerAndIgnoresLateWork(t *testing.T) {
	t.Parallel()
	h := newHarness(t)

	require.NoError(t, h.ctrl.RequestCopy(npmItem))
	h.loop.RunNext(t)

	release := h.clipboard.Hold(pnpmItem.Payload)
	require.NoError(t, h.ctrl.RequestCopy(pnpmItem))

	h.ctrl.Close()
	h.ctrl.Close()
	release()

	_, active := h.ctrl.Active()
	assert.False(t, active)
	assert.Zero(t, h.scheduler.Pending())

	h.loop.RunNext(t)
	h.scheduler.Advance(5 * time.Second)
	h.loop.Drain()

	_, active = h.ctrl.Active()
	assert.False(t, active)
	assert.ErrorIs(t, h.ctrl.RequestCopy(npmItem), gallery.ErrClosed)
}

func TestStaleCompletionIsLogged(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := logger.New(logger.Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	clipboard := gallerytest.NewClipboard()
	loop := gallerytest.NewLoop()
	ctrl, err := gallery.NewCopyFeedbackController([]gallery.CopyableItem{npmItem, pnpmItem}, gallery.CopyOptions{
		Clipboard:  clipboard,
		Dispatcher: loop,
		Scheduler:  gallerytest.NewScheduler(),
		Logger:     log,
	})
	require.NoError(t, err)
	defer ctrl.Close()

	release := clipboard.Hold(npmItem.Payload)
	require.NoError(t, ctrl.RequestCopy(npmItem))
	require.NoError(t, ctrl.RequestCopy(pnpmItem))
	loop.RunNext(t)
	release()
	loop.RunNext(t)

	assert.Contains(t, buf.String(), "discarding stale copy completion")
	assert.Contains(t, buf.String(), `"component":"copy_feedback"`)
}

func TestItemsPreserveRegistrationOrder(t *testing.T) {
	t.Parallel()
	h := newHarness(t)

	items := h.ctrl.Items()
	require.Len(t, items, 3)
	assert.Equal(t, []int{0, 1, 10}, []int{items[0].Index, items[1].Index, items[2].Index})
}
