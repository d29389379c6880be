package gallery

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexisbeaulieu97/showcase/internal/logger"
	apperrors "github.com/alexisbeaulieu97/showcase/pkg/errors"
)

// DefaultAckWindow is how long a "Copied!" acknowledgement stays visible.
const DefaultAckWindow = 2 * time.Second

const (
	labelCopy   = "Copy"
	labelCopied = "Copied!"
)

// CopyableItem is a payload the user can put on the clipboard.
type CopyableItem struct {
	Index   int
	Payload string
	Label   string
}

// CopyResult describes one finished clipboard write.
type CopyResult struct {
	Item CopyableItem
	Err  error
	// Stale is set when a newer request was issued before this one resolved.
	// Stale results never change controller state.
	Stale bool
}

// CopyOptions configures a CopyFeedbackController.
type CopyOptions struct {
	Clipboard  Clipboard
	Dispatcher Dispatcher
	Scheduler  Scheduler
	Window     time.Duration
	Logger     *logger.Logger
	OnResult   func(CopyResult)
}

type resetTimer struct {
	timer Timer
}

// CopyFeedbackController tracks which copyable item shows a "Copied!"
// acknowledgement. All methods must be called from the dispatcher's goroutine.
type CopyFeedbackController struct {
	items      map[int]CopyableItem
	order      []CopyableItem
	clipboard  Clipboard
	dispatcher Dispatcher
	scheduler  Scheduler
	window     time.Duration
	log        *logger.Logger
	onResult   func(CopyResult)

	ctx    context.Context
	cancel context.CancelFunc

	seq       uint64
	active    int
	hasActive bool
	pending   *resetTimer
	lastErr   error
	closed    bool
}

// NewCopyFeedbackController registers items and returns a controller with no
// active acknowledgement.
func NewCopyFeedbackController(items []CopyableItem, opts CopyOptions) (*CopyFeedbackController, error) {
	if opts.Clipboard == nil {
		return nil, apperrors.NewValidationError("clipboard", "clipboard capability is required", nil)
	}
	if opts.Dispatcher == nil {
		return nil, apperrors.NewValidationError("dispatcher", "dispatcher is required", nil)
	}

	registered := make(map[int]CopyableItem, len(items))
	order := make([]CopyableItem, 0, len(items))
	for _, item := range items {
		if _, dup := registered[item.Index]; dup {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateIndex, item.Index)
		}
		if item.Payload == "" {
			return nil, apperrors.NewValidationError(fmt.Sprintf("items[%d]", item.Index), "payload must not be empty", nil)
		}
		registered[item.Index] = item
		order = append(order, item)
	}

	scheduler := opts.Scheduler
	if scheduler == nil {
		scheduler = SystemScheduler{}
	}
	window := opts.Window
	if window <= 0 {
		window = DefaultAckWindow
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &CopyFeedbackController{
		items:      registered,
		order:      order,
		clipboard:  opts.Clipboard,
		dispatcher: opts.Dispatcher,
		scheduler:  scheduler,
		window:     window,
		log:        opts.Logger.WithComponent("copy_feedback"),
		onResult:   opts.OnResult,
		ctx:        ctx,
		cancel:     cancel,
	}, nil
}

// RequestCopy starts writing item's payload to the clipboard. The outcome is
// applied later on the dispatcher's goroutine.
func (c *CopyFeedbackController) RequestCopy(item CopyableItem) error {
	if c.closed {
		return ErrClosed
	}
	registered, ok := c.items[item.Index]
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownItem, item.Index)
	}

	c.seq++
	seq := c.seq

	// Another item's acknowledgement no longer describes the clipboard.
	if c.hasActive && c.active != registered.Index {
		c.stopPending()
		c.hasActive = false
	}

	ctx, clipboard, dispatcher := c.ctx, c.clipboard, c.dispatcher
	go func() {
		err := clipboard.WriteText(ctx, registered.Payload)
		dispatcher.Dispatch(func() {
			c.complete(seq, registered, err)
		})
	}()

	c.log.WithFields(map[string]any{"index": registered.Index, "seq": seq}).Debug("copy requested")
	return nil
}

// RequestCopyIndex is RequestCopy for a registered index.
func (c *CopyFeedbackController) RequestCopyIndex(index int) error {
	return c.RequestCopy(CopyableItem{Index: index})
}

func (c *CopyFeedbackController) complete(seq uint64, item CopyableItem, err error) {
	if c.closed {
		return
	}

	fields := map[string]any{"index": item.Index, "seq": seq}
	if seq != c.seq {
		c.log.WithFields(fields).Debug("discarding stale copy completion")
		c.notify(CopyResult{Item: item, Err: err, Stale: true})
		return
	}

	if err != nil {
		if !errors.Is(err, ErrClipboardUnavailable) {
			err = fmt.Errorf("%w: %w", ErrClipboardUnavailable, err)
		}
		copyErr := apperrors.NewCopyError(item.Index, err)
		c.lastErr = copyErr
		c.log.WithFields(fields).Error(copyErr, "clipboard write failed")
		c.notify(CopyResult{Item: item, Err: copyErr})
		return
	}

	c.lastErr = nil
	c.stopPending()
	c.active = item.Index
	c.hasActive = true

	rt := &resetTimer{}
	dispatcher := c.dispatcher
	rt.timer = c.scheduler.AfterFunc(c.window, func() {
		dispatcher.Dispatch(func() {
			c.expire(rt)
		})
	})
	c.pending = rt

	c.log.WithFields(fields).Debug("copy acknowledged")
	c.notify(CopyResult{Item: item})
}

func (c *CopyFeedbackController) expire(rt *resetTimer) {
	if c.closed || c.pending != rt {
		return
	}
	c.pending = nil
	c.hasActive = false
}

func (c *CopyFeedbackController) stopPending() {
	if c.pending == nil {
		return
	}
	if c.pending.timer != nil {
		c.pending.timer.Stop()
	}
	c.pending = nil
}

func (c *CopyFeedbackController) notify(result CopyResult) {
	if c.onResult != nil {
		c.onResult(result)
	}
}

// Close stops the reset timer and clears the acknowledgement. Completions and
// expiries that arrive afterwards are ignored. Close is idempotent.
func (c *CopyFeedbackController) Close() {
	if c.closed {
		return
	}
	c.closed = true
	c.stopPending()
	c.hasActive = false
	c.cancel()
}

// Active returns the acknowledged index, if any.
func (c *CopyFeedbackController) Active() (int, bool) {
	return c.active, c.hasActive
}

// IsActive reports whether index currently shows an acknowledgement.
func (c *CopyFeedbackController) IsActive(index int) bool {
	return c.hasActive && c.active == index
}

// ButtonLabel is the copy button text for index.
func (c *CopyFeedbackController) ButtonLabel(index int) string {
	if c.IsActive(index) {
		return labelCopied
	}
	return labelCopy
}

// LastError returns the most recent clipboard failure, cleared by the next
// successful copy.
func (c *CopyFeedbackController) LastError() error {
	return c.lastErr
}

// Items returns the registered items in registration order.
func (c *CopyFeedbackController) Items() []CopyableItem {
	out := make([]CopyableItem, len(c.order))
	copy(out, c.order)
	return out
}

// Window returns the acknowledgement duration.
func (c *CopyFeedbackController) Window() time.Duration {
	return c.window
}
