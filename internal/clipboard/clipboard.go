// Package clipboard writes text to the host clipboard. The system clipboard
// is tried first; terminals reached over SSH or without a clipboard utility
// fall back to an OSC 52 escape sequence.
package clipboard

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/aymanbagabas/go-osc52/v2"

	"github.com/alexisbeaulieu97/showcase/internal/gallery"
	"github.com/alexisbeaulieu97/showcase/internal/logger"
)

// Mode selects which mechanisms a System clipboard may use.
type Mode string

const (
	// ModeAuto tries the system clipboard and falls back to OSC 52.
	ModeAuto Mode = "auto"
	// ModeSystem only uses the system clipboard.
	ModeSystem Mode = "system"
	// ModeOSC52 only writes the escape sequence.
	ModeOSC52 Mode = "osc52"
)

// ParseMode validates a mode name. An empty name is auto.
func ParseMode(name string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(name))); m {
	case "":
		return ModeAuto, nil
	case ModeAuto, ModeSystem, ModeOSC52:
		return m, nil
	default:
		return "", fmt.Errorf("unknown clipboard mode %q (want auto, system or osc52)", name)
	}
}

// Options configures a System clipboard.
type Options struct {
	Mode Mode
	// Terminal receives OSC 52 sequences. Defaults to os.Stdout.
	Terminal io.Writer
	Logger   *logger.Logger
}

// System implements gallery.Clipboard on top of the host clipboard.
type System struct {
	mode     Mode
	terminal io.Writer
	log      *logger.Logger

	writeAll    func(string) error
	unsupported bool
	getenv      func(string) string
}

var _ gallery.Clipboard = (*System)(nil)

// New creates a System clipboard.
func New(opts Options) *System {
	mode := opts.Mode
	if mode == "" {
		mode = ModeAuto
	}
	terminal := opts.Terminal
	if terminal == nil {
		terminal = os.Stdout
	}
	log := opts.Logger
	if log == nil {
		log = logger.Discard()
	}
	return &System{
		mode:        mode,
		terminal:    terminal,
		log:         log.WithComponent("clipboard"),
		writeAll:    clipboard.WriteAll,
		unsupported: clipboard.Unsupported,
		getenv:      os.Getenv,
	}
}

// WriteText copies text. Every failure wraps gallery.ErrClipboardUnavailable.
func (s *System) WriteText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", gallery.ErrClipboardUnavailable, err)
	}

	var systemErr error
	if s.mode != ModeOSC52 {
		systemErr = s.writeSystem(ctx, text)
		if systemErr == nil {
			return nil
		}
		if s.mode == ModeSystem || errors.Is(systemErr, context.Canceled) || errors.Is(systemErr, context.DeadlineExceeded) {
			return fmt.Errorf("%w: %w", gallery.ErrClipboardUnavailable, systemErr)
		}
		s.log.WithFields(map[string]any{"reason": systemErr.Error()}).Debug("system clipboard failed, falling back to osc52")
	}

	if err := s.writeOSC52(text); err != nil {
		if systemErr != nil {
			err = errors.Join(systemErr, err)
		}
		return fmt.Errorf("%w: %w", gallery.ErrClipboardUnavailable, err)
	}
	return nil
}

// writeSystem runs the clipboard utility off the caller's goroutine so a
// hung xclip cannot outlive ctx.
func (s *System) writeSystem(ctx context.Context, text string) error {
	if s.unsupported {
		return errors.New("no system clipboard utility found")
	}
	done := make(chan error, 1)
	go func() {
		done <- s.writeAll(text)
	}()
	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *System) writeOSC52(text string) error {
	seq := osc52.New(text)
	term := s.getenv("TERM")
	switch {
	case s.getenv("TMUX") != "" || strings.HasPrefix(term, "tmux"):
		seq = seq.Tmux()
	case strings.HasPrefix(term, "screen"):
		seq = seq.Screen()
	}
	if _, err := seq.WriteTo(s.terminal); err != nil {
		return fmt.Errorf("write osc52 sequence: %w", err)
	}
	return nil
}
