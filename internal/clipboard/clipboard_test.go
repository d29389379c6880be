package clipboard

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/showcase/internal/gallery"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("tty closed") }

func newTestSystem(mode Mode, term *bytes.Buffer, env map[string]string) (*System, *[]string) {
	var writes []string
	s := New(Options{Mode: mode, Terminal: term})
	s.unsupported = false
	s.writeAll = func(text string) error {
		writes = append(writes, text)
		return nil
	}
	s.getenv = func(key string) string { return env[key] }
	return s, &writes
}

func TestWriteTextUsesSystemClipboard(t *testing.T) {
	var term bytes.Buffer
	s, writes := newTestSystem(ModeAuto, &term, nil)

	require.NoError(t, s.WriteText(context.Background(), "npm install"))
	assert.Equal(t, []string{"npm install"}, *writes)
	assert.Zero(t, term.Len())
}

func TestWriteTextFallsBackToOSC52(t *testing.T) {
	var term bytes.Buffer
	s, _ := newTestSystem(ModeAuto, &term, nil)
	s.writeAll = func(string) error { return errors.New("exec: xclip not found") }

	require.NoError(t, s.WriteText(context.Background(), "bun add"))
	encoded := base64.StdEncoding.EncodeToString([]byte("bun add"))
	assert.Contains(t, term.String(), "\x1b]52;c;"+encoded)
}

func TestWriteTextUnsupportedGoesStraightToOSC52(t *testing.T) {
	var term bytes.Buffer
	s, writes := newTestSystem(ModeAuto, &term, nil)
	s.unsupported = true

	require.NoError(t, s.WriteText(context.Background(), "yarn add"))
	assert.Empty(t, *writes)
	assert.NotZero(t, term.Len())
}

func TestWriteTextOSC52ModeSkipsSystem(t *testing.T) {
	var term bytes.Buffer
	s, writes := newTestSystem(ModeOSC52, &term, nil)

	require.NoError(t, s.WriteText(context.Background(), "pnpm add"))
	assert.Empty(t, *writes)
	assert.Contains(t, term.String(), "]52;")
}

func TestWriteTextWrapsForTmux(t *testing.T) {
	var term bytes.Buffer
	s, _ := newTestSystem(ModeOSC52, &term, map[string]string{"TMUX": "/tmp/tmux-1000/default"})

	require.NoError(t, s.WriteText(context.Background(), "x"))
	assert.Contains(t, term.String(), "\x1bPtmux;")
}

func TestWriteTextSystemModeDoesNotFallBack(t *testing.T) {
	var term bytes.Buffer
	s, _ := newTestSystem(ModeSystem, &term, nil)
	s.writeAll = func(string) error { return errors.New("no display") }

	err := s.WriteText(context.Background(), "x")
	require.Error(t, err)
	assert.ErrorIs(t, err, gallery.ErrClipboardUnavailable)
	assert.Contains(t, err.Error(), "no display")
	assert.Zero(t, term.Len())
}

func TestWriteTextBothMechanismsFail(t *testing.T) {
	s := New(Options{Terminal: failingWriter{}})
	s.unsupported = false
	s.writeAll = func(string) error { return errors.New("no display") }
	s.getenv = func(string) string { return "" }

	err := s.WriteText(context.Background(), "x")
	require.Error(t, err)
	assert.ErrorIs(t, err, gallery.ErrClipboardUnavailable)
	assert.Contains(t, err.Error(), "no display")
	assert.Contains(t, err.Error(), "tty closed")
}

func TestWriteTextHonoursContext(t *testing.T) {
	var term bytes.Buffer
	s, _ := newTestSystem(ModeAuto, &term, nil)
	block := make(chan struct{})
	defer close(block)
	s.writeAll = func(string) error {
		<-block
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := s.WriteText(ctx, "x")
	require.Error(t, err)
	assert.ErrorIs(t, err, gallery.ErrClipboardUnavailable)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Zero(t, term.Len())
}

func TestWriteTextCancelledBeforeStart(t *testing.T) {
	s, writes := newTestSystem(ModeAuto, &bytes.Buffer{}, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := s.WriteText(ctx, "x")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, *writes)
}

func TestParseMode(t *testing.T) {
	for in, want := range map[string]Mode{"": ModeAuto, "AUTO": ModeAuto, "system": ModeSystem, " osc52 ": ModeOSC52} {
		got, err := ParseMode(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseMode("pbcopy")
	assert.Error(t, err)
}
