package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type logEntry map[string]any

func TestLoggerInfoWithFields(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", HumanReadable: false, Writer: buf, SessionID: "session-1"})
	require.NoError(t, err)

	log = log.WithFields(map[string]any{"widget": "quick_start", "section": "install"})
	log.Info("section selected")

	var entry logEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "section selected", entry["message"])
	require.Equal(t, "quick_start", entry["widget"])
	require.Equal(t, "install", entry["section"])
	require.Equal(t, "session-1", entry["session_id"])
	require.Equal(t, "info", entry["level"])
}

func TestLoggerGeneratesSessionID(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Writer: buf})
	require.NoError(t, err)

	log.Info("started")

	var entry logEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	id, ok := entry["session_id"].(string)
	require.True(t, ok)
	require.Len(t, id, 36)
}

func TestLoggerDebugRespectsLevel(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", HumanReadable: false, Writer: buf})
	require.NoError(t, err)

	log.Debug("this should not appear")
	require.Equal(t, "", strings.TrimSpace(buf.String()))
}

func TestLoggerErrorIncludesContext(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", HumanReadable: false, Writer: buf})
	require.NoError(t, err)

	log = log.WithComponent("copy_feedback")
	log.Error(errors.New("boom"), "clipboard write failed")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry logEntry
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	require.Equal(t, "clipboard write failed", entry["message"])
	require.Equal(t, "copy_feedback", entry["component"])
	require.Equal(t, "boom", entry["error"])
}

func TestLoggerRejectsUnknownLevel(t *testing.T) {
	t.Parallel()

	_, err := New(Options{Level: "loud"})
	require.Error(t, err)
}

func TestNilAndDiscardLoggersAreSafe(t *testing.T) {
	t.Parallel()

	var nilLogger *Logger
	require.Nil(t, nilLogger.WithFields(map[string]any{"a": 1}))
	require.NotPanics(t, func() {
		nilLogger.Info("x")
		nilLogger.Debug("x")
		nilLogger.Warn("x")
		nilLogger.Error(errors.New("x"), "x")
	})

	discard := Discard()
	require.NotPanics(t, func() {
		discard.WithComponent("site").Warn("dropped")
	})
}

func TestOpenFileAppendsJSON(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "showcase.log")
	for _, msg := range []string{"first", "second"} {
		log, closer, err := OpenFile(path, Options{Level: "debug", HumanReadable: true})
		require.NoError(t, err)
		log.Debug(msg)
		require.NoError(t, closer.Close())
	}

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)

	var entry logEntry
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &entry))
	require.Equal(t, "second", entry["message"])
}

func TestOpenFileRejectsBadPath(t *testing.T) {
	t.Parallel()

	_, _, err := OpenFile(filepath.Join(t.TempDir(), "missing", "showcase.log"), Options{})
	require.Error(t, err)
}
