package telemetry

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Mock handler to inspect log records
type mockHandler struct {
	mu       sync.Mutex
	records  []slog.Record
	attrs    []slog.Attr
	group    string
	enabled  bool
	handleFn func(slog.Record) error // Optional custom handle logic
}

func (h *mockHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.enabled
}

func (h *mockHandler) Handle(ctx context.Context, record slog.Record) error {
	if h.handleFn != nil {
		return h.handleFn(record)
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.records = append(h.records, record)
	return nil
}

func (h *mockHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	h.mu.Lock()
	defer h.mu.Unlock()
	newHandler := &mockHandler{enabled: h.enabled, group: h.group, handleFn: h.handleFn}
	newHandler.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)
	return newHandler
}

func (h *mockHandler) WithGroup(name string) slog.Handler {
	h.mu.Lock()
	defer h.mu.Unlock()
	newHandler := &mockHandler{enabled: h.enabled, attrs: h.attrs, handleFn: h.handleFn}
	if h.group == "" {
		newHandler.group = name
	} else {
		newHandler.group = h.group + "." + name
	}
	return newHandler
}

func (h *mockHandler) getRecords() []slog.Record {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.records
}

func TestMultiHandler(t *testing.T) {
	h1 := &mockHandler{enabled: true}
	h2 := &mockHandler{enabled: true}

	multi := &multiHandler{handlers: []slog.Handler{h1, h2}}

	t.Run("Enabled", func(t *testing.T) {
		assert.True(t, multi.Enabled(context.Background(), slog.LevelInfo))

		h1.enabled = false
		h2.enabled = false
		assert.False(t, multi.Enabled(context.Background(), slog.LevelInfo))
		h1.enabled = true
		h2.enabled = true
	})

	t.Run("Handle", func(t *testing.T) {
		record := slog.NewRecord(time.Now(), slog.LevelInfo, "test message", 0)
		err := multi.Handle(context.Background(), record)
		assert.NoError(t, err)
		assert.Len(t, h1.getRecords(), 1)
		assert.Len(t, h2.getRecords(), 1)
		assert.Equal(t, "test message", h1.getRecords()[0].Message)
	})

	t.Run("Handle skips disabled handlers", func(t *testing.T) {
		off := &mockHandler{enabled: false}
		on := &mockHandler{enabled: true}
		m := &multiHandler{handlers: []slog.Handler{off, on}}

		require.NoError(t, m.Handle(context.Background(), slog.NewRecord(time.Now(), slog.LevelDebug, "x", 0)))
		assert.Empty(t, off.getRecords())
		assert.Len(t, on.getRecords(), 1)
	})

	t.Run("Handle keeps going after an error", func(t *testing.T) {
		failing := &mockHandler{enabled: true, handleFn: func(slog.Record) error { return errors.New("disk full") }}
		after := &mockHandler{enabled: true}
		m := &multiHandler{handlers: []slog.Handler{failing, after}}

		err := m.Handle(context.Background(), slog.NewRecord(time.Now(), slog.LevelInfo, "x", 0))
		assert.EqualError(t, err, "disk full")
		assert.Len(t, after.getRecords(), 1)
	})

	t.Run("WithAttrs", func(t *testing.T) {
		attrs := []slog.Attr{slog.String("key", "value")}
		handlerWithAttrs := multi.WithAttrs(attrs)

		newMulti, ok := handlerWithAttrs.(*multiHandler)
		require.True(t, ok, "WithAttrs should return a *multiHandler")

		for _, h := range newMulti.handlers {
			mockH, ok := h.(*mockHandler)
			require.True(t, ok)
			assert.Equal(t, attrs, mockH.attrs)
		}
	})

	t.Run("WithGroup", func(t *testing.T) {
		handlerWithGroup := multi.WithGroup("my-group")

		newMulti, ok := handlerWithGroup.(*multiHandler)
		require.True(t, ok, "WithGroup should return a *multiHandler")

		for _, h := range newMulti.handlers {
			mockH, ok := h.(*mockHandler)
			require.True(t, ok)
			assert.Equal(t, "my-group", mockH.group)
		}
	})
}

func TestNewLogger(t *testing.T) {
	t.Run("Level", func(t *testing.T) {
		var buf bytes.Buffer
		logger, closeFn, err := NewLogger(&buf, false, "")
		require.NoError(t, err)
		defer closeFn()

		logger.Debug("hidden")
		logger.Info("shown")
		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), "shown")

		buf.Reset()
		debugLogger, _, err := NewLogger(&buf, true, "")
		require.NoError(t, err)
		debugLogger.Debug("debug message")
		assert.Contains(t, buf.String(), "debug message")
	})

	t.Run("File logging", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "measure.log")
		var buf bytes.Buffer

		logger, closeFn, err := NewLogger(&buf, false, path)
		require.NoError(t, err)
		logger.Info("file message")
		require.NoError(t, closeFn())

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(content), "file message")
		assert.Contains(t, buf.String(), "file message")
	})

	t.Run("File error", func(t *testing.T) {
		invalidPath := filepath.Join(t.TempDir(), "nonexistent/test.log")
		_, _, err := NewLogger(&bytes.Buffer{}, false, invalidPath)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "open log file")
	})
}

func TestInitLogger(t *testing.T) {
	originalLogger := slog.Default()
	defer slog.SetDefault(originalLogger)

	closeFn, err := InitLogger(false, "")
	require.NoError(t, err)
	assert.NoError(t, closeFn())
	assert.NotEqual(t, originalLogger, slog.Default())
}
