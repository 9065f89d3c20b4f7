package logging

import (
	"bank-api/internal/config"
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"error":   slog.LevelError,
		"verbose": slog.LevelInfo,
		"":        slog.LevelInfo,
	}
	for in, want := range cases {
		assert.Equal(t, want, parseLevel(in), "level %q", in)
	}
}

func TestNewHandler(t *testing.T) {
	t.Run("json encoding", func(t *testing.T) {
		var buf bytes.Buffer
		logger := slog.New(newHandler(config.LoggerConfig{Level: "info", Encoding: "json"}, &buf))
		logger.Info("hello", "component", "test")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "hello", entry["msg"])
		assert.Equal(t, "test", entry["component"])
	})

	t.Run("text encoding", func(t *testing.T) {
		var buf bytes.Buffer
		logger := slog.New(newHandler(config.LoggerConfig{Level: "info", Encoding: "text"}, &buf))
		logger.Info("hello")
		assert.Contains(t, buf.String(), "msg=hello")
	})

	t.Run("level filtering", func(t *testing.T) {
		var buf bytes.Buffer
		h := newHandler(config.LoggerConfig{Level: "warn"}, &buf)
		assert.False(t, h.Enabled(context.Background(), slog.LevelInfo))
		assert.True(t, h.Enabled(context.Background(), slog.LevelWarn))
	})
}

func TestOutputFor(t *testing.T) {
	assert.Equal(t, os.Stdout, outputFor(config.LoggerConfig{}))

	path := filepath.Join(t.TempDir(), "bank-api.log")
	w := outputFor(config.LoggerConfig{File: path, MaxSizeMB: 1})
	assert.NotEqual(t, os.Stdout, w)

	_, err := w.Write([]byte("line\n"))
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "line\n", string(data))
}
