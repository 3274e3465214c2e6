package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferedLogger(level slog.Level) (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(&CloudRunHandler{level: level, out: &buf}), &buf
}

func TestCloudRunHandlerWritesSeverityAndData(t *testing.T) {
	log, buf := newBufferedLogger(slog.LevelInfo)

	log.With("source", "sheets").Warn("fetch failed", "error", errors.New("boom"), "rows", 3)

	var event map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &event))
	assert.Equal(t, "WARNING", event["severity"])
	assert.Equal(t, "fetch failed", event["message"])

	data, ok := event["data"].(map[string]any)
	require.True(t, ok, "data should be an object")
	assert.Equal(t, "sheets", data["source"])
	assert.Equal(t, "boom", data["error"])
	assert.EqualValues(t, 3, data["rows"])
}

func TestCloudRunHandlerRespectsLevel(t *testing.T) {
	log, buf := newBufferedLogger(slog.LevelWarn)

	log.Info("ignored")
	assert.Zero(t, buf.Len())
}

func TestGetSlogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, getSlogLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, getSlogLevel("warn"))
	assert.Equal(t, slog.LevelInfo, getSlogLevel(""))
	assert.Equal(t, slog.LevelInfo, getSlogLevel("verbose"))
}

func TestFromContextFallsBackToDefault(t *testing.T) {
	assert.Same(t, slog.Default(), FromContext(context.Background()))

	log := New("debug", NewTestHandler)
	ctx := ToContext(context.Background(), log)
	assert.Same(t, log, FromContext(ctx))
	assert.True(t, IsDebugEnabled(ctx))
}
