package toolbox

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecovery(t *testing.T) {
	h := Recovery()("boom", func(_ context.Context, _ json.RawMessage) (any, error) {
		panic("kaboom")
	})

	result, err := h(context.Background(), nil)
	assert.Nil(t, result)
	assert.EqualError(t, err, "tool boom panicked: kaboom")
}

func TestRecovery_PassThrough(t *testing.T) {
	h := Recovery()("echo", echoHandler)

	result, err := h(context.Background(), json.RawMessage(`{}`))
	require.NoError(t, err)
	assert.Equal(t, "{}", result)
}

func TestLogger_Success(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	h := Logger(log)("echo", echoHandler)

	_, err := h(context.Background(), json.RawMessage(`{}`))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "tool finished")
	assert.Contains(t, out, "tool=echo")
	assert.Contains(t, out, "call_id=")
	assert.NotContains(t, out, "tool started")
}

func TestLogger_Error(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	h := Logger(log)("fail", errorHandler)

	_, err := h(context.Background(), nil)
	require.Error(t, err)

	out := buf.String()
	assert.Contains(t, out, "tool started")
	assert.Contains(t, out, "tool finished with error")
	assert.Contains(t, out, "tool failed")
}

func TestLoggerWithRecovery(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	tb := New()
	tb.Register(Tool{
		Name: "boom",
		Handler: func(_ context.Context, _ json.RawMessage) (any, error) {
			panic("kaboom")
		},
	})
	tb.Use(Logger(log), Recovery())

	_, err := tb.Call(context.Background(), "boom", nil)
	require.Error(t, err)
	assert.Contains(t, buf.String(), "panicked")
}
