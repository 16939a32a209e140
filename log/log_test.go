package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHandler_DefaultsToJSONOffTerminal(t *testing.T) {
	var buf bytes.Buffer
	New(&buf).Info("hello", slog.String("signature", "new a.B"))

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "hello", rec["msg"])
	assert.Equal(t, "new a.B", rec["signature"])
	assert.NotContains(t, rec, slog.SourceKey)
}

func TestNewHandler_Text(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, WithJSON(false)).Warn("denied", slog.String("kind", "method"))

	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "msg=denied")
	assert.Contains(t, buf.String(), "kind=method")
}

func TestNewHandler_Level(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, WithLevel(slog.LevelWarn))

	l.Info("quiet")
	assert.Empty(t, buf.String())

	l.Error("loud")
	assert.Contains(t, buf.String(), "loud")

	assert.True(t, NewHandler(&buf, WithLevel(slog.LevelDebug)).Enabled(t.Context(), slog.LevelDebug))
}

func TestNewHandler_Source(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, WithJSON(true), WithSource(true)).Info("where")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Contains(t, rec, slog.SourceKey)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"Warning", slog.LevelWarn},
		{"error", slog.LevelError},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseLevel("verbose")
	assert.Error(t, err)
}
