package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "debug")

	assert.NotNil(t, log)
}

func TestLogger_Info(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "info")

	log.Info("test message", "key", "value")

	var entry map[string]interface{}
	err := json.Unmarshal(buf.Bytes(), &entry)
	require.NoError(t, err)

	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "test message", entry["msg"])
	assert.Equal(t, "value", entry["key"])
	assert.NotEmpty(t, entry["time"])
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "warn")

	log.Debug("dropped")
	log.Info("dropped too")
	log.Warn("kept")
	log.Error("kept too")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], `"WARN"`)
	assert.Contains(t, lines[1], `"ERROR"`)
}

func TestLogger_With(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "info").With("component", "double")

	log.Info("call recorded", "method", "FirstName")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "double", entry["component"])
	assert.Equal(t, "FirstName", entry["method"])
}

func TestLogger_WithDoesNotMutateParent(t *testing.T) {
	var buf bytes.Buffer
	parent := New(&buf, "info")
	_ = parent.With("child_only", true)

	parent.Info("from parent")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	_, ok := entry["child_only"]
	assert.False(t, ok)
}

func TestLogger_OddKeyvalsDropped(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "info")

	log.Info("odd", "key", "value", "dangling")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "value", entry["key"])
	_, ok := entry["dangling"]
	assert.False(t, ok)
}

func TestNop(t *testing.T) {
	log := Nop()

	// Must not panic and must stay silent at every level.
	log.Debug("x")
	log.Info("x")
	log.Warn("x")
	log.Error("x")

	assert.False(t, log.Enabled(LevelError))
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
	}{
		{"debug", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"warning", LevelWarn},
		{"error", LevelError},
		{"ERROR", LevelError},
		{"bogus", LevelInfo},
		{"", LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseLevel(tt.input))
		})
	}
}
