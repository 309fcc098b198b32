package configs

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"err":     slog.LevelError,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, Logger{Level: in}.SlogLevel(), in)
	}
}

func TestHandlerJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(Logger{Level: "warn", Format: "json"}.Handler(&buf))

	logger.Info("dropped")
	logger.Warn("kept", slog.String("campaign", "3"))

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "kept", rec["msg"])
	assert.Equal(t, "3", rec["campaign"])
}

func TestHandlerTextFallback(t *testing.T) {
	var buf bytes.Buffer
	slog.New(Logger{Format: "yaml"}.Handler(&buf)).Info("hello")

	assert.Contains(t, buf.String(), "msg=hello")
}
