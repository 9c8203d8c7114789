package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitWithWriter_JSONCarriesBaseAttributes(t *testing.T) {
	defer slog.SetDefault(slog.Default())

	var buf bytes.Buffer
	InitWithWriter(NewConfig("info", "json", "starcase", "test", "test", false), &buf)

	slog.Info("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "hello", entry["msg"])
	assert.Equal(t, "starcase", entry[AttrKeyService])
	assert.Equal(t, "test", entry[AttrKeyEnvironment])
}

func TestInitWithWriter_LevelFiltering(t *testing.T) {
	defer slog.SetDefault(slog.Default())

	var buf bytes.Buffer
	InitWithWriter(NewConfig("warn", "text", "starcase", "test", "test", false), &buf)

	slog.Info("dropped")
	assert.Empty(t, buf.String())

	slog.Warn("kept")
	assert.Contains(t, buf.String(), "kept")
}

func TestRequestIDRoundTrip(t *testing.T) {
	ctx := context.Background()

	_, ok := RequestIDFromContext(ctx)
	assert.False(t, ok)

	id := GenerateRequestID()
	ctx = WithRequestID(ctx, id)

	got, ok := RequestIDFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, id, got)
}

func TestFromContext_IncludesRequestID(t *testing.T) {
	defer slog.SetDefault(slog.Default())

	var buf bytes.Buffer
	InitWithWriter(NewConfig("info", "json", "starcase", "test", "test", false), &buf)

	ctx := WithRequestID(context.Background(), "req-123")
	FromContext(ctx).Info("traced")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "req-123", entry[AttrKeyRequestID])
}

func TestConfigLogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, Config{Level: "debug"}.LogLevel())
	assert.Equal(t, slog.LevelWarn, Config{Level: "WARNING"}.LogLevel())
	assert.Equal(t, slog.LevelInfo, Config{Level: "bogus"}.LogLevel())
}
