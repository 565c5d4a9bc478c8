package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_RoleField(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("gateway")
	l.Logger = l.Output(&buf)

	l.Info().Msg("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "gateway", entry["role"])
}

func TestNewLogger_ContainsTimestamp(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("vault-cli")
	l.Logger = l.Output(&buf)

	l.Info().Msg("ts check")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	_, hasTime := entry["time"]
	assert.True(t, hasTime, "expected 'time' field in log entry")
}

func TestNewLogger_CallerFieldName(t *testing.T) {
	NewLogger("caller-role")
	assert.Equal(t, "func", zerolog.CallerFieldName)
}

func TestNop_DiscardsOutput(t *testing.T) {
	l := Nop()
	// must not panic and must not write anywhere
	l.Error().Msg("dropped")
}

func TestFromContext_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	parent := NewLogger("ctx-role")
	parent.Logger = parent.Output(&buf)

	ctx := parent.WithContext(context.Background())
	got := FromContext(ctx)
	got.Info().Msg("via context")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "ctx-role", entry["role"])
}

func TestFromRequest_UsesRequestContext(t *testing.T) {
	var buf bytes.Buffer
	parent := NewLogger("req-role")
	parent.Logger = parent.Output(&buf)

	r := httptest.NewRequest("GET", "/api/anchors/owner", nil)
	r = r.WithContext(parent.WithContext(r.Context()))

	got := FromRequest(r)
	got.Info().Msg("via request")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "req-role", entry["role"])
}
