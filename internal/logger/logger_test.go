package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_RoleField(t *testing.T) {
	log := NewLogger("test-role")
	require.NotNil(t, log)

	var buf bytes.Buffer
	child := Logger{log.Output(&buf)}
	child.Info().Msg("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "test-role", entry["role"])
	assert.Equal(t, "hello", entry["message"])
}

func TestNop_DiscardsOutput(t *testing.T) {
	log := Nop()
	require.NotNil(t, log)

	// Must not panic and must produce nothing observable.
	log.Error().Msg("should go nowhere")
	assert.Equal(t, zerolog.Disabled, log.GetLevel())
}

func TestFromContext_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	parent := &Logger{zerolog.New(&buf)}

	ctx := parent.WithContext(context.Background())
	recovered := FromContext(ctx)
	require.NotNil(t, recovered)

	recovered.Info().Msg("via context")
	assert.Contains(t, buf.String(), "via context")
}

func TestGetChildLogger_InheritsFields(t *testing.T) {
	var buf bytes.Buffer
	parent := &Logger{zerolog.New(&buf).With().Str("role", "parent").Logger()}

	child := parent.GetChildLogger()
	child.Info().Msg("from child")

	assert.Contains(t, buf.String(), `"role":"parent"`)
}
