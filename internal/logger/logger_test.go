package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitWriter_JSON(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.InfoLevel) })

	var buf bytes.Buffer
	require.NoError(t, InitWriter(&buf, "warn", "json"))

	log.Info().Msg("hidden")
	log.Warn().Str("user", "ada").Msg("shown")

	var line map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line))
	assert.Equal(t, "warn", line["level"])
	assert.Equal(t, "ada", line["user"])
	assert.Equal(t, "shown", line["message"])
}

func TestInitWriter_Console(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.InfoLevel) })

	var buf bytes.Buffer
	require.NoError(t, InitWriter(&buf, "DEBUG", "console"))
	log.Debug().Msg("tracing")
	assert.Contains(t, buf.String(), "tracing")
}

func TestInitWriter_Errors(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, InitWriter(&buf, "loud", "json"))
	assert.Error(t, InitWriter(&buf, "info", "xml"))
}
