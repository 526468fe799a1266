package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, zerolog.TraceLevel, ParseLevel("TRACE"))
	assert.Equal(t, zerolog.WarnLevel, ParseLevel("warn"))
	assert.Equal(t, zerolog.Disabled, ParseLevel("off"))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("loud"))
}

func TestNew_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: "info", Out: &buf})

	log.Debug().Msg("hidden")
	log.Info().Str("system", "missile").Msg("spawned")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &rec))
	assert.Equal(t, "spawned", rec["message"])
	assert.Equal(t, "missile", rec["system"])
	assert.Contains(t, rec, "time")
}

func TestNew_Console(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: "debug", Console: true, Out: &buf})

	log.Debug().Int("kind", 3).Msg("tick")

	assert.Contains(t, buf.String(), "tick")
	assert.Contains(t, buf.String(), "kind=3")
}
