package observability_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel_ontology/internal/adapters/observability"
)

func TestNewLogger_JSONOutsideDev(t *testing.T) {
	var buf bytes.Buffer
	l := observability.NewLogger("prod", &buf)
	l.Info().Int("rows", 3).Msg("bookings loaded")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "bookings loaded", line["message"])
	assert.Equal(t, 3.0, line["rows"])
	assert.Contains(t, line, "time")
}

func TestNewLogger_ConsoleInDev(t *testing.T) {
	var buf bytes.Buffer
	l := observability.NewLogger("dev", &buf)
	l.Info().Msg("hello")

	assert.False(t, json.Valid(bytes.TrimSpace(buf.Bytes())))
	assert.Contains(t, buf.String(), "hello")
}
