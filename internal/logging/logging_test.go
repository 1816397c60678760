package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComponentTagsJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Init(Config{Level: "debug", Format: "json", Output: &buf}))
	t.Cleanup(func() {
		_ = Init(Config{Level: "warn"})
	})

	logger := Component("theme")
	logger.Debug().Str("mode", "dark").Msg("toggled")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "theme", entry["component"])
	require.Equal(t, "dark", entry["mode"])
	require.Equal(t, "toggled", entry["message"])
}

func TestInitRejectsUnknownLevel(t *testing.T) {
	require.Error(t, Init(Config{Level: "loud"}))
}

func TestInitRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Init(Config{Level: "error", Format: "json", Output: &buf}))
	t.Cleanup(func() {
		_ = Init(Config{Level: "warn"})
	})

	logger := Component("theme")
	logger.Info().Msg("ignored")
	require.Zero(t, buf.Len())
}
