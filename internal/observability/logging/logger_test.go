package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("bogus"))
}

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := New("hanja-test", Options{Level: "info", JSON: true, Output: &buf})

	logger.Debug("hidden")
	logger.Info("decoded", "spans", 3)

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "decoded", record["msg"])
	assert.Equal(t, "hanja-test", record["service"])
	assert.EqualValues(t, 3, record["spans"])
}

func TestNewText(t *testing.T) {
	var buf bytes.Buffer
	New("hanja-test", Options{Level: "debug", Output: &buf}).Debug("shown")
	assert.Contains(t, buf.String(), "msg=shown")
	assert.Contains(t, buf.String(), "service=hanja-test")
}
