package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, ParseLevel("DEBUG"))
	assert.Equal(t, zapcore.WarnLevel, ParseLevel("warning"))
	assert.Equal(t, zapcore.ErrorLevel, ParseLevel("error"))
	assert.Equal(t, zapcore.InfoLevel, ParseLevel("verbose"))
}

func TestLoggerLevel(t *testing.T) {
	var buf bytes.Buffer
	log := newLogger(Config{Level: "warn"}, &buf)
	log.Info("hidden")
	log.Warn("shown", zap.String("device", "/dev/ttyACM0"))
	require.NoError(t, log.Sync())

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "/dev/ttyACM0")
}

func TestLoggerJSON(t *testing.T) {
	var buf bytes.Buffer
	log := newLogger(Config{Level: "debug", Format: "json"}, &buf)
	log.Debug("send", zap.String("command", "Brightness 10"))
	require.NoError(t, log.Sync())

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, "send", entry["msg"])
	assert.Equal(t, "Brightness 10", entry["command"])
}

func TestLoggerFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "inputmodule.log")
	var buf bytes.Buffer
	log := newLogger(Config{Level: "info", File: file, MaxSizeMB: 1}, &buf)
	log.Info("to both")
	require.NoError(t, log.Sync())

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to both")
	assert.Contains(t, buf.String(), "to both")
}
