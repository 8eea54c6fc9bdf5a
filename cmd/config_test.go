package cmd

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigConstants(t *testing.T) {
	assert.Equal(t, "lfichef", configBaseName)
	assert.Equal(t, "lfichef.yaml", configFileName)
	assert.Equal(t, ".", configFolderPath)
	assert.Equal(t, "out-file", outFileFlagName)
	assert.Equal(t, "encoding", encodingFlagName)
	assert.Equal(t, "traversal", traversalFlagName)
	assert.Equal(t, "traversal-chars", traversalCharsFlagName)
	assert.Equal(t, "null-byte", nullByteFlagName)
	assert.Equal(t, "drive", driveFlagName)
	assert.Equal(t, "output.file", outFileConfigKey)
	assert.Equal(t, "generate.encoding", encodingConfigKey)
	assert.Equal(t, "generate.traversal", traversalConfigKey)
	assert.Equal(t, "generate.traversal_chars", traversalCharsConfigKey)
	assert.Equal(t, "generate.null_byte", nullByteConfigKey)
	assert.Equal(t, "sanitize.drive", driveConfigKey)
	assert.Equal(t, "LFICHEF", envPrefix)
	assert.Equal(t, ".lfichef.log", defaultLogFilename)
	assert.Equal(t, 10, defaultLogMaxSize)
}

func TestConfigVersionConstants(t *testing.T) {
	assert.Equal(t, "version", configVersionKey)
	assert.Equal(t, 1, currentConfigVersion)
}

func TestParseSlogLevel(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  slog.Level
	}{
		{"empty falls back", "", slog.LevelWarn},
		{"debug", "debug", slog.LevelDebug},
		{"info", "info", slog.LevelInfo},
		{"warn", "warn", slog.LevelWarn},
		{"warning", "warning", slog.LevelWarn},
		{"error", "error", slog.LevelError},
		{"mixed case", "DeBuG", slog.LevelDebug},
		{"numeric", "-4", slog.LevelDebug},
		{"garbage falls back", "loud", slog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseSlogLevel(tt.value, slog.LevelWarn))
		})
	}
}

func TestConfigureLogger_WritesToFile(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "test.log")

	configureLogger(logPath, true)
	t.Cleanup(func() { configureLogger(filepath.Join(dir, "discard.log"), false) })

	slog.Debug("logger smoke test")

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "logger smoke test")
	assert.Contains(t, string(data), "level=DEBUG")
}
