package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brasilnasteam/backend/internal/config"
)

func TestNewLoggerCreatesFile(t *testing.T) {
	dir := t.TempDir()
	cfg := config.LoggingConfig{
		LogDir:     dir,
		Level:      "info",
		MaxSizeMB:  1,
		MaxBackups: 1,
		MaxAgeDays: 1,
		Compress:   true,
	}
	_, err := NewLogger(cfg)
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, "server.log"))
	assert.NoError(t, err)
}

func TestNewLoggerRejectsInvalidRotation(t *testing.T) {
	_, err := NewLogger(config.LoggingConfig{LogDir: t.TempDir()})
	assert.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel(" warning "))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}
