package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStateHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("XDG_STATE_HOME", home)
	xdg.Reload()
	t.Cleanup(xdg.Reload)
	return home
}

func TestSetup_VerbosityLevels(t *testing.T) {
	setupStateHome(t)

	tests := []struct {
		verbosity int
		want      zerolog.Level
	}{
		{0, zerolog.WarnLevel},
		{1, zerolog.InfoLevel},
		{2, zerolog.DebugLevel},
		{3, zerolog.TraceLevel},
		{9, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		Setup(tt.verbosity)
		assert.Equal(t, tt.want, zerolog.GlobalLevel(), "verbosity %d", tt.verbosity)
	}
}

func TestSetup_CreatesLogFile(t *testing.T) {
	home := setupStateHome(t)

	Setup(1)

	path := LogFilePath()
	assert.Equal(t, filepath.Join(home, "proflink", "proflink.log"), path)
	_, err := os.Stat(path)
	require.NoError(t, err)
}

func TestGetLogger_AddsComponent(t *testing.T) {
	logger := GetLogger("linker")
	// The component field is attached at construction; logging must not panic
	// even before Setup runs.
	logger.Debug().Msg("probe")
}

func TestLogOperationStart(t *testing.T) {
	done := LogOperationStart(GetLogger("test"), "reconcile")
	require.NotNil(t, done)
	done()
}
