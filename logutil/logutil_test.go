package logutil

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	log := NewLogger("dispatch")
	require.NotNil(t, log)
	assert.Equal(t, "dispatch", log.Component())

	scoped := log.WithFields("script", "tool.rb")
	assert.Equal(t, "dispatch", scoped.Component())
}

func TestSetupSwitchesLevel(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("APPDATA", t.TempDir())
	t.Cleanup(func() { Setup(false, false) })

	Setup(false, false)
	assert.NotNil(t, Logger())

	Setup(true, true)
	assert.NotNil(t, Logger())
}

func TestDebugLogPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("APPDATA", dir)

	path := DebugLogPath()
	require.NotEmpty(t, path)
	assert.Equal(t, "debug.log", filepath.Base(path))
}
