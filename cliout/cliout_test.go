package cliout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/winbang/winbang/testutil"
)

func TestSetFormat(t *testing.T) {
	t.Cleanup(func() { _ = SetFormat("") })

	require.NoError(t, SetFormat(""))
	assert.Equal(t, FormatDefault, GetFormat())

	require.NoError(t, SetFormat("json"))
	assert.Equal(t, FormatJSON, GetFormat())

	require.NoError(t, SetFormat("yaml"))
	assert.Equal(t, FormatYAML, GetFormat())

	assert.Error(t, SetFormat("xml"))
}

func TestColorizeRespectsNoColor(t *testing.T) {
	NoColor()
	assert.Equal(t, "plain", colorize(Red, "plain"))
}

func TestPrintJSON(t *testing.T) {
	out := testutil.CaptureOutput(t, func() error {
		return PrintJSON(map[string]string{"key": "value"})
	})
	assert.JSONEq(t, `{"key": "value"}`, out)
}
