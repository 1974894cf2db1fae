package assoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/winbang/winbang/config"
)

func TestResolveTierOrder(t *testing.T) {
	associations := []config.FileAssociation{
		{Extension: "sh", ShebangInterpreter: "bash", ExecRuntime: "bash"},
		{Extension: "sh", ShebangInterpreter: "zsh", ExecRuntime: "zsh"},
		{ShebangInterpreter: "python3", ExecRuntime: "python"},
		{Extension: "rb", ExecRuntime: "ruby"},
	}

	tests := []struct {
		name        string
		ext         string
		interpreter string
		wantRuntime string
	}{
		{
			name:        "shebang plus extension beats list order",
			ext:         "sh",
			interpreter: "zsh",
			wantRuntime: "zsh",
		},
		{
			name:        "shebang plus extension first entry",
			ext:         "sh",
			interpreter: "bash",
			wantRuntime: "bash",
		},
		{
			name:        "shebang only entry matches any extension",
			ext:         "txt",
			interpreter: "python3",
			wantRuntime: "python",
		},
		{
			name:        "shebang only entry matches no extension",
			ext:         "",
			interpreter: "python3",
			wantRuntime: "python",
		},
		{
			name:        "extension only entry without shebang",
			ext:         "rb",
			interpreter: "",
			wantRuntime: "ruby",
		},
		{
			name:        "extension only entry with unmatched shebang",
			ext:         "rb",
			interpreter: "crystal",
			wantRuntime: "ruby",
		},
		{
			name:        "case insensitive interpreter match",
			ext:         "sh",
			interpreter: "ZSH",
			wantRuntime: "zsh",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Resolve(associations, tt.ext, tt.interpreter)
			require.NoError(t, err)
			require.NotNil(t, res.Association)
			assert.Equal(t, tt.wantRuntime, res.Association.ExecRuntime)
			assert.False(t, res.PathSearch)
		})
	}
}

func TestResolveShebangQualifiedBeatsExtensionOnly(t *testing.T) {
	// The extension-only entry comes first in configuration order, but
	// tier order is authoritative across tiers.
	associations := []config.FileAssociation{
		{Extension: "sh", ExecRuntime: "sh"},
		{Extension: "sh", ShebangInterpreter: "zsh", ExecRuntime: "zsh"},
	}

	res, err := Resolve(associations, "sh", "zsh")
	require.NoError(t, err)
	require.NotNil(t, res.Association)
	assert.Equal(t, "zsh", res.Association.ExecRuntime)
}

func TestResolveWithinTierConfigurationOrder(t *testing.T) {
	associations := []config.FileAssociation{
		{ShebangInterpreter: "python", ExecRuntime: "python-first"},
		{ShebangInterpreter: "python", ExecRuntime: "python-second"},
	}

	res, err := Resolve(associations, "", "python")
	require.NoError(t, err)
	require.NotNil(t, res.Association)
	assert.Equal(t, "python-first", res.Association.ExecRuntime)
}

func TestResolvePathSearch(t *testing.T) {
	res, err := Resolve(nil, "py", "python3")
	require.NoError(t, err)
	assert.Nil(t, res.Association)
	assert.True(t, res.PathSearch)
	assert.Equal(t, "python3", res.Interpreter)
}

func TestResolveDeadEnd(t *testing.T) {
	_, err := Resolve(nil, "py", "")
	assert.ErrorIs(t, err, ErrNoAssociation)

	_, err = Resolve([]config.FileAssociation{{Extension: "rb", ExecRuntime: "ruby"}}, "", "")
	assert.ErrorIs(t, err, ErrNoAssociation)
}

func TestResolveIdempotent(t *testing.T) {
	associations := []config.FileAssociation{
		{Extension: "sh", ShebangInterpreter: "bash", ExecRuntime: "bash"},
		{Extension: "sh", ShebangInterpreter: "zsh", ExecRuntime: "zsh"},
	}

	first, err := Resolve(associations, "sh", "zsh")
	require.NoError(t, err)
	for range 10 {
		again, err := Resolve(associations, "sh", "zsh")
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}
