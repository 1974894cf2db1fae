package config

import (
	"fmt"
	"strings"

	"github.com/winbang/winbang/pathutil"
)

// Operation selects what the dispatcher does with a matched script.
type Operation string

const (
	// OpExecute runs the script with its execution runtime.
	OpExecute Operation = "execute"

	// OpView opens the script in its view runtime instead of running it.
	OpView Operation = "view"

	// OpPrompt asks the user to choose between executing and viewing.
	OpPrompt Operation = "prompt"
)

// UnmarshalText decodes an operation name from configuration.
// "open" is accepted as a legacy spelling of "view".
func (o *Operation) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "":
		*o = ""
	case "execute":
		*o = OpExecute
	case "view", "open":
		*o = OpView
	case "prompt":
		*o = OpPrompt
	default:
		return fmt.Errorf("unknown operation %q (valid: execute, view, prompt)", text)
	}
	return nil
}

// DefaultRuntime describes a fallback viewer. The "default" record always
// applies; the "default_large" record takes over once the target file size
// in MB reaches SizeMBThreshold. A zero threshold means unset and leaves
// the record inactive.
type DefaultRuntime struct {
	ViewRuntime     string `toml:"view_runtime" yaml:"view_runtime"`
	SizeMBThreshold int64  `toml:"size_mb_threshold,omitempty" yaml:"size_mb_threshold,omitempty"`

	// Args is an optional argv template for the viewer, expanded with the
	// same placeholders as exec_argv_override.
	Args string `toml:"args,omitempty" yaml:"args,omitempty"`
}

// FileAssociation maps an extension and/or shebang interpreter to the
// programs that can run or view matching scripts. The association list is
// ordered; earlier entries win within a matching tier.
type FileAssociation struct {
	Extension          string    `toml:"extension,omitempty" yaml:"extension,omitempty"`
	ShebangInterpreter string    `toml:"shebang_interpreter,omitempty" yaml:"shebang_interpreter,omitempty"`
	ExecRuntime        string    `toml:"exec_runtime" yaml:"exec_runtime"`
	ViewRuntime        string    `toml:"view_runtime,omitempty" yaml:"view_runtime,omitempty"`
	ExecArgvOverride   string    `toml:"exec_argv_override,omitempty" yaml:"exec_argv_override,omitempty"`
	DefaultOperation   Operation `toml:"default_operation,omitempty" yaml:"default_operation,omitempty"`
}

// Config is the dispatcher configuration. It is loaded once at process
// start and treated as read-only afterwards.
type Config struct {
	AllowUserConfig  bool              `toml:"allow_user_config" yaml:"allow_user_config"`
	GUIShells        []string          `toml:"gui_shells" yaml:"gui_shells"`
	DefaultOperation Operation         `toml:"default_operation" yaml:"default_operation"`
	Default          *DefaultRuntime   `toml:"default" yaml:"default"`
	DefaultLarge     *DefaultRuntime   `toml:"default_large" yaml:"default_large,omitempty"`
	FileAssociations []FileAssociation `toml:"file_associations" yaml:"file_associations"`
}

// normalize cleans up user-supplied values after decoding: extensions are
// stored lowercase without the leading dot, and runtime paths get
// environment variables expanded.
func (c *Config) normalize() {
	for i := range c.FileAssociations {
		a := &c.FileAssociations[i]
		a.Extension = strings.ToLower(strings.TrimPrefix(a.Extension, "."))
		a.ExecRuntime = ExpandEnv(a.ExecRuntime)
		a.ViewRuntime = ExpandEnv(a.ViewRuntime)
	}
	if c.Default != nil {
		c.Default.ViewRuntime = ExpandEnv(c.Default.ViewRuntime)
	}
	if c.DefaultLarge != nil {
		c.DefaultLarge.ViewRuntime = ExpandEnv(c.DefaultLarge.ViewRuntime)
	}
}

// Fallback returns the minimal configuration used when a configuration file
// exists but cannot be read or parsed: no associations, prompt before doing
// anything, notepad as the only viewer.
func Fallback() *Config {
	return &Config{
		GUIShells:        []string{"explorer.exe"},
		DefaultOperation: OpPrompt,
		Default:          &DefaultRuntime{ViewRuntime: "notepad"},
	}
}

// BuiltIn returns the full default configuration used when no configuration
// file exists at either candidate location. The JavaScript and TypeScript
// runtimes are probed at load time so the table prefers whatever is
// actually installed.
func BuiltIn() *Config {
	jsRuntime := firstOnPath("deno", "bun", "node")
	tsRuntime := firstOnPath("deno", "ts-node")

	return &Config{
		GUIShells:        []string{"explorer.exe"},
		DefaultOperation: OpPrompt,
		Default:          &DefaultRuntime{ViewRuntime: "notepad", Args: "$script"},
		DefaultLarge:     &DefaultRuntime{ViewRuntime: "notepad", SizeMBThreshold: 50, Args: "$script"},
		FileAssociations: []FileAssociation{
			{Extension: "rb", ShebangInterpreter: "ruby", ExecRuntime: "ruby", DefaultOperation: OpPrompt},
			{Extension: "py", ShebangInterpreter: "python", ExecRuntime: "python", DefaultOperation: OpPrompt},
			{Extension: "js", ShebangInterpreter: jsRuntime, ExecRuntime: jsRuntime, DefaultOperation: OpPrompt},
			{Extension: "ts", ShebangInterpreter: tsRuntime, ExecRuntime: tsRuntime, DefaultOperation: OpPrompt},
			{Extension: "pl", ShebangInterpreter: "perl", ExecRuntime: "perl", DefaultOperation: OpPrompt},
			{Extension: "sh", ShebangInterpreter: "bash", ExecRuntime: "bash", DefaultOperation: OpPrompt},
		},
	}
}

// firstOnPath returns the first candidate found on PATH, or the last
// candidate when none resolve.
func firstOnPath(candidates ...string) string {
	for _, c := range candidates {
		if pathutil.FindInPath(c) != "" {
			return c
		}
	}
	return candidates[len(candidates)-1]
}
