package dispatch

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/winbang/winbang/argv"
	"github.com/winbang/winbang/assoc"
	"github.com/winbang/winbang/config"
	"github.com/winbang/winbang/pathutil"
)

// ResolvedAction is the final decision artifact consumed by the
// dispatcher. RuntimePath is a resolved executable path unless
// UseDefaultHandler is set.
type ResolvedAction struct {
	Operation   Operation
	RuntimePath string
	Argv        []string
	WorkingDir  string
	ScriptPath  string

	// UseDefaultHandler marks a view action with no usable viewer; the
	// script is handed to the OS default application instead.
	UseDefaultHandler bool
}

// lookPath is swapped out in tests.
var lookPath = pathutil.FindInPath

// viewerCandidates are probed in order when no viewer is configured.
var viewerCandidates = []string{"code", "notepad"}

// buildExecute constructs the action for running the script.
func buildExecute(res assoc.Resolution, s *scriptInfo, passedArgs []string) (*ResolvedAction, error) {
	name := res.Interpreter
	override := ""
	if res.Association != nil {
		name = res.Association.ExecRuntime
		override = res.Association.ExecArgvOverride
	}

	runtimePath := resolveRuntime(name)
	if runtimePath == "" {
		return nil, &InterpreterNotFoundError{Name: name, Suggestion: pathutil.InstallSuggestion(name)}
	}

	var args []string
	if override != "" {
		expanded, err := argv.Expand(override, s.path, passedArgs)
		if err != nil {
			return nil, err
		}
		args = expanded
	} else {
		var interpreterArgv []string
		if s.shebang != nil {
			interpreterArgv = s.shebang.Argv
		}
		args = argv.Default(s.path, interpreterArgv, passedArgs)
	}

	return &ResolvedAction{
		Operation:   OpExecute,
		RuntimePath: runtimePath,
		Argv:        args,
		WorkingDir:  s.dir,
		ScriptPath:  s.path,
	}, nil
}

// buildView constructs the action for opening the script in a viewer.
func buildView(cfg *config.Config, res assoc.Resolution, s *scriptInfo) (*ResolvedAction, error) {
	name, template := viewRuntime(cfg, res, s.size)

	runtimePath := ""
	if name != "" {
		runtimePath = resolveRuntime(name)
	}
	if runtimePath == "" {
		// No viewer configured or the configured one is missing; the OS
		// default application is the last resort.
		return &ResolvedAction{
			Operation:         OpView,
			WorkingDir:        s.dir,
			ScriptPath:        s.path,
			UseDefaultHandler: true,
		}, nil
	}

	args := []string{s.path}
	if template != "" {
		expanded, err := argv.Expand(template, s.path, nil)
		if err != nil {
			return nil, err
		}
		if !argv.ContainsScriptPlaceholder(template) {
			expanded = append(expanded, s.path)
		}
		args = expanded
	}

	return &ResolvedAction{
		Operation:   OpView,
		RuntimePath: runtimePath,
		Argv:        args,
		WorkingDir:  s.dir,
		ScriptPath:  s.path,
	}, nil
}

// viewRuntime selects the viewer and its optional argv template. The
// large-file viewer overrides everything once the size threshold is
// reached; below it the association's viewer wins over the global default,
// and an auto-detected editor covers the unconfigured case.
func viewRuntime(cfg *config.Config, res assoc.Resolution, sizeBytes int64) (name, argsTemplate string) {
	const mb = 1 << 20

	// A zero threshold means the field was never set; the large-file record
	// is inactive without one.
	if cfg.DefaultLarge != nil && cfg.DefaultLarge.SizeMBThreshold > 0 &&
		sizeBytes >= cfg.DefaultLarge.SizeMBThreshold*mb {
		return cfg.DefaultLarge.ViewRuntime, cfg.DefaultLarge.Args
	}

	if res.Association != nil && res.Association.ViewRuntime != "" {
		return res.Association.ViewRuntime, ""
	}

	if cfg.Default != nil && cfg.Default.ViewRuntime != "" {
		return cfg.Default.ViewRuntime, cfg.Default.Args
	}

	for _, candidate := range viewerCandidates {
		if lookPath(candidate) != "" {
			return candidate, ""
		}
	}
	return "", ""
}

// resolveRuntime turns a configured runtime into an invocable path. Names
// carrying a path separator must point at an existing file; bare names go
// through the PATH search.
func resolveRuntime(name string) string {
	if name == "" {
		return ""
	}
	if strings.ContainsAny(name, `/\`) || filepath.IsAbs(name) {
		if info, err := os.Stat(name); err == nil && !info.IsDir() {
			return name
		}
		return ""
	}
	return lookPath(name)
}
