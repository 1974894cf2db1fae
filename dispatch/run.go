package dispatch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/winbang/winbang/assoc"
	"github.com/winbang/winbang/config"
	"github.com/winbang/winbang/launchctx"
	"github.com/winbang/winbang/logutil"
	"github.com/winbang/winbang/notify"
	"github.com/winbang/winbang/prompt"
	"github.com/winbang/winbang/shebang"
)

// ExitResolveFailure is the sentinel exit code returned when resolution
// fails before any process is started.
const ExitResolveFailure = 3

// Request is one dispatch invocation.
type Request struct {
	ScriptPath string
	PassedArgs []string
}

// Options injects the environment-facing capabilities so tests can replace
// process introspection, prompting, and notifications. Zero values get the
// real implementations.
type Options struct {
	Ancestry launchctx.AncestryProvider
	Prompter prompt.Prompter
	Notifier notify.Notifier
}

func (o *Options) fill() {
	if o.Ancestry == nil {
		o.Ancestry = launchctx.OSAncestry{}
	}
	if o.Prompter == nil {
		o.Prompter = prompt.New()
	}
	if o.Notifier == nil {
		o.Notifier = notify.New()
	}
}

// scriptInfo is the per-invocation view of the target file.
type scriptInfo struct {
	path    string
	dir     string
	ext     string
	size    int64
	shebang *shebang.Spec
}

// Run resolves and dispatches a single script, returning the exit code the
// dispatcher process should use. Resolution failures in GUI context are
// additionally surfaced as an OS notification, since no console exists to
// print to.
func Run(ctx context.Context, cfg *config.Config, req Request, opts Options) (int, error) {
	log := logutil.NewLogger("dispatch")
	opts.fill()

	lctx := launchctx.Detect(opts.Ancestry, cfg.GUIShells)
	log.Debug("launch context", "gui", lctx.IsGUI, "parent", lctx.ParentProcessName)

	s, err := inspect(req.ScriptPath)
	if err != nil {
		return fail(lctx, opts, err)
	}
	log.Debug("script inspected", "path", s.path, "ext", s.ext, "size", s.size, "shebang", s.shebang != nil)

	interpreter := ""
	if s.shebang != nil {
		interpreter = s.shebang.Interpreter
	}

	res, err := assoc.Resolve(cfg.FileAssociations, s.ext, interpreter)
	if err != nil {
		return fail(lctx, opts, err)
	}
	if res.PathSearch {
		log.Debug("no association matched, searching PATH", "interpreter", res.Interpreter)
	}

	op, err := Decide(cfg, res, lctx, opts.Prompter, s.path)
	if err != nil {
		return fail(lctx, opts, err)
	}
	if op == OpCancel {
		log.Debug("dispatch cancelled by user", "script", s.path)
		return 0, nil
	}

	var action *ResolvedAction
	if op == OpExecute {
		action, err = buildExecute(res, s, req.PassedArgs)
	} else {
		action, err = buildView(cfg, res, s)
	}
	if err != nil {
		return fail(lctx, opts, err)
	}

	code, err := Dispatch(ctx, action, !lctx.IsGUI)
	if err != nil {
		return fail(lctx, opts, err)
	}
	return code, nil
}

// inspect stats the script and reads its shebang line.
func inspect(scriptPath string) (*scriptInfo, error) {
	abs, err := filepath.Abs(scriptPath)
	if err != nil {
		return nil, fmt.Errorf("resolve script path: %w", err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("script not found: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory, not a script", abs)
	}

	spec, err := shebang.ParseFile(abs)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}

	return &scriptInfo{
		path:    abs,
		dir:     filepath.Dir(abs),
		ext:     strings.ToLower(strings.TrimPrefix(filepath.Ext(abs), ".")),
		size:    info.Size(),
		shebang: spec,
	}, nil
}

// fail reports a resolution failure in the way the launch context can
// actually show and returns the sentinel exit code.
func fail(lctx launchctx.Context, opts Options, err error) (int, error) {
	if lctx.IsGUI {
		_ = opts.Notifier.Send("Winbang", UserMessage(err))
	}
	return ExitResolveFailure, err
}

// UserMessage renders an error for end users, appending install hints
// where one is known.
func UserMessage(err error) string {
	var notFound *InterpreterNotFoundError
	if errors.As(err, &notFound) && notFound.Suggestion != "" {
		return fmt.Sprintf("%s. %s", notFound.Error(), notFound.Suggestion)
	}
	return err.Error()
}
