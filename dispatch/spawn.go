package dispatch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/pkg/browser"

	"github.com/winbang/winbang/logutil"
)

// Dispatch starts the resolved process with the script's directory as the
// working directory. In console context the child inherits the terminal
// and Dispatch waits, mirroring the child's exit code. Otherwise the child
// is started detached and released immediately.
func Dispatch(ctx context.Context, action *ResolvedAction, console bool) (int, error) {
	log := logutil.NewLogger("dispatch")

	if action.UseDefaultHandler {
		log.Debug("opening with OS default handler", "script", action.ScriptPath)
		if err := browser.OpenFile(action.ScriptPath); err != nil {
			return ExitResolveFailure, fmt.Errorf("%w: open %s: %v", ErrSpawn, action.ScriptPath, err)
		}
		return 0, nil
	}

	cmd := exec.CommandContext(ctx, action.RuntimePath, action.Argv...)
	cmd.Dir = action.WorkingDir
	cmd.Env = os.Environ()

	log.Debug("starting process",
		"runtime", action.RuntimePath,
		"argv", action.Argv,
		"dir", action.WorkingDir,
		"console", console,
	)

	if console {
		cmd.Stdin = os.Stdin
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr

		err := cmd.Run()
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		if err != nil {
			return ExitResolveFailure, fmt.Errorf("%w: run %s: %v", ErrSpawn, action.RuntimePath, err)
		}
		return 0, nil
	}

	if err := cmd.Start(); err != nil {
		return ExitResolveFailure, fmt.Errorf("%w: start %s: %v", ErrSpawn, action.RuntimePath, err)
	}
	// Fire and forget: the dispatcher must not outlive a double-click.
	_ = cmd.Process.Release()
	return 0, nil
}
