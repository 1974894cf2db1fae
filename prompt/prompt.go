// Package prompt asks the user what to do with a script before dispatch.
//
// The prompt is synchronous and offers Execute, View, and Cancel. On
// Windows it renders as a message box so double-clicked scripts get a real
// dialog; elsewhere (and in development) it falls back to a terminal
// prompt. When neither a dialog nor a terminal is available the answer is
// View, the one choice that can never run code without consent.
package prompt

import (
	"os"
	"path/filepath"
	"runtime"

	"golang.org/x/term"
)

// Choice is the user's answer to the dispatch prompt.
type Choice int

const (
	// ChoiceExecute runs the script.
	ChoiceExecute Choice = iota
	// ChoiceView opens the script in the view runtime.
	ChoiceView
	// ChoiceCancel terminates with no side effect.
	ChoiceCancel
)

// String returns the choice name for logging.
func (c Choice) String() string {
	switch c {
	case ChoiceExecute:
		return "execute"
	case ChoiceView:
		return "view"
	default:
		return "cancel"
	}
}

// Prompter presents the Execute/View/Cancel choice for a script.
type Prompter interface {
	Choose(scriptPath string) (Choice, error)
}

// New returns the best prompter for the current environment.
func New() Prompter {
	if runtime.GOOS == "windows" {
		return &dialogPrompter{}
	}
	if term.IsTerminal(int(os.Stdin.Fd())) {
		return &terminalPrompter{in: os.Stdin, out: os.Stderr}
	}
	return viewOnly{}
}

// viewOnly answers View unconditionally. Used when there is no way to ask.
type viewOnly struct{}

func (viewOnly) Choose(string) (Choice, error) {
	return ChoiceView, nil
}

// displayName shortens a script path for prompt text.
func displayName(scriptPath string) string {
	return filepath.Base(scriptPath)
}
