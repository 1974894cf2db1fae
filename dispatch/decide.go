package dispatch

import (
	"fmt"

	"github.com/winbang/winbang/assoc"
	"github.com/winbang/winbang/config"
	"github.com/winbang/winbang/launchctx"
	"github.com/winbang/winbang/prompt"
)

// Operation is the terminal state of the dispatch decision. The prompt
// state resolves into one of these before any process is built.
type Operation int

const (
	// OpExecute runs the script with its execution runtime.
	OpExecute Operation = iota
	// OpView opens the script in its view runtime.
	OpView
	// OpCancel does nothing; the user declined at the prompt.
	OpCancel
)

// String returns the operation name for logging.
func (o Operation) String() string {
	switch o {
	case OpExecute:
		return "execute"
	case OpView:
		return "view"
	default:
		return "cancel"
	}
}

// Decide runs the operation state machine. Command-line invocations never
// prompt: a console context always executes. In GUI context the matched
// association's default_operation wins, then the global one, then prompt.
func Decide(cfg *config.Config, res assoc.Resolution, lctx launchctx.Context, prompter prompt.Prompter, scriptPath string) (Operation, error) {
	if !lctx.IsGUI {
		return OpExecute, nil
	}

	switch configuredOperation(cfg, res) {
	case config.OpExecute:
		return OpExecute, nil
	case config.OpView:
		return OpView, nil
	default:
		choice, err := prompter.Choose(scriptPath)
		if err != nil {
			return OpCancel, fmt.Errorf("prompt: %w", err)
		}
		switch choice {
		case prompt.ChoiceExecute:
			return OpExecute, nil
		case prompt.ChoiceView:
			return OpView, nil
		default:
			return OpCancel, nil
		}
	}
}

func configuredOperation(cfg *config.Config, res assoc.Resolution) config.Operation {
	if res.Association != nil && res.Association.DefaultOperation != "" {
		return res.Association.DefaultOperation
	}
	if cfg.DefaultOperation != "" {
		return cfg.DefaultOperation
	}
	return config.OpPrompt
}
