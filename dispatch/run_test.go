package dispatch

import (
	"context"
	"iter"
	"runtime"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/winbang/winbang/assoc"
	"github.com/winbang/winbang/config"
	"github.com/winbang/winbang/prompt"
	"github.com/winbang/winbang/testutil"
)

type fakeAncestry []string

func (f fakeAncestry) Ancestors() iter.Seq[string] { return slices.Values(f) }

type recordingNotifier struct {
	titles   []string
	messages []string
}

func (n *recordingNotifier) Send(title, message string) error {
	n.titles = append(n.titles, title)
	n.messages = append(n.messages, message)
	return nil
}

func consoleOpts() Options {
	return Options{
		Ancestry: fakeAncestry{"pwsh.exe", "conhost.exe"},
		Prompter: &fakePrompter{choice: prompt.ChoiceCancel},
		Notifier: &recordingNotifier{},
	}
}

func TestRunConsoleExecuteMirrorsExitCode(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on /bin/sh")
	}

	path := testutil.WriteScript(t, "exit7", "#!/bin/sh\nexit 7\n")
	cfg := &config.Config{GUIShells: []string{"explorer.exe"}}

	code, err := Run(context.Background(), cfg, Request{ScriptPath: path}, consoleOpts())
	require.NoError(t, err)
	assert.Equal(t, 7, code)
}

func TestRunConsolePassesArguments(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on /bin/sh")
	}

	// The script exits with its argument count; three passed arguments
	// prove the pass-through ordering survives the pipeline.
	path := testutil.WriteScript(t, "argc", "#!/bin/sh\nexit $#\n")
	cfg := &config.Config{GUIShells: []string{"explorer.exe"}}

	req := Request{ScriptPath: path, PassedArgs: []string{"a", "b", "c"}}
	code, err := Run(context.Background(), cfg, req, consoleOpts())
	require.NoError(t, err)
	assert.Equal(t, 3, code)
}

func TestRunGUICancel(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on /bin/sh")
	}

	path := testutil.WriteScript(t, "tool", "#!/bin/sh\nexit 1\n")
	cfg := &config.Config{
		GUIShells:        []string{"explorer.exe"},
		DefaultOperation: config.OpPrompt,
	}
	opts := Options{
		Ancestry: fakeAncestry{"explorer.exe"},
		Prompter: &fakePrompter{choice: prompt.ChoiceCancel},
		Notifier: &recordingNotifier{},
	}

	code, err := Run(context.Background(), cfg, Request{ScriptPath: path}, opts)
	require.NoError(t, err)
	assert.Equal(t, 0, code, "cancel is a clean exit, the script never runs")
}

func TestRunResolveFailureNotifiesInGUI(t *testing.T) {
	// Extensionless file without a shebang: nothing to resolve against.
	path := testutil.WriteScript(t, "mystery", "just text\n")
	cfg := &config.Config{GUIShells: []string{"explorer.exe"}}
	notifier := &recordingNotifier{}
	opts := Options{
		Ancestry: fakeAncestry{"explorer.exe"},
		Prompter: &fakePrompter{choice: prompt.ChoiceCancel},
		Notifier: notifier,
	}

	code, err := Run(context.Background(), cfg, Request{ScriptPath: path}, opts)
	assert.ErrorIs(t, err, assoc.ErrNoAssociation)
	assert.Equal(t, ExitResolveFailure, code)
	require.Len(t, notifier.messages, 1)
	assert.Equal(t, "Winbang", notifier.titles[0])
}

func TestRunResolveFailureSilentInConsole(t *testing.T) {
	path := testutil.WriteScript(t, "mystery", "just text\n")
	cfg := &config.Config{GUIShells: []string{"explorer.exe"}}
	notifier := &recordingNotifier{}
	opts := consoleOpts()
	opts.Notifier = notifier

	code, err := Run(context.Background(), cfg, Request{ScriptPath: path}, opts)
	assert.Error(t, err)
	assert.Equal(t, ExitResolveFailure, code)
	assert.Empty(t, notifier.messages, "console failures print, they do not toast")
}

func TestRunMissingScript(t *testing.T) {
	cfg := &config.Config{GUIShells: []string{"explorer.exe"}}

	code, err := Run(context.Background(), cfg, Request{ScriptPath: "no-such-script"}, consoleOpts())
	assert.Error(t, err)
	assert.Equal(t, ExitResolveFailure, code)
}

func TestUserMessage(t *testing.T) {
	err := &InterpreterNotFoundError{Name: "ruby", Suggestion: "Install from https://rubyinstaller.org/"}
	msg := UserMessage(err)
	assert.Contains(t, msg, "ruby")
	assert.Contains(t, msg, "rubyinstaller.org")
}
