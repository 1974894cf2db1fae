package prompt

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"golang.org/x/term"
)

// dialogPrompter shows a Windows message box through PowerShell. Yes maps
// to Execute, No to View, Cancel to Cancel; the dialog text spells the
// mapping out since message-box button captions are fixed.
type dialogPrompter struct{}

func (d *dialogPrompter) Choose(scriptPath string) (Choice, error) {
	name := displayName(scriptPath)
	text := fmt.Sprintf("Run %s?\n\nYes runs the script, No opens it in a viewer.", name)

	command := fmt.Sprintf(
		"Add-Type -AssemblyName PresentationFramework; "+
			"[System.Windows.MessageBox]::Show(%s, 'Winbang', 'YesNoCancel', 'Question')",
		psQuote(text),
	)

	out, err := exec.Command("powershell", "-NoProfile", "-NonInteractive", "-Command", command).Output()
	if err != nil {
		// No usable PowerShell; degrade the same way New does.
		if term.IsTerminal(int(os.Stdin.Fd())) {
			return (&terminalPrompter{in: os.Stdin, out: os.Stderr}).Choose(scriptPath)
		}
		return ChoiceView, nil
	}

	switch strings.TrimSpace(string(out)) {
	case "Yes":
		return ChoiceExecute, nil
	case "No":
		return ChoiceView, nil
	default:
		return ChoiceCancel, nil
	}
}

// psQuote wraps s in PowerShell single quotes, doubling embedded ones.
func psQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
