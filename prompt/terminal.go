package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// terminalPrompter reads a single-key answer from an interactive terminal.
type terminalPrompter struct {
	in  *os.File
	out io.Writer
}

func (t *terminalPrompter) Choose(scriptPath string) (Choice, error) {
	fmt.Fprintf(t.out, "Run %s? [r]un / [v]iew / [c]ancel: ", displayName(scriptPath))

	fd := int(t.in.Fd())
	state, err := term.MakeRaw(fd)
	if err != nil {
		// Not a real terminal after all; fall back to a buffered line.
		return t.chooseLine()
	}
	defer func() {
		_ = term.Restore(fd, state)
		fmt.Fprintln(t.out)
	}()

	buf := make([]byte, 1)
	if _, err := t.in.Read(buf); err != nil {
		return ChoiceCancel, fmt.Errorf("read prompt answer: %w", err)
	}
	return mapAnswer(buf[0]), nil
}

func (t *terminalPrompter) chooseLine() (Choice, error) {
	line, err := bufio.NewReader(t.in).ReadString('\n')
	if err != nil && line == "" {
		return ChoiceCancel, nil
	}
	for _, c := range []byte(line) {
		if c != ' ' && c != '\t' {
			return mapAnswer(c), nil
		}
	}
	return ChoiceCancel, nil
}

func mapAnswer(c byte) Choice {
	switch c {
	case 'r', 'R', 'y', 'Y':
		return ChoiceExecute
	case 'v', 'V', 'o', 'O':
		return ChoiceView
	default:
		return ChoiceCancel
	}
}
