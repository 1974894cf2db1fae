package shebang

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"
)

// shebangPrefix is the expected start of a shebang line.
const shebangPrefix = "#!"

// maxLineBytes bounds the first-line read so binary files cannot pull
// megabytes into memory before the NUL check rejects them.
const maxLineBytes = 4096

// envCommand is the wrapper emulated rather than spawned
// (e.g. #!/usr/bin/env bash).
const envCommand = "env"

// envSplitFlag introduces a multi-token interpreter spec
// (e.g. #!/usr/bin/env -S python3 -u).
const envSplitFlag = "-S"

// Spec is an interpreter specification extracted from a script's first
// line. Immutable once parsed.
type Spec struct {
	// RawLine is the trimmed first line, including the #! prefix.
	RawLine string

	// Interpreter is the interpreter name with any path prefix stripped.
	Interpreter string

	// Argv holds interpreter arguments named by the shebang, in order.
	Argv []string
}

// Parse extracts a Spec from a script's raw first line. It returns nil when
// the line is empty, contains a NUL (binary file), or does not start with
// the #! prefix.
func Parse(line string) *Spec {
	if strings.IndexByte(line, 0) >= 0 {
		return nil
	}

	line = strings.TrimRight(line, " \t\r\n")
	if !strings.HasPrefix(line, shebangPrefix) {
		return nil
	}

	fields := strings.Fields(line[len(shebangPrefix):])
	if len(fields) == 0 {
		return nil
	}

	interpreter := baseName(fields[0])
	argv := fields[1:]

	if interpreter == envCommand && len(argv) > 0 {
		if argv[0] == envSplitFlag {
			// env -S: everything after the flag is the interpreter and
			// its arguments.
			rest := argv[1:]
			if len(rest) == 0 {
				return nil
			}
			interpreter = baseName(rest[0])
			argv = rest[1:]
		} else {
			// Plain env: the next token names the interpreter. Other env
			// flags are not recognized and flow through verbatim.
			interpreter = baseName(argv[0])
			argv = argv[1:]
		}
	}

	argvCopy := make([]string, len(argv))
	copy(argvCopy, argv)

	return &Spec{
		RawLine:     line,
		Interpreter: interpreter,
		Argv:        argvCopy,
	}
}

// ParseFile reads the first line of the file at path and parses it. A file
// without a shebang yields (nil, nil); only I/O failures are errors.
func ParseFile(path string) (*Spec, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	line, err := firstLine(f)
	if err != nil {
		return nil, err
	}
	return Parse(line), nil
}

// firstLine reads up to maxLineBytes of the first line. A missing trailing
// newline is not an error; shebang lines are short.
func firstLine(r io.Reader) (string, error) {
	reader := bufio.NewReader(io.LimitReader(r, maxLineBytes))
	line, err := reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return line, nil
}

// baseName strips the path prefix from an interpreter token. Shebang lines
// use forward slashes, but backslashes show up in hand-edited files.
func baseName(token string) string {
	if i := strings.LastIndexAny(token, `/\`); i >= 0 {
		return token[i+1:]
	}
	return token
}
