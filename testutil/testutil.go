// Package testutil provides common testing utilities: script fixtures and
// stdout capture.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// WriteScript writes a script fixture into a per-test temp directory and
// returns its absolute path.
func WriteScript(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o700); err != nil {
		t.Fatalf("write script fixture %s: %v", name, err)
	}
	return path
}

// WriteScriptSized writes a script fixture padded with comment lines to the
// requested size in bytes, for exercising size-threshold behavior.
func WriteScriptSized(t *testing.T, name, firstLine string, size int64) string {
	t.Helper()

	var b strings.Builder
	b.WriteString(firstLine)
	b.WriteByte('\n')
	for int64(b.Len()) < size {
		b.WriteString("# padding\n")
	}

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(b.String()), 0o700); err != nil {
		t.Fatalf("write sized script fixture %s: %v", name, err)
	}
	return path
}

// CaptureOutput captures stdout during function execution. The original
// stdout is always restored, even when fn returns an error.
func CaptureOutput(t *testing.T, fn func() error) string {
	t.Helper()

	origStdout := os.Stdout

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}

	os.Stdout = w

	outCh := make(chan string, 1)
	go func() {
		var output strings.Builder
		buf := make([]byte, 1024)
		for {
			n, readErr := r.Read(buf)
			if n > 0 {
				output.Write(buf[:n])
			}
			if readErr != nil {
				break
			}
		}
		outCh <- output.String()
	}()

	fnErr := fn()

	if err := w.Close(); err != nil {
		t.Logf("failed to close pipe writer: %v", err)
	}
	os.Stdout = origStdout

	output := <-outCh

	if fnErr != nil {
		t.Logf("captured function error: %v", fnErr)
	}

	return output
}
