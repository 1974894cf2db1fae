// Package logutil configures the process-wide structured logger.
//
// Logging goes to stderr as text by default. Setting WINBANG_DEBUG=true
// enables debug level and mirrors log output to a debug.log file next to
// the user configuration, which is where support asks users to look when a
// double-clicked script silently does nothing.
package logutil

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sync"
)

// EnvDebug enables debug logging and the file sink when set to "true".
const EnvDebug = "WINBANG_DEBUG"

var (
	mu           sync.RWMutex
	globalLogger *slog.Logger
	debugFile    *os.File
)

func init() {
	Setup(os.Getenv(EnvDebug) == "true", false)
}

// Setup configures the global logger. With debug enabled, output is also
// appended to the debug log file when one can be opened. Safe for
// concurrent use.
func Setup(debug, structured bool) {
	mu.Lock()
	defer mu.Unlock()

	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	var out io.Writer = os.Stderr
	if debug {
		if f := openDebugFile(); f != nil {
			if debugFile != nil {
				_ = debugFile.Close()
			}
			debugFile = f
			out = io.MultiWriter(os.Stderr, f)
		}
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if structured {
		handler = slog.NewJSONHandler(out, opts)
	} else {
		handler = slog.NewTextHandler(out, opts)
	}

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}

// Logger returns the global logger.
func Logger() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return globalLogger
}

// DebugLogPath returns the path of the debug log file, or an empty string
// when no suitable directory exists.
func DebugLogPath() string {
	dir := stateDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "debug.log")
}

func stateDir() string {
	if runtime.GOOS == "windows" {
		if ad := os.Getenv("APPDATA"); ad != "" {
			return filepath.Join(ad, "Winbang")
		}
		return ""
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "winbang")
}

func openDebugFile() *os.File {
	path := DebugLogPath()
	if path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil
	}
	return f
}
