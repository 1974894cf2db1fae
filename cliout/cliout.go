// Package cliout provides consistent console output formatting with ANSI
// colors and an optional JSON mode.
package cliout

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"

	"golang.org/x/term"
)

// Format represents the output format.
type Format string

const (
	// FormatDefault is the human-readable format.
	FormatDefault Format = "default"
	// FormatJSON is JSON format.
	FormatJSON Format = "json"
	// FormatYAML is YAML format.
	FormatYAML Format = "yaml"
)

// ANSI color codes for consistent styling
const (
	Reset = "\033[0m"
	Bold  = "\033[1m"
	Dim   = "\033[2m"

	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Cyan   = "\033[36m"
	Gray   = "\033[90m"
)

var (
	mu           sync.RWMutex
	globalFormat = FormatDefault
	noColor      = detectNoColor()
)

// detectNoColor suppresses color for non-terminal stdout and honors the
// NO_COLOR convention.
func detectNoColor() bool {
	if os.Getenv("NO_COLOR") != "" {
		return true
	}
	return !term.IsTerminal(int(os.Stdout.Fd()))
}

// SetFormat sets the global output format.
func SetFormat(format string) error {
	mu.Lock()
	defer mu.Unlock()
	switch format {
	case "", "default":
		globalFormat = FormatDefault
	case "json":
		globalFormat = FormatJSON
	case "yaml":
		globalFormat = FormatYAML
	default:
		return fmt.Errorf("invalid output format: %s (valid options: default, json, yaml)", format)
	}
	return nil
}

// GetFormat returns the current output format.
func GetFormat() Format {
	mu.RLock()
	defer mu.RUnlock()
	return globalFormat
}

// NoColor disables color output.
func NoColor() {
	mu.Lock()
	noColor = true
	mu.Unlock()
}

func colorize(color, s string) string {
	mu.RLock()
	defer mu.RUnlock()
	if noColor {
		return s
	}
	return color + s + Reset
}

// PrintJSON prints data as indented JSON to stdout.
func PrintJSON(data interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// Header prints a bold header with a divider.
func Header(text string) {
	fmt.Printf("\n%s\n", colorize(Bold, text))
	fmt.Println(strings.Repeat("=", len(text)))
}

// Success prints a success message.
func Success(format string, args ...interface{}) {
	fmt.Printf("%s %s\n", colorize(Green, "✓"), fmt.Sprintf(format, args...))
}

// Error prints an error message to stderr.
func Error(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "%s %s\n", colorize(Red, "error:"), fmt.Sprintf(format, args...))
}

// Warning prints a warning message to stderr.
func Warning(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "%s %s\n", colorize(Yellow, "warning:"), fmt.Sprintf(format, args...))
}

// Info prints an informational message.
func Info(format string, args ...interface{}) {
	fmt.Printf("%s\n", fmt.Sprintf(format, args...))
}

// Label prints an aligned label/value pair.
func Label(label, value string) {
	fmt.Printf("  %s %s\n", colorize(Gray, label+":"), value)
}

// Hint prints dimmed follow-up suggestions.
func Hint(hints ...string) {
	for _, h := range hints {
		fmt.Fprintf(os.Stderr, "  %s\n", colorize(Dim, h))
	}
}
