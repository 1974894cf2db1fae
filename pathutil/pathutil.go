// Package pathutil resolves executables on the search path and suggests
// installs for interpreters that are missing from it.
package pathutil

import (
	"os/exec"
	"runtime"
	"strings"
)

// FindInPath searches PATH for an executable and returns its full path, or
// an empty string when it is not found. On Windows the .exe suffix is tried
// when the bare name does not resolve.
func FindInPath(name string) string {
	if name == "" {
		return ""
	}

	if path, err := exec.LookPath(name); err == nil {
		return path
	}

	if runtime.GOOS == "windows" && !strings.HasSuffix(strings.ToLower(name), ".exe") {
		if path, err := exec.LookPath(name + ".exe"); err == nil {
			return path
		}
	}

	return ""
}

// installSuggestions maps well-known interpreter names to install hints.
var installSuggestions = map[string]string{
	"python":  "Install from https://www.python.org/downloads/",
	"python3": "Install from https://www.python.org/downloads/",
	"node":    "Install from https://nodejs.org/",
	"deno":    "Install from https://deno.com/",
	"bun":     "Install from https://bun.sh/",
	"ts-node": "Install with: npm install -g ts-node",
	"ruby":    "Install from https://rubyinstaller.org/",
	"perl":    "Install from https://strawberryperl.com/",
	"bash":    "Install Git for Windows from https://gitforwindows.org/ (includes bash)",
	"pwsh":    "Install PowerShell from https://aka.ms/powershell",
	"lua":     "Install from https://www.lua.org/download.html",
	"php":     "Install from https://windows.php.net/download/",
}

// InstallSuggestion returns a short hint for installing a missing
// interpreter, or an empty string for unknown names.
func InstallSuggestion(name string) string {
	return installSuggestions[strings.TrimSuffix(strings.ToLower(name), ".exe")]
}
