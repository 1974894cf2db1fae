// Package launchctx determines whether the dispatcher was started from an
// interactive console or from a GUI shell such as Explorer.
//
// The distinction drives the execute/view/prompt decision: a console user
// typed the command and expects it to run, while a double-click from a GUI
// shell warrants more caution. Detection walks the process ancestry looking
// for a configured GUI shell name and is repeated on every invocation;
// nothing is cached.
package launchctx

import (
	"iter"
	"strings"
)

// maxDepth bounds the ancestry walk. Real parent chains on Windows are a
// handful of processes; anything deeper indicates PID-reuse loops.
const maxDepth = 32

// Context describes how the current process was launched. Derived at
// dispatch time, never persisted.
type Context struct {
	// IsGUI is true when a configured GUI shell appears in the ancestry.
	IsGUI bool

	// ParentProcessName is the matched shell's executable name, or the
	// immediate parent's name when no shell matched. May be empty when the
	// parent could not be inspected.
	ParentProcessName string
}

// AncestryProvider yields the executable names of the current process's
// ancestors, nearest parent first. The sequence is lazy, finite, and
// consumed at most once; a name may be empty when the process could not be
// inspected (other security principal), which counts as no match.
type AncestryProvider interface {
	Ancestors() iter.Seq[string]
}

// Detect walks the process ancestry until it finds an executable named in
// guiShells or exhausts the chain. Shell names match case-insensitively,
// with or without the .exe suffix.
func Detect(provider AncestryProvider, guiShells []string) Context {
	shells := make(map[string]struct{}, len(guiShells))
	for _, s := range guiShells {
		shells[normalizeExe(s)] = struct{}{}
	}

	var parent string
	depth := 0
	for name := range provider.Ancestors() {
		depth++
		if depth > maxDepth {
			break
		}
		if parent == "" {
			parent = name
		}
		if name == "" {
			continue
		}
		if _, ok := shells[normalizeExe(name)]; ok {
			return Context{IsGUI: true, ParentProcessName: name}
		}
	}

	return Context{ParentProcessName: parent}
}

func normalizeExe(name string) string {
	return strings.TrimSuffix(strings.ToLower(name), ".exe")
}
