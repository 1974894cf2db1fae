// Package argv expands argument templates into the argv passed to the
// resolved runtime.
//
// Recognized placeholders:
//
//	@{script}       absolute script path with backslashes doubled
//	@{script_unix}  absolute script path with backslashes as forward slashes
//	@{passed_args}  the dispatcher's pass-through arguments, in order
//
// The legacy $script form from early configurations is accepted as a
// deprecated alias: a word that is exactly $script (or ${script}) becomes
// the unescaped script path, kept as a single argument even when the path
// contains spaces. No other variable references are expanded; they stay
// verbatim. Unknown @{...} placeholders are left verbatim so future tokens
// do not break old binaries. Expansion is plain find-and-replace; no shell
// re-quoting happens beyond the two path-escaping variants.
package argv

import (
	"fmt"
	"strings"

	"mvdan.cc/sh/v3/shell"
)

const (
	placeholderScript     = "@{script}"
	placeholderScriptUnix = "@{script_unix}"
	placeholderPassedArgs = "@{passed_args}"

	// legacyScriptToken is the deprecated $script alias, replaced after word
	// splitting so the substituted path is never field-split.
	legacyScriptToken = "$script"
)

// Expand splits an override template into words (honoring shell quoting)
// and substitutes the placeholders.
func Expand(template, scriptPath string, passedArgs []string) ([]string, error) {
	// Variable references are preserved through the split untouched;
	// ${script} normalizes to the $script spelling.
	keepVar := func(name string) string { return "$" + name }

	words, err := shell.Fields(template, keepVar)
	if err != nil {
		return nil, fmt.Errorf("split argv template: %w", err)
	}

	escaped := strings.ReplaceAll(scriptPath, `\`, `\\`)
	unix := strings.ReplaceAll(scriptPath, `\`, `/`)

	out := make([]string, 0, len(words)+len(passedArgs))
	for _, w := range words {
		switch w {
		case placeholderPassedArgs:
			// A standalone token splices the arguments in place.
			out = append(out, passedArgs...)
			continue
		case legacyScriptToken:
			out = append(out, scriptPath)
			continue
		}
		w = strings.ReplaceAll(w, placeholderScript, escaped)
		w = strings.ReplaceAll(w, placeholderScriptUnix, unix)
		if strings.Contains(w, placeholderPassedArgs) {
			w = strings.ReplaceAll(w, placeholderPassedArgs, strings.Join(passedArgs, " "))
		}
		out = append(out, w)
	}
	return out, nil
}

// Default returns the argv used when no override template is configured:
// the shebang's interpreter arguments, the script path, then the
// pass-through arguments.
func Default(scriptPath string, interpreterArgv, passedArgs []string) []string {
	out := make([]string, 0, len(interpreterArgv)+1+len(passedArgs))
	out = append(out, interpreterArgv...)
	out = append(out, scriptPath)
	out = append(out, passedArgs...)
	return out
}

// ContainsScriptPlaceholder reports whether a template references the
// script path in any recognized form. Viewer templates without one get the
// path appended.
func ContainsScriptPlaceholder(template string) bool {
	return strings.Contains(template, placeholderScript) ||
		strings.Contains(template, placeholderScriptUnix) ||
		strings.Contains(template, legacyScriptToken) ||
		strings.Contains(template, "${script}")
}
