// Package assoc matches scripts against the configured association table.
//
// Matching runs in three fixed tiers; tier order is authoritative over
// configuration order, but within a tier the first configured entry wins:
//
//  1. shebang interpreter matches and the association's extension matches
//  2. shebang interpreter matches and the association has no extension
//  3. extension matches and the association has no shebang constraint
//
// A script whose shebang matches nothing falls through to a PATH search for
// the interpreter it names. A script with neither a usable shebang nor a
// matching extension is a resolution dead-end.
package assoc

import (
	"errors"
	"strings"

	"github.com/winbang/winbang/config"
)

// ErrNoAssociation is the resolution dead-end: the script has no shebang
// line and no extension association matches it.
var ErrNoAssociation = errors.New("no shebang line and no matching extension association")

// Resolution is the outcome of association matching. Exactly one of
// Association and PathSearch is meaningful.
type Resolution struct {
	// Association is the matched configuration entry, nil for a PATH search.
	Association *config.FileAssociation

	// PathSearch directs the dispatcher to resolve Interpreter on PATH.
	PathSearch bool

	// Interpreter is the shebang interpreter driving a PATH search.
	Interpreter string
}

// Resolve matches a script's extension (lowercase, no dot) and optional
// shebang interpreter name against the ordered association list.
func Resolve(associations []config.FileAssociation, ext, interpreter string) (Resolution, error) {
	matchInterpreter := func(a *config.FileAssociation) bool {
		return a.ShebangInterpreter != "" && strings.EqualFold(a.ShebangInterpreter, interpreter)
	}
	matchExtension := func(a *config.FileAssociation) bool {
		return a.Extension != "" && ext != "" && strings.EqualFold(a.Extension, ext)
	}

	tiers := []func(*config.FileAssociation) bool{
		func(a *config.FileAssociation) bool {
			return interpreter != "" && matchInterpreter(a) && matchExtension(a)
		},
		func(a *config.FileAssociation) bool {
			return interpreter != "" && matchInterpreter(a) && a.Extension == ""
		},
		func(a *config.FileAssociation) bool {
			return a.ShebangInterpreter == "" && matchExtension(a)
		},
	}

	for _, match := range tiers {
		for i := range associations {
			if match(&associations[i]) {
				return Resolution{Association: &associations[i]}, nil
			}
		}
	}

	if interpreter != "" {
		return Resolution{PathSearch: true, Interpreter: interpreter}, nil
	}
	return Resolution{}, ErrNoAssociation
}
