package launchctx

import (
	"iter"
	"os"

	"github.com/shirou/gopsutil/v4/process"
)

// OSAncestry walks the real process tree via gopsutil, which uses the
// native Windows API rather than the unreliable Signal(0) probe.
type OSAncestry struct{}

// Ancestors yields ancestor executable names, nearest parent first. A
// process that cannot be inspected yields an empty name and the walk
// continues; a parent that cannot be found at all ends the walk.
func (OSAncestry) Ancestors() iter.Seq[string] {
	return func(yield func(string) bool) {
		p, err := process.NewProcess(int32(os.Getpid()))
		if err != nil {
			return
		}

		seen := map[int32]struct{}{p.Pid: {}}
		for {
			parent, err := p.Parent()
			if err != nil || parent == nil {
				return
			}
			if _, dup := seen[parent.Pid]; dup {
				// PID reuse can make the chain loop back on itself.
				return
			}
			seen[parent.Pid] = struct{}{}

			name, err := parent.Name()
			if err != nil {
				name = ""
			}
			if !yield(name) {
				return
			}
			p = parent
		}
	}
}
