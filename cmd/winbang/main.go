package main

import (
	"os"

	"github.com/winbang/winbang/version"
)

// Build-time values injected via ldflags.
var (
	buildVersion = "0.0.0-dev"
	buildDate    = "unknown"
	gitCommit    = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	info := version.New("winbang")
	info.Version = buildVersion
	info.BuildDate = buildDate
	info.GitCommit = gitCommit

	exitCode := 0
	root := newRootCmd(info, &exitCode)
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		report(err)
		if exitCode == 0 {
			exitCode = 1
		}
	}
	return exitCode
}
