package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/winbang/winbang/cliout"
	"github.com/winbang/winbang/config"
	"github.com/winbang/winbang/dispatch"
	"github.com/winbang/winbang/logutil"
	"github.com/winbang/winbang/version"
)

func newRootCmd(info *version.Info, exitCode *int) *cobra.Command {
	var (
		debug  bool
		output string
	)

	cmd := &cobra.Command{
		Use:   "winbang <script> [args...]",
		Short: "Shebang-aware script dispatcher for Windows",
		Long: `Winbang executes, views, or prompts about script files without requiring
a file extension or an explicit interpreter invocation. The interpreter is
resolved from the script's shebang line (with env emulation) or from the
configured extension associations, and the launch context decides whether
to run immediately (console) or consult the user (GUI shell).

Everything after the script path is passed through to the script.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logutil.Setup(debug || os.Getenv(logutil.EnvDebug) == "true", false)
			return cliout.SetFormat(output)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			loaded := config.Load()
			if loaded.Err != nil {
				cliout.Warning("configuration at %s is invalid, using defaults: %v", loaded.Path, loaded.Err)
			}

			req := dispatch.Request{ScriptPath: args[0], PassedArgs: args[1:]}
			code, err := dispatch.Run(cmd.Context(), loaded.Config, req, dispatch.Options{})
			*exitCode = code
			return err
		},
	}

	// Flags after the script path belong to the script, not to winbang.
	cmd.Flags().SetInterspersed(false)

	addGlobalFlags(cmd.PersistentFlags(), &debug, &output)

	cmd.AddCommand(version.NewCommand(info, &output))
	cmd.AddCommand(newConfigCmd(&output))

	return cmd
}

func addGlobalFlags(fs *pflag.FlagSet, debug *bool, output *string) {
	fs.BoolVar(debug, "debug", false, "Enable debug logging (also via "+logutil.EnvDebug+"=true)")
	fs.StringVarP(output, "output", "o", "", "Output format (default, json, yaml)")
}

// report prints an error the way the console expects: one error line, plus
// an install hint when the failure was a missing interpreter.
func report(err error) {
	cliout.Error("%v", err)

	var notFound *dispatch.InterpreterNotFoundError
	if errors.As(err, &notFound) && notFound.Suggestion != "" {
		cliout.Hint(notFound.Suggestion)
	}
}
