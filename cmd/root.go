package cmd

import (
	"cfbPickem/config"

	"github.com/spf13/cobra"
)

// RootCommand creates and returns the root command.
func RootCommand() *cobra.Command {
	var rt *Runtime

	rootCmd := &cobra.Command{
		Use:           "cfbpickem",
		Short:         "College football pick'em backend",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		rt, err = newRuntime(cfg)
		return err
	}

	runtime := func() *Runtime { return rt }
	rootCmd.AddCommand(
		serveCommand(runtime),
		resetCommand(runtime),
		refreshLinesCommand(runtime),
		recordResultsCommand(runtime),
	)
	for _, c := range rootCmd.Commands() {
		closeAfterRun(c, runtime)
	}
	return rootCmd
}

// closeAfterRun releases the runtime once the command returns, whether or
// not it failed.
func closeAfterRun(cmd *cobra.Command, runtime func() *Runtime) {
	run := cmd.RunE
	if run == nil {
		return
	}
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		defer func() {
			if rt := runtime(); rt != nil {
				rt.Close()
			}
		}()
		return run(cmd, args)
	}
}
