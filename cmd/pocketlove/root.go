package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/terraincognita07/pocketlove/internal/config"
	"github.com/terraincognita07/pocketlove/internal/logging"
)

// Version is set at build time via ldflags.
var Version = "dev"

type rootOptions struct {
	verbose   bool
	logOutput io.Writer
}

func newRootCommand() *cobra.Command {
	options := &rootOptions{logOutput: os.Stderr}

	root := &cobra.Command{
		Use:           "pocketlove",
		Short:         "PocketLove is a private cycle and relationship tracker",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadDotEnv()
			options.logOutput = logging.Init(logging.Options{
				Level:   os.Getenv("LOG_LEVEL"),
				File:    os.Getenv("LOG_FILE"),
				Verbose: options.verbose,
			})
		},
	}
	root.PersistentFlags().BoolVarP(&options.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newServeCommand(options))
	root.AddCommand(newResetPasscodeCommand())
	return root
}
