package main

import (
	"github.com/spf13/cobra"
	"github.com/terraincognita07/pocketlove/internal/cli"
	"github.com/terraincognita07/pocketlove/internal/config"
)

func newResetPasscodeCommand() *cobra.Command {
	options := cli.ResetOptions{}
	var dbPath string

	cmd := &cobra.Command{
		Use:   "reset-passcode",
		Short: "Reset the privacy lock passcode",
		Long: `Replaces the privacy lock passcode of the local profile.
By default a temporary 6 digit passcode is generated and printed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if dbPath == "" {
				dbPath = config.ResolveDBPath()
			}
			options.Out = cmd.OutOrStdout()
			return cli.RunResetPasscodeCommand(dbPath, options)
		},
	}
	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite database path (defaults to DB_PATH)")
	cmd.Flags().BoolVar(&options.Prompt, "prompt", false, "read the new passcode from the terminal without echo")
	cmd.Flags().BoolVar(&options.Disable, "disable", false, "remove the passcode and turn the lock off")
	return cmd
}
