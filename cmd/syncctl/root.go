package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var hostFlag string
	var prefsFlag string
	var verboseFlag bool

	ctx := newCommandContext(&hostFlag, &prefsFlag, &verboseFlag)

	rootCmd := &cobra.Command{
		Use:           "syncctl",
		Short:         "Monitor and control a sync daemon from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVar(&hostFlag, "host", "", "Daemon base URL (e.g. http://localhost:8384)")
	rootCmd.PersistentFlags().StringVarP(&prefsFlag, "config", "c", "", "Preferences file path")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Log API requests to stderr")

	rootCmd.AddCommand(newStatusCommand(ctx))
	rootCmd.AddCommand(newFoldersCommand(ctx))
	rootCmd.AddCommand(newDevicesCommand(ctx))
	rootCmd.AddCommand(newScanCommand(ctx))
	rootCmd.AddCommand(newErrorsCommand(ctx))
	rootCmd.AddCommand(newPendingCommand(ctx))
	rootCmd.AddCommand(newEventsCommand(ctx))
	for _, cmd := range newSystemCommands(ctx) {
		rootCmd.AddCommand(cmd)
	}
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
