package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"syncctl/internal/api"
)

func newSystemCommands(ctx *commandContext) []*cobra.Command {
	restartCmd := &cobra.Command{
		Use:   "restart",
		Short: "Restart the daemon",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *api.Client) error {
				if _, err := client.Restart(cmd.Context()); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Restart initiated")
				return nil
			})
		},
	}

	shutdownCmd := &cobra.Command{
		Use:   "shutdown",
		Short: "Shut the daemon down",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *api.Client) error {
				if _, err := client.Shutdown(cmd.Context()); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Shutdown initiated")
				return nil
			})
		},
	}

	return []*cobra.Command{restartCmd, shutdownCmd}
}
