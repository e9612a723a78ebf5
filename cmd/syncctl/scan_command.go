package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"syncctl/internal/api"
)

func newScanCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "scan [folder]",
		Short: "Trigger a rescan of one folder, or all folders",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *api.Client) error {
				out := cmd.OutOrStdout()
				if len(args) == 1 {
					if _, err := client.Scan(cmd.Context(), args[0]); err != nil {
						return err
					}
					fmt.Fprintf(out, "Scan triggered for folder: %s\n", args[0])
					return nil
				}
				if _, err := client.ScanAll(cmd.Context()); err != nil {
					return err
				}
				fmt.Fprintln(out, "Scan triggered for all folders")
				return nil
			})
		},
	}
}
