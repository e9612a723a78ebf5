package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"syncctl/internal/api"
)

func newStatusCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show daemon status and overall sync progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *api.Client) error {
				callCtx := cmd.Context()
				status, err := client.SystemStatus(callCtx)
				if err != nil {
					return err
				}
				version, err := client.SystemVersion(callCtx)
				if err != nil {
					return err
				}
				completion, err := client.Completion(callCtx)
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Syncthing %s\n\n", version.Get("version").StrOr("unknown"))
				fmt.Fprintf(out, "Uptime: %s\n", formatUptime(status.Get("uptime").Int()))
				fmt.Fprintf(out, "Memory: %s / %s\n",
					formatBytes(status.Get("alloc").Int()),
					formatBytes(status.Get("sys").Int()))

				fmt.Fprintf(out, "\nSync: %.1f%% complete\n", completion.Get("completion").FloatOr(100))
				fmt.Fprintf(out, "Total: %s\n", formatBytes(completion.Get("globalBytes").Int()))
				if need := completion.Get("needBytes").Int(); need > 0 {
					fmt.Fprintf(out, "Need: %s\n", formatBytes(need))
				}
				return nil
			})
		},
	}
}
