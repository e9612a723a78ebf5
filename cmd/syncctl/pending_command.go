package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"syncctl/internal/api"
)

func newPendingCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "pending",
		Short: "Show devices and folders awaiting acceptance",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *api.Client) error {
				callCtx := cmd.Context()
				devices, err := client.PendingDevices(callCtx)
				if err != nil {
					return err
				}
				folders, err := client.PendingFolders(callCtx)
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				colorize := shouldColorize(out)

				fmt.Fprintln(out, renderSectionHeader("Pending Devices", colorize))
				deviceIDs := devices.Keys()
				if len(deviceIDs) == 0 {
					fmt.Fprintln(out, "  (none)")
				}
				for _, id := range deviceIDs {
					name := devices.Get(id).Get("name").StrOr("unknown")
					fmt.Fprintf(out, "  %s (%s)\n", name, shortID(id))
				}

				fmt.Fprintln(out)
				fmt.Fprintln(out, renderSectionHeader("Pending Folders", colorize))
				offered := false
				for _, deviceID := range folders.Keys() {
					byFolder := folders.Get(deviceID)
					for _, folderID := range byFolder.Keys() {
						label := byFolder.Get(folderID).Get("label").StrOr(folderID)
						fmt.Fprintf(out, "  %s from %s\n", label, shortID(deviceID))
						offered = true
					}
				}
				if !offered {
					fmt.Fprintln(out, "  (none)")
				}
				return nil
			})
		},
	}
}
