package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"syncctl/internal/api"
)

func newDevicesCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "devices",
		Short: "List devices with connection state",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *api.Client) error {
				callCtx := cmd.Context()
				devices, err := client.Devices(callCtx)
				if err != nil {
					return err
				}
				connections, err := client.Connections(callCtx)
				if err != nil {
					return err
				}
				stats, err := client.DeviceStats(callCtx)
				if err != nil {
					return err
				}

				colorize := shouldColorize(cmd.OutOrStdout())
				rows := make([][]string, 0, devices.Len())
				for _, device := range devices.Array() {
					id := device.Get("deviceID").StrOr("?")
					name := device.Get("name").StrOr(id)

					state := paint("offline", ansiRed, colorize)
					if connections.Get("connections").Get(id).Get("connected").Bool() {
						state = paint("connected", ansiGreen, colorize)
					}

					lastSeen := "never"
					if seen := stats.Get(id).Get("lastSeen").Str(); seen != "" {
						lastSeen = formatSince(seen)
					}

					rows = append(rows, []string{name, shortID(id), state, lastSeen})
				}

				fmt.Fprintln(cmd.OutOrStdout(),
					renderTable([]string{"Device", "ID", "State", "Last Seen"}, rows))
				return nil
			})
		},
	}
}
