package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"syncctl/internal/api"
)

func newEventsCommand(ctx *commandContext) *cobra.Command {
	var limit int
	var since int

	cmd := &cobra.Command{
		Use:   "events",
		Short: "Show recent daemon events",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *api.Client) error {
				events, err := client.Events(cmd.Context(), since, limit)
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				items := events.Array()
				shown := 0
				for i := len(items) - 1; i >= 0 && (limit <= 0 || shown < limit); i-- {
					event := items[i]
					fmt.Fprintf(out, "[%d] %s - %s\n",
						event.Get("id").Int(),
						formatSince(event.Get("time").StrOr("?")),
						event.Get("type").StrOr("?"))
					shown++
				}
				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", 20, "Number of events to show")
	cmd.Flags().IntVar(&since, "since", 0, "Only events after this event ID")
	return cmd
}
