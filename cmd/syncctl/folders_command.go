package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"syncctl/internal/api"
)

func newFoldersCommand(ctx *commandContext) *cobra.Command {
	var folderID string

	cmd := &cobra.Command{
		Use:   "folders",
		Short: "List folders with sync state",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *api.Client) error {
				if folderID != "" {
					return runFolderDetail(cmd, client, folderID)
				}
				return runFolderList(cmd, client)
			})
		},
	}

	cmd.Flags().StringVar(&folderID, "id", "", "Show detailed status for a single folder")
	return cmd
}

func runFolderList(cmd *cobra.Command, client *api.Client) error {
	callCtx := cmd.Context()
	folders, err := client.Folders(callCtx)
	if err != nil {
		return err
	}
	stats, err := client.FolderStats(callCtx)
	if err != nil {
		return err
	}

	colorize := shouldColorize(cmd.OutOrStdout())
	rows := make([][]string, 0, folders.Len())
	for _, folder := range folders.Array() {
		id := folder.Get("id").StrOr("?")
		label := folder.Get("label").StrOr(id)

		state := paint("active", ansiGreen, colorize)
		if folder.Get("paused").Bool() {
			state = paint("paused", ansiYellow, colorize)
		}

		lastScan := "never"
		if scanned := stats.Get(id).Get("lastScan").Str(); scanned != "" {
			lastScan = formatSince(scanned)
		}

		rows = append(rows, []string{label, state, lastScan})
	}

	fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Folder", "State", "Last Scan"}, rows))
	return nil
}

func runFolderDetail(cmd *cobra.Command, client *api.Client, folderID string) error {
	callCtx := cmd.Context()
	status, err := client.FolderStatus(callCtx, folderID)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if err := writeJSON(out, status.Raw()); err != nil {
		return err
	}

	pullErrors, err := client.FolderErrors(callCtx, folderID)
	if err != nil {
		return err
	}
	if items := pullErrors.Get("errors").Array(); len(items) > 0 {
		fmt.Fprintf(out, "\nPull errors (%d):\n", len(items))
		for _, item := range items {
			fmt.Fprintf(out, "  %s: %s\n", item.Get("path").StrOr("?"), item.Get("error").StrOr("?"))
		}
	}
	return nil
}
