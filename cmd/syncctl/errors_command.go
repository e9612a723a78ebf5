package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"syncctl/internal/api"
)

func newErrorsCommand(ctx *commandContext) *cobra.Command {
	var clear bool
	var folderID string

	cmd := &cobra.Command{
		Use:   "errors",
		Short: "Show or clear daemon errors",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *api.Client) error {
				out := cmd.OutOrStdout()
				callCtx := cmd.Context()

				if clear {
					if _, err := client.ClearErrors(callCtx); err != nil {
						return err
					}
					fmt.Fprintln(out, "Errors cleared")
					return nil
				}

				if folderID != "" {
					pullErrors, err := client.FolderErrors(callCtx, folderID)
					if err != nil {
						return err
					}
					items := pullErrors.Get("errors").Array()
					if len(items) == 0 {
						fmt.Fprintln(out, "No errors")
						return nil
					}
					for _, item := range items {
						fmt.Fprintf(out, "%s: %s\n", item.Get("path").StrOr("?"), item.Get("error").StrOr("?"))
					}
					return nil
				}

				errs, err := client.SystemErrors(callCtx)
				if err != nil {
					return err
				}
				items := errs.Get("errors").Array()
				if len(items) == 0 {
					fmt.Fprintln(out, "No errors")
					return nil
				}
				for _, item := range items {
					when := item.Get("when").StrOr("?")
					fmt.Fprintf(out, "[%s] %s\n", formatSince(when), item.Get("message").StrOr("?"))
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&clear, "clear", false, "Clear all accumulated errors")
	cmd.Flags().StringVar(&folderID, "folder", "", "Show pull errors for a single folder")
	return cmd
}
