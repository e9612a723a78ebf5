package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"syncctl/internal/config"
)

func newConfigCommand(ctx *commandContext) *cobra.Command {
	var apiKey string
	var host string

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or save the daemon credentials",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if apiKey == "" && host == "" {
				prefs, err := ctx.ensurePrefs()
				if err != nil {
					return err
				}
				keyLabel := prefs.APIKey
				if keyLabel == "" {
					keyLabel = "(from daemon config)"
				}
				fmt.Fprintf(out, "API Key: %s\n", keyLabel)
				fmt.Fprintf(out, "Host: %s\n", config.ResolveHost("", prefs))
				return nil
			}

			update := config.Prefs{APIKey: apiKey, Host: host}
			if _, err := config.SavePrefs(ctx.prefsPath(), update); err != nil {
				return err
			}
			fmt.Fprintln(cmd.ErrOrStderr(), "Configuration saved")
			return nil
		},
	}

	cmd.Flags().StringVar(&apiKey, "api-key", "", "API key to save")
	cmd.Flags().StringVar(&host, "set-host", "", "Daemon base URL to save")
	return cmd
}
