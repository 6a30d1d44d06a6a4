package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func notifyCmd() *cobra.Command {
	notifyRoot := &cobra.Command{
		Use:   "notify",
		Short: "Check notification delivery",
	}
	notifyRoot.AddCommand(notifyTestCmd())
	return notifyRoot
}

func notifyTestCmd() *cobra.Command {
	var appID string

	cmd := &cobra.Command{
		Use:   "test",
		Short: "Send a test notification",
		Long: "Ask the server to send a sample message through every configured\n" +
			"backend. With --game the game's own Apprise URLs receive it too.",
		Example: `  spt notify test
  spt notify test --game 570`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			res, err := c.TestNotify(context.Background(), appID)
			if err != nil {
				if appID != "" {
					return notTracked(appID, err)
				}
				return err
			}
			if jsonOutput() {
				return outputJSON(res)
			}
			fmt.Printf("Test notification sent via %s", strings.Join(res.Backends, ", "))
			if res.NotifyURLs > 0 {
				fmt.Printf(" and %d game URL(s)", res.NotifyURLs)
			}
			fmt.Println(".")
			return nil
		},
	}
	cmd.Flags().StringVar(&appID, "game", "", "also notify this game's Apprise URLs")

	return cmd
}
