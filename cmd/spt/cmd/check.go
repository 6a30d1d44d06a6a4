package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func checkCmd() *cobra.Command {
	var wait bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Trigger a price check",
		Long: "Ask the server to poll every enabled game now. By default the check\n" +
			"runs in the background; use --wait to block until it finishes and\n" +
			"print the cycle summary.",
		Example: `  spt check
  spt check --wait
  spt check --wait --output json`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			res, err := c.TriggerCheck(context.Background(), wait)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(res)
			}
			if res.Summary == nil {
				fmt.Println("Price check started.")
				return nil
			}
			return printCheckSummary(os.Stdout, res.Summary)
		},
	}
	cmd.Flags().BoolVar(&wait, "wait", false, "wait for the check to finish")

	return cmd
}
