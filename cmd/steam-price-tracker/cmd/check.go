package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run one price check cycle and exit",
	Long: "Fetches every enabled game once, sends notifications for changed prices, " +
		"stores the new prices, and prints a summary. Suited to running from an " +
		"external scheduler instead of serve.",
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, _ []string) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := newApp(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer a.close()

	summary, err := a.engine.RunCheck(ctx)
	if summary != nil {
		fmt.Fprintf(cmd.OutOrStdout(),
			"checked %d, changed %d, baselined %d, fetch failures %d, notify failures %d (%s)\n",
			summary.Checked, summary.Changed, summary.Baselined,
			summary.FetchFailures, summary.NotifyFailures, summary.Duration.Round(time.Millisecond),
		)
	}
	if err != nil {
		return fmt.Errorf("check cycle: %w", err)
	}
	return nil
}
