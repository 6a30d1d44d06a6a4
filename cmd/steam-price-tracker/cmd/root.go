// Package cmd implements the CLI commands for steam-price-tracker.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/donaldgifford/steam-price-tracker/internal/config"
)

var (
	cfgFile string
	envFile string
)

var rootCmd = &cobra.Command{
	Use:   "steam-price-tracker",
	Short: "Watch Steam store prices and announce changes",
	Long: "Polls the Steam storefront for every tracked game, compares each price with the " +
		"last one seen, and sends a notification through Apprise, Telegram, or Discord " +
		"whenever a price drops or rises.",
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		return config.LoadDotEnv(envFile)
	},
}

func init() {
	rootCmd.PersistentFlags().
		StringVar(&cfgFile, "config", "config.yaml", "config file path (empty to configure from the environment only)")
	rootCmd.PersistentFlags().
		StringVar(&envFile, "env-file", ".env", "dotenv file loaded before the config")

	rootCmd.AddCommand(versionCommand())
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
