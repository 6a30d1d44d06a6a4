package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	apiclient "github.com/donaldgifford/steam-price-tracker/internal/api/client"
	domain "github.com/donaldgifford/steam-price-tracker/pkg/types"
)

func gamesCmd() *cobra.Command {
	gamesRoot := &cobra.Command{
		Use:   "games",
		Short: "Manage tracked games",
		Long: "Manage the Steam games whose prices are polled. Each game is keyed\n" +
			"by its numeric Steam app ID and may carry extra Apprise notification URLs.",
	}

	gamesRoot.AddCommand(
		gamesListCmd(),
		gamesGetCmd(),
		gamesAddCmd(),
		gamesRemoveCmd(),
		gamesEnableCmd(),
		gamesDisableCmd(),
		gamesSubscribeCmd(),
		gamesUnsubscribeCmd(),
		gamesClearNotifyCmd(),
	)

	return gamesRoot
}

func gamesListCmd() *cobra.Command {
	var enabledOnly bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tracked games",
		Example: `  spt games list
  spt games list --enabled
  spt games list --output json`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			games, err := c.ListGames(context.Background(), enabledOnly)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(games)
			}
			if len(games) == 0 {
				fmt.Println("No games tracked.")
				return nil
			}
			return printGameTable(os.Stdout, games)
		},
	}
	cmd.Flags().BoolVar(&enabledOnly, "enabled", false, "only list enabled games")

	return cmd
}

func gamesGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <app-id>",
		Short: "Show a tracked game and its last known price",
		Example: `  spt games get 570
  spt games get 570 --output json`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			g, err := c.GetGame(context.Background(), args[0])
			if err != nil {
				return notTracked(args[0], err)
			}
			if jsonOutput() {
				return outputJSON(g)
			}
			return printGameDetail(os.Stdout, g)
		},
	}
}

func gamesAddCmd() *cobra.Command {
	var (
		name       string
		notifyURLs []string
		disabled   bool
	)

	cmd := &cobra.Command{
		Use:   "add <app-id>",
		Short: "Start tracking a game",
		Long: "Start tracking a Steam game by app ID. The first successful check\n" +
			"records a baseline price without sending a notification.",
		Example: `  spt games add 570 --name "Dota 2"
  spt games add 1091500 --notify "tgram://bottoken/chatid"`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			ng := apiclient.NewGame{
				AppID:      args[0],
				Name:       name,
				NotifyURLs: notifyURLs,
			}
			if disabled {
				enabled := false
				ng.Enabled = &enabled
			}

			c := newClient()
			created, err := c.AddGame(context.Background(), ng)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(created)
			}
			fmt.Printf("Tracking %s (%s).\n", created.DisplayName(), created.AppID)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "display name (defaults to the Steam store name)")
	cmd.Flags().StringArrayVar(&notifyURLs, "notify", nil, "Apprise URL to notify for this game (repeatable)")
	cmd.Flags().BoolVar(&disabled, "disabled", false, "add the game without polling it")

	return cmd
}

func gamesRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "remove <app-id>",
		Aliases: []string{"delete"},
		Short:   "Stop tracking a game",
		Example: `  spt games remove 570`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			if err := c.RemoveGame(context.Background(), args[0]); err != nil {
				return notTracked(args[0], err)
			}
			fmt.Printf("Game %s removed.\n", args[0])
			return nil
		},
	}
}

func gamesEnableCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "enable <app-id>",
		Short:   "Resume polling a game",
		Example: `  spt games enable 570`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runGameSetEnabled(args[0], true)
		},
	}
}

func gamesDisableCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "disable <app-id>",
		Short:   "Pause polling a game",
		Example: `  spt games disable 570`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runGameSetEnabled(args[0], false)
		},
	}
}

func gamesSubscribeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "subscribe <app-id> <apprise-url>",
		Short: "Add an Apprise notification URL to a game",
		Long: "Add an Apprise URL that receives this game's price alerts in addition\n" +
			"to the globally configured notifiers. Adding a URL twice is a no-op.",
		Example: `  spt games subscribe 570 "discord://webhook_id/webhook_token"`,
		Args:    cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			g, err := c.AddNotifyURL(context.Background(), args[0], args[1])
			if err != nil {
				return notTracked(args[0], err)
			}
			if jsonOutput() {
				return outputJSON(g)
			}
			fmt.Printf("%s now notifies %d URL(s).\n", g.DisplayName(), len(g.NotifyURLs))
			return nil
		},
	}
}

func gamesUnsubscribeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unsubscribe <app-id> <apprise-url|number>",
		Short: "Remove an Apprise notification URL from a game",
		Long: "Remove one of a game's Apprise URLs, given either in full or by its\n" +
			"number as listed by 'spt games get'.",
		Example: `  spt games unsubscribe 570 2
  spt games unsubscribe 570 "discord://webhook_id/webhook_token"`,
		Args: cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			ctx := context.Background()

			var (
				g   *domain.TrackedGame
				err error
			)
			if n, convErr := strconv.Atoi(args[1]); convErr == nil && n > 0 {
				g, err = c.RemoveNotifyURLAt(ctx, args[0], n)
			} else {
				g, err = c.RemoveNotifyURL(ctx, args[0], args[1])
			}
			if err != nil {
				return notSubscribed(args[0], err)
			}
			if jsonOutput() {
				return outputJSON(g)
			}
			fmt.Printf("%s now notifies %d URL(s).\n", g.DisplayName(), len(g.NotifyURLs))
			return nil
		},
	}
}

func gamesClearNotifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "clear-notify <app-id>",
		Short:   "Remove every Apprise notification URL from a game",
		Example: `  spt games clear-notify 570`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			g, err := c.ClearNotifyURLs(context.Background(), args[0])
			if err != nil {
				return notTracked(args[0], err)
			}
			if jsonOutput() {
				return outputJSON(g)
			}
			fmt.Printf("Cleared notification URLs for %s.\n", g.DisplayName())
			return nil
		},
	}
}

func runGameSetEnabled(appID string, enabled bool) error {
	c := newClient()
	if err := c.SetGameEnabled(context.Background(), appID, enabled); err != nil {
		return notTracked(appID, err)
	}

	action := "enabled"
	if !enabled {
		action = "disabled"
	}
	fmt.Printf("Game %s %s.\n", appID, action)
	return nil
}

// notSubscribed tells an unknown game apart from an unknown URL, both of
// which the server reports as 404.
func notSubscribed(appID string, err error) error {
	var apiErr *apiclient.APIError
	if errors.As(err, &apiErr) && strings.Contains(apiErr.Detail, "notify url") {
		return fmt.Errorf("game %s has no such notification URL", appID)
	}
	return notTracked(appID, err)
}

func notTracked(appID string, err error) error {
	if apiclient.IsNotFound(err) {
		return fmt.Errorf("game %s is not tracked", appID)
	}
	return err
}
