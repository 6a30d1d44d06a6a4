package client

import (
	"context"
	"net/url"
	"strconv"

	domain "github.com/donaldgifford/steam-price-tracker/pkg/types"
)

// NewGame contains the fields the API accepts when tracking a game.
type NewGame struct {
	AppID      string   `json:"app_id"`
	Name       string   `json:"name,omitempty"`
	NotifyURLs []string `json:"notify_urls,omitempty"`
	Enabled    *bool    `json:"enabled,omitempty"`
}

// ListGames returns tracked games, optionally only enabled ones.
func (c *Client) ListGames(ctx context.Context, enabledOnly bool) ([]domain.TrackedGame, error) {
	path := "/api/v1/games"
	if enabledOnly {
		path += "?enabled=true"
	}

	var games []domain.TrackedGame
	if err := c.get(ctx, path, &games); err != nil {
		return nil, err
	}
	return games, nil
}

// GetGame returns a single tracked game.
func (c *Client) GetGame(ctx context.Context, appID string) (*domain.TrackedGame, error) {
	var g domain.TrackedGame
	if err := c.get(ctx, "/api/v1/games/"+appID, &g); err != nil {
		return nil, err
	}
	return &g, nil
}

// AddGame starts tracking a game.
func (c *Client) AddGame(ctx context.Context, g NewGame) (*domain.TrackedGame, error) {
	var created domain.TrackedGame
	if err := c.post(ctx, "/api/v1/games", g, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// RemoveGame stops tracking a game.
func (c *Client) RemoveGame(ctx context.Context, appID string) error {
	return c.del(ctx, "/api/v1/games/"+appID, nil)
}

// SetGameEnabled enables or disables polling for a game.
func (c *Client) SetGameEnabled(ctx context.Context, appID string, enabled bool) error {
	body := map[string]bool{"enabled": enabled}
	return c.put(ctx, "/api/v1/games/"+appID+"/enabled", body, nil)
}

// AddNotifyURL subscribes an Apprise URL to a game and returns the updated
// game.
func (c *Client) AddNotifyURL(ctx context.Context, appID, notifyURL string) (*domain.TrackedGame, error) {
	var g domain.TrackedGame
	body := map[string]string{"url": notifyURL}
	if err := c.post(ctx, "/api/v1/games/"+appID+"/notify-urls", body, &g); err != nil {
		return nil, err
	}
	return &g, nil
}

// RemoveNotifyURL unsubscribes an Apprise URL from a game and returns the
// updated game.
func (c *Client) RemoveNotifyURL(ctx context.Context, appID, notifyURL string) (*domain.TrackedGame, error) {
	return c.removeNotifyURLs(ctx, appID, url.Values{"url": {notifyURL}})
}

// RemoveNotifyURLAt unsubscribes the URL at the 1-based position shown by
// GetGame.
func (c *Client) RemoveNotifyURLAt(ctx context.Context, appID string, index int) (*domain.TrackedGame, error) {
	return c.removeNotifyURLs(ctx, appID, url.Values{"index": {strconv.Itoa(index)}})
}

// ClearNotifyURLs removes every Apprise URL from a game.
func (c *Client) ClearNotifyURLs(ctx context.Context, appID string) (*domain.TrackedGame, error) {
	return c.removeNotifyURLs(ctx, appID, url.Values{"all": {"true"}})
}

func (c *Client) removeNotifyURLs(ctx context.Context, appID string, q url.Values) (*domain.TrackedGame, error) {
	var g domain.TrackedGame
	if err := c.del(ctx, "/api/v1/games/"+appID+"/notify-urls?"+q.Encode(), &g); err != nil {
		return nil, err
	}
	return &g, nil
}
