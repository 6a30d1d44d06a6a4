package client

import (
	"context"
	"net/url"
)

// NotifyTestResult is the response of a test notification.
type NotifyTestResult struct {
	Status     string   `json:"status"`
	Backends   []string `json:"backends"`
	NotifyURLs int      `json:"notify_urls"`
}

// TestNotify sends a sample notification through the server's configured
// backends. A non-empty appID also delivers to that game's notify URLs.
func (c *Client) TestNotify(ctx context.Context, appID string) (*NotifyTestResult, error) {
	path := "/api/v1/notify/test"
	if appID != "" {
		path += "?" + url.Values{"app_id": {appID}}.Encode()
	}

	var res NotifyTestResult
	if err := c.post(ctx, path, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}
