package client

import (
	"context"

	domain "github.com/donaldgifford/steam-price-tracker/pkg/types"
)

// CheckResult is the response of a triggered check. Summary is nil when
// the check was started in the background.
type CheckResult struct {
	Status  string               `json:"status"`
	Summary *domain.CheckSummary `json:"summary,omitempty"`
}

// TriggerCheck starts a price check cycle. With wait set it blocks until
// the cycle finishes and returns its summary.
func (c *Client) TriggerCheck(ctx context.Context, wait bool) (*CheckResult, error) {
	path := "/api/v1/check"
	if wait {
		path += "?wait=true"
	}

	var res CheckResult
	if err := c.post(ctx, path, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}
