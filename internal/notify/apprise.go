package notify

import (
	"context"
	"errors"
	"slices"
	"strings"

	domain "github.com/donaldgifford/steam-price-tracker/pkg/types"
)

const backendApprise = "apprise"

// AppriseNotifier implements Notifier by posting to an Apprise API server.
// With a config key it notifies the server's stored configuration; URLs
// (global plus the game's own) are sent through the stateless endpoint.
type AppriseNotifier struct {
	baseURL string
	key     string
	urls    []string
	opts    options
}

// NewAppriseNotifier creates a notifier for the Apprise API at baseURL.
func NewAppriseNotifier(baseURL, key string, urls []string, opts ...Option) *AppriseNotifier {
	return &AppriseNotifier{
		baseURL: strings.TrimRight(baseURL, "/"),
		key:     key,
		urls:    urls,
		opts:    newOptions(opts),
	}
}

type appriseRequest struct {
	URLs   []string `json:"urls,omitempty"`
	Title  string   `json:"title"`
	Body   string   `json:"body"`
	Type   string   `json:"type"`
	Format string   `json:"format"`
}

// Name implements Notifier.
func (*AppriseNotifier) Name() string {
	return backendApprise
}

// Notify implements Notifier.
func (a *AppriseNotifier) Notify(ctx context.Context, msg *Message) error {
	base := appriseRequest{
		Title:  msg.Title,
		Body:   msg.Text,
		Type:   appriseType(msg.Direction),
		Format: "text",
	}

	var errs []error
	if a.key != "" {
		errs = append(errs, postJSON(ctx, a.opts.client, backendApprise, a.baseURL+"/notify/"+a.key, base))
	}

	if urls := mergeURLs(a.urls, msg.NotifyURLs); len(urls) > 0 {
		req := base
		req.URLs = urls
		errs = append(errs, postJSON(ctx, a.opts.client, backendApprise, a.baseURL+"/notify", req))
	}

	return errors.Join(errs...)
}

func appriseType(d domain.Direction) string {
	if d == domain.DirectionDecrease {
		return "success"
	}
	return "info"
}

// mergeURLs returns global followed by the game's URLs, deduplicated.
func mergeURLs(global, perGame []string) []string {
	out := make([]string, 0, len(global)+len(perGame))
	for _, u := range slices.Concat(global, perGame) {
		if u == "" || slices.Contains(out, u) {
			continue
		}
		out = append(out, u)
	}
	return out
}
