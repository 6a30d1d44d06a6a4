package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/donaldgifford/steam-price-tracker/internal/metrics"
)

const defaultTimeout = 10 * time.Second

// Option configures the HTTP-based notifiers.
type Option func(*options)

type options struct {
	client *http.Client
}

func newOptions(opts []Option) options {
	o := options{client: &http.Client{Timeout: defaultTimeout}}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) {
		o.client = c
	}
}

// postJSON sends payload to endpoint and maps every failure to a
// DeliveryError. A non-2xx response body is included in the error, truncated.
// The endpoint never appears in the error since it may carry a bot token or
// webhook secret.
func postJSON(
	ctx context.Context,
	client *http.Client,
	backend string,
	endpoint string,
	payload any,
) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return &DeliveryError{Backend: backend, Err: fmt.Errorf("marshaling payload: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return &DeliveryError{Backend: backend, Err: fmt.Errorf("creating request: %w", redact(err))}
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := client.Do(req)
	metrics.NotificationDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		return &DeliveryError{Backend: backend, Err: fmt.Errorf("sending request: %w", redact(err))}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return &DeliveryError{
			Backend:    backend,
			StatusCode: resp.StatusCode,
			Err:        errors.New("rate limited"),
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, readErr := io.ReadAll(io.LimitReader(resp.Body, 512))
		if readErr != nil {
			return &DeliveryError{
				Backend:    backend,
				StatusCode: resp.StatusCode,
				Err:        fmt.Errorf("body unreadable: %w", readErr),
			}
		}
		return &DeliveryError{
			Backend:    backend,
			StatusCode: resp.StatusCode,
			Err:        errors.New(string(bytes.TrimSpace(respBody))),
		}
	}

	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

// redact replaces the URL inside a *url.Error with its scheme and host.
func redact(err error) error {
	var uerr *url.Error
	if !errors.As(err, &uerr) {
		return err
	}
	return &url.Error{Op: uerr.Op, URL: redactedEndpoint(uerr.URL), Err: uerr.Err}
}

func redactedEndpoint(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return maskedSecret
	}
	return u.Scheme + "://" + u.Host + "/" + maskedSecret
}
