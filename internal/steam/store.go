package steam

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

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/donaldgifford/steam-price-tracker/internal/metrics"
	domain "github.com/donaldgifford/steam-price-tracker/pkg/types"
)

const (
	defaultBaseURL  = "https://store.steampowered.com"
	defaultCountry  = "us"
	defaultLanguage = "english"
	appDetailsPath  = "/api/appdetails"
	defaultTimeout  = 15 * time.Second

	instrumentationName = "github.com/donaldgifford/steam-price-tracker/internal/steam"
)

// StoreClient implements PriceFetcher using the Steam Storefront
// appdetails endpoint.
type StoreClient struct {
	baseURL     string
	country     string
	language    string
	client      *http.Client
	rateLimiter *RateLimiter
	nowFunc     func() time.Time
	duration    metric.Float64Histogram
}

// StoreOption configures the StoreClient.
type StoreOption func(*StoreClient)

// WithBaseURL overrides the storefront base URL.
func WithBaseURL(u string) StoreOption {
	return func(c *StoreClient) {
		c.baseURL = u
	}
}

// WithCountry sets the store country code used for pricing.
func WithCountry(cc string) StoreOption {
	return func(c *StoreClient) {
		c.country = cc
	}
}

// WithLanguage sets the language for game names.
func WithLanguage(l string) StoreOption {
	return func(c *StoreClient) {
		c.language = l
	}
}

// WithTimeout replaces the default client with one using timeout d.
func WithTimeout(d time.Duration) StoreOption {
	return func(c *StoreClient) {
		if d > 0 {
			c.client = newHTTPClient(d)
		}
	}
}

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(hc *http.Client) StoreOption {
	return func(c *StoreClient) {
		c.client = hc
	}
}

// WithRateLimiter injects a rate limiter. When set, every FetchPrice call
// goes through Wait() first.
func WithRateLimiter(r *RateLimiter) StoreOption {
	return func(c *StoreClient) {
		c.rateLimiter = r
	}
}

// WithNowFunc overrides the clock used to stamp snapshots.
func WithNowFunc(f func() time.Time) StoreOption {
	return func(c *StoreClient) {
		c.nowFunc = f
	}
}

// NewStoreClient creates a new Steam Storefront client.
func NewStoreClient(opts ...StoreOption) *StoreClient {
	c := &StoreClient{
		baseURL:  defaultBaseURL,
		country:  defaultCountry,
		language: defaultLanguage,
		client:   newHTTPClient(defaultTimeout),
		nowFunc:  time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}

	// Global meter; delegates to the SDK once telemetry is set up.
	h, err := otel.Meter(instrumentationName).Float64Histogram(
		"steam.appdetails.duration",
		metric.WithUnit("s"),
		metric.WithDescription("Duration of Steam appdetails requests."),
	)
	if err == nil {
		c.duration = h
	}

	return c
}

// newHTTPClient returns a client whose transport emits OTel client spans.
func newHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout:   timeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}
}

type appDetailsEnvelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
}

type appData struct {
	Type          string         `json:"type"`
	Name          string         `json:"name"`
	SteamAppID    int64          `json:"steam_appid"`
	IsFree        bool           `json:"is_free"`
	PriceOverview *priceOverview `json:"price_overview"`
}

type priceOverview struct {
	Currency         string `json:"currency"`
	Initial          int64  `json:"initial"`
	Final            int64  `json:"final"`
	DiscountPercent  int    `json:"discount_percent"`
	InitialFormatted string `json:"initial_formatted"`
	FinalFormatted   string `json:"final_formatted"`
}

// FetchPrice implements PriceFetcher by querying appdetails for one app.
func (c *StoreClient) FetchPrice(
	ctx context.Context,
	appID string,
) (*domain.PriceSnapshot, error) {
	ctx, span := otel.Tracer(instrumentationName).Start(ctx, "steam.FetchPrice")
	defer span.End()
	span.SetAttributes(
		attribute.String("steam.app_id", appID),
		attribute.String("steam.country", c.country),
	)

	snap, err := c.fetch(ctx, appID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		metrics.SteamRequestsTotal.WithLabelValues(outcome(err)).Inc()
		return nil, err
	}

	metrics.SteamRequestsTotal.WithLabelValues("ok").Inc()
	return snap, nil
}

func (c *StoreClient) fetch(ctx context.Context, appID string) (*domain.PriceSnapshot, error) {
	if c.rateLimiter != nil {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			if errors.Is(err, ErrQuotaExhausted) {
				metrics.SteamQuotaHits.Inc()
			}
			return nil, fetchErr(appID, "rate limit", err)
		}
		metrics.SteamWindowUsage.Set(float64(c.rateLimiter.Used()))
		trace.SpanFromContext(ctx).SetAttributes(
			attribute.Int64("steam.quota_remaining", c.rateLimiter.Remaining()))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.buildURL(appID), http.NoBody)
	if err != nil {
		return nil, fetchErr(appID, "creating request", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.client.Do(req)
	if c.duration != nil {
		c.duration.Record(ctx, time.Since(start).Seconds())
	}
	if err != nil {
		return nil, fetchErr(appID, "executing request", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fetchErr(appID, "reading response body", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fetchErr(appID, "unexpected status",
			fmt.Errorf("steam API error (status %d): %s", resp.StatusCode, truncate(body, 200)))
	}

	return c.parse(appID, body)
}

func (c *StoreClient) parse(appID string, body []byte) (*domain.PriceSnapshot, error) {
	// The store answers "null" for throttled or malformed requests.
	if bytes.Equal(bytes.TrimSpace(body), []byte("null")) {
		return nil, fetchErr(appID, "parsing response", errors.New("empty response"))
	}

	var envelopes map[string]appDetailsEnvelope
	if err := json.Unmarshal(body, &envelopes); err != nil {
		return nil, fetchErr(appID, "parsing response", err)
	}

	env, ok := envelopes[appID]
	if !ok || !env.Success {
		return nil, fetchErr(appID, "lookup", ErrAppNotFound)
	}

	var data appData
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return nil, fetchErr(appID, "parsing app data", err)
	}

	if data.PriceOverview == nil {
		return nil, fetchErr(appID, "reading price", ErrNoPrice)
	}

	return toSnapshot(appID, &data, c.nowFunc()), nil
}

func (c *StoreClient) buildURL(appID string) string {
	params := url.Values{}
	params.Set("appids", appID)
	params.Set("cc", c.country)
	params.Set("l", c.language)
	return c.baseURL + appDetailsPath + "?" + params.Encode()
}

func toSnapshot(appID string, d *appData, now time.Time) *domain.PriceSnapshot {
	po := d.PriceOverview
	return &domain.PriceSnapshot{
		AppID: appID,
		Name:  d.Name,
		Price: domain.Price{
			Final:           po.Final,
			Initial:         po.Initial,
			DiscountPercent: po.DiscountPercent,
			Currency:        po.Currency,
		},
		FetchedAt: now,
	}
}

func outcome(err error) string {
	switch {
	case errors.Is(err, ErrQuotaExhausted):
		return "quota"
	case errors.Is(err, ErrAppNotFound):
		return "not_found"
	case errors.Is(err, ErrNoPrice):
		return "no_price"
	default:
		return "error"
	}
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
