package main

import "errors"

// KnownMetrics is the set of metric names exported by steam-price-tracker
// plus recording rule names referenced in dashboards and alerts.
var KnownMetrics = map[string]bool{
	// HTTP metrics.
	"spt_http_request_duration_seconds": true,
	"spt_http_requests_total":           true,

	// Health metrics.
	"spt_healthz_up": true,
	"spt_readyz_up":  true,

	// Check cycle metrics.
	"spt_check_cycles_total":           true,
	"spt_check_duration_seconds":       true,
	"spt_games_tracked":                true,
	"spt_price_changes_total":          true,
	"spt_last_check_timestamp_seconds": true,
	"spt_next_check_timestamp_seconds": true,

	// Steam API metrics.
	"spt_steam_requests_total":   true,
	"spt_steam_window_usage":     true,
	"spt_steam_quota_hits_total": true,
	"spt_fetch_failures_total":   true,

	// Notification metrics.
	"spt_notifications_sent_total":      true,
	"spt_notification_failures_total":   true,
	"spt_notification_duration_seconds": true,

	// Recording rules.
	"spt:http_requests:rate5m":         true,
	"spt:http_errors:rate5m":           true,
	"spt:steam_requests:rate5m":        true,
	"spt:steam_errors:rate5m":          true,
	"spt:price_changes:rate1h":         true,
	"spt:notification_failures:rate5m": true,

	// Standard Prometheus metrics referenced in dashboards.
	"up":                         true,
	"process_start_time_seconds": true,
}

// Config controls which artifacts the generator produces and where they go.
type Config struct {
	OutputDir        string
	DashboardEnabled bool
	RulesEnabled     bool
}

// DefaultConfig returns a Config that generates all artifacts into ../../deploy
// (relative to tools/dashgen/).
func DefaultConfig() Config {
	return Config{
		OutputDir:        "../../deploy",
		DashboardEnabled: true,
		RulesEnabled:     true,
	}
}

// Validate checks that the config is usable.
func (c Config) Validate() error {
	if c.OutputDir == "" {
		return errors.New("output directory must be set")
	}
	if !c.DashboardEnabled && !c.RulesEnabled {
		return errors.New("at least one of dashboard or rules must be enabled")
	}
	return nil
}
