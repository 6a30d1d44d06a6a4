package panels

import (
	"fmt"

	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// SteamRequestsRate returns a timeseries panel showing appdetails requests
// per second split by outcome.
func SteamRequestsRate() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Steam Requests").
		Description("Steam appdetails requests per second by outcome").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(`sum by (outcome) (spt:steam_requests:rate5m)`, "{{outcome}}", "A")).
		Unit("reqps").
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// WindowUsage returns a timeseries panel showing requests spent in the
// current rate limit window against the quota.
func WindowUsage() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Window Usage vs Quota").
		Description(fmt.Sprintf("Steam requests in the current window (quota: %d)", SteamWindowQuota)).
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(fmt.Sprintf(`spt_steam_window_usage{job=%q}`, Job), "usage", "A")).
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenYellowRed(float64(SteamWindowQuota)*0.8, float64(SteamWindowQuota))).
		ColorScheme(ColorSchemeThresholds()).
		DrawStyle(common.GraphDrawStyleLine)
}

// QuotaHits returns a stat panel showing how often the Steam quota was
// exhausted in the past 24 hours.
func QuotaHits() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Quota Hits (24h)").
		Description("Times the Steam request quota was exhausted in the last 24 hours").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(fmt.Sprintf(`increase(spt_steam_quota_hits_total{job=%q}[24h])`, Job), "", "A")).
		Thresholds(ThresholdsGreenYellowRed(1, 3)).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeArea)
}
