package panels

import (
	"fmt"

	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// LastCheck returns a stat panel showing time since the last completed
// check cycle.
func LastCheck() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Last Check").
		Description("Time since the last completed price check cycle").
		Datasource(DSRef()).
		Height(StatHeight).
		Span(StatWidth).
		WithTarget(PromQuery(
			fmt.Sprintf(`time() - spt_last_check_timestamp_seconds{job=%q}`, Job),
			"", "A",
		)).
		Unit("s").
		Thresholds(ThresholdsGreenYellowRed(2*3600, 6*3600)).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeNone)
}

// NextCheck returns a stat panel showing time until the next scheduled
// check cycle.
func NextCheck() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Next Check").
		Description("Time until the next scheduled price check cycle").
		Datasource(DSRef()).
		Height(StatHeight).
		Span(StatWidth).
		WithTarget(PromQuery(
			fmt.Sprintf(`spt_next_check_timestamp_seconds{job=%q} - time()`, Job),
			"", "A",
		)).
		Unit("s").
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeNone)
}

// GamesTracked returns a stat panel showing the number of enabled games.
func GamesTracked() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Games Tracked").
		Description("Enabled games at the start of the last cycle").
		Datasource(DSRef()).
		Height(StatHeight).
		Span(StatWidth).
		WithTarget(PromQuery(fmt.Sprintf(`spt_games_tracked{job=%q}`, Job), "", "A")).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemeThresholds()).
		GraphMode(common.BigValueGraphModeArea)
}

// FetchFailures returns a stat panel showing per-game fetch failures in the
// past 24 hours.
func FetchFailures() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Fetch Failures (24h)").
		Description("Games whose price could not be fetched in the last 24 hours").
		Datasource(DSRef()).
		Height(StatHeight).
		Span(StatWidth).
		WithTarget(PromQuery(fmt.Sprintf(`increase(spt_fetch_failures_total{job=%q}[24h])`, Job), "", "A")).
		Thresholds(ThresholdsGreenYellowRed(1, 10)).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeArea)
}

// PriceChanges returns a timeseries panel showing detected price changes per
// hour split by direction.
func PriceChanges() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Price Changes / h").
		Description("Detected price changes per hour by direction").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(`sum by (direction) (spt:price_changes:rate1h) * 3600`, "{{direction}}", "A")).
		FillOpacity(10).
		LineWidth(2).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// CycleDuration returns a timeseries panel showing the p95 check cycle
// duration.
func CycleDuration() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Cycle Duration (p95)").
		Description("95th percentile price check cycle duration").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			fmt.Sprintf(
				`histogram_quantile(0.95, sum(rate(spt_check_duration_seconds_bucket{job=%q}[1h])) by (le))`,
				Job,
			),
			"p95",
			"A",
		)).
		Unit("s").
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}
