// Package dashboards assembles Grafana dashboard definitions from panel builders.
package dashboards

import (
	"github.com/grafana/grafana-foundation-sdk/go/dashboard"

	"github.com/donaldgifford/steam-price-tracker/tools/dashgen/panels"
)

// BuildOverview constructs the SPT Overview dashboard with all metric rows.
func BuildOverview() *dashboard.DashboardBuilder {
	b := dashboard.NewDashboardBuilder("SPT Overview").
		Uid("spt-overview").
		Tags([]string{"spt", "steam-price-tracker"}).
		Refresh("1m").
		Time("now-24h", "now").
		Timezone("browser").
		Editable().
		Tooltip(dashboard.DashboardCursorSyncCrosshair).
		WithVariable(datasourceVar())

	b.WithRow(dashboard.NewRowBuilder("Overview").
		WithPanel(panels.HealthzStat()).
		WithPanel(panels.ReadyzStat()).
		WithPanel(panels.QuotaGauge()).
		WithPanel(panels.UptimeStat()))

	b.WithRow(dashboard.NewRowBuilder("Price Checks").
		WithPanel(panels.LastCheck()).
		WithPanel(panels.NextCheck()).
		WithPanel(panels.GamesTracked()).
		WithPanel(panels.FetchFailures()).
		WithPanel(panels.PriceChanges()).
		WithPanel(panels.CycleDuration()))

	b.WithRow(dashboard.NewRowBuilder("Steam API").
		WithPanel(panels.SteamRequestsRate()).
		WithPanel(panels.WindowUsage()).
		WithPanel(panels.QuotaHits()))

	b.WithRow(dashboard.NewRowBuilder("Notifications").
		WithPanel(panels.NotificationsRate()).
		WithPanel(panels.NotificationLatency()).
		WithPanel(panels.NotificationFailures()))

	b.WithRow(dashboard.NewRowBuilder("HTTP").
		WithPanel(panels.RequestRate()).
		WithPanel(panels.LatencyPercentiles()).
		WithPanel(panels.ErrorRate()))

	return b
}

func datasourceVar() *dashboard.DatasourceVariableBuilder {
	return dashboard.NewDatasourceVariableBuilder("datasource").
		Label("Datasource").
		Type("prometheus")
}
