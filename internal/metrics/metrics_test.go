package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetricsRegistered(t *testing.T) {
	t.Parallel()

	// Verify all metrics are non-nil (registered via promauto on package init).
	assert.NotNil(t, HTTPRequestDuration)
	assert.NotNil(t, HTTPRequestsTotal)
	assert.NotNil(t, HealthzUp)
	assert.NotNil(t, ReadyzUp)
	assert.NotNil(t, CheckCyclesTotal)
	assert.NotNil(t, CheckDuration)
	assert.NotNil(t, GamesTracked)
	assert.NotNil(t, PriceChangesTotal)
	assert.NotNil(t, SteamRequestsTotal)
	assert.NotNil(t, SteamWindowUsage)
	assert.NotNil(t, SteamQuotaHits)
	assert.NotNil(t, FetchFailuresTotal)
	assert.NotNil(t, NotificationsSentTotal)
	assert.NotNil(t, NotificationFailuresTotal)
	assert.NotNil(t, NotificationDuration)
}

func TestPriceChangesTotal_Labels(t *testing.T) {
	t.Parallel()

	before := testutil.ToFloat64(PriceChangesTotal.WithLabelValues("metrics-test"))
	PriceChangesTotal.WithLabelValues("metrics-test").Inc()
	after := testutil.ToFloat64(PriceChangesTotal.WithLabelValues("metrics-test"))

	assert.InDelta(t, before+1, after, 0.001)
}
