package notify

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/steam-price-tracker/internal/metrics"
)

type stubNotifier struct {
	name  string
	err   error
	calls int
}

func (s *stubNotifier) Name() string { return s.name }

func (s *stubNotifier) Notify(context.Context, *Message) error {
	s.calls++
	return s.err
}

func TestMultiNotifier_Notify(t *testing.T) {
	t.Parallel()

	boom := &DeliveryError{Backend: "multi-test-failing", StatusCode: 500, Err: errors.New("boom")}
	ok := &stubNotifier{name: "multi-test-ok"}
	failing := &stubNotifier{name: "multi-test-failing", err: boom}
	last := &stubNotifier{name: "multi-test-last"}

	sentBefore := testutil.ToFloat64(metrics.NotificationsSentTotal.WithLabelValues("multi-test-ok"))
	failBefore := testutil.ToFloat64(metrics.NotificationFailuresTotal.WithLabelValues("multi-test-failing"))

	m := NewMultiNotifier(slog.New(slog.NewTextHandler(io.Discard, nil)), ok, failing, last)
	err := m.Notify(context.Background(), NewPriceChangeMessage(testEvent(1000, 800, 0, 0)))

	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, ok.calls)
	assert.Equal(t, 1, failing.calls)
	assert.Equal(t, 1, last.calls, "a failing backend does not stop the fan-out")

	assert.InDelta(t, sentBefore+1,
		testutil.ToFloat64(metrics.NotificationsSentTotal.WithLabelValues("multi-test-ok")), 0.001)
	assert.InDelta(t, failBefore+1,
		testutil.ToFloat64(metrics.NotificationFailuresTotal.WithLabelValues("multi-test-failing")), 0.001)

	assert.Equal(t, []string{"multi-test-ok", "multi-test-failing", "multi-test-last"}, m.Backends())
}

func TestMultiNotifier_Empty(t *testing.T) {
	t.Parallel()

	m := NewMultiNotifier(slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, m.Notify(context.Background(), &Message{}))
}

func TestDeliveryError(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection refused")
	withStatus := &DeliveryError{Backend: "telegram", StatusCode: 502, Err: cause}
	assert.Equal(t, "telegram delivery failed (status 502): connection refused", withStatus.Error())
	assert.ErrorIs(t, withStatus, cause)

	noStatus := &DeliveryError{Backend: "apprise", Err: cause}
	assert.Equal(t, "apprise delivery failed: connection refused", noStatus.Error())
}
