package notify

import (
	"context"
	"errors"
	"log/slog"

	"github.com/donaldgifford/steam-price-tracker/internal/metrics"
)

// MultiNotifier fans a message out to every backend. A failing backend does
// not stop delivery to the rest; all failures are joined.
type MultiNotifier struct {
	backends []Notifier
	log      *slog.Logger
}

// NewMultiNotifier wraps the given backends.
func NewMultiNotifier(log *slog.Logger, backends ...Notifier) *MultiNotifier {
	return &MultiNotifier{backends: backends, log: log}
}

// Name implements Notifier.
func (*MultiNotifier) Name() string {
	return "multi"
}

// Backends returns the wrapped backend names.
func (m *MultiNotifier) Backends() []string {
	names := make([]string, len(m.backends))
	for i, b := range m.backends {
		names[i] = b.Name()
	}
	return names
}

// Notify implements Notifier.
func (m *MultiNotifier) Notify(ctx context.Context, msg *Message) error {
	var errs []error
	for _, b := range m.backends {
		if err := b.Notify(ctx, msg); err != nil {
			metrics.NotificationFailuresTotal.WithLabelValues(b.Name()).Inc()
			m.log.Warn("notification failed",
				"backend", b.Name(),
				"app_id", msg.AppID,
				"error", err,
			)
			errs = append(errs, err)
			continue
		}
		metrics.NotificationsSentTotal.WithLabelValues(b.Name()).Inc()
		m.log.Debug("notification sent", "backend", b.Name(), "app_id", msg.AppID)
	}
	return errors.Join(errs...)
}
