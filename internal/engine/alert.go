package engine

import (
	"context"

	"github.com/donaldgifford/steam-price-tracker/internal/metrics"
	"github.com/donaldgifford/steam-price-tracker/internal/notify"
	domain "github.com/donaldgifford/steam-price-tracker/pkg/types"
)

// sendChange formats and delivers a ChangeEvent. Delivery failures are
// logged and reported to the caller but never stop the cycle.
func (eng *Engine) sendChange(ctx context.Context, ev *domain.ChangeEvent) error {
	metrics.PriceChangesTotal.WithLabelValues(string(ev.Direction)).Inc()

	eng.log.Info("price change detected",
		"app_id", ev.AppID,
		"name", ev.Name,
		"direction", ev.Direction,
		"old", notify.FormatAmount(ev.Old.Currency, ev.Old.Final),
		"new", notify.FormatAmount(ev.New.Currency, ev.New.Final),
	)

	msg := notify.NewPriceChangeMessage(ev)
	if err := eng.notifier.Notify(ctx, msg); err != nil {
		eng.log.Error("notification failed",
			"app_id", ev.AppID,
			"backend", eng.notifier.Name(),
			"error", err,
		)
		return err
	}
	return nil
}
