// Package engine runs the price check cycle: fetch each tracked game's
// price, diff it against stored state, notify on change, persist.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/donaldgifford/steam-price-tracker/internal/metrics"
	"github.com/donaldgifford/steam-price-tracker/internal/notify"
	"github.com/donaldgifford/steam-price-tracker/internal/steam"
	"github.com/donaldgifford/steam-price-tracker/internal/store"
	domain "github.com/donaldgifford/steam-price-tracker/pkg/types"
)

const (
	defaultStaggerOffset = time.Second

	instrumentationName = "github.com/donaldgifford/steam-price-tracker/internal/engine"
)

// ErrCheckInProgress is returned by RunCheck when another cycle is running.
var ErrCheckInProgress = errors.New("check already in progress")

// Engine orchestrates the fetch, diff, notify and persist cycle.
type Engine struct {
	store    store.Store
	fetcher  steam.PriceFetcher
	notifier notify.Notifier
	log      *slog.Logger

	staggerOffset time.Duration

	running atomic.Bool
}

// NewEngine creates a new Engine with injected dependencies.
func NewEngine(
	s store.Store,
	f steam.PriceFetcher,
	n notify.Notifier,
	opts ...EngineOption,
) *Engine {
	eng := &Engine{
		store:         s,
		fetcher:       f,
		notifier:      n,
		log:           slog.Default(),
		staggerOffset: defaultStaggerOffset,
	}
	for _, opt := range opts {
		opt(eng)
	}
	return eng
}

// EngineOption configures the Engine.
type EngineOption func(*Engine)

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) EngineOption {
	return func(e *Engine) {
		e.log = l
	}
}

// WithStaggerOffset sets the delay between checking each game.
func WithStaggerOffset(d time.Duration) EngineOption {
	return func(e *Engine) {
		e.staggerOffset = d
	}
}

// Running reports whether a check cycle is in flight.
func (eng *Engine) Running() bool {
	return eng.running.Load()
}

// RunCheck executes one full check cycle over all enabled games. Games are
// processed sequentially; a failure for one game is logged and counted and
// the cycle moves on. The returned error covers the cycle as a whole
// (listing games, cancellation, persisting state); the summary is returned
// whenever the cycle started.
func (eng *Engine) RunCheck(ctx context.Context) (*domain.CheckSummary, error) {
	if !eng.running.CompareAndSwap(false, true) {
		return nil, ErrCheckInProgress
	}
	defer eng.running.Store(false)

	ctx, span := otel.Tracer(instrumentationName).Start(ctx, "engine.RunCheck",
		trace.WithSpanKind(trace.SpanKindInternal))
	defer span.End()

	log := eng.log
	if sc := span.SpanContext(); sc.IsValid() {
		log = log.With("trace_id", sc.TraceID().String())
	}

	start := time.Now()
	summary := &domain.CheckSummary{}

	games, err := eng.store.ListGames(ctx, true)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("listing games: %w", err)
	}
	metrics.GamesTracked.Set(float64(len(games)))
	log.Info("check cycle starting", "games", len(games))

	var errs []error
	for i := range games {
		if ctx.Err() != nil {
			errs = append(errs, ctx.Err())
			break
		}

		if err := eng.checkGame(ctx, &games[i], summary); err != nil {
			errs = append(errs, err)
		}

		// Stagger between games to stay under the storefront throttle.
		if i < len(games)-1 && eng.staggerOffset > 0 {
			select {
			case <-ctx.Done():
			case <-time.After(eng.staggerOffset):
			}
		}
	}

	summary.Duration = time.Since(start)
	metrics.CheckCyclesTotal.Inc()
	metrics.CheckDuration.Observe(summary.Duration.Seconds())
	metrics.LastCheckTimestamp.Set(float64(time.Now().Unix()))

	span.SetAttributes(
		attribute.Int("check.games", len(games)),
		attribute.Int("check.changed", summary.Changed),
		attribute.Int("check.fetch_failures", summary.FetchFailures),
	)

	log.Info("check cycle complete",
		"checked", summary.Checked,
		"changed", summary.Changed,
		"baselined", summary.Baselined,
		"fetch_failures", summary.FetchFailures,
		"notify_failures", summary.NotifyFailures,
		"duration", summary.Duration,
	)

	err = errors.Join(errs...)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return summary, err
}

// checkGame runs fetch, diff, notify and persist for one game. Only a
// failure to persist is returned; fetch and delivery failures are counted
// in the summary.
func (eng *Engine) checkGame(
	ctx context.Context,
	g *domain.TrackedGame,
	summary *domain.CheckSummary,
) error {
	snap, err := eng.fetcher.FetchPrice(ctx, g.AppID)
	if err != nil {
		summary.FetchFailures++
		metrics.FetchFailuresTotal.Inc()
		eng.log.Warn("price fetch failed, skipping game",
			"app_id", g.AppID,
			"name", g.Name,
			"error", err,
		)
		return nil
	}
	summary.Checked++

	if snap.Name != "" && snap.Name != g.Name {
		eng.log.Info("game name updated", "app_id", g.AppID, "name", snap.Name)
	}

	if g.LastPrice == nil {
		summary.Baselined++
		eng.log.Info("baseline price recorded",
			"app_id", g.AppID,
			"name", snap.Name,
			"price", notify.FormatAmount(snap.Price.Currency, snap.Price.Final),
		)
	} else if ev := Diff(g, snap); ev != nil {
		summary.Changed++
		if err := eng.sendChange(ctx, ev); err != nil {
			summary.NotifyFailures++
		}
	}

	// Persist after the notification attempt regardless of its outcome. A
	// cancelled cycle must not drop the write once an alert may have gone
	// out, or the same change is announced again after restart.
	err = eng.store.RecordPrice(context.WithoutCancel(ctx), g.AppID, snap.Name, snap.Price, snap.FetchedAt)
	if errors.Is(err, store.ErrNotFound) {
		eng.log.Info("game removed during check, skipping", "app_id", g.AppID)
		return nil
	}
	if err != nil {
		eng.log.Error("recording price failed", "app_id", g.AppID, "error", err)
		return fmt.Errorf("recording price for %s: %w", g.AppID, err)
	}
	return nil
}
