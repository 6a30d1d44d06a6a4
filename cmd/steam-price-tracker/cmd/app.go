package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/afero"

	"github.com/donaldgifford/steam-price-tracker/internal/config"
	"github.com/donaldgifford/steam-price-tracker/internal/engine"
	"github.com/donaldgifford/steam-price-tracker/internal/notify"
	"github.com/donaldgifford/steam-price-tracker/internal/steam"
	"github.com/donaldgifford/steam-price-tracker/internal/store"
	"github.com/donaldgifford/steam-price-tracker/pkg/logger"
)

// app holds the wired components shared by serve and check.
type app struct {
	cfg      *config.Config
	log      *slog.Logger
	store    store.Store
	notifier notify.Notifier
	engine   *engine.Engine
}

func loadConfig() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, logger.New(cfg.Logging.Level, cfg.Logging.Format), nil
}

// newApp opens and migrates the store, seeds configured games, and builds
// the engine.
func newApp(ctx context.Context, cfg *config.Config, log *slog.Logger) (*app, error) {
	s, err := openStore(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	if err := s.Migrate(ctx); err != nil {
		return nil, errors.Join(fmt.Errorf("migrating store: %w", err), s.Close())
	}

	seeded, err := store.SeedGames(ctx, s, cfg.TrackedGames())
	if err != nil {
		return nil, errors.Join(fmt.Errorf("seeding games: %w", err), s.Close())
	}
	if seeded > 0 {
		log.Info("seeded games from config", "count", seeded)
	}

	total, enabled, err := s.CountGames(ctx)
	if err != nil {
		return nil, errors.Join(fmt.Errorf("counting games: %w", err), s.Close())
	}
	log.Info("store ready", "games", total, "enabled", enabled)

	n := newNotifier(cfg, log)
	eng := engine.NewEngine(s, newFetcher(cfg), n,
		engine.WithLogger(log),
		engine.WithStaggerOffset(cfg.Schedule.Stagger),
	)

	return &app{cfg: cfg, log: log, store: s, notifier: n, engine: eng}, nil
}

func (a *app) close() {
	if err := a.store.Close(); err != nil {
		a.log.Error("closing store", "error", err)
	}
}

func openStore(ctx context.Context, cfg *config.Config, log *slog.Logger) (store.Store, error) {
	switch cfg.Storage.Backend {
	case config.StoragePostgres:
		db := cfg.Storage.Postgres
		log.Info("connecting to database", "host", db.Host, "name", db.Name)
		s, err := store.NewPostgresStore(ctx, db.DSN(), store.WithPoolSize(db.PoolSize))
		if err != nil {
			return nil, fmt.Errorf("connecting to database: %w", err)
		}
		return s, nil
	default:
		log.Info("using state file", "path", cfg.Storage.File.Path)
		s, err := store.NewFileStore(afero.NewOsFs(), cfg.Storage.File.Path)
		if err != nil {
			return nil, fmt.Errorf("opening state file: %w", err)
		}
		return s, nil
	}
}

func newFetcher(cfg *config.Config) *steam.StoreClient {
	sc := cfg.Steam
	rl := steam.NewRateLimiter(
		sc.RateLimit.PerSecond,
		sc.RateLimit.Burst,
		sc.RateLimit.Quota,
		sc.RateLimit.Window,
	)

	return steam.NewStoreClient(
		steam.WithBaseURL(sc.BaseURL),
		steam.WithCountry(sc.Country),
		steam.WithLanguage(sc.Language),
		steam.WithTimeout(sc.Timeout),
		steam.WithRateLimiter(rl),
	)
}

// newNotifier builds a fan-out over every configured backend, or a no-op
// notifier when none is configured.
func newNotifier(cfg *config.Config, log *slog.Logger) notify.Notifier {
	n := cfg.Notifications

	var backends []notify.Notifier
	if n.Apprise.Enabled() {
		backends = append(backends, notify.NewAppriseNotifier(n.Apprise.URL, n.Apprise.Key, n.Apprise.URLs))
	}
	if n.Telegram.Enabled() {
		backends = append(backends, notify.NewTelegramNotifier(n.Telegram.APIURL, n.Telegram.BotToken, n.Telegram.ChatID))
	}
	if n.Discord.Enabled() {
		backends = append(backends, notify.NewDiscordNotifier(n.Discord.WebhookURL))
	}

	if len(backends) == 0 {
		log.Warn("no notification backend configured, price changes will only be logged")
		return notify.NewNoOpNotifier(log)
	}

	multi := notify.NewMultiNotifier(log, backends...)
	log.Info("notifications enabled", "backends", multi.Backends())
	return multi
}
