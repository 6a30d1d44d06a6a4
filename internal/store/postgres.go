package store

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domain "github.com/donaldgifford/steam-price-tracker/pkg/types"
)

const defaultPoolSize = 4

// PostgresStore implements Store using pgxpool (connection-pooled PostgreSQL).
type PostgresStore struct {
	pool *pgxpool.Pool
}

// PostgresOption configures the connection pool.
type PostgresOption func(*pgxpool.Config)

// WithPoolSize caps the number of pooled connections.
func WithPoolSize(n int) PostgresOption {
	return func(cfg *pgxpool.Config) {
		if n > 0 {
			cfg.MaxConns = int32(min(n, math.MaxInt32)) //nolint:gosec // bounded above
		}
	}
}

// NewPostgresStore creates a new PostgresStore with connection pooling.
func NewPostgresStore(
	ctx context.Context,
	connString string,
	opts ...PostgresOption,
) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	cfg.MaxConns = defaultPoolSize
	for _, opt := range opts {
		opt(cfg)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close gracefully shuts down the connection pool.
func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

// Ping verifies the database connection is alive.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Migrate applies pending SQL schema migrations.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	return RunMigrations(ctx, s.pool)
}

// AddGame inserts a game unless its app ID is already tracked. When the game
// exists, g is overwritten with the stored row.
func (s *PostgresStore) AddGame(ctx context.Context, g *domain.TrackedGame) (bool, error) {
	urls := g.NotifyURLs
	if urls == nil {
		urls = []string{}
	}

	args := pgx.NamedArgs{
		"app_id":      g.AppID,
		"name":        g.Name,
		"notify_urls": urls,
		"enabled":     g.Enabled,
	}

	err := s.pool.QueryRow(ctx, queryAddGame, args).Scan(&g.AddedAt, &g.UpdatedAt)
	if err == nil {
		return true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return false, fmt.Errorf("adding game %s: %w", g.AppID, err)
	}

	existing, err := s.GetGame(ctx, g.AppID)
	if err != nil {
		return false, err
	}
	*g = *existing
	return false, nil
}

// GetGame retrieves a tracked game by app ID.
func (s *PostgresStore) GetGame(ctx context.Context, appID string) (*domain.TrackedGame, error) {
	g, err := scanGame(s.pool.QueryRow(ctx, queryGetGame, appID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting game %s: %w", appID, err)
	}
	return g, nil
}

// ListGames returns all games, optionally filtered to enabled only.
func (s *PostgresStore) ListGames(
	ctx context.Context,
	enabledOnly bool,
) ([]domain.TrackedGame, error) {
	query := queryListGamesAll
	if enabledOnly {
		query = queryListGamesEnabled
	}

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying games: %w", err)
	}
	defer rows.Close()

	var games []domain.TrackedGame
	for rows.Next() {
		g, err := scanGame(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning game: %w", err)
		}
		games = append(games, *g)
	}

	return games, rows.Err()
}

// DeleteGame removes a game by app ID.
func (s *PostgresStore) DeleteGame(ctx context.Context, appID string) error {
	return s.execOne(ctx, "deleting game", queryDeleteGame, appID)
}

// SetGameEnabled enables or disables a game.
func (s *PostgresStore) SetGameEnabled(ctx context.Context, appID string, enabled bool) error {
	return s.execOne(ctx, "setting game enabled", querySetGameEnabled, appID, enabled)
}

// AddNotifyURL appends a notification URL to a game if not already present.
func (s *PostgresStore) AddNotifyURL(ctx context.Context, appID, notifyURL string) error {
	return s.execOne(ctx, "adding notify url", queryAddNotifyURL, appID, notifyURL)
}

// RemoveNotifyURL unsubscribes a notification URL from a game.
func (s *PostgresStore) RemoveNotifyURL(ctx context.Context, appID, notifyURL string) error {
	tag, err := s.pool.Exec(ctx, queryRemoveNotifyURL, appID, notifyURL)
	if err != nil {
		return fmt.Errorf("removing notify url: %w", err)
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	// Nothing matched: tell a missing game apart from a missing URL.
	if _, err := s.GetGame(ctx, appID); err != nil {
		return err
	}
	return ErrNotifyURLNotFound
}

// ClearNotifyURLs drops every notification URL of a game.
func (s *PostgresStore) ClearNotifyURLs(ctx context.Context, appID string) (int, error) {
	var removed int
	err := s.pool.QueryRow(ctx, queryClearNotifyURLs, appID).Scan(&removed)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("clearing notify urls: %w", err)
	}
	return removed, nil
}

// RecordPrice stores the latest observed price for a game.
func (s *PostgresStore) RecordPrice(
	ctx context.Context,
	appID string,
	name string,
	price domain.Price,
	checkedAt time.Time,
) error {
	args := pgx.NamedArgs{
		"app_id":           appID,
		"name":             name,
		"final_price":      price.Final,
		"initial_price":    price.Initial,
		"discount_percent": price.DiscountPercent,
		"currency":         price.Currency,
		"checked_at":       checkedAt,
	}
	return s.execOne(ctx, "recording price", queryRecordPrice, args)
}

// CountGames returns total and enabled game counts.
func (s *PostgresStore) CountGames(ctx context.Context) (int, int, error) {
	var total, enabled int
	if err := s.pool.QueryRow(ctx, queryCountGames).Scan(&total, &enabled); err != nil {
		return 0, 0, fmt.Errorf("counting games: %w", err)
	}
	return total, enabled, nil
}

// execOne runs a statement that must touch exactly one game row.
func (s *PostgresStore) execOne(ctx context.Context, op, query string, args ...any) error {
	tag, err := s.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// scannable is satisfied by both pgx.Row and pgx.Rows.
type scannable interface {
	Scan(dest ...any) error
}

func scanGame(row scannable) (*domain.TrackedGame, error) {
	var (
		g        domain.TrackedGame
		final    *int64
		initial  *int64
		discount *int32
		currency *string
	)

	if err := row.Scan(
		&g.AppID, &g.Name, &final, &initial, &discount, &currency,
		&g.NotifyURLs, &g.Enabled, &g.LastCheckedAt, &g.AddedAt, &g.UpdatedAt,
	); err != nil {
		return nil, err
	}

	if final != nil {
		p := domain.Price{Final: *final}
		if initial != nil {
			p.Initial = *initial
		}
		if discount != nil {
			p.DiscountPercent = int(*discount)
		}
		if currency != nil {
			p.Currency = *currency
		}
		g.LastPrice = &p
	}

	return &g, nil
}
