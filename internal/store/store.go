// Package store defines the datastore abstraction for steam-price-tracker.
// All business logic depends on the Store interface, never on concrete
// implementations. This enables mock-based testing without a database or a
// state file on disk.
package store

import (
	"context"
	"errors"
	"time"

	domain "github.com/donaldgifford/steam-price-tracker/pkg/types"
)

// ErrNotFound is returned when a tracked game does not exist.
var ErrNotFound = errors.New("game not found")

// ErrNotifyURLNotFound is returned when removing a URL the game is not
// subscribed to.
var ErrNotifyURLNotFound = errors.New("notify url not found")

// Store defines all data access operations for steam-price-tracker.
type Store interface {
	// Games
	AddGame(ctx context.Context, g *domain.TrackedGame) (created bool, err error)
	GetGame(ctx context.Context, appID string) (*domain.TrackedGame, error)
	ListGames(ctx context.Context, enabledOnly bool) ([]domain.TrackedGame, error)
	DeleteGame(ctx context.Context, appID string) error
	SetGameEnabled(ctx context.Context, appID string, enabled bool) error
	AddNotifyURL(ctx context.Context, appID, notifyURL string) error
	RemoveNotifyURL(ctx context.Context, appID, notifyURL string) error
	ClearNotifyURLs(ctx context.Context, appID string) (removed int, err error)
	CountGames(ctx context.Context) (total int, enabled int, err error)

	// RecordPrice stores the most recently fetched price and name for a game
	// and stamps its last check time.
	RecordPrice(
		ctx context.Context,
		appID string,
		name string,
		price domain.Price,
		checkedAt time.Time,
	) error

	// Migrations
	Migrate(ctx context.Context) error

	// Health
	Ping(ctx context.Context) error
	Close() error
}

// SeedGames adds every game that is not already tracked. Existing games are
// left untouched so API changes survive a restart. It returns the number of
// games created.
func SeedGames(ctx context.Context, s Store, games []domain.TrackedGame) (int, error) {
	var created int
	var errs []error
	for i := range games {
		ok, err := s.AddGame(ctx, &games[i])
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if ok {
			created++
		}
	}
	return created, errors.Join(errs...)
}
