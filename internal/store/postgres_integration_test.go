//go:build integration

package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/donaldgifford/steam-price-tracker/internal/store"
	domain "github.com/donaldgifford/steam-price-tracker/pkg/types"
)

func setupPostgres(t *testing.T) *store.PostgresStore {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("spt_test"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, pgContainer.Terminate(ctx))
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	s, err := store.NewPostgresStore(ctx, connStr)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = s.Close()
	})

	require.NoError(t, s.Migrate(ctx))

	return s
}

func TestPostgresStore_Ping(t *testing.T) {
	s := setupPostgres(t)
	require.NoError(t, s.Ping(context.Background()))
}

func TestPostgresStore_MigrateIdempotent(t *testing.T) {
	s := setupPostgres(t)
	require.NoError(t, s.Migrate(context.Background()))
}

func TestPostgresStore_GameLifecycle(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	g := &domain.TrackedGame{
		AppID:      "570",
		Name:       "Dota 2",
		NotifyURLs: []string{"tgram://token/chat"},
		Enabled:    true,
	}
	created, err := s.AddGame(ctx, g)
	require.NoError(t, err)
	assert.True(t, created)
	assert.False(t, g.AddedAt.IsZero())

	dup := &domain.TrackedGame{AppID: "570", Name: "ignored"}
	created, err = s.AddGame(ctx, dup)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, "Dota 2", dup.Name)

	got, err := s.GetGame(ctx, "570")
	require.NoError(t, err)
	assert.Nil(t, got.LastPrice, "no price before the first check")
	assert.Equal(t, []string{"tgram://token/chat"}, got.NotifyURLs)

	checked := time.Now().UTC().Truncate(time.Microsecond)
	price := domain.Price{Final: 799, Initial: 1999, DiscountPercent: 60, Currency: "USD"}
	require.NoError(t, s.RecordPrice(ctx, "570", "Dota 2 (renamed)", price, checked))

	got, err = s.GetGame(ctx, "570")
	require.NoError(t, err)
	require.NotNil(t, got.LastPrice)
	assert.Equal(t, price, *got.LastPrice)
	assert.Equal(t, "Dota 2 (renamed)", got.Name)
	require.NotNil(t, got.LastCheckedAt)
	assert.True(t, checked.Equal(*got.LastCheckedAt))

	require.NoError(t, s.AddNotifyURL(ctx, "570", "tgram://token/chat"))
	require.NoError(t, s.AddNotifyURL(ctx, "570", "discord://id/token"))
	got, err = s.GetGame(ctx, "570")
	require.NoError(t, err)
	assert.Equal(t, []string{"tgram://token/chat", "discord://id/token"}, got.NotifyURLs)

	require.NoError(t, s.RemoveNotifyURL(ctx, "570", "tgram://token/chat"))
	assert.ErrorIs(t, s.RemoveNotifyURL(ctx, "570", "tgram://token/chat"), store.ErrNotifyURLNotFound)
	assert.ErrorIs(t, s.RemoveNotifyURL(ctx, "999", "tgram://token/chat"), store.ErrNotFound)

	require.NoError(t, s.AddNotifyURL(ctx, "570", "mailto://me"))
	removed, err := s.ClearNotifyURLs(ctx, "570")
	require.NoError(t, err)
	assert.Equal(t, 2, removed)
	got, err = s.GetGame(ctx, "570")
	require.NoError(t, err)
	assert.Empty(t, got.NotifyURLs)

	_, err = s.ClearNotifyURLs(ctx, "999")
	assert.ErrorIs(t, err, store.ErrNotFound)

	require.NoError(t, s.SetGameEnabled(ctx, "570", false))
	enabled, err := s.ListGames(ctx, true)
	require.NoError(t, err)
	assert.Empty(t, enabled)

	total, enabledCount, err := s.CountGames(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Equal(t, 0, enabledCount)

	require.NoError(t, s.DeleteGame(ctx, "570"))
	_, err = s.GetGame(ctx, "570")
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.ErrorIs(t, s.DeleteGame(ctx, "570"), store.ErrNotFound)
}

func TestPostgresStore_ListGamesOrder(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	for _, id := range []string{"10", "20", "30"} {
		_, err := s.AddGame(ctx, &domain.TrackedGame{AppID: id, Enabled: true})
		require.NoError(t, err)
	}

	games, err := s.ListGames(ctx, false)
	require.NoError(t, err)
	require.Len(t, games, 3)
	assert.Equal(t, "10", games[0].AppID)
	assert.Equal(t, "30", games[2].AppID)
}
