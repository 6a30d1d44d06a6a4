package cmd

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/steam-price-tracker/internal/config"
	"github.com/donaldgifford/steam-price-tracker/internal/notify"
	"github.com/donaldgifford/steam-price-tracker/pkg/logger"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()

	t.Setenv(config.EnvDataFile, filepath.Join(t.TempDir(), "state", "steam_watches.json"))
	cfg, err := config.Load("")
	require.NoError(t, err)

	cfg.Games = []config.GameConfig{{AppID: "570", Name: "Dota 2"}}
	return cfg
}

func TestNewNotifier(t *testing.T) {
	tests := []struct {
		name      string
		configure func(*config.NotificationsConfig)
		wantMulti []string
	}{
		{
			name:      "nothing configured",
			configure: func(*config.NotificationsConfig) {},
		},
		{
			name: "every backend",
			configure: func(n *config.NotificationsConfig) {
				n.Apprise.URL = "http://apprise:8000"
				n.Telegram.BotToken = "123:abc"
				n.Telegram.ChatID = "-100"
				n.Discord.WebhookURL = "https://discord.example/hook"
			},
			wantMulti: []string{"apprise", "telegram", "discord"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(t)
			tt.configure(&cfg.Notifications)

			n := newNotifier(cfg, logger.Discard())

			if tt.wantMulti == nil {
				assert.IsType(t, &notify.NoOpNotifier{}, n)
				return
			}

			multi, ok := n.(*notify.MultiNotifier)
			require.True(t, ok)
			assert.Equal(t, tt.wantMulti, multi.Backends())
		})
	}
}

func TestNewApp_SeedsConfiguredGames(t *testing.T) {
	cfg := testConfig(t)
	ctx := context.Background()

	a, err := newApp(ctx, cfg, logger.Discard())
	require.NoError(t, err)
	defer a.close()

	g, err := a.store.GetGame(ctx, "570")
	require.NoError(t, err)
	assert.Equal(t, "Dota 2", g.Name)
	assert.True(t, g.Enabled)
	assert.Nil(t, g.LastPrice)
}

func TestNewServer_Routes(t *testing.T) {
	cfg := testConfig(t)
	ctx := context.Background()

	a, err := newApp(ctx, cfg, logger.Discard())
	require.NoError(t, err)
	defer a.close()

	e, checks := newServer(ctx, a)
	defer checks.Wait()

	tests := []struct {
		path       string
		wantStatus int
		wantBody   string
	}{
		{path: "/healthz", wantStatus: http.StatusOK, wantBody: `"ok"`},
		{path: "/readyz", wantStatus: http.StatusOK, wantBody: `"ready"`},
		{path: "/metrics", wantStatus: http.StatusOK, wantBody: "spt_"},
		{path: "/openapi.json", wantStatus: http.StatusOK, wantBody: `"/api/v1/games"`},
		{path: "/swagger/index.html", wantStatus: http.StatusOK, wantBody: "swagger-ui"},
		{path: "/api/v1/games", wantStatus: http.StatusOK, wantBody: `"app_id":"570"`},
		{path: "/api/v1/games/999", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, http.NoBody))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.Contains(t, rec.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestNewServer_NotifyTestUsesConfiguredNotifier(t *testing.T) {
	t.Setenv(config.EnvTelegramBotToken, "")
	t.Setenv(config.EnvAppriseURL, "")
	cfg := testConfig(t)
	ctx := context.Background()

	a, err := newApp(ctx, cfg, logger.Discard())
	require.NoError(t, err)
	defer a.close()

	e, checks := newServer(ctx, a)
	defer checks.Wait()

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/notify/test", http.NoBody))

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"backends":["noop"]`)
}
