package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name      string
		yaml      string
		envVars   map[string]string
		wantErr   string
		checkFunc func(t *testing.T, cfg *Config)
	}{
		{
			name: "valid minimal config",
			yaml: `
games:
  - app_id: "570"
    name: Dota 2
`,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				require.Len(t, cfg.Games, 1)
				assert.Equal(t, "570", cfg.Games[0].AppID)
				assert.Equal(t, StorageFile, cfg.Storage.Backend)
			},
		},
		{
			name: "defaults applied for optional fields",
			yaml: `{}`,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "0.0.0.0", cfg.Server.Host)
				assert.Equal(t, 8080, cfg.Server.Port)
				assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
				assert.Equal(t, 30*time.Second, cfg.Server.WriteTimeout)
				assert.Equal(t, "data/steam_watches.json", cfg.Storage.File.Path)
				assert.Equal(t, 5432, cfg.Storage.Postgres.Port)
				assert.Equal(t, "disable", cfg.Storage.Postgres.SSLMode)
				assert.Equal(t, 4, cfg.Storage.Postgres.PoolSize)
				assert.Equal(t, "https://store.steampowered.com", cfg.Steam.BaseURL)
				assert.Equal(t, "us", cfg.Steam.Country)
				assert.Equal(t, "english", cfg.Steam.Language)
				assert.Equal(t, 15*time.Second, cfg.Steam.Timeout)
				assert.InDelta(t, 1.0, cfg.Steam.RateLimit.PerSecond, 0.001)
				assert.Equal(t, 1, cfg.Steam.RateLimit.Burst)
				assert.Equal(t, int64(200), cfg.Steam.RateLimit.Quota)
				assert.Equal(t, 5*time.Minute, cfg.Steam.RateLimit.Window)
				assert.Equal(t, time.Hour, cfg.Schedule.Interval)
				assert.Equal(t, time.Second, cfg.Schedule.Stagger)
				assert.True(t, cfg.Schedule.ShouldRunOnStart())
				assert.Equal(t, "https://api.telegram.org", cfg.Notifications.Telegram.APIURL)
				assert.False(t, cfg.Notifications.Telegram.Enabled())
				assert.False(t, cfg.Notifications.Apprise.Enabled())
				assert.False(t, cfg.Notifications.Discord.Enabled())
				assert.Equal(t, "info", cfg.Logging.Level)
				assert.Equal(t, "text", cfg.Logging.Format)
				assert.Equal(t, "steam-price-tracker", cfg.Telemetry.ServiceName)
				assert.Empty(t, cfg.Telemetry.OTLPEndpoint)
			},
		},
		{
			name: "env var substitution",
			yaml: `
storage:
  backend: postgres
  postgres:
    host: localhost
    name: spt
    user: spt
    password: "${TEST_DB_PASSWORD}"
`,
			envVars: map[string]string{
				"TEST_DB_PASSWORD": "secret123",
			},
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "secret123", cfg.Storage.Postgres.Password)
			},
		},
		{
			name: "bot environment overrides file values",
			yaml: `
schedule:
  interval: 10m
storage:
  file:
    path: /from/file.json
`,
			envVars: map[string]string{
				EnvCheckInterval:    "3600",
				EnvDataFile:         "/data/steam_watches.json",
				EnvTelegramBotToken: "123:abc",
				EnvTelegramChatID:   "-100",
				EnvAppriseURL:       "http://apprise:8000",
			},
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, time.Hour, cfg.Schedule.Interval)
				assert.Equal(t, "/data/steam_watches.json", cfg.Storage.File.Path)
				assert.Equal(t, "123:abc", cfg.Notifications.Telegram.BotToken)
				assert.Equal(t, "-100", cfg.Notifications.Telegram.ChatID)
				assert.True(t, cfg.Notifications.Telegram.Enabled())
				assert.Equal(t, "http://apprise:8000", cfg.Notifications.Apprise.URL)
				assert.True(t, cfg.Notifications.Apprise.Enabled())
			},
		},
		{
			name: "check interval accepts a duration string",
			yaml: `{}`,
			envVars: map[string]string{
				EnvCheckInterval: "90m",
			},
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, 90*time.Minute, cfg.Schedule.Interval)
			},
		},
		{
			name: "invalid check interval",
			yaml: `{}`,
			envVars: map[string]string{
				EnvCheckInterval: "hourly",
			},
			wantErr: "parsing CHECK_INTERVAL",
		},
		{
			name: "full notification and game config",
			yaml: `
steam:
  country: GB
schedule:
  run_on_start: false
notifications:
  apprise:
    url: http://apprise:8000
    key: steam
    urls:
      - tgram://token/chat
  discord:
    webhook_url: https://discord.com/api/webhooks/1/abc
games:
  - app_id: "570"
    notify_urls: ["mailto://me@example.com"]
  - app_id: "730"
    enabled: false
logging:
  level: debug
  format: json
telemetry:
  otlp_endpoint: localhost:4317
  insecure: true
`,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "gb", cfg.Steam.Country)
				assert.False(t, cfg.Schedule.ShouldRunOnStart())
				assert.Equal(t, "steam", cfg.Notifications.Apprise.Key)
				assert.Equal(t, []string{"tgram://token/chat"}, cfg.Notifications.Apprise.URLs)
				assert.True(t, cfg.Notifications.Discord.Enabled())
				assert.Equal(t, "debug", cfg.Logging.Level)
				assert.Equal(t, "json", cfg.Logging.Format)
				assert.Equal(t, "localhost:4317", cfg.Telemetry.OTLPEndpoint)
				assert.True(t, cfg.Telemetry.Insecure)

				games := cfg.TrackedGames()
				require.Len(t, games, 2)
				assert.True(t, games[0].Enabled)
				assert.Equal(t, []string{"mailto://me@example.com"}, games[0].NotifyURLs)
				assert.False(t, games[1].Enabled)
			},
		},
		{
			name: "unknown storage backend",
			yaml: `
storage:
  backend: sqlite
`,
			wantErr: "storage.backend must be one of",
		},
		{
			name: "postgres requires connection fields",
			yaml: `
storage:
  backend: postgres
`,
			wantErr: "storage.postgres.host is required",
		},
		{
			name: "unsupported country",
			yaml: `
steam:
  country: de
`,
			wantErr: "steam.country must be one of",
		},
		{
			name: "negative interval",
			yaml: `
schedule:
  interval: -5m
`,
			wantErr: "schedule.interval must be positive",
		},
		{
			name: "telegram token without chat",
			yaml: `
notifications:
  telegram:
    bot_token: "123:abc"
`,
			wantErr: "requires both bot_token and chat_id",
		},
		{
			name: "non-numeric app id",
			yaml: `
games:
  - app_id: dota
`,
			wantErr: "games[0].app_id must be numeric",
		},
		{
			name: "duplicate app id",
			yaml: `
games:
  - app_id: "570"
  - app_id: "570"
`,
			wantErr: "listed more than once",
		},
		{
			name: "invalid log level",
			yaml: `
logging:
  level: verbose
`,
			wantErr: "logging.level",
		},
		{
			name: "invalid log format",
			yaml: `
logging:
  format: logfmt
`,
			wantErr: "logging.format must be text or json",
		},
		{
			name:    "malformed yaml",
			yaml:    "games: [",
			wantErr: "parsing config YAML",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Only parallelize tests that don't modify env vars.
			if len(tt.envVars) == 0 {
				t.Parallel()
			}

			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			dir := t.TempDir()
			path := filepath.Join(dir, "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.yaml), 0o644))

			cfg, err := Load(path)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, cfg)

			if tt.checkFunc != nil {
				tt.checkFunc(t, cfg)
			}
		})
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	t.Parallel()

	_, err := Load("/nonexistent/path/config.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}

func TestLoad_EnvironmentOnly(t *testing.T) {
	t.Setenv(EnvDataFile, "/srv/state.json")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "/srv/state.json", cfg.Storage.File.Path)
	assert.Empty(t, cfg.Games)
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("SPT_TEST_DOTENV=from-file\n"), 0o600))

	t.Setenv("SPT_TEST_DOTENV", "")
	require.NoError(t, os.Unsetenv("SPT_TEST_DOTENV"))

	require.NoError(t, LoadDotEnv(path))
	assert.Equal(t, "from-file", os.Getenv("SPT_TEST_DOTENV"))

	require.NoError(t, LoadDotEnv(filepath.Join(dir, "missing.env")), "missing file is ignored")
}

func TestParseInterval(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    time.Duration
		wantErr bool
	}{
		{in: "3600", want: time.Hour},
		{in: " 60 ", want: time.Minute},
		{in: "15m", want: 15 * time.Minute},
		{in: "soon", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			got, err := parseInterval(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDatabaseConfig_DSN(t *testing.T) {
	t.Parallel()

	cfg := DatabaseConfig{
		Host:     "db.internal",
		Port:     5433,
		Name:     "spt",
		User:     "spt",
		Password: "pw",
		SSLMode:  "require",
	}
	assert.Equal(t,
		"host=db.internal port=5433 dbname=spt user=spt password=pw sslmode=require",
		cfg.DSN(),
	)
}
