// Package config handles loading and validating the application configuration
// from YAML files with environment variable substitution.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/donaldgifford/steam-price-tracker/internal/steam"
	"github.com/donaldgifford/steam-price-tracker/pkg/logger"
	domain "github.com/donaldgifford/steam-price-tracker/pkg/types"
)

// Storage backends.
const (
	StorageFile     = "file"
	StoragePostgres = "postgres"
)

// Environment variables that override file settings. They mirror the
// variables the bot has always been deployed with.
const (
	EnvCheckInterval    = "CHECK_INTERVAL"
	EnvDataFile         = "DATA_FILE"
	EnvTelegramBotToken = "TELEGRAM_BOT_TOKEN"
	EnvTelegramChatID   = "TELEGRAM_CHAT_ID"
	EnvAppriseURL       = "APPRISE_URL"
)

// Config is the top-level application configuration.
type Config struct {
	Server        ServerConfig        `yaml:"server"`
	Storage       StorageConfig       `yaml:"storage"`
	Steam         SteamConfig         `yaml:"steam"`
	Schedule      ScheduleConfig      `yaml:"schedule"`
	Notifications NotificationsConfig `yaml:"notifications"`
	Games         []GameConfig        `yaml:"games"`
	Logging       LoggingConfig       `yaml:"logging"`
	Telemetry     TelemetryConfig     `yaml:"telemetry"`
}

// ServerConfig defines the Echo HTTP server settings.
type ServerConfig struct {
	Host         string        `yaml:"host"`
	Port         int           `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// StorageConfig selects where tracked-game state lives.
type StorageConfig struct {
	Backend  string         `yaml:"backend"` // file, postgres
	File     FileConfig     `yaml:"file"`
	Postgres DatabaseConfig `yaml:"postgres"`
}

// FileConfig defines the JSON state file location.
type FileConfig struct {
	Path string `yaml:"path"`
}

// DatabaseConfig defines PostgreSQL connection settings.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
	PoolSize int    `yaml:"pool_size"`
}

// DSN returns a PostgreSQL connection string.
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d dbname=%s user=%s password=%s sslmode=%s",
		d.Host, d.Port, d.Name, d.User, d.Password, d.SSLMode,
	)
}

// SteamConfig defines Storefront API settings.
type SteamConfig struct {
	BaseURL   string          `yaml:"base_url"`
	Country   string          `yaml:"country"`
	Language  string          `yaml:"language"`
	Timeout   time.Duration   `yaml:"timeout"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// RateLimitConfig defines Steam request pacing. Quota is the number of
// requests allowed per Window; zero disables quota tracking.
type RateLimitConfig struct {
	PerSecond float64       `yaml:"per_second"`
	Burst     int           `yaml:"burst"`
	Quota     int64         `yaml:"quota"`
	Window    time.Duration `yaml:"window"`
}

// ScheduleConfig defines the polling loop.
type ScheduleConfig struct {
	Interval   time.Duration `yaml:"interval"`
	Stagger    time.Duration `yaml:"stagger"`
	RunOnStart *bool         `yaml:"run_on_start"` // default: true
}

// ShouldRunOnStart reports whether a check runs immediately at startup.
func (s *ScheduleConfig) ShouldRunOnStart() bool {
	return s.RunOnStart == nil || *s.RunOnStart
}

// NotificationsConfig defines notification targets. A backend is active
// when its required fields are set.
type NotificationsConfig struct {
	Apprise  AppriseConfig  `yaml:"apprise"`
	Telegram TelegramConfig `yaml:"telegram"`
	Discord  DiscordConfig  `yaml:"discord"`
}

// AppriseConfig defines the Apprise API server. URLs are global targets
// merged with each game's own notify URLs. Key selects a stored
// configuration on the server instead.
type AppriseConfig struct {
	URL  string   `yaml:"url"`
	Key  string   `yaml:"key"`
	URLs []string `yaml:"urls"`
}

// Enabled reports whether an Apprise server is configured.
func (a *AppriseConfig) Enabled() bool { return a.URL != "" }

// TelegramConfig defines direct Telegram Bot API delivery.
type TelegramConfig struct {
	APIURL   string `yaml:"api_url"`
	BotToken string `yaml:"bot_token"`
	ChatID   string `yaml:"chat_id"`
}

// Enabled reports whether both the token and chat are configured.
func (t *TelegramConfig) Enabled() bool { return t.BotToken != "" && t.ChatID != "" }

// DiscordConfig defines Discord webhook settings.
type DiscordConfig struct {
	WebhookURL string `yaml:"webhook_url"`
}

// Enabled reports whether a webhook URL is configured.
func (d *DiscordConfig) Enabled() bool { return d.WebhookURL != "" }

// GameConfig seeds a tracked game at startup.
type GameConfig struct {
	AppID      string   `yaml:"app_id"`
	Name       string   `yaml:"name"`
	NotifyURLs []string `yaml:"notify_urls"`
	Enabled    *bool    `yaml:"enabled"` // default: true
}

// TrackedGames converts the seed list to domain games.
func (c *Config) TrackedGames() []domain.TrackedGame {
	games := make([]domain.TrackedGame, 0, len(c.Games))
	for _, g := range c.Games {
		games = append(games, domain.TrackedGame{
			AppID:      g.AppID,
			Name:       g.Name,
			NotifyURLs: slices.Clone(g.NotifyURLs),
			Enabled:    g.Enabled == nil || *g.Enabled,
		})
	}
	return games
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// TelemetryConfig defines OpenTelemetry export. Export is disabled when
// OTLPEndpoint is empty.
type TelemetryConfig struct {
	OTLPEndpoint string `yaml:"otlp_endpoint"`
	ServiceName  string `yaml:"service_name"`
	Insecure     bool   `yaml:"insecure"`
}

// LoadDotEnv loads variables from a .env file into the process environment
// without overriding variables that are already set. A missing file is not
// an error.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

// Load reads and parses a YAML config file, performing environment variable
// substitution and validation. An empty path skips the file and builds the
// config from defaults and the environment alone.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path) //nolint:gosec // config path from trusted CLI flag
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}

		expanded := os.ExpandEnv(string(data))
		if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
			return nil, fmt.Errorf("parsing config YAML: %w", err)
		}
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv(EnvCheckInterval); v != "" {
		d, err := parseInterval(v)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", EnvCheckInterval, err)
		}
		cfg.Schedule.Interval = d
	}
	if v := os.Getenv(EnvDataFile); v != "" {
		cfg.Storage.File.Path = v
	}
	if v := os.Getenv(EnvTelegramBotToken); v != "" {
		cfg.Notifications.Telegram.BotToken = v
	}
	if v := os.Getenv(EnvTelegramChatID); v != "" {
		cfg.Notifications.Telegram.ChatID = v
	}
	if v := os.Getenv(EnvAppriseURL); v != "" {
		cfg.Notifications.Apprise.URL = v
	}
	return nil
}

// parseInterval accepts a bare number of seconds or a Go duration string.
func parseInterval(v string) (time.Duration, error) {
	v = strings.TrimSpace(v)
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(secs) * time.Second, nil
	}
	return time.ParseDuration(v)
}

func applyDefaults(cfg *Config) {
	applyServerDefaults(&cfg.Server)
	applyStorageDefaults(&cfg.Storage)
	applySteamDefaults(&cfg.Steam)
	applyScheduleDefaults(&cfg.Schedule)
	applyNotificationDefaults(&cfg.Notifications)
	applyLoggingDefaults(&cfg.Logging)
	applyTelemetryDefaults(&cfg.Telemetry)
}

func applyServerDefaults(s *ServerConfig) {
	if s.Host == "" {
		s.Host = "0.0.0.0"
	}
	if s.Port == 0 {
		s.Port = 8080
	}
	if s.ReadTimeout == 0 {
		s.ReadTimeout = 30 * time.Second
	}
	if s.WriteTimeout == 0 {
		s.WriteTimeout = 30 * time.Second
	}
}

func applyStorageDefaults(s *StorageConfig) {
	if s.Backend == "" {
		s.Backend = StorageFile
	}
	if s.File.Path == "" {
		s.File.Path = "data/steam_watches.json"
	}

	d := &s.Postgres
	if d.Port == 0 {
		d.Port = 5432
	}
	if d.SSLMode == "" {
		d.SSLMode = "disable"
	}
	if d.PoolSize == 0 {
		d.PoolSize = 4
	}
}

func applySteamDefaults(s *SteamConfig) {
	if s.BaseURL == "" {
		s.BaseURL = "https://store.steampowered.com"
	}
	if s.Country == "" {
		s.Country = "us"
	}
	s.Country = strings.ToLower(s.Country)
	if s.Language == "" {
		s.Language = "english"
	}
	if s.Timeout == 0 {
		s.Timeout = 15 * time.Second
	}

	r := &s.RateLimit
	if r.PerSecond == 0 {
		r.PerSecond = 1.0
	}
	if r.Burst == 0 {
		r.Burst = 1
	}
	if r.Quota == 0 {
		r.Quota = 200
	}
	if r.Window == 0 {
		r.Window = 5 * time.Minute
	}
}

func applyScheduleDefaults(s *ScheduleConfig) {
	if s.Interval == 0 {
		s.Interval = time.Hour
	}
	if s.Stagger == 0 {
		s.Stagger = time.Second
	}
}

func applyNotificationDefaults(n *NotificationsConfig) {
	if n.Telegram.APIURL == "" {
		n.Telegram.APIURL = "https://api.telegram.org"
	}
}

func applyLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = "info"
	}
	if l.Format == "" {
		l.Format = logger.FormatText
	}
}

func applyTelemetryDefaults(t *TelemetryConfig) {
	if t.ServiceName == "" {
		t.ServiceName = "steam-price-tracker"
	}
}

func validate(cfg *Config) error {
	var errs []error

	switch cfg.Storage.Backend {
	case StorageFile:
	case StoragePostgres:
		d := cfg.Storage.Postgres
		if d.Host == "" {
			errs = append(errs, errors.New("storage.postgres.host is required when backend is postgres"))
		}
		if d.Name == "" {
			errs = append(errs, errors.New("storage.postgres.name is required when backend is postgres"))
		}
		if d.User == "" {
			errs = append(errs, errors.New("storage.postgres.user is required when backend is postgres"))
		}
	default:
		errs = append(errs, fmt.Errorf(
			"storage.backend must be one of: file, postgres (got %q)", cfg.Storage.Backend,
		))
	}

	if !slices.Contains(steam.SupportedCountries, cfg.Steam.Country) {
		errs = append(errs, fmt.Errorf(
			"steam.country must be one of: %s (got %q)",
			strings.Join(steam.SupportedCountries, ", "), cfg.Steam.Country,
		))
	}
	if cfg.Steam.RateLimit.PerSecond < 0 || cfg.Steam.RateLimit.Burst < 0 {
		errs = append(errs, errors.New("steam.rate_limit values must not be negative"))
	}

	if cfg.Schedule.Interval < 0 {
		errs = append(errs, fmt.Errorf("schedule.interval must be positive (got %s)", cfg.Schedule.Interval))
	}
	if cfg.Schedule.Stagger < 0 {
		errs = append(errs, fmt.Errorf("schedule.stagger must not be negative (got %s)", cfg.Schedule.Stagger))
	}

	tg := cfg.Notifications.Telegram
	if (tg.BotToken == "") != (tg.ChatID == "") {
		errs = append(errs, errors.New("notifications.telegram requires both bot_token and chat_id"))
	}

	errs = append(errs, validateGames(cfg.Games)...)

	if _, err := logger.ParseLevel(cfg.Logging.Level); err != nil {
		errs = append(errs, fmt.Errorf("logging.level: %w", err))
	}
	if !logger.ValidFormat(cfg.Logging.Format) {
		errs = append(errs, fmt.Errorf("logging.format must be text or json (got %q)", cfg.Logging.Format))
	}

	return errors.Join(errs...)
}

func validateGames(games []GameConfig) []error {
	var errs []error
	seen := make(map[string]bool, len(games))

	for i, g := range games {
		if !domain.ValidAppID(g.AppID) {
			errs = append(errs, fmt.Errorf("games[%d].app_id must be numeric (got %q)", i, g.AppID))
			continue
		}
		if seen[g.AppID] {
			errs = append(errs, fmt.Errorf("games[%d].app_id %s is listed more than once", i, g.AppID))
		}
		seen[g.AppID] = true
	}

	return errs
}
