package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/donaldgifford/steam-price-tracker/api/openapi"
	"github.com/donaldgifford/steam-price-tracker/internal/api/handlers"
	mw "github.com/donaldgifford/steam-price-tracker/internal/api/middleware"
	"github.com/donaldgifford/steam-price-tracker/internal/engine"
	"github.com/donaldgifford/steam-price-tracker/internal/telemetry"
)

const (
	apiTitle        = "Steam Price Tracker API"
	shutdownTimeout = 30 * time.Second
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server and the price check loop",
	Long: "Runs forever: checks every tracked game on the configured interval " +
		"(and once at startup unless schedule.run_on_start is false) while " +
		"serving the management API, probes, and Prometheus metrics.",
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tel, err := telemetry.Setup(ctx, telemetry.Config{
		Endpoint:    cfg.Telemetry.OTLPEndpoint,
		ServiceName: cfg.Telemetry.ServiceName,
		Version:     Version,
		Insecure:    cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		return fmt.Errorf("setting up telemetry: %w", err)
	}

	a, err := newApp(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer a.close()

	sched, err := engine.NewScheduler(a.engine, cfg.Schedule.Interval, log)
	if err != nil {
		return fmt.Errorf("creating scheduler: %w", err)
	}

	e, checks := newServer(ctx, a)
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	serverErr := make(chan error, 1)
	go func() {
		log.Info("starting server", "addr", addr)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	sched.Start(cfg.Schedule.ShouldRunOnStart())
	log.Info("watching prices",
		"interval", cfg.Schedule.Interval,
		"country", cfg.Steam.Country,
		"storage", cfg.Storage.Backend,
	)

	var runErr error
	select {
	case <-ctx.Done():
		log.Info("shutdown signal received")
	case err := <-serverErr:
		runErr = fmt.Errorf("server error: %w", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	select {
	case <-sched.Stop().Done():
	case <-shutdownCtx.Done():
		log.Warn("timed out waiting for the running check to finish")
	}

	if err := e.Shutdown(shutdownCtx); err != nil {
		runErr = errors.Join(runErr, fmt.Errorf("shutting down server: %w", err))
	}

	// Background checks triggered over HTTP still hold the store.
	checksDone := make(chan struct{})
	go func() {
		checks.Wait()
		close(checksDone)
	}()
	select {
	case <-checksDone:
	case <-shutdownCtx.Done():
		log.Warn("timed out waiting for manual checks to finish")
	}

	if err := tel.Shutdown(shutdownCtx); err != nil {
		log.Warn("telemetry shutdown", "error", err)
	}

	log.Info("server stopped")
	return runErr
}

// newServer builds the Echo instance with probes, metrics, Swagger UI, and
// the huma API. Background checks triggered over HTTP run under ctx; the
// returned CheckHandler tracks them for shutdown.
func newServer(ctx context.Context, a *app) (*echo.Echo, *handlers.CheckHandler) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(mw.Recovery(a.log))
	e.Use(mw.RequestLog(a.log))
	e.Use(mw.Metrics())

	handlers.RegisterHealthRoutes(e, handlers.NewHealthHandler(a.store))
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	openapi.RegisterRoutes(e, apiTitle)

	api := humaecho.New(e, newHumaConfig())
	handlers.RegisterGameRoutes(api, handlers.NewGameHandler(a.store))
	handlers.RegisterNotifyRoutes(api, handlers.NewNotifyHandler(a.store, a.notifier))

	checks := handlers.NewCheckHandler(ctx, a.engine, a.log)
	handlers.RegisterCheckRoutes(api, checks)

	return e, checks
}

func newHumaConfig() huma.Config {
	hc := huma.DefaultConfig(apiTitle, Version)
	hc.Info.Description = "Manage the tracked game list and trigger price checks."
	// Swagger UI is served by the openapi package.
	hc.DocsPath = ""
	return hc
}

