// Package main implements a mock Steam store and notification sink for local
// development. It serves appdetails responses from a JSON fixture, accepts
// Apprise and Telegram deliveries, and lets prices be changed at runtime so a
// price alert can be produced without waiting for a real sale.
//
// Point the tracker at it with steam.base_url=http://localhost:8089,
// notifications.apprise.url=http://localhost:8089 and
// notifications.telegram.api_url=http://localhost:8089/telegram.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"
)

type priceOverview struct {
	Currency         string `json:"currency"`
	Initial          int64  `json:"initial"`
	Final            int64  `json:"final"`
	DiscountPercent  int    `json:"discount_percent"`
	InitialFormatted string `json:"initial_formatted"`
	FinalFormatted   string `json:"final_formatted"`
}

type appData struct {
	Type          string         `json:"type"`
	Name          string         `json:"name"`
	SteamAppID    int64          `json:"steam_appid"`
	IsFree        bool           `json:"is_free"`
	PriceOverview *priceOverview `json:"price_overview,omitempty"`
}

type appEnvelope struct {
	Success bool     `json:"success"`
	Data    *appData `json:"data,omitempty"`
}

// catalog holds the mutable app fixture.
type catalog struct {
	mu   sync.RWMutex
	apps map[string]appData
}

func (c *catalog) lookup(appID string) (appData, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	app, ok := c.apps[appID]
	return app, ok
}

// setPrice replaces the final price and recomputes the discount. It returns
// false if the app is unknown or free.
func (c *catalog) setPrice(appID string, final int64) (appData, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	app, ok := c.apps[appID]
	if !ok || app.PriceOverview == nil {
		return appData{}, false
	}

	po := *app.PriceOverview
	po.Final = final
	po.DiscountPercent = 0
	if po.Initial > 0 && final < po.Initial {
		po.DiscountPercent = int((po.Initial - final) * 100 / po.Initial)
	}
	po.FinalFormatted = fmt.Sprintf("$%d.%02d", final/100, final%100)
	app.PriceOverview = &po
	c.apps[appID] = app
	return app, true
}

func main() {
	port := flag.Int("port", 8089, "port to listen on")
	fixtureFile := flag.String("fixture", "tools/mock-server/testdata/appdetails.json", "path to appdetails fixture")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	cat, err := loadFixture(*fixtureFile)
	if err != nil {
		logger.Error("failed to load fixture", "path", *fixtureFile, "error", err)
		os.Exit(1)
	}
	logger.Info("loaded fixture", "apps", len(cat.apps))

	addr := fmt.Sprintf(":%d", *port)
	logger.Info("starting mock steam server", "addr", addr)

	srv := &http.Server{
		Addr:         addr,
		Handler:      requestLogger(logger, newMux(logger, cat)),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func newMux(logger *slog.Logger, cat *catalog) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/appdetails", appDetailsHandler(logger, cat))
	mux.HandleFunc("POST /admin/apps/{app_id}/price", setPriceHandler(logger, cat))
	mux.HandleFunc("POST /notify", notifyHandler(logger))
	mux.HandleFunc("POST /notify/{key}", notifyHandler(logger))
	mux.HandleFunc("POST /telegram/{bot}/sendMessage", telegramHandler(logger))
	return mux
}

func loadFixture(path string) (*catalog, error) {
	data, err := os.ReadFile(path) //nolint:gosec // fixture path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading fixture: %w", err)
	}
	var apps map[string]appData
	if err := json.Unmarshal(data, &apps); err != nil {
		return nil, fmt.Errorf("parsing fixture: %w", err)
	}
	return &catalog{apps: apps}, nil
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("request", "method", r.Method, "path", r.URL.Path, "query", r.URL.RawQuery)
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
	json.NewEncoder(w).Encode(v)
}

func appDetailsHandler(logger *slog.Logger, cat *catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		appID := r.URL.Query().Get("appids")
		if appID == "" || strings.Contains(appID, ",") {
			// The real store answers null for missing or batched app IDs.
			w.Header().Set("Content-Type", "application/json")
			//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
			w.Write([]byte("null"))
			return
		}

		app, ok := cat.lookup(appID)
		if !ok {
			writeJSON(w, http.StatusOK, map[string]appEnvelope{appID: {Success: false}})
			logger.Info("appdetails", "app_id", appID, "found", false)
			return
		}

		writeJSON(w, http.StatusOK, map[string]appEnvelope{appID: {Success: true, Data: &app}})
		logger.Info("appdetails", "app_id", appID, "cc", r.URL.Query().Get("cc"), "found", true)
	}
}

func setPriceHandler(logger *slog.Logger, cat *catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		appID := r.PathValue("app_id")
		final, err := strconv.ParseInt(r.URL.Query().Get("final"), 10, 64)
		if err != nil || final < 0 {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "final must be a non-negative integer"})
			return
		}

		app, ok := cat.setPrice(appID, final)
		if !ok {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "unknown or free app " + appID})
			return
		}

		writeJSON(w, http.StatusOK, app)
		logger.Info("price updated", "app_id", appID, "final", final)
	}
}

type notifyRequest struct {
	Title  string   `json:"title"`
	Body   string   `json:"body"`
	Type   string   `json:"type"`
	Format string   `json:"format"`
	URLs   []string `json:"urls"`
}

func notifyHandler(logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req notifyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON body"})
			return
		}
		if req.Body == "" {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "body is required"})
			return
		}

		writeJSON(w, http.StatusOK, map[string]bool{"success": true})
		logger.Info("apprise notification",
			"key", r.PathValue("key"),
			"title", req.Title,
			"type", req.Type,
			"urls", len(req.URLs),
		)
	}
}

type sendMessageRequest struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

func telegramHandler(logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.PathValue("bot"), "bot") {
			writeJSON(w, http.StatusNotFound, map[string]any{"ok": false, "description": "Not Found"})
			return
		}

		var req sendMessageRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ChatID == "" || req.Text == "" {
			writeJSON(w, http.StatusBadRequest, map[string]any{
				"ok":          false,
				"error_code":  http.StatusBadRequest,
				"description": "Bad Request: chat_id and text are required",
			})
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"ok":     true,
			"result": map[string]any{"message_id": time.Now().Unix()},
		})
		logger.Info("telegram message", "chat_id", req.ChatID, "parse_mode", req.ParseMode)
	}
}
