package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/steam-price-tracker/internal/notify"
	"github.com/donaldgifford/steam-price-tracker/internal/store"
)

// NotifyHandler sends test notifications through the configured backends.
type NotifyHandler struct {
	store    store.Store
	notifier notify.Notifier
}

// NewNotifyHandler creates a new NotifyHandler.
func NewNotifyHandler(s store.Store, n notify.Notifier) *NotifyHandler {
	return &NotifyHandler{store: s, notifier: n}
}

// TestNotifyInput optionally names a game whose notify URLs also receive the
// test message.
type TestNotifyInput struct {
	AppID string `query:"app_id" pattern:"^[0-9]{1,10}$" doc:"Also deliver to this game's notification URLs" example:"570"`
}

// TestNotifyOutput reports which backends delivered the test message.
type TestNotifyOutput struct {
	Body struct {
		Status     string   `json:"status"      example:"sent"`
		Backends   []string `json:"backends"    doc:"Backends the message went through"`
		NotifyURLs int      `json:"notify_urls" doc:"Number of per-game notification URLs included"`
	}
}

// fanOut is implemented by notifiers that wrap several backends.
type fanOut interface {
	Backends() []string
}

// Test sends a sample message through the configured notifier.
func (h *NotifyHandler) Test(ctx context.Context, input *TestNotifyInput) (*TestNotifyOutput, error) {
	var urls []string
	if input.AppID != "" {
		g, err := h.store.GetGame(ctx, input.AppID)
		if err != nil {
			return nil, storeError("getting game", err)
		}
		urls = g.NotifyURLs
	}

	if err := h.notifier.Notify(ctx, notify.NewTestMessage(urls)); err != nil {
		return nil, huma.Error502BadGateway("test notification failed", err)
	}

	resp := &TestNotifyOutput{}
	resp.Body.Status = "sent"
	resp.Body.Backends = []string{h.notifier.Name()}
	if f, ok := h.notifier.(fanOut); ok {
		resp.Body.Backends = f.Backends()
	}
	resp.Body.NotifyURLs = len(urls)
	return resp, nil
}

// RegisterNotifyRoutes registers the notification endpoints with the Huma API.
func RegisterNotifyRoutes(api huma.API, h *NotifyHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "test-notify",
		Method:      http.MethodPost,
		Path:        "/api/v1/notify/test",
		Summary:     "Send a test notification",
		Description: "Delivers a sample message through every configured backend, " +
			"plus the notification URLs of app_id when given.",
		Tags:   []string{"notify"},
		Errors: []int{http.StatusNotFound, http.StatusBadGateway},
	}, h.Test)
}
