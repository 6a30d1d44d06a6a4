package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/steam-price-tracker/internal/notify"
	"github.com/donaldgifford/steam-price-tracker/internal/store"
	domain "github.com/donaldgifford/steam-price-tracker/pkg/types"
)

// GameHandler handles tracked game CRUD operations.
type GameHandler struct {
	store store.Store
}

// NewGameHandler creates a new GameHandler.
func NewGameHandler(s store.Store) *GameHandler {
	return &GameHandler{store: s}
}

// --- Input/Output types ---

// ListGamesInput filters the game list.
type ListGamesInput struct {
	Enabled bool `query:"enabled" doc:"Only return enabled games"`
}

// ListGamesOutput is the response body for listing games.
type ListGamesOutput struct {
	Body []domain.TrackedGame
}

// AppIDInput identifies a game by its Steam app ID.
type AppIDInput struct {
	AppID string `path:"app_id" pattern:"^[0-9]{1,10}$" doc:"Steam app ID" example:"570"`
}

// GameOutput is a single tracked game.
type GameOutput struct {
	Body *domain.TrackedGame
}

// CreateGameInput is the request body for tracking a new game.
type CreateGameInput struct {
	Body struct {
		AppID      string   `json:"app_id"                pattern:"^[0-9]{1,10}$" doc:"Steam app ID"                     example:"570"`
		Name       string   `json:"name,omitempty"        doc:"Display name until the first fetch fills it in"`
		NotifyURLs []string `json:"notify_urls,omitempty" doc:"Apprise URLs notified in addition to the global ones"`
		Enabled    *bool    `json:"enabled,omitempty"     doc:"Whether the game is polled (default true)"`
	}
}

// SetEnabledInput enables or disables polling for a game.
type SetEnabledInput struct {
	AppIDInput
	Body struct {
		Enabled bool `json:"enabled" doc:"Whether the game is polled"`
	}
}

// AddNotifyURLInput subscribes an Apprise URL to a game.
type AddNotifyURLInput struct {
	AppIDInput
	Body struct {
		URL string `json:"url" minLength:"3" doc:"Apprise notification URL" example:"tgram://bottoken/chatid"`
	}
}

// RemoveNotifyURLInput selects the notification URLs to drop from a game.
// Exactly one of URL, Index or All must be set.
type RemoveNotifyURLInput struct {
	AppIDInput
	URL   string `query:"url"   doc:"Notification URL to remove, as it was added"`
	Index int    `query:"index" doc:"1-based position of the URL in the game's notify_urls" minimum:"0"`
	All   bool   `query:"all"   doc:"Remove every notification URL of the game"`
}

// StatusOutput is a generic status response.
type StatusOutput struct {
	Body StatusResponse
}

// --- Handlers ---

// List returns all tracked games, oldest first.
func (h *GameHandler) List(ctx context.Context, input *ListGamesInput) (*ListGamesOutput, error) {
	games, err := h.store.ListGames(ctx, input.Enabled)
	if err != nil {
		return nil, huma.Error500InternalServerError("listing games failed", err)
	}
	if games == nil {
		games = []domain.TrackedGame{}
	}
	for i := range games {
		games[i].NotifyURLs = notify.MaskURLs(games[i].NotifyURLs)
	}
	return &ListGamesOutput{Body: games}, nil
}

// Get returns a single tracked game.
func (h *GameHandler) Get(ctx context.Context, input *AppIDInput) (*GameOutput, error) {
	g, err := h.store.GetGame(ctx, input.AppID)
	if err != nil {
		return nil, storeError("getting game", err)
	}
	return &GameOutput{Body: masked(g)}, nil
}

// Create starts tracking a game. The first check records its price as a
// silent baseline.
func (h *GameHandler) Create(ctx context.Context, input *CreateGameInput) (*GameOutput, error) {
	g := &domain.TrackedGame{
		AppID:      input.Body.AppID,
		Name:       input.Body.Name,
		NotifyURLs: input.Body.NotifyURLs,
		Enabled:    input.Body.Enabled == nil || *input.Body.Enabled,
	}

	created, err := h.store.AddGame(ctx, g)
	if err != nil {
		return nil, huma.Error500InternalServerError("adding game failed", err)
	}
	if !created {
		return nil, huma.Error409Conflict("game " + g.AppID + " is already tracked")
	}
	return &GameOutput{Body: masked(g)}, nil
}

// Delete stops tracking a game.
func (h *GameHandler) Delete(ctx context.Context, input *AppIDInput) (*struct{}, error) {
	if err := h.store.DeleteGame(ctx, input.AppID); err != nil {
		return nil, storeError("deleting game", err)
	}
	return nil, nil
}

// SetEnabled enables or disables polling for a game.
func (h *GameHandler) SetEnabled(ctx context.Context, input *SetEnabledInput) (*StatusOutput, error) {
	if err := h.store.SetGameEnabled(ctx, input.AppID, input.Body.Enabled); err != nil {
		return nil, storeError("updating game", err)
	}
	return &StatusOutput{Body: StatusResponse{Status: "updated"}}, nil
}

// AddNotifyURL subscribes an Apprise URL to a game's change notifications.
// Adding a URL that is already present is a no-op.
func (h *GameHandler) AddNotifyURL(ctx context.Context, input *AddNotifyURLInput) (*GameOutput, error) {
	if err := h.store.AddNotifyURL(ctx, input.AppID, input.Body.URL); err != nil {
		return nil, storeError("adding notify url", err)
	}
	return h.Get(ctx, &input.AppIDInput)
}

// RemoveNotifyURL drops one notification URL from a game, chosen by value or
// by position, or clears them all. It returns the updated game.
func (h *GameHandler) RemoveNotifyURL(ctx context.Context, input *RemoveNotifyURLInput) (*GameOutput, error) {
	var selectors int
	for _, set := range []bool{input.URL != "", input.Index > 0, input.All} {
		if set {
			selectors++
		}
	}
	if selectors != 1 {
		return nil, huma.Error400BadRequest("exactly one of url, index or all is required")
	}

	switch {
	case input.All:
		if _, err := h.store.ClearNotifyURLs(ctx, input.AppID); err != nil {
			return nil, storeError("clearing notify urls", err)
		}
	case input.Index > 0:
		g, err := h.store.GetGame(ctx, input.AppID)
		if err != nil {
			return nil, storeError("getting game", err)
		}
		if input.Index > len(g.NotifyURLs) {
			return nil, huma.Error404NotFound(store.ErrNotifyURLNotFound.Error())
		}
		if err := h.store.RemoveNotifyURL(ctx, input.AppID, g.NotifyURLs[input.Index-1]); err != nil {
			return nil, storeError("removing notify url", err)
		}
	default:
		if err := h.store.RemoveNotifyURL(ctx, input.AppID, input.URL); err != nil {
			return nil, storeError("removing notify url", err)
		}
	}

	return h.Get(ctx, &input.AppIDInput)
}

// masked returns a copy of g safe to show: notify URLs carry tokens.
func masked(g *domain.TrackedGame) *domain.TrackedGame {
	c := *g
	c.NotifyURLs = notify.MaskURLs(g.NotifyURLs)
	return &c
}

func storeError(op string, err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return huma.Error404NotFound("game not found")
	}
	if errors.Is(err, store.ErrNotifyURLNotFound) {
		return huma.Error404NotFound(err.Error())
	}
	return huma.Error500InternalServerError(op+" failed", err)
}

// RegisterGameRoutes registers game endpoints with the Huma API.
func RegisterGameRoutes(api huma.API, h *GameHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-games",
		Method:      http.MethodGet,
		Path:        "/api/v1/games",
		Summary:     "List tracked games",
		Description: "Returns all tracked games with their last seen price, optionally only enabled ones.",
		Tags:        []string{"games"},
		Errors:      []int{http.StatusInternalServerError},
	}, h.List)

	huma.Register(api, huma.Operation{
		OperationID:   "create-game",
		Method:        http.MethodPost,
		Path:          "/api/v1/games",
		Summary:       "Track a game",
		Description:   "Adds a Steam app to the watch list. Its first observed price is stored without notifying.",
		Tags:          []string{"games"},
		DefaultStatus: http.StatusCreated,
		Errors:        []int{http.StatusConflict, http.StatusInternalServerError},
	}, h.Create)

	huma.Register(api, huma.Operation{
		OperationID: "get-game",
		Method:      http.MethodGet,
		Path:        "/api/v1/games/{app_id}",
		Summary:     "Get a tracked game",
		Tags:        []string{"games"},
		Errors:      []int{http.StatusNotFound, http.StatusInternalServerError},
	}, h.Get)

	huma.Register(api, huma.Operation{
		OperationID:   "delete-game",
		Method:        http.MethodDelete,
		Path:          "/api/v1/games/{app_id}",
		Summary:       "Stop tracking a game",
		Tags:          []string{"games"},
		DefaultStatus: http.StatusNoContent,
		Errors:        []int{http.StatusNotFound, http.StatusInternalServerError},
	}, h.Delete)

	huma.Register(api, huma.Operation{
		OperationID: "set-game-enabled",
		Method:      http.MethodPut,
		Path:        "/api/v1/games/{app_id}/enabled",
		Summary:     "Enable or disable a game",
		Tags:        []string{"games"},
		Errors:      []int{http.StatusNotFound, http.StatusInternalServerError},
	}, h.SetEnabled)

	huma.Register(api, huma.Operation{
		OperationID: "add-game-notify-url",
		Method:      http.MethodPost,
		Path:        "/api/v1/games/{app_id}/notify-urls",
		Summary:     "Subscribe a notification URL",
		Description: "Adds an Apprise URL that receives this game's price change alerts.",
		Tags:        []string{"games"},
		Errors:      []int{http.StatusNotFound, http.StatusInternalServerError},
	}, h.AddNotifyURL)

	huma.Register(api, huma.Operation{
		OperationID: "remove-game-notify-url",
		Method:      http.MethodDelete,
		Path:        "/api/v1/games/{app_id}/notify-urls",
		Summary:     "Unsubscribe notification URLs",
		Description: "Removes one Apprise URL, selected by url or by its 1-based index, " +
			"or all of them with all=true.",
		Tags:   []string{"games"},
		Errors: []int{http.StatusBadRequest, http.StatusNotFound, http.StatusInternalServerError},
	}, h.RemoveNotifyURL)
}
