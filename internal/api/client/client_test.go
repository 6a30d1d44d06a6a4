package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/donaldgifford/steam-price-tracker/pkg/types"
)

func TestClient_ConnectionRefused(t *testing.T) {
	t.Parallel()

	c := New("http://127.0.0.1:1") // nothing listening
	_, err := c.ListGames(context.Background(), false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API server not running")
}

func TestClient_HTTPError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		status       int
		body         string
		wantDetail   string
		wantNotFound bool
	}{
		{
			name:       "problem document",
			status:     http.StatusConflict,
			body:       `{"title":"Conflict","status":409,"detail":"game 570 is already tracked"}`,
			wantDetail: "game 570 is already tracked",
		},
		{
			name:         "problem without detail",
			status:       http.StatusNotFound,
			body:         `{"title":"Not Found","status":404}`,
			wantDetail:   "Not Found",
			wantNotFound: true,
		},
		{
			name:       "plain body",
			status:     http.StatusBadGateway,
			body:       "upstream down\n",
			wantDetail: "upstream down",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := New(srv.URL).GetGame(context.Background(), "570")
			require.Error(t, err)

			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, tt.wantDetail, apiErr.Detail)
			assert.Equal(t, tt.wantNotFound, IsNotFound(err))
		})
	}
}

func TestClient_ListGames(t *testing.T) {
	t.Parallel()

	games := []domain.TrackedGame{
		{AppID: "570", Name: "Dota 2", Enabled: true},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/games", r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("enabled"))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(games)
	}))
	defer srv.Close()

	result, err := New(srv.URL + "/").ListGames(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "570", result[0].AppID)
}

func TestClient_AddGame(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/games", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "730", body["app_id"])
		assert.Equal(t, false, body["enabled"])
		assert.NotContains(t, body, "name", "empty name is omitted")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(domain.TrackedGame{AppID: "730", Enabled: false})
	}))
	defer srv.Close()

	disabled := false
	g, err := New(srv.URL).AddGame(context.Background(), NewGame{AppID: "730", Enabled: &disabled})
	require.NoError(t, err)
	assert.Equal(t, "730", g.AppID)
	assert.False(t, g.Enabled)
}

func TestClient_GameMutations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		wantMethod string
		wantPath   string
		wantQuery  url.Values
		wantBody   string
		call       func(*Client) error
	}{
		{
			name:       "remove",
			wantMethod: http.MethodDelete,
			wantPath:   "/api/v1/games/570",
			call:       func(c *Client) error { return c.RemoveGame(context.Background(), "570") },
		},
		{
			name:       "disable",
			wantMethod: http.MethodPut,
			wantPath:   "/api/v1/games/570/enabled",
			wantBody:   `{"enabled":false}`,
			call:       func(c *Client) error { return c.SetGameEnabled(context.Background(), "570", false) },
		},
		{
			name:       "subscribe",
			wantMethod: http.MethodPost,
			wantPath:   "/api/v1/games/570/notify-urls",
			wantBody:   `{"url":"tgram://token/chat"}`,
			call: func(c *Client) error {
				_, err := c.AddNotifyURL(context.Background(), "570", "tgram://token/chat")
				return err
			},
		},
		{
			name:       "unsubscribe by url",
			wantMethod: http.MethodDelete,
			wantPath:   "/api/v1/games/570/notify-urls",
			wantQuery:  url.Values{"url": {"tgram://token/chat"}},
			call: func(c *Client) error {
				_, err := c.RemoveNotifyURL(context.Background(), "570", "tgram://token/chat")
				return err
			},
		},
		{
			name:       "unsubscribe by index",
			wantMethod: http.MethodDelete,
			wantPath:   "/api/v1/games/570/notify-urls",
			wantQuery:  url.Values{"index": {"2"}},
			call: func(c *Client) error {
				_, err := c.RemoveNotifyURLAt(context.Background(), "570", 2)
				return err
			},
		},
		{
			name:       "clear notify urls",
			wantMethod: http.MethodDelete,
			wantPath:   "/api/v1/games/570/notify-urls",
			wantQuery:  url.Values{"all": {"true"}},
			call: func(c *Client) error {
				_, err := c.ClearNotifyURLs(context.Background(), "570")
				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, tt.wantMethod, r.Method)
				assert.Equal(t, tt.wantPath, r.URL.Path)
				if tt.wantQuery != nil {
					assert.Equal(t, tt.wantQuery, r.URL.Query())
				}
				if tt.wantBody != "" {
					var got json.RawMessage
					assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
					assert.JSONEq(t, tt.wantBody, string(got))
					w.Header().Set("Content-Type", "application/json")
					_, _ = w.Write([]byte(`{"app_id":"570","status":"updated"}`))
					return
				}
				w.WriteHeader(http.StatusNoContent)
			}))
			defer srv.Close()

			require.NoError(t, tt.call(New(srv.URL)))
		})
	}
}

func TestClient_TriggerCheck(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/check", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Query().Get("wait") == "true" {
			_, _ = w.Write([]byte(`{"status":"check completed","summary":{"checked":4,"changed":1}}`))
			return
		}
		w.WriteHeader(http.StatusAccepted)
		_, _ = w.Write([]byte(`{"status":"check started"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)

	res, err := c.TriggerCheck(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, "check started", res.Status)
	assert.Nil(t, res.Summary)

	res, err = c.TriggerCheck(context.Background(), true)
	require.NoError(t, err)
	require.NotNil(t, res.Summary)
	assert.Equal(t, 4, res.Summary.Checked)
	assert.Equal(t, 1, res.Summary.Changed)
}

func TestClient_TestNotify(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/notify/test", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Query().Get("app_id") == "570" {
			_, _ = w.Write([]byte(`{"status":"sent","backends":["apprise"],"notify_urls":2}`))
			return
		}
		_, _ = w.Write([]byte(`{"status":"sent","backends":["telegram","discord"],"notify_urls":0}`))
	}))
	defer srv.Close()

	c := New(srv.URL)

	res, err := c.TestNotify(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, []string{"telegram", "discord"}, res.Backends)

	res, err = c.TestNotify(context.Background(), "570")
	require.NoError(t, err)
	assert.Equal(t, 2, res.NotifyURLs)
}

func TestWithHTTPClient(t *testing.T) {
	t.Parallel()

	custom := &http.Client{}
	c := New("http://example.com", WithHTTPClient(custom))
	assert.Same(t, custom, c.httpClient)
}
