package notify

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTelegramNotifier_Notify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		statusCode int
		response   string
		wantErr    bool
		errMsg     string
	}{
		{
			name:       "message accepted",
			statusCode: http.StatusOK,
			response:   `{"ok": true, "result": {"message_id": 1}}`,
		},
		{
			name:       "bad request",
			statusCode: http.StatusBadRequest,
			response:   `{"ok": false, "error_code": 400, "description": "Bad Request: chat not found"}`,
			wantErr:    true,
			errMsg:     "chat not found",
		},
		{
			name:       "rate limited",
			statusCode: http.StatusTooManyRequests,
			response:   `{"ok": false, "error_code": 429}`,
			wantErr:    true,
			errMsg:     "rate limited",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var received telegramSendMessage
			var path string

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				path = r.URL.Path
				assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
				w.WriteHeader(tt.statusCode)
				_, _ = w.Write([]byte(tt.response))
			}))
			defer srv.Close()

			n := NewTelegramNotifier(srv.URL, "123:ABC", "-1001")
			msg := NewPriceChangeMessage(testEvent(1000, 800, 0, 0))
			err := n.Notify(context.Background(), msg)

			assert.Equal(t, "/bot123:ABC/sendMessage", path)
			assert.Equal(t, "-1001", received.ChatID)
			assert.Equal(t, msg.HTML, received.Text)
			assert.Equal(t, "HTML", received.ParseMode)
			assert.True(t, received.DisableWebPagePreview)

			if tt.wantErr {
				require.Error(t, err)
				var de *DeliveryError
				require.True(t, errors.As(err, &de))
				assert.Equal(t, "telegram", de.Backend)
				assert.Equal(t, tt.statusCode, de.StatusCode)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestTelegramNotifier_DefaultAPI(t *testing.T) {
	t.Parallel()

	n := NewTelegramNotifier("", "token", "chat")
	assert.Equal(t, DefaultTelegramAPI, n.apiURL)
	assert.Equal(t, "telegram", n.Name())
}

func TestTelegramNotifier_NetworkError(t *testing.T) {
	t.Parallel()

	n := NewTelegramNotifier("http://127.0.0.1:1", "token", "chat") // nothing listening
	err := n.Notify(context.Background(), NewPriceChangeMessage(testEvent(1, 2, 0, 0)))
	require.Error(t, err)

	var de *DeliveryError
	require.True(t, errors.As(err, &de))
	assert.Zero(t, de.StatusCode)
	assert.Contains(t, err.Error(), "sending request")
}

func TestTelegramNotifier_ErrorOmitsToken(t *testing.T) {
	t.Parallel()

	const token = "123456:SECRET-BOT-TOKEN"
	n := NewTelegramNotifier("http://127.0.0.1:1", token, "chat") // nothing listening
	err := n.Notify(context.Background(), NewPriceChangeMessage(testEvent(1, 2, 0, 0)))
	require.Error(t, err)

	assert.NotContains(t, err.Error(), token)
	assert.NotContains(t, err.Error(), "SECRET")
	assert.Contains(t, err.Error(), "http://127.0.0.1:1/****")
}
