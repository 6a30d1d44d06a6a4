package notify

import (
	"context"
	"strings"
)

const (
	backendTelegram = "telegram"

	// DefaultTelegramAPI is the public Bot API endpoint.
	DefaultTelegramAPI = "https://api.telegram.org"
)

// TelegramNotifier implements Notifier via the Telegram Bot API sendMessage
// method, sending the HTML body.
type TelegramNotifier struct {
	apiURL string
	token  string
	chatID string
	opts   options
}

// NewTelegramNotifier creates a new TelegramNotifier. An empty apiURL uses
// DefaultTelegramAPI.
func NewTelegramNotifier(apiURL, token, chatID string, opts ...Option) *TelegramNotifier {
	if apiURL == "" {
		apiURL = DefaultTelegramAPI
	}
	return &TelegramNotifier{
		apiURL: strings.TrimRight(apiURL, "/"),
		token:  token,
		chatID: chatID,
		opts:   newOptions(opts),
	}
}

type telegramSendMessage struct {
	ChatID                string `json:"chat_id"`
	Text                  string `json:"text"`
	ParseMode             string `json:"parse_mode"`
	DisableWebPagePreview bool   `json:"disable_web_page_preview"`
}

// Name implements Notifier.
func (*TelegramNotifier) Name() string {
	return backendTelegram
}

// Notify implements Notifier.
func (t *TelegramNotifier) Notify(ctx context.Context, msg *Message) error {
	payload := telegramSendMessage{
		ChatID:                t.chatID,
		Text:                  msg.HTML,
		ParseMode:             "HTML",
		DisableWebPagePreview: true,
	}
	return postJSON(ctx, t.opts.client, backendTelegram, t.apiURL+"/bot"+t.token+"/sendMessage", payload)
}
