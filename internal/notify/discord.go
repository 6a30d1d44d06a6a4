package notify

import (
	"context"

	domain "github.com/donaldgifford/steam-price-tracker/pkg/types"
)

const (
	backendDiscord = "discord"

	colorGreen = 0x2ECC71 // price drop
	colorRed   = 0xE74C3C // price increase
)

// DiscordNotifier implements Notifier via Discord webhook.
type DiscordNotifier struct {
	webhookURL string
	opts       options
}

// NewDiscordNotifier creates a new DiscordNotifier.
func NewDiscordNotifier(webhookURL string, opts ...Option) *DiscordNotifier {
	return &DiscordNotifier{
		webhookURL: webhookURL,
		opts:       newOptions(opts),
	}
}

// discordWebhookPayload is the Discord webhook JSON structure.
type discordWebhookPayload struct {
	Embeds []discordEmbed `json:"embeds"`
}

type discordEmbed struct {
	Title       string              `json:"title"`
	URL         string              `json:"url,omitempty"`
	Color       int                 `json:"color"`
	Description string              `json:"description,omitempty"`
	Fields      []discordEmbedField `json:"fields,omitempty"`
}

type discordEmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

// Name implements Notifier.
func (*DiscordNotifier) Name() string {
	return backendDiscord
}

// Notify sends the message as a single Discord embed.
func (d *DiscordNotifier) Notify(ctx context.Context, msg *Message) error {
	payload := discordWebhookPayload{
		Embeds: []discordEmbed{buildEmbed(msg)},
	}
	return postJSON(ctx, d.opts.client, backendDiscord, d.webhookURL, payload)
}

func buildEmbed(msg *Message) discordEmbed {
	embed := discordEmbed{
		Title: msg.Title,
		URL:   msg.URL,
		Color: directionColor(msg.Direction),
	}

	switch msg.Direction {
	case domain.DirectionDecrease:
		embed.Description = "Price drop"
	case domain.DirectionIncrease:
		embed.Description = "Price increase"
	}

	for _, f := range msg.Fields {
		embed.Fields = append(embed.Fields, discordEmbedField{Name: f.Name, Value: f.Value, Inline: true})
	}

	return embed
}

func directionColor(d domain.Direction) int {
	if d == domain.DirectionDecrease {
		return colorGreen
	}
	return colorRed
}
