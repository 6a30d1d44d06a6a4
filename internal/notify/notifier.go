// Package notify defines the notification interface and implementations
// for price change delivery.
package notify

import (
	"context"
	"fmt"

	domain "github.com/donaldgifford/steam-price-tracker/pkg/types"
)

// Field is a labelled value shown by backends that render structured
// messages (Discord embeds).
type Field struct {
	Name  string
	Value string
}

// Message is a formatted notification, rendered once per ChangeEvent and
// handed to every backend.
type Message struct {
	AppID     string
	Title     string
	HTML      string
	Text      string
	URL       string
	Direction domain.Direction
	Fields    []Field

	// NotifyURLs are per-game Apprise URLs merged with the globally
	// configured ones.
	NotifyURLs []string
}

// Notifier defines the interface for sending price change notifications.
type Notifier interface {
	// Name identifies the backend in logs and metrics.
	Name() string
	Notify(ctx context.Context, msg *Message) error
}

// DeliveryError reports a failed notification. StatusCode is zero when the
// request never got a response.
type DeliveryError struct {
	Backend    string
	StatusCode int
	Err        error
}

func (e *DeliveryError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s delivery failed (status %d): %v", e.Backend, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s delivery failed: %v", e.Backend, e.Err)
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}
