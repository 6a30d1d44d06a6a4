package notify

import (
	"context"
	"log/slog"
)

// NoOpNotifier implements Notifier by logging discarded messages. It is used
// when no notification backend is configured.
type NoOpNotifier struct {
	log *slog.Logger
}

// NewNoOpNotifier creates a notifier that discards messages with a log line.
func NewNoOpNotifier(log *slog.Logger) *NoOpNotifier {
	return &NoOpNotifier{log: log}
}

// Name implements Notifier.
func (*NoOpNotifier) Name() string {
	return "noop"
}

// Notify logs and discards a message.
func (n *NoOpNotifier) Notify(_ context.Context, msg *Message) error {
	n.log.Info("notification discarded (no backend configured)",
		"app_id", msg.AppID,
		"title", msg.Title,
		"direction", msg.Direction,
	)
	return nil
}
