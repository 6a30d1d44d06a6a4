package notify

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoOpNotifier_Notify(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	n := NewNoOpNotifier(slog.New(slog.NewTextHandler(&buf, nil)))

	err := n.Notify(context.Background(), NewPriceChangeMessage(testEvent(1000, 800, 0, 0)))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "notification discarded")
	assert.Contains(t, buf.String(), "app_id=570")
	assert.Equal(t, "noop", n.Name())
}

// compile-time interface checks.
var (
	_ Notifier = (*NoOpNotifier)(nil)
	_ Notifier = (*DiscordNotifier)(nil)
	_ Notifier = (*TelegramNotifier)(nil)
	_ Notifier = (*AppriseNotifier)(nil)
	_ Notifier = (*MultiNotifier)(nil)
)
