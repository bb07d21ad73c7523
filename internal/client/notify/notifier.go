// Package notify abstracts the user-facing notifications the driver app
// shows (the mobile UI renders these as toasts). Components emit
// notifications through the interface so tests can observe them.
package notify

import (
	"context"

	"github.com/logifrete/protocolos/internal/logging"
)

// Notifier delivers short user-visible messages.
type Notifier interface {
	// Notify shows an informational message.
	Notify(ctx context.Context, title, description string)

	// Warn shows a destructive/alerting message.
	Warn(ctx context.Context, title, description string)
}

// LogNotifier routes notifications through the structured logger. It is the
// default sink when no UI is attached (headless CLI runs).
type LogNotifier struct {
	log logging.Logger
}

func NewLogNotifier(log logging.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) Notify(ctx context.Context, title, description string) {
	n.log.Info(ctx, title, "detail", description)
}

func (n *LogNotifier) Warn(ctx context.Context, title, description string) {
	n.log.Warn(ctx, title, "detail", description)
}
