package notify

import (
	"context"
	"log/slog"
)

// LogNotifier writes the report using structured logging. Used when
// no webhook is configured but delivery was requested.
type LogNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier creates a log notifier.
// If logger is nil, a default logger is used.
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogNotifier{logger: logger}
}

// Send writes the report body using structured logging.
func (n *LogNotifier) Send(ctx context.Context, body string) error {
	n.logger.InfoContext(ctx, "report",
		slog.String("body", body),
	)
	return nil
}

var _ Notifier = (*LogNotifier)(nil)
