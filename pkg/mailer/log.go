package mailer

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// LogMailer logs messages instead of sending them. Useful for local
// development where no provider credentials exist.
type LogMailer struct {
	logger *slog.Logger
}

// NewLogMailer creates a log-backed mailer.
func NewLogMailer(logger *slog.Logger) *LogMailer {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogMailer{logger: logger}
}

// Send logs the message details and returns a synthetic id.
func (l *LogMailer) Send(ctx context.Context, msg Message) (string, error) {
	id := "dev-" + uuid.NewString()
	l.logger.Info("email not sent (log provider)",
		"id", id,
		"from", msg.From,
		"to", msg.To,
		"subject", msg.Subject,
		"reply_to", msg.ReplyTo,
		"text", msg.Text,
	)
	return id, nil
}
