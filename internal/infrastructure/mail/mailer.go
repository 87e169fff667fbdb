package mail

import (
	"context"

	"go.uber.org/zap"
)

// Message is a single outbound email
type Message struct {
	To       string
	Subject  string
	TextBody string
	HTMLBody string
}

// Mailer delivers outbound email. The auth flow only needs fire-and-forget
// delivery of login codes, so the interface stays small.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// LogMailer writes messages to the application log instead of sending
// them. Used in development so login codes are readable without an
// email provider.
type LogMailer struct {
	logger *zap.Logger
}

// NewLogMailer creates a mailer that logs instead of sending
func NewLogMailer(logger *zap.Logger) *LogMailer {
	return &LogMailer{logger: logger}
}

// Send logs the message at info level
func (m *LogMailer) Send(_ context.Context, msg Message) error {
	m.logger.Info("outbound email (log mailer)",
		zap.String("to", msg.To),
		zap.String("subject", msg.Subject),
		zap.String("body", msg.TextBody),
	)
	return nil
}

// Ensure LogMailer implements Mailer
var _ Mailer = (*LogMailer)(nil)
