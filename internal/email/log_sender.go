package email

import (
	"context"

	"github.com/Domenick1991/airops/internal/logger"
)

// LogSender only logs the message. It stands in for Gmail when no mail
// credentials are configured.
type LogSender struct {
	log logger.Logger
}

func NewLogSender(log logger.Logger) *LogSender {
	return &LogSender{log: log}
}

func (s *LogSender) Send(_ context.Context, msg Message) error {
	s.log.Info("email not sent, mail delivery disabled", "to", msg.To, "subject", msg.Subject)
	return nil
}
