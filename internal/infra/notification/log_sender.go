package notification

import (
	"context"
	"log/slog"

	"campwatch/internal/domain/service"

	"github.com/pkg/errors"
)

// ChannelLog is recorded in history for messages that were only logged.
const ChannelLog = "log"

// logSender writes messages to the log. Used when no delivery provider is configured.
type logSender struct {
	logger *slog.Logger
}

// NewLogSender creates a sender that only logs.
func NewLogSender(logger *slog.Logger) service.MessageSender {
	return &logSender{logger: logger}
}

func (s *logSender) Channel() string {
	return ChannelLog
}

func (s *logSender) Send(ctx context.Context, msg *service.Message) error {
	if msg == nil || msg.To == "" {
		return errors.New("message recipient is required")
	}

	s.logger.InfoContext(ctx, "[LogSender] Message",
		slog.String("to", msg.To),
		slog.String("title", msg.Title),
		slog.String("body", msg.Body),
	)

	return nil
}

func (s *logSender) Close() error {
	return nil
}
