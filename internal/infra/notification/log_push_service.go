package notification

import (
	"context"
	"log/slog"

	"alertradar/internal/domain/entity"
	"alertradar/internal/domain/service"
)

// logPushService only logs pushes. Used in development.
type logPushService struct {
	logger *slog.Logger
}

// NewLogPushService creates a push service that writes each push to the log
func NewLogPushService(logger *slog.Logger) service.PushService {
	return &logPushService{logger: logger}
}

func (s *logPushService) Send(ctx context.Context, token string, message *entity.PushMessage) error {
	s.logger.InfoContext(ctx, "[LogPush] Push dispatched",
		slog.String("token", maskToken(token)),
		slog.String("alert", message.Alert),
		slog.Int("badge", message.Badge),
		slog.String("alert_id", message.Data["alert_id"]),
	)

	return nil
}

// maskToken keeps the last four characters of a device token
func maskToken(token string) string {
	if len(token) <= 4 {
		return "****"
	}

	return "****" + token[len(token)-4:]
}
