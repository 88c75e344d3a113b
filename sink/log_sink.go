package sink

import (
	"context"
	"log/slog"
	"petspace/domain"
)

// LogSink writes every audit record to the structured log.
type LogSink struct {
	log *slog.Logger
}

func NewLogSink(log *slog.Logger) LogSink {
	return LogSink{log: log}
}

func (l LogSink) Consume(ctx context.Context, record domain.AuditRecord) error {
	l.log.InfoContext(ctx, "audit: message sent",
		"audit_id", record.ID.String(),
		"at", record.At,
		"user", record.SenderName,
		"room", record.RoomName,
		"lang", record.Language,
		"message", record.Content,
	)
	return nil
}
