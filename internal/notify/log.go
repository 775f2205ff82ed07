package notify

import (
	"context"

	"battery_dashboard/internal/logger"
	"battery_dashboard/internal/models"
)

// Log writes every toast to the application log.
type Log struct {
	log *logger.Logger
}

func NewLog(l *logger.Logger) *Log {
	if l == nil {
		l = logger.Nop()
	}
	return &Log{log: l}
}

func (l *Log) Notify(_ context.Context, n models.Notification) {
	kv := []any{"user_id", n.UserID, "title", n.Title, "description", n.Description}
	if n.Kind == models.NotifyError {
		l.log.Warnw("notification", kv...)
		return
	}
	l.log.Infow("notification", kv...)
}
