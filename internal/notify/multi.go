package notify

import (
	"context"

	"battery_dashboard/internal/models"
)

// Notifier delivers one toast.
type Notifier interface {
	Notify(ctx context.Context, n models.Notification)
}

// Multi delivers to every sink in order; nil sinks are skipped.
type Multi []Notifier

func (m Multi) Notify(ctx context.Context, n models.Notification) {
	for _, s := range m {
		if s != nil {
			s.Notify(ctx, n)
		}
	}
}
