package notify

import (
	"context"
	"fmt"
	"sync"

	"github.com/containrrr/shoutrrr"

	"battery_dashboard/internal/logger"
	"battery_dashboard/internal/models"
)

// Sender abstracts message dispatch so forwarding can be tested
// without hitting real services.
type Sender interface {
	Send(shoutrrrURL, message string) error
}

// ShoutrrrSender dispatches via the Shoutrrr library.
type ShoutrrrSender struct{}

func (ShoutrrrSender) Send(url, message string) error {
	return shoutrrr.Send(url, message)
}

// Forwarder relays toasts to external services (Slack, Telegram, ntfy, ...) in the background.
type Forwarder struct {
	urls   []string
	sender Sender
	log    *logger.Logger
	wg     sync.WaitGroup
}

func NewForwarder(urls []string, sender Sender, l *logger.Logger) *Forwarder {
	if sender == nil {
		sender = ShoutrrrSender{}
	}
	if l == nil {
		l = logger.Nop()
	}
	return &Forwarder{urls: urls, sender: sender, log: l}
}

// FormatMessage renders a toast as a single line.
func FormatMessage(n models.Notification) string {
	return fmt.Sprintf("[battery-dashboard] %s: %s (user %d)", n.Title, n.Description, n.UserID)
}

func (f *Forwarder) Notify(_ context.Context, n models.Notification) {
	if len(f.urls) == 0 {
		return
	}
	msg := FormatMessage(n)
	for _, u := range f.urls {
		f.wg.Add(1)
		go func(url string) {
			defer f.wg.Done()
			if err := f.sender.Send(url, msg); err != nil {
				f.log.Warnw("notify_forward_failed", "notification_id", n.ID, "err", err)
			}
		}(u)
	}
}

// Wait blocks until all pending sends have finished.
func (f *Forwarder) Wait() { f.wg.Wait() }
