// Package notify delivers wizard toasts to live dashboards, the log and external services.
package notify

import (
	"context"
	"sync"

	"battery_dashboard/internal/models"
)

const subscriberBuffer = 16

// Hub fans toasts out to the websocket subscribers of each user.
type Hub struct {
	mu   sync.RWMutex
	subs map[int]map[chan models.Notification]struct{}
}

func NewHub() *Hub {
	return &Hub{subs: make(map[int]map[chan models.Notification]struct{})}
}

// Subscribe registers a stream for userID. The returned func unsubscribes and closes the channel.
func (h *Hub) Subscribe(userID int) (<-chan models.Notification, func()) {
	ch := make(chan models.Notification, subscriberBuffer)
	h.mu.Lock()
	if h.subs[userID] == nil {
		h.subs[userID] = make(map[chan models.Notification]struct{})
	}
	h.subs[userID][ch] = struct{}{}
	h.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() { h.unsubscribe(userID, ch) })
	}
}

func (h *Hub) unsubscribe(userID int, ch chan models.Notification) {
	h.mu.Lock()
	defer h.mu.Unlock()
	set := h.subs[userID]
	if _, ok := set[ch]; !ok {
		return
	}
	delete(set, ch)
	close(ch)
	if len(set) == 0 {
		delete(h.subs, userID)
	}
}

// Notify publishes n to every subscriber of n.UserID.
func (h *Hub) Notify(_ context.Context, n models.Notification) {
	if h == nil {
		return
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	for ch := range h.subs[n.UserID] {
		// Non-blocking send; drop if subscriber is slow
		select {
		case ch <- n:
		default:
		}
	}
}

// Subscribers returns the number of open streams for userID.
func (h *Hub) Subscribers(userID int) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs[userID])
}
