// Package projection builds local per-user views from what a participant observes.
// It never modifies room state.
package projection

import (
	"petspace/domain"
	"sync"
)

// Timeline records every delivery and notification handed to one user.
// It is safe for concurrent use.
type Timeline struct {
	Owner         string
	mu            sync.Mutex
	received      []domain.Delivery
	notifications []domain.Notification
}

func NewTimeline(owner string) *Timeline {
	return &Timeline{Owner: owner}
}

func (t *Timeline) OnReceive(delivery domain.Delivery) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.received = append(t.received, delivery)
}

func (t *Timeline) OnNotify(notification domain.Notification) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.notifications = append(t.notifications, notification)
}

func (t *Timeline) Received() []domain.Delivery {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]domain.Delivery(nil), t.received...)
}

func (t *Timeline) Notifications() []domain.Notification {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]domain.Notification(nil), t.notifications...)
}
