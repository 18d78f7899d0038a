package repository

import (
	"context"
	"sync"

	"skill-swap-core/internal/domain/identity"
	"skill-swap-core/internal/usecase/shared"
)

const defaultOutboxCapacity = 1000

// NotificationOutbox retains the most recent notifications per recipient
// so API clients can poll them.
type NotificationOutbox struct {
	mu       sync.RWMutex
	capacity int
	byOwner  map[string][]shared.Notification
}

func NewNotificationOutbox(capacity int) *NotificationOutbox {
	if capacity <= 0 {
		capacity = defaultOutboxCapacity
	}
	return &NotificationOutbox{capacity: capacity, byOwner: make(map[string][]shared.Notification)}
}

func (o *NotificationOutbox) Append(_ context.Context, n shared.Notification) error {
	if n.Recipient.IsZero() {
		return nil
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	key := n.Recipient.String()
	list := append(o.byOwner[key], n)
	if len(list) > o.capacity {
		list = list[len(list)-o.capacity:]
	}
	o.byOwner[key] = list
	return nil
}

// ListFor returns notifications oldest first.
func (o *NotificationOutbox) ListFor(_ context.Context, recipient identity.Identity) ([]shared.Notification, error) {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return append([]shared.Notification(nil), o.byOwner[recipient.String()]...), nil
}
