package memory

import (
	"context"
	"sync"

	"github.com/njprem/FocoTour_APP_BackEnd/internal/domain"
	"github.com/njprem/FocoTour_APP_BackEnd/internal/repository/ports"
)

const maxInboxPerUser = 50

// NotificationInbox keeps the latest notifications of each user, newest first.
type NotificationInbox struct {
	mu    sync.RWMutex
	items map[int64][]domain.Notification
}

func NewNotificationInbox() *NotificationInbox {
	return &NotificationInbox{items: make(map[int64][]domain.Notification)}
}

func (b *NotificationInbox) Append(ctx context.Context, n domain.Notification) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	list := append([]domain.Notification{n}, b.items[n.UserID]...)
	if len(list) > maxInboxPerUser {
		list = list[:maxInboxPerUser]
	}
	b.items[n.UserID] = list
	return nil
}

// Notify lets the inbox receive reminders directly.
func (b *NotificationInbox) Notify(ctx context.Context, n domain.Notification) error {
	return b.Append(ctx, n)
}

func (b *NotificationInbox) ListByUser(ctx context.Context, userID int64, limit int) ([]domain.Notification, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	list := b.items[userID]
	if limit > 0 && len(list) > limit {
		list = list[:limit]
	}
	return append([]domain.Notification(nil), list...), nil
}

var _ ports.NotificationInbox = (*NotificationInbox)(nil)
