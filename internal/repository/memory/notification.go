package memory

import (
	"context"
	"time"

	"github.com/alsaqr-welding/portal-backend-go/internal/domain/notification"
)

type notificationRepository struct {
	store *Store
}

func (r *notificationRepository) Create(ctx context.Context, n notification.Notification) (notification.Notification, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	n.ID = s.nextNotificationID()
	n.CreatedAt = time.Now().UTC()
	s.notifications[n.ID] = n
	s.notifOrder = append(s.notifOrder, n.ID)
	return n, nil
}

func (r *notificationRepository) List(ctx context.Context) ([]notification.Notification, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]notification.Notification, 0, len(s.notifOrder))
	for i := len(s.notifOrder) - 1; i >= 0; i-- {
		out = append(out, s.notifications[s.notifOrder[i]])
	}
	return out, nil
}

func (r *notificationRepository) MarkRead(ctx context.Context, id string) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	n, ok := s.notifications[id]
	if !ok {
		return nil // feed entries are best-effort; a missing id is not an error
	}
	n.Read = true
	s.notifications[id] = n
	return nil
}

func (r *notificationRepository) Clear(ctx context.Context) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	s.notifications = make(map[string]notification.Notification)
	s.notifOrder = nil
	return nil
}
