package notification

import "context"

type NotificationRepository interface {
	// Create appends a notification to the feed
	Create(ctx context.Context, n Notification) (Notification, error)

	// List retrieves the feed, newest first
	List(ctx context.Context) ([]Notification, error)

	// MarkRead flags a single notification as read
	MarkRead(ctx context.Context, id string) error

	// Clear empties the feed
	Clear(ctx context.Context) error
}
