package notification

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/alsaqr-welding/portal-backend-go/internal/domain/notification"
)

type NotificationServiceImpl struct {
	notificationRepo notification.NotificationRepository
}

func NewNotificationService(notificationRepo notification.NotificationRepository) *NotificationServiceImpl {
	return &NotificationServiceImpl{notificationRepo: notificationRepo}
}

// Notify implements notification.NotificationService. The feed is advisory,
// so a write failure is logged and swallowed rather than failing the
// business operation that triggered it.
func (s *NotificationServiceImpl) Notify(ctx context.Context, kind notification.Kind, message string) {
	_, err := s.notificationRepo.Create(ctx, notification.Notification{
		Message: message,
		Kind:    kind,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to write notification", slog.Any("error", err))
	}
}

// List implements notification.NotificationService.
func (s *NotificationServiceImpl) List(ctx context.Context) ([]notification.NotificationResponse, error) {
	items, err := s.notificationRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	responses := make([]notification.NotificationResponse, 0, len(items))
	for _, n := range items {
		responses = append(responses, notification.ToResponse(n))
	}
	return responses, nil
}

// MarkRead implements notification.NotificationService.
func (s *NotificationServiceImpl) MarkRead(ctx context.Context, id string) error {
	return s.notificationRepo.MarkRead(ctx, id)
}

// Clear implements notification.NotificationService.
func (s *NotificationServiceImpl) Clear(ctx context.Context) error {
	return s.notificationRepo.Clear(ctx)
}
