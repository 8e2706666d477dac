package notification

import "context"

type NotificationResponse struct {
	ID        string `json:"id"`
	Message   string `json:"message"`
	Kind      string `json:"kind"`
	Read      bool   `json:"read"`
	CreatedAt string `json:"created_at"`
}

func ToResponse(n Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID,
		Message:   n.Message,
		Kind:      string(n.Kind),
		Read:      n.Read,
		CreatedAt: n.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

type NotificationService interface {
	Notify(ctx context.Context, kind Kind, message string)
	List(ctx context.Context) ([]NotificationResponse, error)
	MarkRead(ctx context.Context, id string) error
	Clear(ctx context.Context) error
}
