package notification

import (
	"context"

	"github.com/cmlabs-hris/portal-backend-go/internal/domain/notification"
	"github.com/cmlabs-hris/portal-backend-go/internal/pkg/sse"
)

type notificationServiceImpl struct {
	hub *sse.Hub
}

// NewNotificationService pushes toasts over the SSE hub. Delivery is
// best-effort: a user with no connected screens just misses the toast.
func NewNotificationService(hub *sse.Hub) notification.Service {
	return &notificationServiceImpl{hub: hub}
}

// Push implements notification.Service.
func (s *notificationServiceImpl) Push(ctx context.Context, userID string, toast notification.Toast) {
	s.hub.Publish(userID, sse.Event{
		UserID: userID,
		Event:  "toast",
		Data:   toast,
	})
}
