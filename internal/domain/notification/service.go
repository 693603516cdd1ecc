package notification

import "context"

// Service pushes toasts to a user's connected screens.
type Service interface {
	Push(ctx context.Context, userID string, toast Toast)
}
