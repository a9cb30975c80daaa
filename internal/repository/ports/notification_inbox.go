package ports

import (
	"context"

	"github.com/njprem/FocoTour_APP_BackEnd/internal/domain"
)

type NotificationInbox interface {
	Append(ctx context.Context, n domain.Notification) error
	ListByUser(ctx context.Context, userID int64, limit int) ([]domain.Notification, error)
}
