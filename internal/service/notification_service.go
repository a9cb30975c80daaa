package service

import (
	"context"

	"github.com/njprem/FocoTour_APP_BackEnd/internal/domain"
	"github.com/njprem/FocoTour_APP_BackEnd/internal/repository/ports"
)

const defaultNotificationLimit = 20

type NotificationService struct {
	inbox ports.NotificationInbox
}

func NewNotificationService(inbox ports.NotificationInbox) *NotificationService {
	return &NotificationService{inbox: inbox}
}

func (s *NotificationService) List(ctx context.Context, userID int64, limit int) ([]domain.Notification, error) {
	if limit <= 0 || limit > 50 {
		limit = defaultNotificationLimit
	}
	items, err := s.inbox.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []domain.Notification{}
	}
	return items, nil
}
