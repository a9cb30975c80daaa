package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/njprem/FocoTour_APP_BackEnd/internal/domain"
	"github.com/njprem/FocoTour_APP_BackEnd/internal/repository/ports"
)

type notificationRow struct {
	ID            uuid.UUID `db:"id"`
	UserID        int64     `db:"user_id"`
	DestinationID int       `db:"destination_id"`
	Title         string    `db:"title"`
	Body          string    `db:"body"`
	Icon          string    `db:"icon"`
	CreatedAt     time.Time `db:"created_at"`
}

type NotificationInbox struct {
	db *sqlx.DB
}

func NewNotificationInbox(db *sqlx.DB) *NotificationInbox {
	return &NotificationInbox{db: db}
}

func (b *NotificationInbox) Append(ctx context.Context, n domain.Notification) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now().UTC()
	}
	const query = `
		INSERT INTO user_notification (id, user_id, destination_id, title, body, icon, created_at)
		VALUES (:id, :user_id, :destination_id, :title, :body, :icon, :created_at)
	`
	_, err := b.db.NamedExecContext(ctx, query, notificationRow{
		ID:            n.ID,
		UserID:        n.UserID,
		DestinationID: n.DestinationID,
		Title:         n.Title,
		Body:          n.Body,
		Icon:          n.Icon,
		CreatedAt:     n.CreatedAt,
	})
	return err
}

// Notify lets the inbox receive reminders directly.
func (b *NotificationInbox) Notify(ctx context.Context, n domain.Notification) error {
	return b.Append(ctx, n)
}

func (b *NotificationInbox) ListByUser(ctx context.Context, userID int64, limit int) ([]domain.Notification, error) {
	if limit <= 0 {
		limit = 50
	}
	const query = `
		SELECT id, user_id, destination_id, title, body, icon, created_at
		FROM user_notification
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`
	var rows []notificationRow
	if err := b.db.SelectContext(ctx, &rows, query, userID, limit); err != nil {
		return nil, err
	}
	out := make([]domain.Notification, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.Notification{
			ID:            r.ID,
			UserID:        r.UserID,
			DestinationID: r.DestinationID,
			Title:         r.Title,
			Body:          r.Body,
			Icon:          r.Icon,
			CreatedAt:     r.CreatedAt,
		})
	}
	return out, nil
}

var _ ports.NotificationInbox = (*NotificationInbox)(nil)
