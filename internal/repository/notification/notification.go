package notification

import (
	"context"
	"fmt"

	"backoffice/internal/entities"
	"backoffice/internal/service/notification"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, n entities.Notification) (int64, error) {
	query := `INSERT INTO notifications (staff_id, order_id, title, body)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	var id int64
	err := r.querier.QueryRow(ctx, query, n.StaffID, n.OrderID, n.Title, n.Body).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("unexpected notification repository create error: %w", err)
	}

	return id, nil
}

func (r *Repository) ListByStaff(ctx context.Context, staffID int64, limit, offset int) ([]entities.Notification, error) {
	query := `SELECT id, staff_id, order_id, title, body, is_read, created_at
		FROM notifications
		WHERE staff_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.querier.Query(ctx, query, staffID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("unexpected notification repository list error: %w", err)
	}
	defer rows.Close()

	notifications := make([]entities.Notification, 0, limit)
	for rows.Next() {
		var n entities.Notification
		err := rows.Scan(&n.ID, &n.StaffID, &n.OrderID, &n.Title, &n.Body, &n.IsRead, &n.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("unexpected notification repository list error: %w", err)
		}
		notifications = append(notifications, n)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected notification repository list error: %w", err)
	}

	return notifications, nil
}

func (r *Repository) UnreadCount(ctx context.Context, staffID int64) (int64, error) {
	query := `SELECT COUNT(*) FROM notifications WHERE staff_id = $1 AND is_read = false`

	var count int64
	err := r.querier.QueryRow(ctx, query, staffID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("unexpected notification repository unreadcount error: %w", err)
	}

	return count, nil
}

func (r *Repository) MarkRead(ctx context.Context, id int64, staffID int64) error {
	query := `UPDATE notifications SET is_read = true WHERE id = $1 AND staff_id = $2`

	result, err := r.querier.Exec(ctx, query, id, staffID)
	if err != nil {
		return fmt.Errorf("unexpected notification repository markread error: %w", err)
	}
	if result.RowsAffected() == 0 {
		return notification.ErrNotificationNotFound
	}

	return nil
}
