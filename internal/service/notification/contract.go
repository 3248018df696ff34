//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=notification_test
package notification

import (
	"context"

	"backoffice/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, n entities.Notification) (int64, error)
	ListByStaff(ctx context.Context, staffID int64, limit, offset int) ([]entities.Notification, error)
	UnreadCount(ctx context.Context, staffID int64) (int64, error)
	MarkRead(ctx context.Context, id int64, staffID int64) error
}

type StaffRepository interface {
	GetActiveIDs(ctx context.Context) ([]int64, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
