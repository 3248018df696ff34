package notification

import (
	"context"
	"fmt"
	"strings"

	"backoffice/internal/entities"
)

type Notification struct {
	repository      Repository
	staffRepository StaffRepository
	txManager       TxManager
}

func New(repository Repository, staffRepository StaffRepository, txManager TxManager) *Notification {
	return &Notification{
		repository:      repository,
		staffRepository: staffRepository,
		txManager:       txManager,
	}
}

// NotifyOrderStatusChanged раскладывает событие по заказу в нотификацию
// каждому активному сотруднику. Вызывается воркером-консьюмером.
func (s *Notification) NotifyOrderStatusChanged(ctx context.Context, event entities.OrderStatusChangedEvent) error {
	if event.OrderID == 0 || strings.TrimSpace(event.Status) == "" {
		return ErrMissingRequiredFields
	}

	staffIDs, err := s.staffRepository.GetActiveIDs(ctx)
	if err != nil {
		return fmt.Errorf("get active staff: %w", err)
	}
	if len(staffIDs) == 0 {
		return nil
	}

	title := fmt.Sprintf("Order #%d is %s", event.OrderID, event.Status)
	body := fmt.Sprintf("Order #%d changed status to %s, total %d", event.OrderID, event.Status, event.TotalAmount)

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		for _, staffID := range staffIDs {
			n := entities.Notification{
				StaffID: staffID,
				OrderID: event.OrderID,
				Title:   title,
				Body:    body,
			}
			if _, err := s.repository.Create(ctx, n); err != nil {
				return fmt.Errorf("create notification: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	return nil
}

// GetFeed отдает страницу нотификаций вместе с непрочитанным счетчиком.
// Состояние прочитанности здесь не меняется, только явным MarkRead.
func (s *Notification) GetFeed(ctx context.Context, staffID int64, limit, offset int) (*entities.NotificationFeed, error) {
	notifications, err := s.repository.ListByStaff(ctx, staffID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}

	unreadCount, err := s.repository.UnreadCount(ctx, staffID)
	if err != nil {
		return nil, fmt.Errorf("count unread notifications: %w", err)
	}

	return &entities.NotificationFeed{
		Notifications: notifications,
		UnreadCount:   unreadCount,
	}, nil
}

func (s *Notification) MarkRead(ctx context.Context, id int64, staffID int64) error {
	err := s.repository.MarkRead(ctx, id, staffID)
	if err != nil {
		return fmt.Errorf("mark notification read: %w", err)
	}

	return nil
}
