package entities

import "time"

type Notification struct {
	ID        int64
	StaffID   int64
	OrderID   int64
	Title     string
	Body      string
	IsRead    bool
	CreatedAt time.Time
}

// NotificationFeed - содержимое ленты нотификаций: непрочитанный счетчик
// отдаем вместе со страницей, чтобы бейдж не требовал отдельного запроса.
type NotificationFeed struct {
	Notifications []Notification
	UnreadCount   int64
}
