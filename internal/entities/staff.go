package entities

import "time"

type Staff struct {
	ID          int64
	Username    string
	FullName    string
	Phone       string
	IsActivated bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type StaffModify struct {
	ID          *int64
	Username    *string
	FullName    *string
	Phone       *string
	IsActivated *bool
}
