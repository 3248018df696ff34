package customer

import "time"

type CustomerDB struct {
	ID            int64
	FullName      string
	Phone         string
	Email         string
	Address       string
	LoyaltyPoints int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type CustomerModifyDB struct {
	ID            *int64
	FullName      *string
	Phone         *string
	Email         *string
	Address       *string
	LoyaltyPoints *int64
}
