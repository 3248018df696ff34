package entities

import "time"

type Customer struct {
	ID            int64
	FullName      string
	Phone         string
	Email         string
	Address       string
	LoyaltyPoints int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type CustomerModify struct {
	ID            *int64
	FullName      *string
	Phone         *string
	Email         *string
	Address       *string
	LoyaltyPoints *int64
}

// LoyaltyScore - одно движение по баллам: дельта и итоговый баланс.
type LoyaltyScore struct {
	CustomerID int64
	Delta      int64
	Balance    int64
	CreatedAt  time.Time
}
