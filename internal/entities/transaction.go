package entities

import "time"

type Transaction struct {
	ID        int64
	OrderID   int64
	Amount    int64
	Method    string // CASH, CARD, TRANSFER
	CreatedAt time.Time
}

const DefaultPaymentMethod = "CASH"

func IsValidPaymentMethod(method string) bool {
	switch method {
	case "CASH", "CARD", "TRANSFER":
		return true
	default:
		return false
	}
}
