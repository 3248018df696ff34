package order

import "time"

type OrderDB struct {
	ID            int64
	CustomerID    *int64
	TotalAmount   int64
	UsedPoints    int64
	EarnedPoints  int64
	FinalAmount   int64
	PaymentMethod string
	PaymentStatus string
	Status        string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type OrderItemDB struct {
	ID          int64
	OrderID     int64
	ProductID   int64
	ProductName string
	Unit        string
	Quantity    int32
	UnitPrice   int64
	LineTotal   int64
}

type StatusHistoryDB struct {
	ID        int64
	OrderID   int64
	Status    string
	CreatedAt time.Time
}
