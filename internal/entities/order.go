package entities

import "time"

type OrderStatusType string

const (
	OrderPending    OrderStatusType = "PENDING"
	OrderConfirmed  OrderStatusType = "CONFIRMED"
	OrderPreparing  OrderStatusType = "PREPARING"
	OrderDelivering OrderStatusType = "DELIVERING"
	OrderDelivered  OrderStatusType = "DELIVERED"
	OrderCompleted  OrderStatusType = "COMPLETED"
	OrderCancelled  OrderStatusType = "CANCELLED"
)

func (s OrderStatusType) String() string {
	return string(s)
}

// AllOrderStatuses - порядок соответствует жизненному циклу заказа.
var AllOrderStatuses = []OrderStatusType{
	OrderPending,
	OrderConfirmed,
	OrderPreparing,
	OrderDelivering,
	OrderDelivered,
	OrderCompleted,
	OrderCancelled,
}

// orderStatusFlow - статическая таблица переходов. Терминальные статусы
// (COMPLETED, CANCELLED) отображаются в пустое множество.
var orderStatusFlow = map[OrderStatusType][]OrderStatusType{
	OrderPending:    {OrderConfirmed, OrderCancelled},
	OrderConfirmed:  {OrderPreparing, OrderCancelled},
	OrderPreparing:  {OrderDelivering, OrderCancelled},
	OrderDelivering: {OrderDelivered},
	OrderDelivered:  {OrderCompleted},
	OrderCompleted:  {},
	OrderCancelled:  {},
}

// NextOrderStatuses возвращает допустимые следующие статусы для current.
// Для пустого/неизвестного статуса (сценарий создания) доступны все статусы.
func NextOrderStatuses(current OrderStatusType) []OrderStatusType {
	next, ok := orderStatusFlow[current]
	if !ok {
		return AllOrderStatuses
	}
	return next
}

func CanTransitOrderStatus(from, to OrderStatusType) bool {
	for _, s := range NextOrderStatuses(from) {
		if s == to {
			return true
		}
	}
	return false
}

type PaymentStatusType string

const (
	PaymentUnpaid PaymentStatusType = "UNPAID"
	PaymentPaid   PaymentStatusType = "PAID"
)

func (s PaymentStatusType) String() string {
	return string(s)
}

type SellingOrder struct {
	ID            int64
	CustomerID    *int64 // nil - покупатель "с улицы"
	Items         []OrderItem
	TotalAmount   int64
	UsedPoints    int64
	EarnedPoints  int64
	FinalAmount   int64
	PaymentMethod string
	PaymentStatus PaymentStatusType
	Status        OrderStatusType
	History       []OrderStatusHistory
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type OrderItem struct {
	ID          int64
	OrderID     int64
	ProductID   int64
	ProductName string
	Unit        string
	Quantity    int32
	UnitPrice   int64
	LineTotal   int64
}

// OrderStatusHistory - append-only, время назначается сервером.
type OrderStatusHistory struct {
	ID        int64
	OrderID   int64
	Status    OrderStatusType
	CreatedAt time.Time
}

type OrderItemCreate struct {
	ProductID int64
	Quantity  int32
}

type OrderCreate struct {
	CustomerID    *int64
	Items         []OrderItemCreate
	UsePoints     bool
	PaymentMethod string
	// Status переопределяет POS-поведение по умолчанию (COMPLETED/PAID).
	Status *OrderStatusType
}

type OrderStatusChangedEvent struct {
	OrderID     int64     `json:"order_id"`
	CustomerID  *int64    `json:"customer_id,omitempty"`
	Status      string    `json:"status"`
	TotalAmount int64     `json:"total_amount"`
	ChangedAt   time.Time `json:"changed_at"`
}
