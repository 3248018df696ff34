package dto

import "time"

type CustomerCreate struct {
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Address  string `json:"address"`
}

type CustomerUpdate struct {
	FullName *string `json:"fullName,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Email    *string `json:"email,omitempty"`
	Address  *string `json:"address,omitempty"`
}

type Customer struct {
	ID            int64  `json:"id"`
	FullName      string `json:"fullName"`
	Phone         string `json:"phone"`
	Email         string `json:"email,omitempty"`
	Address       string `json:"address,omitempty"`
	LoyaltyPoints int64  `json:"loyaltyPoints"`
	CreatedAt     string `json:"createdAt"`
}

type CustomerCreateResponse struct {
	ID int64 `json:"id"`
}

type CustomerList struct {
	Customers []Customer `json:"customers"`
	Meta      ListMeta   `json:"meta"`
}

type ProductCreate struct {
	SKU   string `json:"sku"`
	Name  string `json:"name"`
	Unit  string `json:"unit"`
	Price int64  `json:"price"`
}

type Product struct {
	ID          int64  `json:"id"`
	SKU         string `json:"sku"`
	Name        string `json:"name"`
	Unit        string `json:"unit"`
	Price       int64  `json:"price"`
	IsActivated bool   `json:"isActivated"`
}

type ProductCreateResponse struct {
	ID int64 `json:"id"`
}

type ProductList struct {
	Products []Product `json:"products"`
	Meta     ListMeta  `json:"meta"`
}

type OrderItemCreate struct {
	ProductID int64 `json:"productId"`
	Quantity  int32 `json:"quantity"`
}

type OrderCreate struct {
	CustomerID    *int64            `json:"customerId,omitempty"`
	Items         []OrderItemCreate `json:"items"`
	UsePoints     bool              `json:"usePoints"`
	PaymentMethod string            `json:"paymentMethod,omitempty"`
	OrderStatus   string            `json:"orderStatus,omitempty"`
}

type OrderItem struct {
	ProductID   int64  `json:"productId"`
	ProductName string `json:"productName"`
	Unit        string `json:"unit"`
	Quantity    int32  `json:"quantity"`
	UnitPrice   int64  `json:"unitPrice"`
	LineTotal   int64  `json:"lineTotal"`
}

type OrderStatusHistory struct {
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

type Order struct {
	ID            int64                `json:"id"`
	CustomerID    *int64               `json:"customerId,omitempty"`
	Items         []OrderItem          `json:"items,omitempty"`
	TotalAmount   int64                `json:"totalAmount"`
	UsedPoints    int64                `json:"usedPoints"`
	EarnedPoints  int64                `json:"earnedPoints"`
	FinalAmount   int64                `json:"finalAmount"`
	PaymentStatus string               `json:"paymentStatus"`
	OrderStatus   string               `json:"orderStatus"`
	History       []OrderStatusHistory `json:"history,omitempty"`
	NextStatuses  []string             `json:"nextStatuses,omitempty"`
	CreatedAt     string               `json:"createdAt"`
}

type OrderCreateResponse struct {
	ID           int64 `json:"id"`
	TotalAmount  int64 `json:"totalAmount"`
	UsedPoints   int64 `json:"usedPoints"`
	EarnedPoints int64 `json:"earnedPoints"`
	FinalAmount  int64 `json:"finalAmount"`
}

type OrderStatusUpdate struct {
	OrderStatus string `json:"orderStatus"`
}

type OrderList struct {
	Orders []Order  `json:"orders"`
	Meta   ListMeta `json:"meta"`
}

type VoucherCreate struct {
	Code          string    `json:"code"`
	DiscountType  string    `json:"discountType"`
	Value         int64     `json:"value"`
	MinOrderValue int64     `json:"minOrderValue"`
	MaxDiscount   int64     `json:"maxDiscount"`
	StartsAt      time.Time `json:"startsAt"`
	EndsAt        time.Time `json:"endsAt"`
	MaxUses       int32     `json:"maxUses"`
}

type VoucherUpdate struct {
	Status      *string    `json:"status,omitempty"`
	EndsAt      *time.Time `json:"endsAt,omitempty"`
	MaxUses     *int32     `json:"maxUses,omitempty"`
	MaxDiscount *int64     `json:"maxDiscount,omitempty"`
}

type Voucher struct {
	ID            int64     `json:"id"`
	Code          string    `json:"code"`
	DiscountType  string    `json:"discountType"`
	Value         int64     `json:"value"`
	MinOrderValue int64     `json:"minOrderValue"`
	MaxDiscount   int64     `json:"maxDiscount"`
	StartsAt      time.Time `json:"startsAt"`
	EndsAt        time.Time `json:"endsAt"`
	MaxUses       int32     `json:"maxUses"`
	UsedCount     int32     `json:"usedCount"`
	Status        string    `json:"status"`
	NextStatuses  []string  `json:"nextStatuses,omitempty"`
}

type VoucherCreateResponse struct {
	ID int64 `json:"id"`
}

type VoucherList struct {
	Vouchers []Voucher `json:"vouchers"`
	Meta     ListMeta  `json:"meta"`
}

type Transaction struct {
	ID        int64     `json:"id"`
	OrderID   int64     `json:"orderId"`
	Amount    int64     `json:"amount"`
	Method    string    `json:"method"`
	CreatedAt time.Time `json:"createdAt"`
}

type TransactionList struct {
	Transactions []Transaction `json:"transactions"`
	Meta         ListMeta      `json:"meta"`
}

type Notification struct {
	ID        int64     `json:"id"`
	OrderID   int64     `json:"orderId"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
}

type NotificationFeed struct {
	Notifications []Notification `json:"notifications"`
	UnreadCount   int64          `json:"unreadCount"`
}

type Message struct {
	ID             int64     `json:"id"`
	ConversationID int64     `json:"conversationId"`
	SenderID       int64     `json:"senderId"`
	ReceiverID     int64     `json:"receiverId"`
	Content        string    `json:"content"`
	Status         string    `json:"status"`
	SentAt         time.Time `json:"sentAt"`
}

type MessagePage struct {
	Messages []Message `json:"messages"`
	HasMore  bool      `json:"hasMore"`
}

type StaffCreate struct {
	Username string `json:"username"`
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
}

type Staff struct {
	ID          int64  `json:"id"`
	Username    string `json:"username"`
	FullName    string `json:"fullName"`
	Phone       string `json:"phone"`
	IsActivated bool   `json:"isActivated"`
}

type StaffCreateResponse struct {
	ID int64 `json:"id"`
}

type StaffList struct {
	Staffs []Staff  `json:"staffs"`
	Meta   ListMeta `json:"meta"`
}

type PingResponse struct {
	Message *string `json:"message,omitempty"`
}
