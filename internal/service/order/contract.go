//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"

	"backoffice/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, orderEntity entities.SellingOrder) (int64, error)
	GetByID(ctx context.Context, id int64) (*entities.SellingOrder, error)
	GetStatus(ctx context.Context, id int64) (entities.OrderStatusType, error)
	UpdateStatus(ctx context.Context, id int64, status entities.OrderStatusType) (*entities.SellingOrder, error)
	MarkPaid(ctx context.Context, id int64) error
	List(ctx context.Context, params entities.ListParams) ([]entities.SellingOrder, int64, error)
}

type TransactionRepository interface {
	Create(ctx context.Context, orderID int64, amount int64, method string) (int64, error)
}

type CustomerService interface {
	GetCustomer(ctx context.Context, id int64) (*entities.Customer, error)
	AddLoyaltyPoints(ctx context.Context, customerID, delta int64) (int64, error)
}

type CatalogService interface {
	GetProducts(ctx context.Context, ids []int64) ([]entities.Product, error)
}

type EventProducer interface {
	ProduceOrderStatusChanged(ctx context.Context, event entities.OrderStatusChangedEvent) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
