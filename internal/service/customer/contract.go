//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=customer_test
package customer

import (
	"context"

	"backoffice/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, customerModify entities.CustomerModify) (int64, error)
	Update(ctx context.Context, customerModify entities.CustomerModify) (*entities.Customer, error)
	GetByID(ctx context.Context, id int64) (*entities.Customer, error)
	List(ctx context.Context, params entities.ListParams) ([]entities.Customer, int64, error)
	AddLoyaltyPoints(ctx context.Context, customerID, delta int64) (int64, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
