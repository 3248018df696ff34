//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=catalog_test
package catalog

import (
	"context"

	"backoffice/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, productModify entities.ProductModify) (int64, error)
	GetByIDs(ctx context.Context, ids []int64) ([]entities.Product, error)
	List(ctx context.Context, params entities.ListParams) ([]entities.Product, int64, error)
}
