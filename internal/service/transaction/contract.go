//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=transaction_test
package transaction

import (
	"context"

	"backoffice/internal/entities"
)

type Repository interface {
	List(ctx context.Context, params entities.ListParams) ([]entities.Transaction, int64, error)
}
