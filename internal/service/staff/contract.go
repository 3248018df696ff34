//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=staff_test
package staff

import (
	"context"

	"backoffice/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, staffModify entities.StaffModify) (int64, error)
	GetByID(ctx context.Context, id int64) (*entities.Staff, error)
	List(ctx context.Context, params entities.ListParams) ([]entities.Staff, int64, error)
}
