//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=voucher_test
package voucher

import (
	"context"
	"time"

	"backoffice/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, voucherModify entities.VoucherModify) (int64, error)
	Update(ctx context.Context, voucherModify entities.VoucherModify) (*entities.Voucher, error)
	GetByID(ctx context.Context, id int64) (*entities.Voucher, error)
	List(ctx context.Context, params entities.ListParams) ([]entities.Voucher, int64, error)
	RefreshStatuses(ctx context.Context, now time.Time) (int64, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
