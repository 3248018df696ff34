//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=voucher_put_test
package voucher_put

import (
	"context"

	"backoffice/internal/entities"
	"backoffice/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	UpdateVoucher(ctx context.Context, voucherModify entities.VoucherModify) (*entities.Voucher, error)
}
