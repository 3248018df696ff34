//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=staffs_get_test
package staffs_get

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
	ListStaffs(ctx context.Context, params entities.ListParams) ([]entities.Staff, int64, error)
}
