//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=staff_post_test
package staff_post

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
	CreateStaff(ctx context.Context, staffModify entities.StaffModify) (int64, error)
}
