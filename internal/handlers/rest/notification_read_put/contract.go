//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=notification_read_put_test
package notification_read_put

import (
	"context"

	"backoffice/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	MarkRead(ctx context.Context, id int64, staffID int64) error
}
