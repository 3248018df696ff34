//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=messages_get_test
package messages_get

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
	History(ctx context.Context, conversationID int64, page, pageSize int) ([]entities.Message, bool, error)
}
