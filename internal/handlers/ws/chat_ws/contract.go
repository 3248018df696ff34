//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=chat_ws_test
package chat_ws

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
	Subscribe(ctx context.Context, conversationID int64) (chan entities.Message, error)
	Unsubscribe(conversationID int64, ch chan entities.Message)
	Send(ctx context.Context, messageCreate entities.MessageCreate) (*entities.Message, error)
}
