package chat_message

import (
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
	HandleInbound(event entities.ChatMessageEvent)
}
