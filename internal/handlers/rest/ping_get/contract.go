package ping_get

import (
	"backoffice/pkg/logger"
)

type handlerLogger interface {
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
