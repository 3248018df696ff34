//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=products_get_test
package products_get

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
	ListProducts(ctx context.Context, params entities.ListParams) ([]entities.Product, int64, error)
}
