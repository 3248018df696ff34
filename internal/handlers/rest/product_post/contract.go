//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=product_post_test
package product_post

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
	CreateProduct(ctx context.Context, productModify entities.ProductModify) (int64, error)
}
