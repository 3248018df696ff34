package product

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"backoffice/internal/entities"
	"backoffice/internal/repository"
	"backoffice/internal/service/catalog"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var sortColumns = map[string]string{
	"createdAt": "created_at",
	"name":      "name",
	"price":     "price",
	"sku":       "sku",
}

type ProductDB struct {
	ID          int64
	SKU         string
	Name        string
	Unit        string
	Price       int64
	IsActivated bool
}

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, productModify entities.ProductModify) (int64, error) {
	query := `INSERT INTO products (sku, name, unit, price)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		productModify.SKU,
		productModify.Name,
		productModify.Unit,
		productModify.Price,
	).Scan(&id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return 0, catalog.ErrConflict
		}
		return 0, fmt.Errorf("unexpected product repository create error: %w", err)
	}

	return id, nil
}

// GetByIDs возвращает активные товары для сборки заказа.
func (r *Repository) GetByIDs(ctx context.Context, ids []int64) ([]entities.Product, error) {
	builder := qb.
		Select("id", "sku", "name", "unit", "price", "is_activated").
		From("products").
		Where(sq.Eq{"id": ids, "is_activated": true})

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected product repository getbyids error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected product repository getbyids error: %w", err)
	}
	defer rows.Close()

	products := make([]entities.Product, 0, len(ids))
	for rows.Next() {
		var productModel ProductDB
		err := rows.Scan(
			&productModel.ID,
			&productModel.SKU,
			&productModel.Name,
			&productModel.Unit,
			&productModel.Price,
			&productModel.IsActivated,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected product repository getbyids error: %w", err)
		}
		products = append(products, entities.Product{
			ID:          productModel.ID,
			SKU:         productModel.SKU,
			Name:        productModel.Name,
			Unit:        productModel.Unit,
			Price:       productModel.Price,
			IsActivated: productModel.IsActivated,
		})
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected product repository getbyids error: %w", err)
	}

	return products, nil
}

func (r *Repository) List(ctx context.Context, params entities.ListParams) ([]entities.Product, int64, error) {
	where := sq.And{}
	if params.Query != "" {
		pattern := "%" + params.Query + "%"
		where = append(where, sq.Or{
			sq.ILike{"name": pattern},
			sq.ILike{"sku": pattern},
		})
	}
	if isActivated, ok := params.Filters["isActivated"]; ok {
		where = append(where, sq.Eq{"is_activated": isActivated == "true"})
	}

	countBuilder := qb.Select("COUNT(*)").From("products")
	if len(where) > 0 {
		countBuilder = countBuilder.Where(where)
	}
	countQuery, countArgs, err := countBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("unexpected product repository list error: %w", err)
	}

	var total int64
	err = r.querier.QueryRow(ctx, countQuery, countArgs...).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("unexpected product repository list error: %w", err)
	}

	orderBy := "created_at DESC"
	if column, ok := sortColumns[params.SortBy]; ok {
		direction := "ASC"
		if params.Direction == entities.SortDesc {
			direction = "DESC"
		}
		orderBy = column + " " + direction
	}

	builder := qb.
		Select("id", "sku", "name", "unit", "price", "is_activated").
		From("products").
		OrderBy(orderBy).
		Limit(uint64(params.Limit())).
		Offset(uint64(params.Offset()))
	if len(where) > 0 {
		builder = builder.Where(where)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("unexpected product repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("unexpected product repository list error: %w", err)
	}
	defer rows.Close()

	products := make([]entities.Product, 0, params.Limit())
	for rows.Next() {
		var productModel ProductDB
		err := rows.Scan(
			&productModel.ID,
			&productModel.SKU,
			&productModel.Name,
			&productModel.Unit,
			&productModel.Price,
			&productModel.IsActivated,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("unexpected product repository list error: %w", err)
		}
		products = append(products, entities.Product{
			ID:          productModel.ID,
			SKU:         productModel.SKU,
			Name:        productModel.Name,
			Unit:        productModel.Unit,
			Price:       productModel.Price,
			IsActivated: productModel.IsActivated,
		})
	}

	err = rows.Err()
	if err != nil {
		return nil, 0, fmt.Errorf("unexpected product repository list error: %w", err)
	}

	return products, total, nil
}
