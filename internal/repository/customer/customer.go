package customer

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"backoffice/internal/entities"
	"backoffice/internal/repository"
	"backoffice/internal/service/customer"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// sortColumns - whitelist сортируемых колонок, всё остальное игнорируем.
var sortColumns = map[string]string{
	"createdAt":     "created_at",
	"fullName":      "full_name",
	"loyaltyPoints": "loyalty_points",
}

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, customerModifyEntity entities.CustomerModify) (int64, error) {
	customerModifyModel := FromDomainModify(&customerModifyEntity)
	query := `INSERT INTO customers (full_name, phone, email, address)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		customerModifyModel.FullName,
		customerModifyModel.Phone,
		customerModifyModel.Email,
		customerModifyModel.Address,
	).Scan(&id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return 0, customer.ErrConflict
		}
		return 0, fmt.Errorf("unexpected customer repository create error: %w", err)
	}

	return id, nil
}

func (r *Repository) Update(ctx context.Context, customerModifyEntity entities.CustomerModify) (*entities.Customer, error) {
	customerModifyModel := FromDomainModify(&customerModifyEntity)

	builder := qb.
		Update("customers")

	// опциональные поля
	if customerModifyModel.FullName != nil {
		builder = builder.Set("full_name", customerModifyModel.FullName)
	}
	if customerModifyModel.Phone != nil {
		builder = builder.Set("phone", customerModifyModel.Phone)
	}
	if customerModifyModel.Email != nil {
		builder = builder.Set("email", customerModifyModel.Email)
	}
	if customerModifyModel.Address != nil {
		builder = builder.Set("address", customerModifyModel.Address)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": customerModifyModel.ID}).
		Suffix("RETURNING id, full_name, phone, email, address, loyalty_points, created_at, updated_at")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected customer repository update error: %w", err)
	}

	var customerModel CustomerDB
	err = r.querier.QueryRow(ctx, query, args...).
		Scan(
			&customerModel.ID,
			&customerModel.FullName,
			&customerModel.Phone,
			&customerModel.Email,
			&customerModel.Address,
			&customerModel.LoyaltyPoints,
			&customerModel.CreatedAt,
			&customerModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, customer.ErrCustomerNotFound
		}

		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, customer.ErrConflict
		}

		return nil, fmt.Errorf("unexpected customer repository update error: %w", err)
	}

	return ToDomain(&customerModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Customer, error) {
	query := `SELECT id, full_name, phone, email, address, loyalty_points, created_at, updated_at
		FROM customers
		WHERE id = $1`

	var customerModel CustomerDB
	err := r.querier.QueryRow(ctx, query, id).
		Scan(
			&customerModel.ID,
			&customerModel.FullName,
			&customerModel.Phone,
			&customerModel.Email,
			&customerModel.Address,
			&customerModel.LoyaltyPoints,
			&customerModel.CreatedAt,
			&customerModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, customer.ErrCustomerNotFound
		}

		return nil, fmt.Errorf("unexpected customer repository getbyid error: %w", err)
	}

	return ToDomain(&customerModel), nil
}

func (r *Repository) List(ctx context.Context, params entities.ListParams) ([]entities.Customer, int64, error) {
	where := sq.And{}
	if params.Query != "" {
		pattern := "%" + params.Query + "%"
		where = append(where, sq.Or{
			sq.ILike{"full_name": pattern},
			sq.ILike{"phone": pattern},
			sq.ILike{"email": pattern},
		})
	}

	countBuilder := qb.Select("COUNT(*)").From("customers")
	if len(where) > 0 {
		countBuilder = countBuilder.Where(where)
	}
	countQuery, countArgs, err := countBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("unexpected customer repository list error: %w", err)
	}

	var total int64
	err = r.querier.QueryRow(ctx, countQuery, countArgs...).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("unexpected customer repository list error: %w", err)
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
		Select("id", "full_name", "phone", "email", "address", "loyalty_points", "created_at", "updated_at").
		From("customers").
		OrderBy(orderBy).
		Limit(uint64(params.Limit())).
		Offset(uint64(params.Offset()))
	if len(where) > 0 {
		builder = builder.Where(where)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("unexpected customer repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("unexpected customer repository list error: %w", err)
	}
	defer rows.Close()

	customerModels := make([]CustomerDB, 0, params.Limit())
	for rows.Next() {
		var customerModel CustomerDB
		err := rows.Scan(
			&customerModel.ID,
			&customerModel.FullName,
			&customerModel.Phone,
			&customerModel.Email,
			&customerModel.Address,
			&customerModel.LoyaltyPoints,
			&customerModel.CreatedAt,
			&customerModel.UpdatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("unexpected customer repository list error: %w", err)
		}
		customerModels = append(customerModels, customerModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, 0, fmt.Errorf("unexpected customer repository list error: %w", err)
	}

	return ToDomainList(customerModels), total, nil
}

// AddLoyaltyPoints атомарно двигает баланс и пишет строку в историю движений.
// Отрицательная delta - списание; баланс ниже нуля не пропускаем.
func (r *Repository) AddLoyaltyPoints(ctx context.Context, customerID, delta int64) (int64, error) {
	query := `UPDATE customers
		SET loyalty_points = loyalty_points + $2, updated_at = NOW()
		WHERE id = $1 AND loyalty_points + $2 >= 0
		RETURNING loyalty_points`

	var balance int64
	err := r.querier.QueryRow(ctx, query, customerID, delta).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// либо покупателя нет, либо баланса не хватило
			var exists bool
			existsErr := r.querier.
				QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM customers WHERE id = $1)`, customerID).
				Scan(&exists)
			if existsErr != nil {
				return 0, fmt.Errorf("unexpected customer repository add points error: %w", existsErr)
			}
			if !exists {
				return 0, customer.ErrCustomerNotFound
			}
			return 0, customer.ErrNotEnoughPoints
		}
		return 0, fmt.Errorf("unexpected customer repository add points error: %w", err)
	}

	historyQuery := `INSERT INTO loyalty_scores (customer_id, delta, balance)
		VALUES ($1, $2, $3)`
	_, err = r.querier.Exec(ctx, historyQuery, customerID, delta, balance)
	if err != nil {
		return 0, fmt.Errorf("unexpected customer repository add points error: %w", err)
	}

	return balance, nil
}
