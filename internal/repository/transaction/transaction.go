package transaction

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"backoffice/internal/entities"
	"backoffice/internal/repository"
	"backoffice/internal/service/transaction"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var sortColumns = map[string]string{
	"createdAt": "created_at",
	"amount":    "amount",
}

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, orderID int64, amount int64, method string) (int64, error) {
	query := `INSERT INTO transactions (order_id, amount, method)
		VALUES ($1, $2, $3)
		RETURNING id`

	var id int64
	err := r.querier.QueryRow(ctx, query, orderID, amount, method).Scan(&id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return 0, transaction.ErrOrderNotFound
		}
		return 0, fmt.Errorf("unexpected transaction repository create error: %w", err)
	}

	return id, nil
}

func (r *Repository) List(ctx context.Context, params entities.ListParams) ([]entities.Transaction, int64, error) {
	where := sq.And{}
	if method, ok := params.Filters["method"]; ok {
		where = append(where, sq.Eq{"method": method})
	}
	if orderID, ok := params.Filters["orderId"]; ok {
		where = append(where, sq.Eq{"order_id": orderID})
	}

	countBuilder := qb.Select("COUNT(*)").From("transactions")
	if len(where) > 0 {
		countBuilder = countBuilder.Where(where)
	}
	countQuery, countArgs, err := countBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("unexpected transaction repository list error: %w", err)
	}

	var total int64
	err = r.querier.QueryRow(ctx, countQuery, countArgs...).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("unexpected transaction repository list error: %w", err)
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
		Select("id", "order_id", "amount", "method", "created_at").
		From("transactions").
		OrderBy(orderBy).
		Limit(uint64(params.Limit())).
		Offset(uint64(params.Offset()))
	if len(where) > 0 {
		builder = builder.Where(where)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("unexpected transaction repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("unexpected transaction repository list error: %w", err)
	}
	defer rows.Close()

	transactions := make([]entities.Transaction, 0, params.Limit())
	for rows.Next() {
		var t entities.Transaction
		err := rows.Scan(&t.ID, &t.OrderID, &t.Amount, &t.Method, &t.CreatedAt)
		if err != nil {
			return nil, 0, fmt.Errorf("unexpected transaction repository list error: %w", err)
		}
		transactions = append(transactions, t)
	}

	err = rows.Err()
	if err != nil {
		return nil, 0, fmt.Errorf("unexpected transaction repository list error: %w", err)
	}

	return transactions, total, nil
}
