package order

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"backoffice/internal/entities"
	"backoffice/internal/repository"
	"backoffice/internal/service/order"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var sortColumns = map[string]string{
	"createdAt":   "created_at",
	"totalAmount": "total_amount",
	"finalAmount": "final_amount",
}

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Create пишет заказ, его позиции и первую строку истории статусов.
// Вызывается внутри транзакции сервисного слоя.
func (r *Repository) Create(ctx context.Context, orderEntity entities.SellingOrder) (int64, error) {
	query := `INSERT INTO selling_orders
		(customer_id, total_amount, used_points, earned_points, final_amount, payment_method, payment_status, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		orderEntity.CustomerID,
		orderEntity.TotalAmount,
		orderEntity.UsedPoints,
		orderEntity.EarnedPoints,
		orderEntity.FinalAmount,
		orderEntity.PaymentMethod,
		orderEntity.PaymentStatus.String(),
		orderEntity.Status.String(),
	).Scan(&id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return 0, order.ErrCustomerNotFound
		}
		return 0, fmt.Errorf("unexpected order repository create error: %w", err)
	}

	itemQuery := `INSERT INTO selling_order_items
		(order_id, product_id, product_name, unit, quantity, unit_price, line_total)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	for _, item := range orderEntity.Items {
		_, err := r.querier.Exec(
			ctx,
			itemQuery,
			id,
			item.ProductID,
			item.ProductName,
			item.Unit,
			item.Quantity,
			item.UnitPrice,
			item.LineTotal,
		)
		if err != nil {
			return 0, fmt.Errorf("unexpected order repository create item error: %w", err)
		}
	}

	err = r.AppendStatusHistory(ctx, id, orderEntity.Status)
	if err != nil {
		return 0, err
	}

	return id, nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.SellingOrder, error) {
	query := `SELECT id, customer_id, total_amount, used_points, earned_points, final_amount,
			payment_method, payment_status, status, created_at, updated_at
		FROM selling_orders
		WHERE id = $1`

	var orderModel OrderDB
	err := r.querier.QueryRow(ctx, query, id).
		Scan(
			&orderModel.ID,
			&orderModel.CustomerID,
			&orderModel.TotalAmount,
			&orderModel.UsedPoints,
			&orderModel.EarnedPoints,
			&orderModel.FinalAmount,
			&orderModel.PaymentMethod,
			&orderModel.PaymentStatus,
			&orderModel.Status,
			&orderModel.CreatedAt,
			&orderModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository getbyid error: %w", err)
	}

	orderDomain := ToDomain(&orderModel)

	items, err := r.getItems(ctx, id)
	if err != nil {
		return nil, err
	}
	orderDomain.Items = items

	history, err := r.getStatusHistory(ctx, id)
	if err != nil {
		return nil, err
	}
	orderDomain.History = history

	return orderDomain, nil
}

func (r *Repository) GetStatus(ctx context.Context, id int64) (entities.OrderStatusType, error) {
	query := `SELECT status FROM selling_orders WHERE id = $1`

	var status string
	err := r.querier.QueryRow(ctx, query, id).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", order.ErrOrderNotFound
		}
		return "", fmt.Errorf("unexpected order repository getstatus error: %w", err)
	}

	return entities.OrderStatusType(status), nil
}

func (r *Repository) UpdateStatus(ctx context.Context, id int64, status entities.OrderStatusType) (*entities.SellingOrder, error) {
	query := `UPDATE selling_orders
		SET status = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING id, customer_id, total_amount, used_points, earned_points, final_amount,
			payment_method, payment_status, status, created_at, updated_at`

	var orderModel OrderDB
	err := r.querier.QueryRow(ctx, query, id, status.String()).
		Scan(
			&orderModel.ID,
			&orderModel.CustomerID,
			&orderModel.TotalAmount,
			&orderModel.UsedPoints,
			&orderModel.EarnedPoints,
			&orderModel.FinalAmount,
			&orderModel.PaymentMethod,
			&orderModel.PaymentStatus,
			&orderModel.Status,
			&orderModel.CreatedAt,
			&orderModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository updatestatus error: %w", err)
	}

	err = r.AppendStatusHistory(ctx, id, status)
	if err != nil {
		return nil, err
	}

	return ToDomain(&orderModel), nil
}

func (r *Repository) MarkPaid(ctx context.Context, id int64) error {
	query := `UPDATE selling_orders
		SET payment_status = 'PAID', updated_at = NOW()
		WHERE id = $1`

	result, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("unexpected order repository markpaid error: %w", err)
	}
	if result.RowsAffected() == 0 {
		return order.ErrOrderNotFound
	}
	return nil
}

func (r *Repository) AppendStatusHistory(ctx context.Context, orderID int64, status entities.OrderStatusType) error {
	query := `INSERT INTO selling_order_status_history (order_id, status)
		VALUES ($1, $2)`

	_, err := r.querier.Exec(ctx, query, orderID, status.String())
	if err != nil {
		return fmt.Errorf("unexpected order repository append history error: %w", err)
	}
	return nil
}

func (r *Repository) List(ctx context.Context, params entities.ListParams) ([]entities.SellingOrder, int64, error) {
	where := sq.And{}
	if orderStatus, ok := params.Filters["orderStatus"]; ok {
		where = append(where, sq.Eq{"status": orderStatus})
	}
	if paymentStatus, ok := params.Filters["paymentStatus"]; ok {
		where = append(where, sq.Eq{"payment_status": paymentStatus})
	}

	countBuilder := qb.Select("COUNT(*)").From("selling_orders")
	if len(where) > 0 {
		countBuilder = countBuilder.Where(where)
	}
	countQuery, countArgs, err := countBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("unexpected order repository list error: %w", err)
	}

	var total int64
	err = r.querier.QueryRow(ctx, countQuery, countArgs...).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("unexpected order repository list error: %w", err)
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
		Select("id", "customer_id", "total_amount", "used_points", "earned_points", "final_amount",
			"payment_method", "payment_status", "status", "created_at", "updated_at").
		From("selling_orders").
		OrderBy(orderBy).
		Limit(uint64(params.Limit())).
		Offset(uint64(params.Offset()))
	if len(where) > 0 {
		builder = builder.Where(where)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("unexpected order repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("unexpected order repository list error: %w", err)
	}
	defer rows.Close()

	orderModels := make([]OrderDB, 0, params.Limit())
	for rows.Next() {
		var orderModel OrderDB
		err := rows.Scan(
			&orderModel.ID,
			&orderModel.CustomerID,
			&orderModel.TotalAmount,
			&orderModel.UsedPoints,
			&orderModel.EarnedPoints,
			&orderModel.FinalAmount,
			&orderModel.PaymentMethod,
			&orderModel.PaymentStatus,
			&orderModel.Status,
			&orderModel.CreatedAt,
			&orderModel.UpdatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("unexpected order repository list error: %w", err)
		}
		orderModels = append(orderModels, orderModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, 0, fmt.Errorf("unexpected order repository list error: %w", err)
	}

	return ToDomainList(orderModels), total, nil
}

func (r *Repository) getItems(ctx context.Context, orderID int64) ([]entities.OrderItem, error) {
	query := `SELECT id, order_id, product_id, product_name, unit, quantity, unit_price, line_total
		FROM selling_order_items
		WHERE order_id = $1
		ORDER BY id`

	rows, err := r.querier.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository items error: %w", err)
	}
	defer rows.Close()

	items := make([]entities.OrderItem, 0, 8)
	for rows.Next() {
		var itemModel OrderItemDB
		err := rows.Scan(
			&itemModel.ID,
			&itemModel.OrderID,
			&itemModel.ProductID,
			&itemModel.ProductName,
			&itemModel.Unit,
			&itemModel.Quantity,
			&itemModel.UnitPrice,
			&itemModel.LineTotal,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository items error: %w", err)
		}
		items = append(items, ToDomainItem(&itemModel))
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository items error: %w", err)
	}

	return items, nil
}

func (r *Repository) getStatusHistory(ctx context.Context, orderID int64) ([]entities.OrderStatusHistory, error) {
	query := `SELECT id, order_id, status, created_at
		FROM selling_order_status_history
		WHERE order_id = $1
		ORDER BY created_at, id`

	rows, err := r.querier.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository history error: %w", err)
	}
	defer rows.Close()

	history := make([]entities.OrderStatusHistory, 0, 4)
	for rows.Next() {
		var historyModel StatusHistoryDB
		err := rows.Scan(
			&historyModel.ID,
			&historyModel.OrderID,
			&historyModel.Status,
			&historyModel.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository history error: %w", err)
		}
		history = append(history, ToDomainHistory(&historyModel))
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository history error: %w", err)
	}

	return history, nil
}
