package voucher

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"backoffice/internal/entities"
	"backoffice/internal/repository"
	"backoffice/internal/service/voucher"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var sortColumns = map[string]string{
	"createdAt": "created_at",
	"code":      "code",
	"endsAt":    "ends_at",
}

type VoucherDB struct {
	ID            int64
	Code          string
	DiscountType  string
	Value         int64
	MinOrderValue int64
	MaxDiscount   int64
	StartsAt      time.Time
	EndsAt        time.Time
	MaxUses       int32
	UsedCount     int32
	Status        string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func toDomain(v *VoucherDB) *entities.Voucher {
	if v == nil {
		return nil
	}
	return &entities.Voucher{
		ID:            v.ID,
		Code:          v.Code,
		DiscountType:  entities.DiscountType(v.DiscountType),
		Value:         v.Value,
		MinOrderValue: v.MinOrderValue,
		MaxDiscount:   v.MaxDiscount,
		StartsAt:      v.StartsAt,
		EndsAt:        v.EndsAt,
		MaxUses:       v.MaxUses,
		UsedCount:     v.UsedCount,
		Status:        entities.VoucherStatusType(v.Status),
		CreatedAt:     v.CreatedAt,
		UpdatedAt:     v.UpdatedAt,
	}
}

const voucherColumns = `id, code, discount_type, value, min_order_value, max_discount,
	starts_at, ends_at, max_uses, used_count, status, created_at, updated_at`

func scanVoucher(row pgx.Row) (*VoucherDB, error) {
	var v VoucherDB
	err := row.Scan(
		&v.ID,
		&v.Code,
		&v.DiscountType,
		&v.Value,
		&v.MinOrderValue,
		&v.MaxDiscount,
		&v.StartsAt,
		&v.EndsAt,
		&v.MaxUses,
		&v.UsedCount,
		&v.Status,
		&v.CreatedAt,
		&v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, voucherModify entities.VoucherModify) (int64, error) {
	query := `INSERT INTO vouchers
		(code, discount_type, value, min_order_value, max_discount, starts_at, ends_at, max_uses, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`

	status := entities.VoucherInactive
	if voucherModify.Status != nil {
		status = *voucherModify.Status
	}

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		*voucherModify.Code,
		voucherModify.DiscountType.String(),
		*voucherModify.Value,
		*voucherModify.MinOrderValue,
		*voucherModify.MaxDiscount,
		*voucherModify.StartsAt,
		*voucherModify.EndsAt,
		*voucherModify.MaxUses,
		status.String(),
	).Scan(&id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return 0, voucher.ErrConflict
		}
		return 0, fmt.Errorf("unexpected voucher repository create error: %w", err)
	}

	return id, nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Voucher, error) {
	query := `SELECT ` + voucherColumns + ` FROM vouchers WHERE id = $1`

	voucherModel, err := scanVoucher(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, voucher.ErrVoucherNotFound
		}
		return nil, fmt.Errorf("unexpected voucher repository getbyid error: %w", err)
	}

	return toDomain(voucherModel), nil
}

func (r *Repository) Update(ctx context.Context, voucherModify entities.VoucherModify) (*entities.Voucher, error) {
	builder := qb.
		Update("vouchers")

	// опциональные поля
	if voucherModify.Status != nil {
		builder = builder.Set("status", voucherModify.Status.String())
	}
	if voucherModify.EndsAt != nil {
		builder = builder.Set("ends_at", voucherModify.EndsAt)
	}
	if voucherModify.MaxUses != nil {
		builder = builder.Set("max_uses", voucherModify.MaxUses)
	}
	if voucherModify.MaxDiscount != nil {
		builder = builder.Set("max_discount", voucherModify.MaxDiscount)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": voucherModify.ID}).
		Suffix("RETURNING " + voucherColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected voucher repository update error: %w", err)
	}

	voucherModel, err := scanVoucher(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, voucher.ErrVoucherNotFound
		}
		return nil, fmt.Errorf("unexpected voucher repository update error: %w", err)
	}

	return toDomain(voucherModel), nil
}

func (r *Repository) List(ctx context.Context, params entities.ListParams) ([]entities.Voucher, int64, error) {
	where := sq.And{}
	if params.Query != "" {
		where = append(where, sq.ILike{"code": "%" + params.Query + "%"})
	}
	if status, ok := params.Filters["status"]; ok {
		where = append(where, sq.Eq{"status": status})
	}
	if discountType, ok := params.Filters["discountType"]; ok {
		where = append(where, sq.Eq{"discount_type": discountType})
	}

	countBuilder := qb.Select("COUNT(*)").From("vouchers")
	if len(where) > 0 {
		countBuilder = countBuilder.Where(where)
	}
	countQuery, countArgs, err := countBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("unexpected voucher repository list error: %w", err)
	}

	var total int64
	err = r.querier.QueryRow(ctx, countQuery, countArgs...).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("unexpected voucher repository list error: %w", err)
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
		Select("id", "code", "discount_type", "value", "min_order_value", "max_discount",
			"starts_at", "ends_at", "max_uses", "used_count", "status", "created_at", "updated_at").
		From("vouchers").
		OrderBy(orderBy).
		Limit(uint64(params.Limit())).
		Offset(uint64(params.Offset()))
	if len(where) > 0 {
		builder = builder.Where(where)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("unexpected voucher repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("unexpected voucher repository list error: %w", err)
	}
	defer rows.Close()

	vouchers := make([]entities.Voucher, 0, params.Limit())
	for rows.Next() {
		var v VoucherDB
		err := rows.Scan(
			&v.ID,
			&v.Code,
			&v.DiscountType,
			&v.Value,
			&v.MinOrderValue,
			&v.MaxDiscount,
			&v.StartsAt,
			&v.EndsAt,
			&v.MaxUses,
			&v.UsedCount,
			&v.Status,
			&v.CreatedAt,
			&v.UpdatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("unexpected voucher repository list error: %w", err)
		}
		vouchers = append(vouchers, *toDomain(&v))
	}

	err = rows.Err()
	if err != nil {
		return nil, 0, fmt.Errorf("unexpected voucher repository list error: %w", err)
	}

	return vouchers, total, nil
}

// RefreshStatuses переводит просроченные и исчерпанные ваучеры в
// EXPIRED/OUT_OF_USES одним проходом. Ручные статусы не трогаем.
func (r *Repository) RefreshStatuses(ctx context.Context, now time.Time) (int64, error) {
	query := `UPDATE vouchers
		SET status = CASE
			WHEN ends_at < $1 THEN 'EXPIRED'
			ELSE 'OUT_OF_USES'
		END,
		updated_at = NOW()
		WHERE status = 'ACTIVE'
			AND (ends_at < $1 OR (max_uses > 0 AND used_count >= max_uses))`

	result, err := r.querier.Exec(ctx, query, now)
	if err != nil {
		return 0, fmt.Errorf("unexpected voucher repository refresh error: %w", err)
	}

	return result.RowsAffected(), nil
}
