package staff

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"backoffice/internal/entities"
	"backoffice/internal/repository"
	"backoffice/internal/service/staff"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var sortColumns = map[string]string{
	"createdAt": "created_at",
	"fullName":  "full_name",
	"username":  "username",
}

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, staffModify entities.StaffModify) (int64, error) {
	query := `INSERT INTO staffs (username, full_name, phone)
		VALUES ($1, $2, $3)
		RETURNING id`

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		*staffModify.Username,
		*staffModify.FullName,
		*staffModify.Phone,
	).Scan(&id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return 0, staff.ErrConflict
		}
		return 0, fmt.Errorf("unexpected staff repository create error: %w", err)
	}

	return id, nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Staff, error) {
	query := `SELECT id, username, full_name, phone, is_activated, created_at, updated_at
		FROM staffs WHERE id = $1`

	var s entities.Staff
	err := r.querier.QueryRow(ctx, query, id).Scan(
		&s.ID,
		&s.Username,
		&s.FullName,
		&s.Phone,
		&s.IsActivated,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, staff.ErrStaffNotFound
		}
		return nil, fmt.Errorf("unexpected staff repository getbyid error: %w", err)
	}

	return &s, nil
}

func (r *Repository) List(ctx context.Context, params entities.ListParams) ([]entities.Staff, int64, error) {
	where := sq.And{}
	if params.Query != "" {
		pattern := "%" + params.Query + "%"
		where = append(where, sq.Or{
			sq.ILike{"username": pattern},
			sq.ILike{"full_name": pattern},
		})
	}
	if isActivated, ok := params.Filters["isActivated"]; ok {
		where = append(where, sq.Eq{"is_activated": isActivated == "true"})
	}

	countBuilder := qb.Select("COUNT(*)").From("staffs")
	if len(where) > 0 {
		countBuilder = countBuilder.Where(where)
	}
	countQuery, countArgs, err := countBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("unexpected staff repository list error: %w", err)
	}

	var total int64
	err = r.querier.QueryRow(ctx, countQuery, countArgs...).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("unexpected staff repository list error: %w", err)
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
		Select("id", "username", "full_name", "phone", "is_activated", "created_at", "updated_at").
		From("staffs").
		OrderBy(orderBy).
		Limit(uint64(params.Limit())).
		Offset(uint64(params.Offset()))
	if len(where) > 0 {
		builder = builder.Where(where)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("unexpected staff repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("unexpected staff repository list error: %w", err)
	}
	defer rows.Close()

	staffs := make([]entities.Staff, 0, params.Limit())
	for rows.Next() {
		var s entities.Staff
		err := rows.Scan(
			&s.ID,
			&s.Username,
			&s.FullName,
			&s.Phone,
			&s.IsActivated,
			&s.CreatedAt,
			&s.UpdatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("unexpected staff repository list error: %w", err)
		}
		staffs = append(staffs, s)
	}

	err = rows.Err()
	if err != nil {
		return nil, 0, fmt.Errorf("unexpected staff repository list error: %w", err)
	}

	return staffs, total, nil
}

// GetActiveIDs нужен воркеру нотификаций: событие по заказу раскладывается
// в нотификацию каждому активному сотруднику.
func (r *Repository) GetActiveIDs(ctx context.Context) ([]int64, error) {
	query := `SELECT id FROM staffs WHERE is_activated = true`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected staff repository getactiveids error: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		err := rows.Scan(&id)
		if err != nil {
			return nil, fmt.Errorf("unexpected staff repository getactiveids error: %w", err)
		}
		ids = append(ids, id)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected staff repository getactiveids error: %w", err)
	}

	return ids, nil
}
