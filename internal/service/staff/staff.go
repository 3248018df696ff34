package staff

import (
	"context"
	"fmt"
	"strings"

	"backoffice/internal/entities"
)

type Staff struct {
	repository Repository
}

func New(repository Repository) *Staff {
	return &Staff{
		repository: repository,
	}
}

func (s *Staff) CreateStaff(ctx context.Context, staffModify entities.StaffModify) (int64, error) {
	if staffModify.Username == nil || staffModify.FullName == nil || staffModify.Phone == nil {
		return 0, ErrMissingRequiredFields
	}

	if !isValidUsername(*staffModify.Username) {
		return 0, ErrInvalidUsername
	}
	if strings.TrimSpace(*staffModify.FullName) == "" {
		return 0, ErrInvalidFullName
	}
	if strings.TrimSpace(*staffModify.Phone) == "" {
		return 0, ErrInvalidPhone
	}

	id, err := s.repository.Create(ctx, staffModify)
	if err != nil {
		return 0, fmt.Errorf("create staff: %w", err)
	}

	return id, nil
}

func (s *Staff) GetStaff(ctx context.Context, id int64) (*entities.Staff, error) {
	staffEntity, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get staff: %w", err)
	}

	return staffEntity, nil
}

func (s *Staff) ListStaffs(ctx context.Context, params entities.ListParams) ([]entities.Staff, int64, error) {
	staffs, total, err := s.repository.List(ctx, params)
	if err != nil {
		return nil, 0, fmt.Errorf("list staffs: %w", err)
	}

	return staffs, total, nil
}

func isValidUsername(username string) bool {
	username = strings.TrimSpace(username)
	if len(username) < 3 {
		return false
	}
	for _, char := range username {
		switch {
		case char >= 'a' && char <= 'z':
		case char >= '0' && char <= '9':
		case char == '_' || char == '.':
		default:
			return false
		}
	}
	return true
}
