package voucher

import (
	"context"
	"fmt"
	"strings"
	"time"

	"backoffice/internal/entities"
)

type Voucher struct {
	repository Repository
	txManager  TxManager
}

func New(repository Repository, txManager TxManager) *Voucher {
	return &Voucher{
		repository: repository,
		txManager:  txManager,
	}
}

func (s *Voucher) CreateVoucher(ctx context.Context, voucherModify entities.VoucherModify) (int64, error) {
	if voucherModify.Code == nil ||
		voucherModify.DiscountType == nil ||
		voucherModify.Value == nil ||
		voucherModify.StartsAt == nil ||
		voucherModify.EndsAt == nil {
		return 0, ErrMissingRequiredFields
	}

	if strings.TrimSpace(*voucherModify.Code) == "" {
		return 0, ErrInvalidCode
	}
	if !isValidDiscountType(*voucherModify.DiscountType) {
		return 0, ErrInvalidDiscountType
	}
	if !isValidValue(*voucherModify.DiscountType, *voucherModify.Value) {
		return 0, ErrInvalidValue
	}
	if !voucherModify.EndsAt.After(*voucherModify.StartsAt) {
		return 0, ErrInvalidWindow
	}

	if voucherModify.MinOrderValue == nil {
		voucherModify.MinOrderValue = new(int64)
	}
	if voucherModify.MaxDiscount == nil {
		voucherModify.MaxDiscount = new(int64)
	}
	if voucherModify.MaxUses == nil {
		voucherModify.MaxUses = new(int32)
	}

	id, err := s.repository.Create(ctx, voucherModify)
	if err != nil {
		return 0, fmt.Errorf("create voucher: %w", err)
	}

	return id, nil
}

// UpdateVoucher меняет атрибуты и, если запрошено, переводит статус по
// таблице ручных переходов. EXPIRED и OUT_OF_USES руками не выставляются.
func (s *Voucher) UpdateVoucher(ctx context.Context, voucherModify entities.VoucherModify) (*entities.Voucher, error) {
	if voucherModify.ID == nil {
		return nil, ErrMissingRequiredFields
	}
	if voucherModify.Status == nil &&
		voucherModify.EndsAt == nil &&
		voucherModify.MaxUses == nil &&
		voucherModify.MaxDiscount == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}

	var updated *entities.Voucher
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if voucherModify.Status != nil {
			newStatus := *voucherModify.Status
			if !isValidStatus(newStatus) {
				return ErrUndefinedStatus
			}

			current, err := s.repository.GetByID(ctx, *voucherModify.ID)
			if err != nil {
				return fmt.Errorf("get voucher: %w", err)
			}

			if current.Status != newStatus &&
				!entities.CanTransitVoucherStatus(current.Status, newStatus) {
				return fmt.Errorf("%s -> %s: %w", current.Status, newStatus, ErrInvalidTransition)
			}
		}

		var err error
		updated, err = s.repository.Update(ctx, voucherModify)
		if err != nil {
			return fmt.Errorf("update voucher: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// GetVoucher отдает ваучер с актуальным статусом: деривация считается на
// чтении, фоновая задача лишь догоняет её в базе.
func (s *Voucher) GetVoucher(ctx context.Context, id int64) (*entities.Voucher, error) {
	voucherEntity, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get voucher: %w", err)
	}

	voucherEntity.Status = entities.DeriveVoucherStatus(*voucherEntity, time.Now().UTC())

	return voucherEntity, nil
}

func (s *Voucher) ListVouchers(ctx context.Context, params entities.ListParams) ([]entities.Voucher, int64, error) {
	vouchers, total, err := s.repository.List(ctx, params)
	if err != nil {
		return nil, 0, fmt.Errorf("list vouchers: %w", err)
	}

	now := time.Now().UTC()
	for i := range vouchers {
		vouchers[i].Status = entities.DeriveVoucherStatus(vouchers[i], now)
	}

	return vouchers, total, nil
}

// RefreshStatuses - тело фоновой задачи деривации статусов.
func (s *Voucher) RefreshStatuses(ctx context.Context) (int64, error) {
	rowsAffected, err := s.repository.RefreshStatuses(ctx, time.Now().UTC())
	if err != nil {
		return 0, fmt.Errorf("refresh voucher statuses: %w", err)
	}

	return rowsAffected, nil
}

func isValidDiscountType(discountType entities.DiscountType) bool {
	switch discountType {
	case entities.DiscountPercentage, entities.DiscountFixed:
		return true
	default:
		return false
	}
}

func isValidValue(discountType entities.DiscountType, value int64) bool {
	if value <= 0 {
		return false
	}
	if discountType == entities.DiscountPercentage && value > 100 {
		return false
	}
	return true
}

func isValidStatus(status entities.VoucherStatusType) bool {
	switch status {
	case entities.VoucherInactive,
		entities.VoucherActive,
		entities.VoucherOutOfUses,
		entities.VoucherExpired,
		entities.VoucherDisabled:
		return true
	default:
		return false
	}
}
