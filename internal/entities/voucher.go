package entities

import "time"

type VoucherStatusType string

const (
	VoucherInactive  VoucherStatusType = "INACTIVE"
	VoucherActive    VoucherStatusType = "ACTIVE"
	VoucherOutOfUses VoucherStatusType = "OUT_OF_USES"
	VoucherExpired   VoucherStatusType = "EXPIRED"
	VoucherDisabled  VoucherStatusType = "DISABLED"
)

func (s VoucherStatusType) String() string {
	return string(s)
}

// voucherStatusFlow - переходы, доступные оператору вручную. EXPIRED и
// OUT_OF_USES выставляются деривацией, руками из них можно только отключить.
var voucherStatusFlow = map[VoucherStatusType][]VoucherStatusType{
	VoucherInactive:  {VoucherActive, VoucherDisabled},
	VoucherActive:    {VoucherInactive, VoucherDisabled},
	VoucherOutOfUses: {VoucherDisabled},
	VoucherExpired:   {VoucherDisabled},
	VoucherDisabled:  {},
}

func NextVoucherStatuses(current VoucherStatusType) []VoucherStatusType {
	next, ok := voucherStatusFlow[current]
	if !ok {
		return []VoucherStatusType{VoucherInactive, VoucherActive, VoucherDisabled}
	}
	return next
}

func CanTransitVoucherStatus(from, to VoucherStatusType) bool {
	for _, s := range NextVoucherStatuses(from) {
		if s == to {
			return true
		}
	}
	return false
}

type DiscountType string

const (
	DiscountPercentage DiscountType = "PERCENTAGE"
	DiscountFixed      DiscountType = "FIXED"
)

func (t DiscountType) String() string {
	return string(t)
}

type Voucher struct {
	ID            int64
	Code          string
	DiscountType  DiscountType
	Value         int64 // проценты либо фиксированная сумма
	MinOrderValue int64
	MaxDiscount   int64
	StartsAt      time.Time
	EndsAt        time.Time
	MaxUses       int32
	UsedCount     int32
	Status        VoucherStatusType
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type VoucherModify struct {
	ID            *int64
	Code          *string
	DiscountType  *DiscountType
	Value         *int64
	MinOrderValue *int64
	MaxDiscount   *int64
	StartsAt      *time.Time
	EndsAt        *time.Time
	MaxUses       *int32
	Status        *VoucherStatusType
}

// DeriveVoucherStatus пересчитывает статус по окну действия и счётчику
// использований. Ручные статусы (DISABLED, INACTIVE) деривация не трогает.
func DeriveVoucherStatus(v Voucher, now time.Time) VoucherStatusType {
	switch v.Status {
	case VoucherDisabled, VoucherInactive:
		return v.Status
	}

	if now.After(v.EndsAt) {
		return VoucherExpired
	}
	if v.MaxUses > 0 && v.UsedCount >= v.MaxUses {
		return VoucherOutOfUses
	}
	if now.Before(v.StartsAt) {
		return VoucherInactive
	}
	return VoucherActive
}
