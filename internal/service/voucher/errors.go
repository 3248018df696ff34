package voucher

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidCode           = errors.New("invalid voucher code")
	ErrInvalidDiscountType   = errors.New("invalid discount type")
	ErrInvalidValue          = errors.New("invalid discount value")
	ErrInvalidWindow         = errors.New("invalid validity window")
	ErrUndefinedStatus       = errors.New("undefined voucher status")

	ErrInvalidTransition = errors.New("voucher status transition is not allowed")

	ErrConflict        = errors.New("voucher already exists")
	ErrVoucherNotFound = errors.New("voucher not found")
)
