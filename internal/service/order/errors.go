package order

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidQuantity       = errors.New("invalid item quantity")
	ErrInvalidPaymentMethod  = errors.New("invalid payment method")
	ErrUndefinedStatus       = errors.New("undefined order status")

	ErrSameStatus        = errors.New("order already has requested status")
	ErrInvalidTransition = errors.New("order status transition is not allowed")

	ErrOrderNotFound    = errors.New("order not found")
	ErrCustomerNotFound = errors.New("customer not found")
	ErrProductNotFound  = errors.New("product not found")
)
