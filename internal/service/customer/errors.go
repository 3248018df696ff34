package customer

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidFullName       = errors.New("invalid full name")
	ErrInvalidPhone          = errors.New("invalid phone")
	ErrInvalidEmail          = errors.New("invalid email")

	ErrConflict         = errors.New("customer already exists")
	ErrCustomerNotFound = errors.New("customer not found")
	ErrNotEnoughPoints  = errors.New("not enough loyalty points")
)
