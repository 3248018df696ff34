package catalog

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidSKU            = errors.New("invalid sku")
	ErrInvalidName           = errors.New("invalid product name")
	ErrInvalidPrice          = errors.New("invalid price")

	ErrConflict        = errors.New("product already exists")
	ErrProductNotFound = errors.New("product not found")
)
