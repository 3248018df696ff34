package staff

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidUsername       = errors.New("invalid username")
	ErrInvalidFullName       = errors.New("invalid full name")
	ErrInvalidPhone          = errors.New("invalid phone")

	ErrConflict      = errors.New("staff already exists")
	ErrStaffNotFound = errors.New("staff not found")
)
