package notification

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrNotificationNotFound  = errors.New("notification not found")
)
