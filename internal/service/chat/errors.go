package chat

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrEmptyContent          = errors.New("empty message content")
	ErrConversationNotFound  = errors.New("conversation not found")
)
