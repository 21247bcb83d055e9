package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUserID           = errors.New("invalid user ID")
	ErrInvalidTaskID           = errors.New("invalid task ID")
	ErrEmptyTitle              = errors.New("title is required")
	ErrInvalidPriority         = errors.New("priority must be one of low, medium, high")
	ErrInvalidCompletionStatus = errors.New("completion status must be one of not started, in progress, completed")
	ErrInvalidDueDate          = errors.New("due date must be a valid date in YYYY-MM-DD format")

	ErrEmptyLogin    = errors.New("username is required")
	ErrEmptyPassword = errors.New("password is required")
)
