package service

import "errors"

var (
	// ErrInvalidDataProvided wraps a validation failure of user input.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrWrongCredentials is returned by sign-in for any username/password
	// mismatch. It does not tell which of the two was wrong.
	ErrWrongCredentials = errors.New("wrong username or password")
)
