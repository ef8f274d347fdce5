package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidEmail    = errors.New("invalid email")
	ErrInvalidPassword = errors.New("invalid password")
	ErrInvalidPage     = errors.New("page must be a positive number")
	ErrQueryTooLong    = errors.New("search query is too long")
	ErrInvalidID       = errors.New("invalid identifier")
)
