package service

import "errors"

var (
	// ErrInvalidInvoiceForm is returned together with a form state that
	// carries per-field messages.
	ErrInvalidInvoiceForm = errors.New("invalid invoice form")

	// ErrPersistenceFailed is returned when a validated invoice could not be
	// written. The form state carries the database error message.
	ErrPersistenceFailed = errors.New("failed to persist invoice")

	// ErrOperationNotImplemented is returned by operations that are declared
	// but deliberately unavailable.
	ErrOperationNotImplemented = errors.New("operation is not implemented")

	ErrInvoiceNotFound = errors.New("invoice not found")
	ErrFetchFailed     = errors.New("failed to fetch data")

	// ErrInvalidCredentials and ErrAuthFailed are the only errors
	// Authenticate returns.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAuthFailed         = errors.New("authentication failed")

	ErrInvalidDataProvided     = errors.New("invalid data provided")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrVersionIsNotSpecified   = errors.New("app version is not specified")
)
