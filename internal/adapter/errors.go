package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrInvalidForm         = errors.New("invalid invoice form")
	ErrNotImplemented      = errors.New("operation not implemented")
	ErrInternalServerError = errors.New("internal server error")

	ErrNoSessionToken = errors.New("server answered without a session token")
)
