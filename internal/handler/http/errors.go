// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the session middleware and the request decoders.
// Callers can match against them with [errors.Is].
var (
	// ErrNoSession is returned by the auth middleware when the request
	// carries neither a session cookie nor an "Authorization" header.
	ErrNoSession = errors.New("no session cookie or `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but is not of the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrUnsupportedContentType is returned when a form is posted with a
	// body that is neither JSON nor an HTML form encoding.
	ErrUnsupportedContentType = errors.New("unsupported content type")

	// ErrMalformedForm is returned when a posted body cannot be decoded.
	ErrMalformedForm = errors.New("malformed form body")
)
