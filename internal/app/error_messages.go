// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// dashboard handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies to describe the outcome of an operation.
package app

const (
	// MsgInvalidDataProvided is returned when the request body or query
	// cannot be decoded or fails basic validation.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidCredentials is returned when the e-mail/password pair does
	// not match a user.
	MsgInvalidCredentials = "Invalid credentials."

	// MsgSomethingWentWrong is returned for any other sign-in failure.
	MsgSomethingWentWrong = "Something went wrong."

	// MsgUnauthorized is returned when a dashboard route is requested
	// without a valid session.
	MsgUnauthorized = "unauthorized"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgInvoiceNotFound is returned when the requested invoice id is unknown.
	MsgInvoiceNotFound = "Invoice not found."

	// MsgDeleteNotImplemented is returned by the delete action, which is
	// declared but not available.
	MsgDeleteNotImplemented = "Function not implemented."

	// MsgDatabaseCreateInvoiceFailed is the form message when the insert fails.
	MsgDatabaseCreateInvoiceFailed = "Database Error: Failed to Create Invoice."

	// MsgDatabaseUpdateInvoiceFailed is the form message when the update fails.
	MsgDatabaseUpdateInvoiceFailed = "Database Error: Failed to Update Invoice."

	// MsgLoggedOut is returned after the session cookie has been cleared.
	MsgLoggedOut = "logged out"
)
