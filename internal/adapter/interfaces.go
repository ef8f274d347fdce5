// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the dashboard HTTP API.
//
// [DashboardAdapter] hides the transport from callers such as cmd/client.
// Non-2xx answers are mapped by mapHTTPError to the sentinel errors in
// errors.go so that callers can use [errors.Is] (e.g. [ErrUnauthorized] for
// 401, [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-invoice-dashboard/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// DashboardAdapter talks to a running dashboard server on behalf of a
// signed-in user.
type DashboardAdapter interface {
	// SetToken stores the session token sent with authenticated requests.
	SetToken(token string)

	// Token returns the current session token or an empty string.
	Token() string

	// Login signs in with the credentials provider. The session token is
	// taken from the 303 answer and stored via SetToken.
	Login(ctx context.Context, credentials models.Credentials) error

	// Logout ends the session on the server and forgets the local token.
	Logout(ctx context.Context) error

	// CreateInvoice submits the invoice form. A nil error with an empty
	// state means the invoice was stored. When the server rejects the form
	// the returned state carries the field errors and the partial data
	// together with [ErrInvalidForm].
	CreateInvoice(ctx context.Context, form models.InvoiceForm) (models.FormState, error)

	// ListInvoices fetches one page of the filtered invoice table.
	ListInvoices(ctx context.Context, filter models.InvoiceFilter) (models.InvoicesPage, error)

	// Dashboard fetches the summary cards and the latest invoices.
	Dashboard(ctx context.Context) (models.DashboardPage, error)
}
