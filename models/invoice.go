// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// InvoiceStatus is the lifecycle tag of an invoice.
type InvoiceStatus string

const (
	// InvoiceStatusPending marks an invoice that has been issued but not paid yet.
	InvoiceStatusPending InvoiceStatus = "pending"

	// InvoiceStatusPaid marks a settled invoice.
	InvoiceStatusPaid InvoiceStatus = "paid"
)

// InvoiceStatuses is the closed set of statuses accepted from forms.
var InvoiceStatuses = []InvoiceStatus{InvoiceStatusPending, InvoiceStatusPaid}

// IsValid reports whether s is one of [InvoiceStatuses].
func (s InvoiceStatus) IsValid() bool {
	for _, status := range InvoiceStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// Invoice is the persisted invoice row.
//
// Amount is always stored in cents. Date is a calendar date; only the
// year, month and day parts are meaningful.
type Invoice struct {
	// ID is an opaque identifier (UUID v7) assigned by the application on create.
	ID string `json:"id"`

	// CustomerID references customers.id.
	CustomerID string `json:"customer_id"`

	// Amount is the invoice total in cents.
	Amount int64 `json:"amount"`

	// Status is either pending or paid.
	Status InvoiceStatus `json:"status"`

	// Date is set to the current date on create and never touched on update.
	Date time.Time `json:"date"`
}

// TableName returns the name of the database table
// associated with the Invoice model.
func (i Invoice) TableName() string {
	return "invoices"
}

// InvoicesTableRow is one line of the invoice list page: the invoice joined
// with the customer it was issued to.
type InvoicesTableRow struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Email    string        `json:"email"`
	ImageURL string        `json:"image_url"`
	Amount   int64         `json:"amount"`
	Date     time.Time     `json:"date"`
	Status   InvoiceStatus `json:"status"`
}

// LatestInvoice is a compact invoice view shown on the dashboard overview.
type LatestInvoice struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	ImageURL string `json:"image_url"`
	Amount   int64  `json:"amount"`
}

// InvoiceFilter narrows the invoice list to a search query and a page.
// InvoicesPerPage is the page size of the invoices table.
const InvoicesPerPage = 6

// LatestInvoicesLimit is the number of invoices shown on the dashboard overview.
const LatestInvoicesLimit = 5

type InvoiceFilter struct {
	// Query is matched case-insensitively against customer name and email,
	// invoice amount, date and status.
	Query string `json:"query"`

	// Page is 1-based.
	Page int `json:"page"`
}

// InvoiceTotals aggregates invoice amounts (in cents) by status.
type InvoiceTotals struct {
	Count   int64 `json:"count"`
	Paid    int64 `json:"paid"`
	Pending int64 `json:"pending"`
}

// InvoicesPage is the view model of the invoice list page.
type InvoicesPage struct {
	Invoices    []InvoicesTableRow `json:"invoices"`
	Query       string             `json:"query"`
	CurrentPage int                `json:"current_page"`
	TotalPages  int                `json:"total_pages"`
}

// EditInvoicePage is the view model of the invoice edit page.
type EditInvoicePage struct {
	Invoice   Invoice         `json:"invoice"`
	Customers []CustomerField `json:"customers"`
}
