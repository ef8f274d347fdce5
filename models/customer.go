// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Customer is a person or company invoices are issued to.
type Customer struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	ImageURL string `json:"image_url"`
}

// TableName returns the name of the database table
// associated with the Customer model.
func (c Customer) TableName() string {
	return "customers"
}

// CustomerField is the minimal customer projection used to fill the
// customer select of invoice forms.
type CustomerField struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CustomersTableRow is one line of the customers page with invoice
// aggregates. Totals are in cents.
type CustomersTableRow struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	ImageURL      string `json:"image_url"`
	TotalInvoices int64  `json:"total_invoices"`
	TotalPending  int64  `json:"total_pending"`
	TotalPaid     int64  `json:"total_paid"`
}
