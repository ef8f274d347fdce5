// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Names of the recognised invoice form fields. They double as keys of
// [FieldErrors] and as JSON names of [PartialInvoiceFields].
const (
	FieldCustomerID = "customerId"
	FieldAmount     = "amount"
	FieldStatus     = "status"
)

// InvoiceFormFields lists the recognised invoice form fields in display order.
var InvoiceFormFields = []string{FieldCustomerID, FieldAmount, FieldStatus}

// InvoiceForm is the raw, untyped content of a submitted invoice form.
// A nil field means the field was not submitted at all; a pointer to ""
// means it was submitted empty.
type InvoiceForm struct {
	CustomerID *string
	Amount     *string
	Status     *string
}

// Value returns the raw value of the named field and false when the name is
// not a recognised field.
func (f InvoiceForm) Value(field string) (*string, bool) {
	switch field {
	case FieldCustomerID:
		return f.CustomerID, true
	case FieldAmount:
		return f.Amount, true
	case FieldStatus:
		return f.Status, true
	}
	return nil, false
}

// InvoiceFields is a fully validated invoice form. Amount is the decimal
// value entered by the user; conversion to cents happens at the
// persistence boundary.
type InvoiceFields struct {
	CustomerID string        `json:"customerId"`
	Amount     float64       `json:"amount"`
	Status     InvoiceStatus `json:"status"`
}

// PartialInvoiceFields holds the fields that validated on their own even
// though the form as a whole was rejected. A nil pointer means the field is
// not part of the recovered data.
type PartialInvoiceFields struct {
	CustomerID *string        `json:"customerId,omitempty"`
	Amount     *float64       `json:"amount,omitempty"`
	Status     *InvoiceStatus `json:"status,omitempty"`
}

// Has reports whether the named field was recovered.
func (p PartialInvoiceFields) Has(field string) bool {
	switch field {
	case FieldCustomerID:
		return p.CustomerID != nil
	case FieldAmount:
		return p.Amount != nil
	case FieldStatus:
		return p.Status != nil
	}
	return false
}

// FieldErrors maps a form field name to its ordered list of messages.
type FieldErrors map[string][]string

// Add appends msgs to the messages of field.
func (e FieldErrors) Add(field string, msgs ...string) {
	if len(msgs) == 0 {
		return
	}
	e[field] = append(e[field], msgs...)
}

// Has reports whether field has at least one message.
func (e FieldErrors) Has(field string) bool {
	return len(e[field]) > 0
}

// InvoiceFormResult is the outcome of validating an [InvoiceForm].
//
// Exactly one of two shapes is populated:
//   - success: Errors is empty and Data holds the coerced values;
//   - failure: Errors holds per-field messages, Partial the fields that
//     validated independently and Message a human-readable summary.
type InvoiceFormResult struct {
	Data    InvoiceFields
	Errors  FieldErrors
	Partial PartialInvoiceFields
	Message string
}

// Valid reports whether the form passed validation.
func (r InvoiceFormResult) Valid() bool {
	return len(r.Errors) == 0
}

// State converts a failed result into the [FormState] handed back to the
// form so it can be re-filled.
func (r InvoiceFormResult) State() FormState {
	partial := r.Partial
	return FormState{
		Errors:        r.Errors,
		ValidatedData: &partial,
		Message:       r.Message,
	}
}

// FormState is what a form submission returns to the page that posted it.
type FormState struct {
	Errors        FieldErrors           `json:"errors,omitempty"`
	ValidatedData *PartialInvoiceFields `json:"validatedData,omitempty"`
	Message       string                `json:"message,omitempty"`
}
