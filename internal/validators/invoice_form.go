// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"math"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-invoice-dashboard/models"
)

// Messages attached to invoice form fields.
const (
	MsgSelectCustomer        = "Please select a customer."
	MsgAmountGreaterThanZero = "Please enter an amount greater than $0."
	MsgAmountNotANumber      = "Please enter a valid amount."
	MsgAmountTooLarge        = "Please enter an amount of at most $21,474,836.47."
	MsgSelectStatus          = "Please select an invoice status."

	MsgCreateInvoiceFailed = "Missing or invalid fields. Failed to Create Invoice."
	MsgUpdateInvoiceFailed = "Missing Fields. Failed to Update Invoice."
)

// MaxAmountCents is the largest amount, in cents, the invoices table stores.
const MaxAmountCents = math.MaxInt32

// fieldCheck returns the coerced value of a raw form field or the list of
// messages explaining why it was rejected.
type fieldCheck func(raw *string) (any, []string)

// invoiceFieldChecks is keyed by every name in [models.InvoiceFormFields].
var invoiceFieldChecks = map[string]fieldCheck{
	models.FieldCustomerID: func(raw *string) (any, []string) { return ValidateCustomerID(raw) },
	models.FieldAmount:     func(raw *string) (any, []string) { return ValidateAmount(raw) },
	models.FieldStatus:     func(raw *string) (any, []string) { return ValidateStatus(raw) },
}

// InvoiceFormValidator validates invoice create and update forms.
// It holds no mutable state and is safe for concurrent use.
type InvoiceFormValidator struct {
	failureMessage string
}

// NewInvoiceFormValidator returns a validator whose failures carry
// failureMessage as their summary.
func NewInvoiceFormValidator(failureMessage string) FormValidator {
	return &InvoiceFormValidator{failureMessage: failureMessage}
}

// ValidateInvoiceForm validates form as a whole. When any field fails, the
// fields without an error are validated again one by one and the ones that
// pass are returned in Partial, so the caller can re-fill the form.
//
// Malformed input never panics; it always ends up in Errors.
func (v *InvoiceFormValidator) ValidateInvoiceForm(form models.InvoiceForm) models.InvoiceFormResult {
	data, errs := validateInvoiceObject(form)
	if len(errs) == 0 {
		return models.InvoiceFormResult{Data: data}
	}

	var partial models.PartialInvoiceFields
	for _, field := range models.InvoiceFormFields {
		// only fields not blamed by the whole-object pass are candidates
		if errs.Has(field) {
			continue
		}

		raw, _ := form.Value(field)
		value, msgs := invoiceFieldChecks[field](raw)
		if len(msgs) > 0 {
			continue
		}
		setPartial(&partial, field, value)
	}

	return models.InvoiceFormResult{
		Errors:  errs,
		Partial: partial,
		Message: v.failureMessage,
	}
}

// validateInvoiceObject runs every rule against form and collects all
// messages. The returned fields are meaningful only when errs is empty.
func validateInvoiceObject(form models.InvoiceForm) (models.InvoiceFields, models.FieldErrors) {
	var data models.InvoiceFields
	errs := make(models.FieldErrors)

	for _, field := range models.InvoiceFormFields {
		raw, _ := form.Value(field)
		value, msgs := invoiceFieldChecks[field](raw)
		if len(msgs) > 0 {
			errs.Add(field, msgs...)
			continue
		}

		switch field {
		case models.FieldCustomerID:
			data.CustomerID = value.(string)
		case models.FieldAmount:
			data.Amount = value.(float64)
		case models.FieldStatus:
			data.Status = value.(models.InvoiceStatus)
		}
	}

	return data, errs
}

func setPartial(p *models.PartialInvoiceFields, field string, value any) {
	switch field {
	case models.FieldCustomerID:
		v := value.(string)
		p.CustomerID = &v
	case models.FieldAmount:
		v := value.(float64)
		p.Amount = &v
	case models.FieldStatus:
		v := value.(models.InvoiceStatus)
		p.Status = &v
	}
}

// ValidateCustomerID requires a non-empty customer identifier.
// Absent and empty values are both reported as an unselected customer.
func ValidateCustomerID(raw *string) (string, []string) {
	if raw == nil || *raw == "" {
		return "", []string{MsgSelectCustomer}
	}
	return *raw, nil
}

// ValidateAmount coerces raw into a number that must be strictly greater
// than zero. Surrounding whitespace is ignored and a missing or blank value
// coerces to 0. Values that are not finite numbers are rejected with
// [MsgAmountNotANumber].
//
// The amount is judged by its value in whole cents: anything rounding to
// less than one cent counts as zero, and anything above [MaxAmountCents]
// is rejected with [MsgAmountTooLarge].
func ValidateAmount(raw *string) (float64, []string) {
	amount, ok := coerceNumber(raw)
	if !ok {
		return 0, []string{MsgAmountNotANumber}
	}

	cents := math.Round(amount * 100)
	if cents < 1 {
		return 0, []string{MsgAmountGreaterThanZero}
	}
	if cents > MaxAmountCents {
		return 0, []string{MsgAmountTooLarge}
	}
	return amount, nil
}

// ValidateStatus accepts only the values listed in [models.InvoiceStatuses].
func ValidateStatus(raw *string) (models.InvoiceStatus, []string) {
	if raw == nil {
		return "", []string{MsgSelectStatus}
	}
	status := models.InvoiceStatus(*raw)
	if !status.IsValid() {
		return "", []string{MsgSelectStatus}
	}
	return status, nil
}

func coerceNumber(raw *string) (float64, bool) {
	if raw == nil {
		return 0, true
	}

	s := strings.TrimSpace(*raw)
	if s == "" {
		return 0, true
	}

	// ParseFloat also accepts "Inf", "NaN" and hex floats; only plain
	// decimal notation is a valid amount.
	if strings.ContainsAny(s, "xXpP") {
		return 0, false
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}
